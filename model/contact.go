package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/uptrace/bun"
)

// Contact is an inbound contact-form entry.
type Contact struct {
	bun.BaseModel `bun:"table:contact,alias:c"`
	Record

	FirstName   string  `bun:"first_name,notnull" json:"first_name"`
	LastName    *string `bun:"last_name" json:"last_name,omitempty"`
	Email       *string `bun:"email" json:"email,omitempty"`
	PhoneNumber *string `bun:"phone_number" json:"phone_number,omitempty"`
	IsActive    bool    `bun:"is_active" json:"is_active"`
	IsVerified  bool    `bun:"is_verified" json:"is_verified"`
}

func (c *Contact) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&c.LastName, validation.Length(0, 50)),
		validation.Field(&c.Email, is.Email, validation.Length(0, 100)),
		validation.Field(&c.PhoneNumber, validation.Length(0, 20)),
	)
}

func (c *Contact) SearchColumns() []string {
	return []string{"first_name", "last_name", "email", "phone_number", "is_active", "is_verified"}
}

type ContactPatch struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsVerified  *bool   `json:"is_verified,omitempty"`
}

func (p ContactPatch) Apply(c *Contact) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = p.LastName
	}
	if p.Email != nil {
		c.Email = p.Email
	}
	if p.PhoneNumber != nil {
		c.PhoneNumber = p.PhoneNumber
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
	if p.IsVerified != nil {
		c.IsVerified = *p.IsVerified
	}
}
