package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/uptrace/bun"
)

// Services mirrors Service over the legacy "services" table. The upstream
// schema shipped both tables and existing rows live in each, so both stacks
// stay addressable.
type Services struct {
	bun.BaseModel `bun:"table:services,alias:ss"`
	Record

	Name        string   `bun:"name,notnull" json:"name"`
	Description *string  `bun:"description" json:"description,omitempty"`
	IsActive    bool     `bun:"is_active" json:"is_active"`
	IsPremium   bool     `bun:"is_premium" json:"is_premium"`
	Price       *float64 `bun:"price" json:"price,omitempty"`
}

func (s *Services) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&s.Description, validation.Length(0, 500)),
		validation.Field(&s.Price, validation.Min(0.0)),
	)
}

func (s *Services) SearchColumns() []string {
	return []string{"name", "description", "price", "is_active", "is_premium"}
}

type ServicesPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
	IsPremium   *bool    `json:"is_premium,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

func (p ServicesPatch) Apply(s *Services) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = p.Description
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
	if p.IsPremium != nil {
		s.IsPremium = *p.IsPremium
	}
	if p.Price != nil {
		s.Price = p.Price
	}
}
