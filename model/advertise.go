package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/uptrace/bun"
)

// Advertise is a promoted listing shown on the site.
type Advertise struct {
	bun.BaseModel `bun:"table:advertise,alias:a"`
	Record

	Title       string   `bun:"title,notnull" json:"title"`
	Description *string  `bun:"description" json:"description,omitempty"`
	Price       *float64 `bun:"price" json:"price,omitempty"`
	IsFeatured  bool     `bun:"is_featured" json:"is_featured"`
	IsActive    bool     `bun:"is_active" json:"is_active"`
}

func (a *Advertise) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Title, validation.Required, validation.Length(1, 120)),
		validation.Field(&a.Description, validation.Length(0, 500)),
		validation.Field(&a.Price, validation.Min(0.0)),
	)
}

func (a *Advertise) SearchColumns() []string {
	return []string{"title", "description", "price", "is_featured", "is_active", "created_at"}
}

// AdvertisePatch carries the fields a partial update may change.
type AdvertisePatch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsFeatured  *bool    `json:"is_featured,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

func (p AdvertisePatch) Apply(a *Advertise) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = p.Description
	}
	if p.Price != nil {
		a.Price = p.Price
	}
	if p.IsFeatured != nil {
		a.IsFeatured = *p.IsFeatured
	}
	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
}
