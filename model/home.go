package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/uptrace/bun"
)

// Home is a property listing.
type Home struct {
	bun.BaseModel `bun:"table:home,alias:h"`
	Record

	Name               string  `bun:"name,notnull" json:"name"`
	Address            *string `bun:"address" json:"address,omitempty"`
	Price              float64 `bun:"price,notnull" json:"price"`
	Bedrooms           *int    `bun:"bedrooms" json:"bedrooms,omitempty"`
	Bathrooms          *int    `bun:"bathrooms" json:"bathrooms,omitempty"`
	SquareFootage      *int    `bun:"square_footage" json:"square_footage,omitempty"`
	IsActive           bool    `bun:"is_active" json:"is_active"`
	IsForSale          bool    `bun:"is_for_sale" json:"is_for_sale"`
	BuiltYear          *int    `bun:"built_year" json:"built_year,omitempty"`
	LastRenovationYear *int    `bun:"last_renovation_year" json:"last_renovation_year,omitempty"`
}

func (h *Home) Validate() error {
	return validation.ValidateStruct(h,
		validation.Field(&h.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&h.Address, validation.Length(0, 255)),
		validation.Field(&h.Price, validation.Required, validation.Min(0.0)),
		validation.Field(&h.Bedrooms, validation.Min(0)),
		validation.Field(&h.Bathrooms, validation.Min(0)),
	)
}

func (h *Home) SearchColumns() []string {
	return []string{"name", "address", "price", "bedrooms", "bathrooms", "is_active", "is_for_sale"}
}

type HomePatch struct {
	Name               *string  `json:"name,omitempty"`
	Address            *string  `json:"address,omitempty"`
	Price              *float64 `json:"price,omitempty"`
	Bedrooms           *int     `json:"bedrooms,omitempty"`
	Bathrooms          *int     `json:"bathrooms,omitempty"`
	SquareFootage      *int     `json:"square_footage,omitempty"`
	IsActive           *bool    `json:"is_active,omitempty"`
	IsForSale          *bool    `json:"is_for_sale,omitempty"`
	BuiltYear          *int     `json:"built_year,omitempty"`
	LastRenovationYear *int     `json:"last_renovation_year,omitempty"`
}

func (p HomePatch) Apply(h *Home) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Address != nil {
		h.Address = p.Address
	}
	if p.Price != nil {
		h.Price = *p.Price
	}
	if p.Bedrooms != nil {
		h.Bedrooms = p.Bedrooms
	}
	if p.Bathrooms != nil {
		h.Bathrooms = p.Bathrooms
	}
	if p.SquareFootage != nil {
		h.SquareFootage = p.SquareFootage
	}
	if p.IsActive != nil {
		h.IsActive = *p.IsActive
	}
	if p.IsForSale != nil {
		h.IsForSale = *p.IsForSale
	}
	if p.BuiltYear != nil {
		h.BuiltYear = p.BuiltYear
	}
	if p.LastRenovationYear != nil {
		h.LastRenovationYear = p.LastRenovationYear
	}
}
