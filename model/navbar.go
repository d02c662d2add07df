package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/uptrace/bun"
)

// Navbar is a navigation menu item.
type Navbar struct {
	bun.BaseModel `bun:"table:navbar,alias:n"`
	Record

	Name         string  `bun:"name,notnull" json:"name"`
	DisplayOrder int     `bun:"display_order,notnull" json:"display_order"`
	IsActive     bool    `bun:"is_active,notnull" json:"is_active"`
	IsExternal   bool    `bun:"is_external,notnull" json:"is_external"`
	URL          *string `bun:"url" json:"url,omitempty"`
	IconClass    *string `bun:"icon_class" json:"icon_class,omitempty"`
}

func (n *Navbar) Validate() error {
	return validation.ValidateStruct(n,
		validation.Field(&n.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&n.DisplayOrder, validation.Min(0)),
		validation.Field(&n.URL, validation.Length(0, 255)),
		validation.Field(&n.IconClass, validation.Length(0, 50)),
	)
}

func (n *Navbar) SearchColumns() []string {
	return []string{"name", "display_order", "is_active", "is_external"}
}

type NavbarPatch struct {
	Name         *string `json:"name,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
	IsExternal   *bool   `json:"is_external,omitempty"`
	URL          *string `json:"url,omitempty"`
	IconClass    *string `json:"icon_class,omitempty"`
}

func (p NavbarPatch) Apply(n *Navbar) {
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.DisplayOrder != nil {
		n.DisplayOrder = *p.DisplayOrder
	}
	if p.IsActive != nil {
		n.IsActive = *p.IsActive
	}
	if p.IsExternal != nil {
		n.IsExternal = *p.IsExternal
	}
	if p.URL != nil {
		n.URL = p.URL
	}
	if p.IconClass != nil {
		n.IconClass = p.IconClass
	}
}
