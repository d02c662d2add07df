package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/uptrace/bun"
)

// Banner is a scheduled promotional image. StartDate/EndDate bound the window
// it should be shown in; DisplayOrder drives positioning among active banners.
type Banner struct {
	bun.BaseModel `bun:"table:banner,alias:b"`
	Record

	Name         string     `bun:"name,notnull" json:"name"`
	ImageURL     string     `bun:"image_url,notnull" json:"image_url"`
	TargetURL    *string    `bun:"target_url" json:"target_url,omitempty"`
	IsActive     bool       `bun:"is_active" json:"is_active"`
	StartDate    *time.Time `bun:"start_date" json:"start_date,omitempty"`
	EndDate      *time.Time `bun:"end_date" json:"end_date,omitempty"`
	DisplayOrder *int       `bun:"display_order" json:"display_order,omitempty"`
}

func (b *Banner) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&b.ImageURL, validation.Required, validation.Length(1, 255)),
		validation.Field(&b.TargetURL, validation.Length(0, 255)),
	)
}

func (b *Banner) SearchColumns() []string {
	return []string{"name", "is_active", "start_date", "end_date", "display_order"}
}

type BannerPatch struct {
	Name         *string    `json:"name,omitempty"`
	ImageURL     *string    `json:"image_url,omitempty"`
	TargetURL    *string    `json:"target_url,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	DisplayOrder *int       `json:"display_order,omitempty"`
}

func (p BannerPatch) Apply(b *Banner) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.ImageURL != nil {
		b.ImageURL = *p.ImageURL
	}
	if p.TargetURL != nil {
		b.TargetURL = p.TargetURL
	}
	if p.IsActive != nil {
		b.IsActive = *p.IsActive
	}
	if p.StartDate != nil {
		b.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		b.EndDate = p.EndDate
	}
	if p.DisplayOrder != nil {
		b.DisplayOrder = p.DisplayOrder
	}
}
