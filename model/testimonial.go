package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/uptrace/bun"
)

// Testimonial is a customer quote pending approval before publication.
type Testimonial struct {
	bun.BaseModel `bun:"table:testimonials,alias:t"`
	Record

	AuthorName  string  `bun:"author_name,notnull" json:"author_name"`
	AuthorTitle *string `bun:"author_title" json:"author_title,omitempty"`
	Content     string  `bun:"content,notnull" json:"content"`
	Rating      *int    `bun:"rating" json:"rating,omitempty"`
	IsFeatured  bool    `bun:"is_featured" json:"is_featured"`
	IsApproved  bool    `bun:"is_approved" json:"is_approved"`
}

func (t *Testimonial) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.AuthorName, validation.Required, validation.Length(1, 100)),
		validation.Field(&t.AuthorTitle, validation.Length(0, 100)),
		validation.Field(&t.Content, validation.Required),
		validation.Field(&t.Rating, validation.Min(1), validation.Max(5)),
	)
}

func (t *Testimonial) SearchColumns() []string {
	return []string{"author_name", "content", "rating", "is_featured", "is_approved", "created_at"}
}

type TestimonialPatch struct {
	AuthorName  *string `json:"author_name,omitempty"`
	AuthorTitle *string `json:"author_title,omitempty"`
	Content     *string `json:"content,omitempty"`
	Rating      *int    `json:"rating,omitempty"`
	IsFeatured  *bool   `json:"is_featured,omitempty"`
	IsApproved  *bool   `json:"is_approved,omitempty"`
}

func (p TestimonialPatch) Apply(t *Testimonial) {
	if p.AuthorName != nil {
		t.AuthorName = *p.AuthorName
	}
	if p.AuthorTitle != nil {
		t.AuthorTitle = p.AuthorTitle
	}
	if p.Content != nil {
		t.Content = *p.Content
	}
	if p.Rating != nil {
		t.Rating = p.Rating
	}
	if p.IsFeatured != nil {
		t.IsFeatured = *p.IsFeatured
	}
	if p.IsApproved != nil {
		t.IsApproved = *p.IsApproved
	}
}
