package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/uptrace/bun"
)

// Register is a pending account registration.
type Register struct {
	bun.BaseModel `bun:"table:register,alias:r"`
	Record

	Username     string `bun:"username,notnull" json:"username"`
	Email        string `bun:"email,notnull" json:"email"`
	PasswordHash string `bun:"password_hash,notnull" json:"-"`
	IsVerified   bool   `bun:"is_verified" json:"is_verified"`
	IsActive     bool   `bun:"is_active" json:"is_active"`
}

func (r *Register) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(1, 100)),
		validation.Field(&r.PasswordHash, validation.Required, validation.Length(1, 255)),
	)
}

func (r *Register) SearchColumns() []string {
	return []string{"username", "email", "is_active", "is_verified", "created_at"}
}

type RegisterPatch struct {
	Username     *string `json:"username,omitempty"`
	Email        *string `json:"email,omitempty"`
	PasswordHash *string `json:"password_hash,omitempty"`
	IsVerified   *bool   `json:"is_verified,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (p RegisterPatch) Apply(r *Register) {
	if p.Username != nil {
		r.Username = *p.Username
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.PasswordHash != nil {
		r.PasswordHash = *p.PasswordHash
	}
	if p.IsVerified != nil {
		r.IsVerified = *p.IsVerified
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
}
