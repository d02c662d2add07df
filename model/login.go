package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/uptrace/bun"
)

// Login is a credential record. PasswordHash is stored opaque; hashing is the
// caller's concern.
type Login struct {
	bun.BaseModel `bun:"table:login,alias:l"`
	Record

	Username       string     `bun:"username,notnull" json:"username"`
	Email          string     `bun:"email,notnull" json:"email"`
	PasswordHash   string     `bun:"password_hash,notnull" json:"-"`
	IsActive       bool       `bun:"is_active,notnull" json:"is_active"`
	IsLocked       bool       `bun:"is_locked,notnull" json:"is_locked"`
	FailedAttempts *int       `bun:"failed_attempts" json:"failed_attempts,omitempty"`
	LastLoginAt    *time.Time `bun:"last_login_at" json:"last_login_at,omitempty"`
}

func (l *Login) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Username, validation.Required, validation.Length(1, 50)),
		validation.Field(&l.Email, validation.Required, is.Email, validation.Length(1, 255)),
		validation.Field(&l.PasswordHash, validation.Required, validation.Length(1, 255)),
		validation.Field(&l.FailedAttempts, validation.Min(0)),
	)
}

func (l *Login) SearchColumns() []string {
	return []string{"username", "email", "is_active", "is_locked", "failed_attempts", "last_login_at"}
}

type LoginPatch struct {
	Username       *string    `json:"username,omitempty"`
	Email          *string    `json:"email,omitempty"`
	PasswordHash   *string    `json:"password_hash,omitempty"`
	IsActive       *bool      `json:"is_active,omitempty"`
	IsLocked       *bool      `json:"is_locked,omitempty"`
	FailedAttempts *int       `json:"failed_attempts,omitempty"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
}

func (p LoginPatch) Apply(l *Login) {
	if p.Username != nil {
		l.Username = *p.Username
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.PasswordHash != nil {
		l.PasswordHash = *p.PasswordHash
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
	if p.IsLocked != nil {
		l.IsLocked = *p.IsLocked
	}
	if p.FailedAttempts != nil {
		l.FailedAttempts = p.FailedAttempts
	}
	if p.LastLoginAt != nil {
		l.LastLoginAt = p.LastLoginAt
	}
}

// LoginSucceeded builds the patch recorded after a successful authentication:
// stamp the login time and clear the failure counter.
func LoginSucceeded(at time.Time) LoginPatch {
	zero := 0
	return LoginPatch{LastLoginAt: &at, FailedAttempts: &zero}
}

// LoginFailed builds the patch recorded after a failed authentication
// attempt, locking the account once the threshold is reached.
func LoginFailed(current, maxAttempts int) LoginPatch {
	next := current + 1
	p := LoginPatch{FailedAttempts: &next}
	if next >= maxAttempts {
		locked := true
		p.IsLocked = &locked
	}
	return p
}
