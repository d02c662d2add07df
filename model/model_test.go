package model_test

import (
	"strings"
	"testing"
	"time"

	"corecms/model"
	"corecms/pkg/testsupport"
)

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

func validBanner() *model.Banner {
	return &model.Banner{
		Name:     "Spring Sale",
		ImageURL: "https://cdn.example.com/banners/spring-sale.png",
	}
}

func TestBannerValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Banner)
		wantErr bool
	}{
		{"valid", func(b *model.Banner) {}, false},
		{"missing name", func(b *model.Banner) { b.Name = "" }, true},
		{"name too long", func(b *model.Banner) { b.Name = strings.Repeat("x", 101) }, true},
		{"missing image url", func(b *model.Banner) { b.ImageURL = "" }, true},
		{"target url too long", func(b *model.Banner) { b.TargetURL = str(strings.Repeat("x", 256)) }, true},
		{"nil target url ok", func(b *model.Banner) { b.TargetURL = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBanner()
			tt.mutate(b)

			err := b.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoginValidate(t *testing.T) {
	valid := func() *model.Login {
		return &model.Login{
			Username:     "jdoe",
			Email:        "jdoe@example.com",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*model.Login)
		wantErr bool
	}{
		{"valid", func(l *model.Login) {}, false},
		{"missing username", func(l *model.Login) { l.Username = "" }, true},
		{"bad email", func(l *model.Login) { l.Email = "not-an-email" }, true},
		{"missing hash", func(l *model.Login) { l.PasswordHash = "" }, true},
		{"negative failed attempts", func(l *model.Login) { l.FailedAttempts = num(-1) }, true},
		{"zero failed attempts ok", func(l *model.Login) { l.FailedAttempts = num(0) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid()
			tt.mutate(l)

			err := l.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTestimonialValidate(t *testing.T) {
	valid := func() *model.Testimonial {
		return &model.Testimonial{
			AuthorName: "Alex P.",
			Content:    "Great service, would recommend.",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*model.Testimonial)
		wantErr bool
	}{
		{"valid", func(m *model.Testimonial) {}, false},
		{"missing author", func(m *model.Testimonial) { m.AuthorName = "" }, true},
		{"missing content", func(m *model.Testimonial) { m.Content = "" }, true},
		{"rating too low", func(m *model.Testimonial) { m.Rating = num(0) }, true},
		{"rating too high", func(m *model.Testimonial) { m.Rating = num(6) }, true},
		{"rating in range", func(m *model.Testimonial) { m.Rating = num(5) }, false},
		{"nil rating ok", func(m *model.Testimonial) { m.Rating = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)

			err := m.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestBannerPatchAppliesOnlyPresentFields(t *testing.T) {
	b := validBanner()
	b.TargetURL = str("https://example.com/sale")
	b.IsActive = true
	b.DisplayOrder = num(2)

	inactive := false
	model.BannerPatch{IsActive: &inactive, Name: str("Summer Sale")}.Apply(b)

	if b.IsActive {
		t.Error("is_active must be overwritten")
	}
	if b.Name != "Summer Sale" {
		t.Errorf("name must be overwritten, got %q", b.Name)
	}
	if b.ImageURL != "https://cdn.example.com/banners/spring-sale.png" {
		t.Errorf("absent field must survive, got %q", b.ImageURL)
	}
	if b.TargetURL == nil || *b.TargetURL != "https://example.com/sale" {
		t.Error("absent pointer field must survive")
	}
	if b.DisplayOrder == nil || *b.DisplayOrder != 2 {
		t.Error("absent display_order must survive")
	}
}

func TestEmptyPatchIsNoop(t *testing.T) {
	b := validBanner()
	before := *b

	model.BannerPatch{}.Apply(b)

	if *b != before {
		t.Errorf("empty patch changed the entity: %+v != %+v", *b, before)
	}
}

func TestLoginSucceeded(t *testing.T) {
	at := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	l := &model.Login{Username: "jdoe", FailedAttempts: num(3)}

	model.LoginSucceeded(at).Apply(l)

	if l.LastLoginAt == nil || !l.LastLoginAt.Equal(at) {
		t.Errorf("expected last login %v, got %v", at, l.LastLoginAt)
	}
	if l.FailedAttempts == nil || *l.FailedAttempts != 0 {
		t.Errorf("expected failed attempts reset, got %v", l.FailedAttempts)
	}
	if l.IsLocked {
		t.Error("success must not lock the account")
	}
}

func TestLoginFailed(t *testing.T) {
	l := &model.Login{Username: "jdoe"}

	model.LoginFailed(0, 3).Apply(l)
	if *l.FailedAttempts != 1 || l.IsLocked {
		t.Fatalf("after 1 failure: attempts=%v locked=%v", *l.FailedAttempts, l.IsLocked)
	}

	model.LoginFailed(*l.FailedAttempts, 3).Apply(l)
	if *l.FailedAttempts != 2 || l.IsLocked {
		t.Fatalf("after 2 failures: attempts=%v locked=%v", *l.FailedAttempts, l.IsLocked)
	}

	model.LoginFailed(*l.FailedAttempts, 3).Apply(l)
	if *l.FailedAttempts != 3 {
		t.Fatalf("after 3 failures: attempts=%v", *l.FailedAttempts)
	}
	if !l.IsLocked {
		t.Error("expected the account locked at the threshold")
	}
}

func TestBannerFixtureRoundTrip(t *testing.T) {
	var b model.Banner
	testsupport.LoadFixtureJSON(t, testsupport.FixturePath("banner.json"), &b)

	if b.ID != "7f9c24e8-3b2a-4f5d-9e1c-8a6b5d4c3f2e" {
		t.Errorf("unexpected id %q", b.ID)
	}
	if b.Version != 3 {
		t.Errorf("unexpected version %d", b.Version)
	}
	if b.Name != "Spring Sale" {
		t.Errorf("unexpected name %q", b.Name)
	}
	if b.TargetURL == nil || *b.TargetURL != "https://example.com/sale" {
		t.Error("target_url not populated")
	}
	if b.StartDate != nil {
		t.Error("absent start_date must stay nil")
	}
	if err := b.Validate(); err != nil {
		t.Errorf("fixture must validate: %v", err)
	}
}
