package di_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"corecms/cache"
	"corecms/model"
	"corecms/pkg/di"
	"corecms/storage"
)

func newContainer(t *testing.T) *di.Container {
	t.Helper()

	c, err := di.New(di.Config{
		Storage: storage.Config{
			Driver:       "sqlite3",
			DSN:          ":memory:",
			MaxOpenConns: 1,
		},
		Cache:  cache.DefaultConfig(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("failed to build container: %v", err)
	}
	t.Cleanup(func() { c.Close() })

	if err := storage.CreateSchema(context.Background(), c.DB()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return c
}

func TestBannerLifecycle(t *testing.T) {
	c := newContainer(t)
	banners := c.Banners()
	ctx := context.Background()

	created, err := banners.Create(ctx, &model.Banner{
		Name:     "Spring Sale",
		ImageURL: "/img/spring.png",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Repeated reads come back stable.
	for i := 0; i < 2; i++ {
		got, found, err := banners.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found || got.Name != "Spring Sale" {
			t.Fatalf("unexpected read: found=%v row=%+v", found, got)
		}
	}

	// Deactivate through a partial update; only that field changes.
	inactive := false
	patched, err := banners.PartialUpdate(ctx, created.ID, model.BannerPatch{IsActive: &inactive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patched.IsActive || patched.Name != "Spring Sale" {
		t.Fatalf("unexpected merge result: %+v", patched)
	}
	if patched.Version != created.Version+1 {
		t.Errorf("expected version bump, got %d", patched.Version)
	}

	// A full update still holding the creation-time snapshot must lose.
	stale := &model.Banner{Name: "Stale Writer", ImageURL: "/img/stale.png"}
	stale.Version = created.Version
	if _, err := banners.Update(ctx, created.ID, stale); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	got, _, err := banners.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Spring Sale" || got.IsActive {
		t.Errorf("losing write leaked through: %+v", got)
	}
}

func TestBannerSearch(t *testing.T) {
	c := newContainer(t)
	banners := c.Banners()
	ctx := context.Background()

	for _, name := range []string{"Spring Sale", "Mid-season sale", "New arrivals"} {
		if _, err := banners.Create(ctx, &model.Banner{Name: name, ImageURL: "/img/x.png"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	items, total, err := banners.Search(ctx,
		[]storage.Predicate{storage.Contains("name", "sale")},
		storage.PageRequest{Limit: 10, Sort: "name"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("expected 2 matches, got total=%d len=%d", total, len(items))
	}
}

func TestTestimonialActiveView(t *testing.T) {
	c := newContainer(t)
	testimonials := c.Testimonials()
	ctx := context.Background()

	add := func(name string, rating int, approved bool) {
		t.Helper()
		r := rating
		_, err := testimonials.Create(ctx, &model.Testimonial{
			AuthorName: name,
			Content:    "Great work.",
			Rating:     &r,
			IsApproved: approved,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	add("Low", 2, true)
	add("High", 5, true)
	add("Hidden", 5, false)

	items, err := testimonials.Active(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected only approved rows, got %+v", items)
	}
	// Default ordering is highest rating first.
	if items[0].AuthorName != "High" || items[1].AuthorName != "Low" {
		t.Errorf("unexpected order: %q, %q", items[0].AuthorName, items[1].AuthorName)
	}

	// Approving the hidden one invalidates the cached view.
	approved := true
	hiddenID := ""
	all, _, err := testimonials.Search(ctx,
		[]storage.Predicate{storage.Eq("is_approved", false)},
		storage.PageRequest{Limit: 10},
	)
	if err != nil || len(all) != 1 {
		t.Fatalf("failed to find the unapproved row: %v (%d)", err, len(all))
	}
	hiddenID = all[0].ID
	if _, err := testimonials.PartialUpdate(ctx, hiddenID, model.TestimonialPatch{IsApproved: &approved}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err = testimonials.Active(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("expected the fresh approval visible, got %d rows", len(items))
	}
}

func TestLoginLockout(t *testing.T) {
	c := newContainer(t)
	logins := c.Logins()
	ctx := context.Background()

	created, err := logins.Create(ctx, &model.Login{
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const maxAttempts = 3
	id := created.ID
	for i := 0; i < maxAttempts; i++ {
		row, _, err := logins.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		attempts := 0
		if row.FailedAttempts != nil {
			attempts = *row.FailedAttempts
		}
		if _, err := logins.PartialUpdate(ctx, id, model.LoginFailed(attempts, maxAttempts)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	row, _, err := logins.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !row.IsLocked {
		t.Error("expected the account locked after repeated failures")
	}
	if row.FailedAttempts == nil || *row.FailedAttempts != maxAttempts {
		t.Errorf("unexpected attempt count: %v", row.FailedAttempts)
	}

	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	row, err = logins.PartialUpdate(ctx, id, model.LoginSucceeded(at))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.FailedAttempts == nil || *row.FailedAttempts != 0 {
		t.Errorf("expected the counter reset, got %v", row.FailedAttempts)
	}
	if row.LastLoginAt == nil {
		t.Error("expected last login stamped")
	}
}

func TestServiceNamespacesAreDisjoint(t *testing.T) {
	c := newContainer(t)
	if a, b := c.Services().Namespace(), c.ServicesLegacy().Namespace(); a == b {
		t.Errorf("the two service stacks must not share a namespace: %q", a)
	}
}
