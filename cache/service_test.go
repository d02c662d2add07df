package cache

import (
	"context"
	"errors"
	"testing"
)

// stubService is a minimal in-memory Service for exercising the generic
// wrapper.
type stubService struct {
	entries map[string]any
	fetches int
	err     error
}

func newStubService() *stubService {
	return &stubService{entries: make(map[string]any)}
}

func (s *stubService) GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error) {
	if s.err != nil {
		return nil, s.err
	}
	if v, ok := s.entries[key]; ok {
		return v, nil
	}
	s.fetches++
	v, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.entries[key] = v
	return v, nil
}

func (s *stubService) Delete(_ context.Context, key string) error {
	delete(s.entries, key)
	return nil
}

func TestGetOrFetchCachesValue(t *testing.T) {
	svc := newStubService()
	ctx := context.Background()

	fetch := func(ctx context.Context) (int, error) { return 42, nil }

	for i := 0; i < 3; i++ {
		got, err := GetOrFetch(ctx, svc, "k", fetch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 42 {
			t.Fatalf("expected 42, got %d", got)
		}
	}
	if svc.fetches != 1 {
		t.Errorf("expected 1 fetch, got %d", svc.fetches)
	}
}

func TestGetOrFetchPropagatesFetchError(t *testing.T) {
	svc := newStubService()
	boom := errors.New("source down")

	_, err := GetOrFetch(ctx(), svc, "k", func(context.Context) (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected fetch error, got %v", err)
	}
	if len(svc.entries) != 0 {
		t.Errorf("errored fetch must not be cached")
	}
}

func TestGetOrFetchPropagatesServiceError(t *testing.T) {
	svc := newStubService()
	svc.err = errors.New("cache down")

	_, err := GetOrFetch(ctx(), svc, "k", func(context.Context) (int, error) { return 1, nil })
	if !errors.Is(err, svc.err) {
		t.Errorf("expected service error, got %v", err)
	}
}

func TestGetOrFetchTypeMismatch(t *testing.T) {
	svc := newStubService()
	svc.entries["k"] = "a string"

	_, err := GetOrFetch(ctx(), svc, "k", func(context.Context) (int, error) { return 1, nil })
	if err == nil {
		t.Error("expected a type mismatch error")
	}
}

func TestGetOrFetchTypedNil(t *testing.T) {
	svc := newStubService()

	type row struct{ Name string }
	got, err := GetOrFetch(ctx(), svc, "k", func(context.Context) (*row, error) {
		return nil, nil // absence is a cacheable result
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
	if svc.fetches != 1 {
		t.Errorf("expected the nil to be cached, fetches=%d", svc.fetches)
	}

	// Second read must come from the cache.
	if _, err := GetOrFetch(ctx(), svc, "k", func(context.Context) (*row, error) {
		t.Error("fetch called on a cached key")
		return nil, nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func ctx() context.Context { return context.Background() }
