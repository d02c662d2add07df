// Package cacheinfra adapts the sturdyc in-process cache to the cache.Service
// contract. Nothing outside this package touches sturdyc directly, so the
// backend can be swapped without moving the callers.
package cacheinfra

import (
	"context"
	"time"

	"github.com/viccon/sturdyc"
)

// Config holds the tuning parameters for the sturdyc client.
type Config struct {
	// Capacity is the maximum number of entries the cache stores. Must be
	// greater than 0.
	Capacity int

	// NumShards sets how many shards back the cache. More shards, better
	// write concurrency, more memory. Must be greater than 0.
	NumShards int

	// TTL is the default time-to-live for entries. Must be greater than 0.
	TTL time.Duration

	// EvictionPercentage is the share of entries evicted when the cache hits
	// capacity, between 1 and 100.
	EvictionPercentage int

	// EarlyRefresh enables refreshing hot entries before expiry, preventing
	// stampedes. Nil disables it.
	EarlyRefresh *EarlyRefreshConfig

	// MissingRecordStorage remembers keys whose fetch found nothing, so
	// repeated lookups of absent rows skip the database.
	MissingRecordStorage bool

	// EvictionInterval sets how often expired entries are collected. Zero
	// keeps sturdyc's default.
	EvictionInterval time.Duration
}

// EarlyRefreshConfig configures sturdyc's early refresh window.
type EarlyRefreshConfig struct {
	MinAsyncRefreshTime time.Duration
	MaxAsyncRefreshTime time.Duration
	SyncRefreshTime     time.Duration
	RetryBaseDelay      time.Duration
}

// DefaultConfig returns defaults suitable for a single-process deployment.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          256,
		TTL:                5 * time.Minute,
		EvictionPercentage: 10,
		EarlyRefresh: &EarlyRefreshConfig{
			MinAsyncRefreshTime: 10 * time.Second,
			MaxAsyncRefreshTime: 20 * time.Second,
			SyncRefreshTime:     30 * time.Second,
			RetryBaseDelay:      100 * time.Millisecond,
		},
		MissingRecordStorage: true,
	}
}

// Validate reports the first invalid configuration value.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}
	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}
	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}
	if er := c.EarlyRefresh; er != nil {
		for field, d := range map[string]time.Duration{
			"EarlyRefresh.MinAsyncRefreshTime": er.MinAsyncRefreshTime,
			"EarlyRefresh.MaxAsyncRefreshTime": er.MaxAsyncRefreshTime,
			"EarlyRefresh.SyncRefreshTime":     er.SyncRefreshTime,
			"EarlyRefresh.RetryBaseDelay":      er.RetryBaseDelay,
		} {
			if d < 0 {
				return &ConfigError{Field: field, Message: "must be non-negative"}
			}
		}
	}
	return nil
}

func (c Config) toOptions() []sturdyc.Option {
	var options []sturdyc.Option
	if c.EarlyRefresh != nil {
		options = append(options, sturdyc.WithEarlyRefreshes(
			c.EarlyRefresh.MinAsyncRefreshTime,
			c.EarlyRefresh.MaxAsyncRefreshTime,
			c.EarlyRefresh.SyncRefreshTime,
			c.EarlyRefresh.RetryBaseDelay,
		))
	}
	if c.MissingRecordStorage {
		options = append(options, sturdyc.WithMissingRecordStorage())
	}
	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}
	return options
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// SturdycService implements cache.Service over a sturdyc client.
type SturdycService struct {
	client *sturdyc.Client[any]
}

// NewSturdycService validates cfg and builds the client.
func NewSturdycService(cfg Config) (*SturdycService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.toOptions()...,
	)
	return &SturdycService{client: client}, nil
}

// GetOrFetch returns the cached value for key, or runs fetch and caches its
// result. Errors from fetch are returned as-is and nothing is cached for
// them (sturdyc retains its own miss bookkeeping when missing-record storage
// is on).
func (s *SturdycService) GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error) {
	return s.client.GetOrFetch(ctx, key, fetch)
}

// Delete removes one entry. Absent keys are a no-op.
func (s *SturdycService) Delete(_ context.Context, key string) error {
	s.client.Delete(key)
	return nil
}
