package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Temutjin2k/lapla/pkg/logger"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
	"github.com/Temutjin2k/lapla/pkg/metrics"
)

var ErrNotCached = errors.New("key not cached")

// Store is one cache tier holding encoded payloads.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

type tier struct {
	name  string
	store Store
}

// Tiered looks keys up in each tier in order and backfills the faster tiers on a hit.
// Failures of a tier are logged and treated as misses.
type Tiered struct {
	tiers []tier
	ttl   time.Duration
	l     logger.Logger
}

func NewTiered(ttl time.Duration, l logger.Logger) *Tiered {
	return &Tiered{ttl: ttl, l: l}
}

// With appends a tier. Tiers are consulted in the order they were added.
func (t *Tiered) With(name string, s Store) *Tiered {
	if s != nil {
		t.tiers = append(t.tiers, tier{name: name, store: s})
	}
	return t
}

func (t *Tiered) Get(ctx context.Context, key string) ([]byte, error) {
	for i, tr := range t.tiers {
		payload, err := tr.store.Get(ctx, key)
		if err == nil {
			metrics.RecordCacheLookup(tr.name, true)
			for _, upper := range t.tiers[:i] {
				if err := upper.store.Set(ctx, key, payload, t.ttl); err != nil {
					t.warn(ctx, upper.name, "backfill", err)
				}
			}
			return payload, nil
		}
		metrics.RecordCacheLookup(tr.name, false)
		if !errors.Is(err, ErrNotCached) {
			t.warn(ctx, tr.name, "get", err)
		}
	}
	return nil, ErrNotCached
}

// Set writes payload to every tier. A non-positive ttl means the default TTL.
func (t *Tiered) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = t.ttl
	}
	for _, tr := range t.tiers {
		if err := tr.store.Set(ctx, key, payload, ttl); err != nil {
			t.warn(ctx, tr.name, "set", err)
		}
	}
	return nil
}

func (t *Tiered) warn(ctx context.Context, tierName, op string, err error) {
	if t.l == nil {
		return
	}
	ctx = wrap.WithAction(ctx, "cache_"+op)
	t.l.Warn(ctx, "cache tier failed", "tier", tierName, "error", err.Error())
}

// Memoize returns the cached value for key or computes, stores and returns it.
// Errors from fn are returned as is and never cached.
func Memoize[T any](ctx context.Context, s Store, key string, ttl time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	if s == nil {
		return fn(ctx)
	}

	if payload, err := s.Get(ctx, key); err == nil {
		var v T
		if err := json.Unmarshal(payload, &v); err == nil {
			return v, nil
		}
	}

	v, err := fn(ctx)
	if err != nil {
		return v, err
	}

	payload, err := json.Marshal(v)
	if err != nil {
		// the value is still good, it just cannot be cached
		if t, ok := s.(*Tiered); ok {
			t.warn(ctx, "memoize", "encode", fmt.Errorf("encode cached value: %w", err))
		}
		return v, nil
	}
	_ = s.Set(ctx, key, payload, ttl)

	return v, nil
}
