// Package ristretto adapts dgraph-io/ristretto as a cost-bounded pattern
// store. Cost per entry is the encoded byte length, so MaxCost is effectively
// a memory budget for cached patterns.
package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/graintile/store"
)

type Store struct {
	c *rc.Cache
}

var _ store.Store = (*Store)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64 // bytes of encoded patterns to retain
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Store, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto store: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		s.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	if ttl > 0 {
		return s.c.SetWithTTL(key, value, int64(len(value)), ttl), nil
	}
	return s.c.Set(key, value, int64(len(value))), nil
}

func (s *Store) Del(_ context.Context, key string) error {
	s.c.Del(key)
	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.c.Wait()
	s.c.Close()
	return nil
}

// Metrics exposes ristretto's metrics when enabled (not part of store.Store).
func (s *Store) Metrics() *rc.Metrics { return s.c.Metrics }
