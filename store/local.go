package store

import (
	"context"
	"sync"
	"time"
)

type localEntry struct {
	v   []byte
	exp time.Time // zero => no expiry
}

// Local is the default in-process store: a mutex-guarded map that grows
// monotonically and never evicts. Entries are copied on write and on read so
// callers cannot alias the store's internal bytes.
type Local struct {
	mu sync.RWMutex
	m  map[string]localEntry
}

var _ Store = (*Local)(nil)

func NewLocal() *Local {
	return &Local{m: make(map[string]localEntry)}
}

func (s *Local) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		s.mu.Lock()
		delete(s.m, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	out := make([]byte, len(e.v))
	copy(out, e.v)
	return out, true, nil
}

func (s *Local) Set(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.mu.Lock()
	s.m[key] = localEntry{v: v, exp: exp}
	s.mu.Unlock()
	return true, nil
}

func (s *Local) Del(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

// Len reports the number of stored entries. Not part of the Store interface;
// bounded stores cannot count exactly.
func (s *Local) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

func (s *Local) Close(_ context.Context) error { return nil }
