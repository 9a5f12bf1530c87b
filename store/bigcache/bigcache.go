// Package bigcache adapts allegro/bigcache as a bounded pattern store.
// BigCache has no per-entry TTL; the global LifeWindow applies, so cached
// patterns age out and are re-synthesized (byte-identically) on next request.
package bigcache

import (
	"context"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/graintile/store"
)

type Store struct {
	c *bc.BigCache
}

var _ store.Store = (*Store)(nil)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int // encoded patterns run a few tens of KB; size accordingly
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Store, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := s.c.Get(key)
	if err == bc.ErrEntryNotFound {
		return nil, false, nil
	}
	return b, err == nil, err
}

func (s *Store) Set(_ context.Context, key string, value []byte, _ time.Duration) (bool, error) {
	return true, s.c.Set(key, value)
}

func (s *Store) Del(_ context.Context, key string) error {
	return s.c.Delete(key)
}

// Len reports the current entry count.
func (s *Store) Len() int { return s.c.Len() }

func (s *Store) Close(_ context.Context) error {
	return s.c.Close()
}
