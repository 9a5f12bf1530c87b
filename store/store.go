// Package store defines the byte-store abstraction backing the pattern cache.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Set for a key (no metadata,
// no re-encoding, no mutation). The keyspace "tile:<ns>:" is owned by the
// cache; foreign writes under it are treated as corruption by strict wire
// validation and deleted on read.
//
// The default Local store never evicts, matching the memoization guarantee
// that the synthesizer runs at most once per key for the life of the process.
// Bounded stores (bigcache, ristretto, redis) relax that to at-most-once per
// residency: an evicted key is synthesized again, with identical bytes.
package store

import (
	"context"
	"time"
)

// Store is a minimal byte store. Must be safe for concurrent use.
type Store interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// IO/remote errors return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value. ttl <= 0 means no expiry; stores without per-entry
	// TTLs may ignore it. Returns ok=false when the store rejected the
	// write under pressure.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
