package graintile

import (
	"context"
	"time"

	cd "github.com/unkn0wn-root/graintile/codec"
	st "github.com/unkn0wn-root/graintile/store"
	"github.com/unkn0wn-root/graintile/tile"
)

// Cache is the memoizing front of the pattern generator. For a fixed key the
// synthesizer runs at most once for the life of the backing store; every
// caller whose parameters round to that key observes the identical bytes.
type Cache interface {
	// Pattern returns the tile for the given parameters, synthesizing on
	// first request. Opacity outside [0,100] is rejected with
	// *tile.OpacityRangeError before any synthesis work.
	Pattern(ctx context.Context, mean, stdDev, opacity float64) (tile.Pattern, error)

	// PatternSpec parses a "mean,stdDev,opacity" spec and returns its tile.
	// It never fails: malformed or out-of-range input is logged and the
	// precomputed default pattern is served instead.
	PatternSpec(ctx context.Context, spec string) tile.Pattern

	// Preset returns the tile for a named preset from the preset table.
	// Unknown names fall back to the default pattern, like PatternSpec.
	Preset(ctx context.Context, name string) tile.Pattern

	// Default returns the precomputed default pattern (mean=128, stdDev=50,
	// opacity=5), the fallback for every rejected request.
	Default() tile.Pattern

	// Stats returns a snapshot of the cache's counters.
	Stats() Stats

	Enabled() bool
	Close(context.Context) error
}

// Options tune the cache. All fields have defaults; the zero Options is valid.
type Options struct {
	// Namespace isolates storage keys. e.g. "app:prod". Default "grain".
	Namespace string
	// Store holds encoded patterns. Default store.NewLocal() (in-process,
	// unbounded, never evicts).
	Store st.Store
	// Codec serializes pattern records. Default codec.Msgpack{}.
	Codec cd.Codec
	// Logger for warnings on the fallback path. Default NopLogger.
	Logger Logger
	// Hooks for high-signal events. Default NopHooks.
	Hooks Hooks
	// Seed is the base RNG seed; per-key seeds derive from it. 0 selects
	// synth.DefaultSeed. Caches sharing a seed produce identical tiles.
	Seed int64
	// TTL bounds entry lifetime in stores that support per-entry expiry.
	// 0 means patterns never expire (they are immutable; expiry only
	// matters as a memory bound).
	TTL time.Duration
	// Presets overlays the builtin preset table (subtle/medium/strong).
	Presets map[string]string
	// Disabled bypasses memoization: every request synthesizes. Meant for
	// tests and benchmarks, not production.
	Disabled bool
}

// New builds a Cache and eagerly synthesizes the default pattern so the
// fallback path can never fail at request time.
func New(opts Options) (Cache, error) {
	return newCache(opts)
}
