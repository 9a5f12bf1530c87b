package graintile

import (
	"context"
	"fmt"
	"sync"
	"time"

	cd "github.com/unkn0wn-root/graintile/codec"
	"github.com/unkn0wn-root/graintile/internal/wire"
	st "github.com/unkn0wn-root/graintile/store"
	"github.com/unkn0wn-root/graintile/synth"
	"github.com/unkn0wn-root/graintile/tile"
)

type cache struct {
	ns      string
	store   st.Store
	codec   cd.Codec
	log     Logger
	hooks   Hooks
	seed    int64
	ttl     time.Duration
	presets map[string]string
	enabled bool

	fallback tile.Pattern

	// mu serializes the miss path: double-checked around synthesis so the
	// synthesizer runs at most once per key against the local store.
	mu sync.Mutex

	stats counters
}

func newCache(opts Options) (*cache, error) {
	c := &cache{
		ns:      coalesce(opts.Namespace, defaultNamespace),
		seed:    coalesce(opts.Seed, synth.DefaultSeed),
		ttl:     opts.TTL,
		enabled: !opts.Disabled,
	}

	// defaults
	if opts.Store != nil {
		c.store = opts.Store
	} else {
		c.store = st.NewLocal()
	}
	if opts.Codec != nil {
		c.codec = opts.Codec
	} else {
		c.codec = cd.Msgpack{}
	}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	c.presets = builtinPresets()
	for name, spec := range opts.Presets {
		c.presets[name] = spec
	}

	// warm the fallback so rejected requests are always servable
	def, err := c.get(context.Background(), tile.DefaultParams())
	if err != nil {
		return nil, fmt.Errorf("graintile: warming default pattern: %w", err)
	}
	c.fallback = def

	return c, nil
}

func (c *cache) Enabled() bool { return c.enabled }

func (c *cache) Close(ctx context.Context) error {
	if c.store != nil {
		return c.store.Close(ctx)
	}
	return nil
}

func (c *cache) Default() tile.Pattern { return c.fallback }

func (c *cache) Pattern(ctx context.Context, mean, stdDev, opacity float64) (tile.Pattern, error) {
	p := tile.Params{Mean: mean, StdDev: stdDev, Opacity: opacity}
	if err := p.Validate(); err != nil {
		in := fmt.Sprintf("%v,%v,%v", mean, stdDev, opacity)
		c.stats.rejected.Add(1)
		c.hooks.ValidationRejected(in, err)
		return tile.Pattern{}, err
	}
	return c.get(ctx, p)
}

func (c *cache) PatternSpec(ctx context.Context, spec string) tile.Pattern {
	p, err := tile.ParseParams(spec)
	if err != nil {
		c.stats.rejected.Add(1)
		c.hooks.ValidationRejected(spec, err)
		return c.serveFallback(spec, err)
	}
	pat, err := c.get(ctx, p)
	if err != nil {
		return c.serveFallback(spec, err)
	}
	return pat
}

func (c *cache) Preset(ctx context.Context, name string) tile.Pattern {
	spec, ok := c.presets[name]
	if !ok {
		return c.serveFallback(name, fmt.Errorf("unknown preset %q", name))
	}
	return c.PatternSpec(ctx, spec)
}

func (c *cache) Stats() Stats { return c.stats.snapshot() }

// serveFallback logs the offending input and substitutes the default pattern
// so the rendering pipeline always receives a valid image.
func (c *cache) serveFallback(input string, cause error) tile.Pattern {
	c.stats.fallbacks.Add(1)
	c.hooks.FallbackServed(input)
	c.log.Warn("invalid pattern request; serving default", Fields{"input": input, "err": cause})
	return c.fallback
}

// get is the memoizing read path: fast-path lookup, then a double-checked
// miss path that synthesizes with the ORIGINAL unrounded parameters and
// stores under the rounded key.
func (c *cache) get(ctx context.Context, p tile.Params) (tile.Pattern, error) {
	if !c.enabled {
		return c.synthesize(p)
	}

	key := p.Key()
	sk := c.storageKey(key)

	if pat, ok := c.load(ctx, sk, key); ok {
		c.stats.hits.Add(1)
		return pat, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if pat, ok := c.load(ctx, sk, key); ok {
		c.stats.hits.Add(1)
		return pat, nil
	}
	c.stats.misses.Add(1)

	pat, err := c.synthesize(p)
	if err != nil {
		return tile.Pattern{}, err
	}

	raw, err := c.codec.Encode(pat)
	if err != nil {
		// pattern is still valid; serve it unstored
		c.log.Warn("record encode failed; pattern not cached", Fields{"key": key, "err": err})
		return pat, nil
	}
	ok, err := c.store.Set(ctx, sk, wire.Encode(key, raw), c.ttl)
	if err != nil {
		c.log.Warn("store set error; pattern not cached", Fields{"key": key, "err": err})
		return pat, nil
	}
	if !ok {
		c.hooks.StoreSetRejected(sk)
		c.log.Debug("store rejected set (pressure)", Fields{"key": key})
		return pat, nil
	}
	c.stats.entries.Add(1)
	return pat, nil
}

// load fetches and unframes one entry. Corrupt bytes, entries bound to a
// different key, and undecodable records are deleted (self-heal) and treated
// as a miss.
func (c *cache) load(ctx context.Context, storageKey, key string) (tile.Pattern, bool) {
	raw, ok, err := c.store.Get(ctx, storageKey)
	if err != nil {
		c.log.Warn("store get error", Fields{"key": key, "err": err})
		return tile.Pattern{}, false
	}
	if !ok {
		return tile.Pattern{}, false
	}

	boundKey, payload, err := wire.Decode(raw)
	if err != nil {
		c.selfHeal(ctx, storageKey, "corrupt")
		return tile.Pattern{}, false
	}
	if boundKey != key {
		c.selfHeal(ctx, storageKey, "key_mismatch")
		return tile.Pattern{}, false
	}
	pat, err := c.codec.Decode(payload)
	if err != nil {
		c.selfHeal(ctx, storageKey, "record_decode")
		return tile.Pattern{}, false
	}
	return pat, true
}

func (c *cache) selfHeal(ctx context.Context, storageKey, reason string) {
	_ = c.store.Del(ctx, storageKey)
	c.stats.selfHeals.Add(1)
	c.hooks.SelfHeal(storageKey, reason)
	c.log.Debug("self-healed cache entry", Fields{"storageKey": storageKey, "reason": reason})
}

func (c *cache) synthesize(p tile.Params) (tile.Pattern, error) {
	key := p.Key()
	pat, err := synth.Synthesize(p, synth.Seed(c.seed, key))
	if err != nil {
		return tile.Pattern{}, err
	}
	c.stats.syntheses.Add(1)
	c.hooks.Synthesized(key, len(pat.PNG))
	return pat, nil
}

func (c *cache) storageKey(key string) string {
	// isolate by namespace
	return "tile:" + c.ns + ":" + key
}
