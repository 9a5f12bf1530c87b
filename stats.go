package graintile

import "sync/atomic"

// Stats is a point-in-time snapshot of the cache's counters.
//
// Syntheses counts synthesizer runs; against the default Local store it
// equals Misses (+1 for the default-pattern warmup) for the life of the
// process, which is the memoization guarantee made observable.
type Stats struct {
	Hits      uint64 // served from the store
	Misses    uint64 // memoizing path ran the synthesizer
	Syntheses uint64 // total synthesizer runs (includes warmup and disabled mode)
	SelfHeals uint64 // corrupt/foreign entries deleted on read
	Rejected  uint64 // requests refused at the validation boundary
	Fallbacks uint64 // default pattern substituted
	Entries   uint64 // successful stores
}

type counters struct {
	hits      atomic.Uint64
	misses    atomic.Uint64
	syntheses atomic.Uint64
	selfHeals atomic.Uint64
	rejected  atomic.Uint64
	fallbacks atomic.Uint64
	entries   atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Syntheses: c.syntheses.Load(),
		SelfHeals: c.selfHeals.Load(),
		Rejected:  c.rejected.Load(),
		Fallbacks: c.fallbacks.Load(),
		Entries:   c.entries.Load(),
	}
}
