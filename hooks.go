package graintile

// Hooks are lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; the cache calls them on
// hot paths. Wrap with hooks/async for expensive sinks.
type Hooks interface {
	// A cached entry was deleted by the cache on read.
	// reason ∈ {"corrupt", "key_mismatch", "record_decode"}
	SelfHeal(storageKey, reason string)

	// Store returned ok=false on Set (backpressure/eviction).
	StoreSetRejected(storageKey string)

	// A request was rejected at the validation boundary, before any
	// synthesis work. input is the offending spec or parameter triple.
	ValidationRejected(input string, err error)

	// The precomputed default pattern was substituted for input.
	FallbackServed(input string)

	// A miss ran the synthesizer. size is the encoded PNG length in bytes.
	Synthesized(key string, size int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)          {}
func (NopHooks) StoreSetRejected(string)          {}
func (NopHooks) ValidationRejected(string, error) {}
func (NopHooks) FallbackServed(string)            {}
func (NopHooks) Synthesized(string, int)          {}
