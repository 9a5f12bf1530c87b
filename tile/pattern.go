package tile

import (
	"encoding/base64"
)

// Pattern is one synthesized tile: the parameters it was generated from and
// the lossless PNG encoding of its pixels. Patterns are immutable once built;
// they are shared by value to every caller that retrieves them, so holders
// MUST NOT mutate PNG in place.
type Pattern struct {
	Params Params
	PNG    []byte
}

// DataURI returns the pattern as an embeddable base64 data URI.
func (p Pattern) DataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(p.PNG)
}

// CSS returns the pattern as a ready-to-use CSS background-image value.
func (p Pattern) CSS() string {
	return "url('" + p.DataURI() + "')"
}

// Key returns the quantized cache key of the generating parameters.
func (p Pattern) Key() string { return p.Params.Key() }
