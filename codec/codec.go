// Package codec (de)serializes cached pattern records. The record carries the
// generating parameters alongside the PNG bytes, so an entry read back from a
// shared store is self-describing.
package codec

import "github.com/unkn0wn-root/graintile/tile"

// Codec encodes/decodes a tile.Pattern to []byte for storage.
// Decode(Encode(p)) must reproduce p exactly, PNG bytes included.
type Codec interface {
	Encode(tile.Pattern) ([]byte, error)
	Decode([]byte) (tile.Pattern, error)
}

// record is the serialized shape shared by the struct-tag codecs.
type record struct {
	Mean    float64 `json:"mean" msgpack:"m" cbor:"1,keyasint"`
	StdDev  float64 `json:"stdDev" msgpack:"s" cbor:"2,keyasint"`
	Opacity float64 `json:"opacity" msgpack:"o" cbor:"3,keyasint"`
	PNG     []byte  `json:"png" msgpack:"p" cbor:"4,keyasint"`
}

func toRecord(p tile.Pattern) record {
	return record{Mean: p.Params.Mean, StdDev: p.Params.StdDev, Opacity: p.Params.Opacity, PNG: p.PNG}
}

func (r record) pattern() tile.Pattern {
	return tile.Pattern{
		Params: tile.Params{Mean: r.Mean, StdDev: r.StdDev, Opacity: r.Opacity},
		PNG:    r.PNG,
	}
}
