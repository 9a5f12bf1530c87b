package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/graintile/tile"
)

// CBOR serializes pattern records with fxamacker/cbor. The zero value is NOT
// ready to use; construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when you need byte-for-byte stable serialized records (e.g. hashing or
// content addressing of cached entries). Otherwise PreferredUnsortedEncOptions
// are used (sensible defaults).
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec = CBOR{}

// NewCBOR constructs a CBOR codec.
//   - Deterministic true uses CoreDetEncOptions (RFC 8949).
//   - Otherwise PreferredUnsortedEncOptions (smaller/faster defaults).
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}

	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Handy for package-level variables in tests/examples; avoid in prod paths.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR) Encode(p tile.Pattern) ([]byte, error) {
	return c.enc.Marshal(toRecord(p))
}

func (c CBOR) Decode(b []byte) (tile.Pattern, error) {
	var r record
	if err := c.dec.Unmarshal(b, &r); err != nil {
		return tile.Pattern{}, err
	}
	return r.pattern(), nil
}
