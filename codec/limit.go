package codec

import (
	"fmt"

	"github.com/unkn0wn-root/graintile/tile"
)

// Limit wraps another codec to enforce a maximum allowed payload size at
// Decode time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
//
// Typical use: a shared Redis store where foreign writers could plant
// oversized entries under the cache's keyspace. A grain tile record tops out
// around a few hundred KB, so a 1MB limit is generous.
type Limit struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec
	// MaxDecode is the maximum permitted incoming payload length in bytes.
	MaxDecode int
}

var _ Codec = Limit{}

func (c Limit) Encode(p tile.Pattern) ([]byte, error) { return c.Inner.Encode(p) }

func (c Limit) Decode(b []byte) (tile.Pattern, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		return tile.Pattern{}, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
