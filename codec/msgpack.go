package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/unkn0wn-root/graintile/tile"
)

// Msgpack serializes pattern records with vmihailenco/msgpack/v5. Compact
// (~4 bytes of overhead per field, PNG carried as a binary blob) and fast;
// the default codec. The zero value is ready to use.
type Msgpack struct{}

var _ Codec = Msgpack{}

func (Msgpack) Encode(p tile.Pattern) ([]byte, error) {
	return msgpack.Marshal(toRecord(p))
}

func (Msgpack) Decode(b []byte) (tile.Pattern, error) {
	var r record
	if err := msgpack.Unmarshal(b, &r); err != nil {
		return tile.Pattern{}, err
	}
	return r.pattern(), nil
}
