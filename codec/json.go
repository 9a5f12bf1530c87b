package codec

import (
	"encoding/json"

	"github.com/unkn0wn-root/graintile/tile"
)

// JSON serializes pattern records as JSON. PNG bytes are base64-encoded by
// encoding/json, so records are ~33% larger than Msgpack; useful when the
// store is inspected by humans or non-Go consumers.
type JSON struct{}

var _ Codec = JSON{}

func (JSON) Encode(p tile.Pattern) ([]byte, error) {
	return json.Marshal(toRecord(p))
}

func (JSON) Decode(b []byte) (tile.Pattern, error) {
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return tile.Pattern{}, err
	}
	return r.pattern(), nil
}
