// Package wire frames cached pattern entries for storage. Each entry embeds
// the quantized key it was stored under; readers validate the binding and
// treat any mismatch as corruption, so foreign or shuffled bytes under the
// cache's keyspace are detected and self-healed rather than served.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("graintile: corrupt entry")
	magic4     = [...]byte{'G', 'R', 'N', 'T'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Encode frames a codec payload under its quantized key:
//
//	magic(4) | ver(1) | klen(u16 be) | key(klen) | vlen(u32 be) | payload(vlen)
func Encode(key string, payload []byte) []byte {
	if l := len(key); l == 0 || l > 0xFFFF {
		panic("graintile: invalid key length")
	}

	var buf bytes.Buffer
	buf.Grow(4 + 1 + 2 + len(key) + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u2 [2]byte
	var u4 [4]byte

	binary.BigEndian.PutUint16(u2[:], uint16(len(key)))
	buf.Write(u2[:])
	buf.WriteString(key)

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Decode unframes an entry, returning the embedded key and the payload.
// The payload aliases b; callers must not retain it past b's lifetime.
func Decode(b []byte) (key string, payload []byte, err error) {
	const hdr = 4 + 1 + 2
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return "", nil, ErrCorrupt
	}

	off := 5

	klen := int(binary.BigEndian.Uint16(b[off : off+2]))
	off += 2
	if klen <= 0 || klen > len(b)-off {
		return "", nil, ErrCorrupt
	}
	key = string(b[off : off+klen])
	off += klen

	if off+4 > len(b) {
		return "", nil, ErrCorrupt
	}
	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen > len(b)-off { // overflow-safe bound check
		return "", nil, ErrCorrupt
	}

	return key, b[off : off+vlen], nil
}
