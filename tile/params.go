// Package tile holds the value types shared by the generator and the cache:
// distribution parameters, the encoded pattern, and the quantized key scheme.
//
// Params are immutable value types; a fresh Params is built per request and
// never mutated in place. Keys deliberately quantize: two triples that round
// to the same integers collide, bounding the keyspace and raising hit rates
// for visually indistinguishable requests.
package tile

import (
	"math"
	"strconv"
	"strings"
)

// Canvas dimensions of every generated tile, in pixels. Tiles are always
// square; callers repeat them to cover arbitrary areas.
const CanvasSize = 256

// Params describes one requested grain pattern: per-pixel luminance is drawn
// from a Gaussian with the given mean and standard deviation (both in the
// 0-255 luminance domain but deliberately unbounded; extreme values saturate),
// and the whole tile carries a uniform alpha derived from Opacity (percent).
type Params struct {
	Mean    float64
	StdDev  float64
	Opacity float64 // percent, must be in [0,100]
}

// DefaultParams is the triple used for the base pattern and for every
// fallback when input validation rejects a request.
func DefaultParams() Params {
	return Params{Mean: 128, StdDev: 50, Opacity: 5}
}

// Validate checks the Params contract. Mean and StdDev accept any real value;
// Opacity outside [0,100] is a validation error, never silently clamped.
// NaN is outside every range, so it is rejected explicitly: range comparisons
// alone would let it through.
func (p Params) Validate() error {
	if math.IsNaN(p.Opacity) || p.Opacity < 0 || p.Opacity > 100 {
		return &OpacityRangeError{Opacity: p.Opacity}
	}
	return nil
}

// Key returns the quantized cache key: each field rounded to the nearest
// integer and comma-joined, e.g. "128,50,5". The format intentionally matches
// the preset string format so keys read back as valid specs.
func (p Params) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(roundInt(p.Mean)))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(roundInt(p.StdDev)))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(roundInt(p.Opacity)))
	return b.String()
}

// Alpha returns the uniform 8-bit alpha derived from Opacity.
// Callers must Validate first; Alpha assumes Opacity is in range.
func (p Params) Alpha() uint8 {
	return uint8(roundInt(255 * p.Opacity / 100))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// Field names of a parameter spec, in order. Used in parse errors.
var specFields = [3]string{"mean", "stdDev", "opacity"}

// ParseParams parses a delimited parameter spec of the form "mean,stdDev,opacity"
// (e.g. "128,50,5"). Fields are trimmed and parsed as finite numbers: ParseFloat
// also accepts "NaN"/"Inf", which would derive garbage quantized keys, so
// non-finite fields are rejected like any other non-numeric input. A wrong field
// count yields *MalformedParamsError, a non-numeric field *NonNumericParamError,
// and an out-of-range opacity *OpacityRangeError.
func ParseParams(spec string) (Params, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return Params{}, &MalformedParamsError{Spec: spec, Fields: len(parts)}
	}

	var vals [3]float64
	for i, raw := range parts {
		s := strings.TrimSpace(raw)
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Params{}, &NonNumericParamError{Spec: spec, Field: specFields[i], Value: s}
		}
		vals[i] = v
	}

	p := Params{Mean: vals[0], StdDev: vals[1], Opacity: vals[2]}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
