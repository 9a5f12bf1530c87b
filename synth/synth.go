package synth

import (
	"bytes"
	"hash/fnv"
	"image"
	"image/png"

	"github.com/unkn0wn-root/graintile/tile"
)

// DefaultSeed is the base seed used when the caller provides none.
const DefaultSeed int64 = 0x67726e

// Seed derives the per-pattern RNG seed from a base seed and the quantized
// key, so two syntheses of the same key are byte-identical regardless of
// which caller triggered them.
func Seed(base int64, key string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return base ^ int64(h.Sum64())
}

// Synthesize builds one tile.CanvasSize-square grain tile for p, seeded by
// seed. Every pixel's luminance is an independent draw from the sampler
// scaled and shifted by (StdDev, Mean), floored and clamped to [0,255];
// neighboring pixels are deliberately uncorrelated so the tile reads as
// fine grain rather than cloud-like noise. Alpha is uniform across the tile.
//
// The pixel buffer lives only for this call: filled once, PNG-encoded,
// discarded. NRGBA keeps channels non-premultiplied so the grayscale+alpha
// values round-trip the encoding exactly.
func Synthesize(p tile.Params, seed int64) (tile.Pattern, error) {
	if err := p.Validate(); err != nil {
		return tile.Pattern{}, err
	}

	smp := NewSampler(seed)
	alpha := p.Alpha()

	img := image.NewNRGBA(image.Rect(0, 0, tile.CanvasSize, tile.CanvasSize))
	for i := 0; i < len(img.Pix); i += 4 {
		v := clamp255(p.Mean + smp.Sample()*p.StdDev)
		img.Pix[i] = v
		img.Pix[i+1] = v
		img.Pix[i+2] = v
		img.Pix[i+3] = alpha
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return tile.Pattern{}, err
	}
	return tile.Pattern{Params: p, PNG: buf.Bytes()}, nil
}

// clamp255 floors v and saturates it into the 8-bit range. Extreme means
// simply saturate; they are not an error.
func clamp255(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v < 0 || v != v { // negatives and NaN floor to black
		return 0
	}
	return uint8(v) // conversion truncates toward zero == floor for v >= 0
}
