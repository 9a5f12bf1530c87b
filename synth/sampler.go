// Package synth generates grain tiles: a seeded Gaussian sampler feeds a
// pixel-by-pixel synthesizer whose output is a losslessly PNG-encoded
// tile.Pattern. Synthesis is pure, blocking and bounded; there is no I/O and
// no shared state beyond the sampler's own RNG.
package synth

import (
	"math"
	"math/rand"
)

// Sampler produces independent standard-normal samples (mean 0, variance 1)
// from a seeded uniform source via the Box-Muller transform. A Sampler is not
// safe for concurrent use; each synthesis owns its own instance.
type Sampler struct {
	rng      *rand.Rand
	spare    float64
	hasSpare bool
}

// NewSampler returns a Sampler over a deterministic uniform source.
// Equal seeds yield equal sample streams.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample returns one standard-normal draw. Box-Muller yields samples in
// pairs; the sine-phase partner of each transform is retained and returned
// on the next call, so one uniform pair serves two samples.
func (s *Sampler) Sample() float64 {
	if s.hasSpare {
		s.hasSpare = false
		return s.spare
	}
	u := s.uniform()
	v := s.uniform()
	r := math.Sqrt(-2 * math.Log(u))
	s.spare = r * math.Sin(2*math.Pi*v)
	s.hasSpare = true
	return r * math.Cos(2*math.Pi*v)
}

// uniform draws from the open interval (0,1). Float64 returns [0,1); exact
// zeros are re-drawn so the log above never sees zero. Termination with
// probability 1.
func (s *Sampler) uniform() float64 {
	for {
		if u := s.rng.Float64(); u != 0 {
			return u
		}
	}
}
