// Package graintile synthesizes square grayscale grain tiles (per-pixel
// luminance drawn from a Gaussian, uniform alpha from an opacity percent),
// encodes them as lossless PNG, and memoizes results by quantized parameter
// triple so repeated requests for the same visual effect never recompute.
//
// Components:
//   - synth: seeded Box-Muller sampler + pixel-by-pixel synthesizer.
//   - store: byte store for encoded patterns (Local by default; BigCache,
//     Ristretto or Redis for bounded/shared deployments).
//   - codec: (de)serializes pattern records (msgpack default, CBOR, JSON).
//
// Keys:
//
//	tile:<ns>:<m>,<s>,<o>  - parameters rounded to nearest integers
//
// Synthesis is deterministic given a seed: the per-key RNG seed derives from
// Options.Seed and the quantized key, so two caches configured alike produce
// byte-identical tiles and a racing duplicate synthesis is harmless.
//
// Request path:
//
//	pat, err := cache.Pattern(ctx, 128, 50, 5) // validation error or tile
//	pat := cache.PatternSpec(ctx, "128,50,5")  // never fails; logs + serves
//	                                           // the default tile on bad input
//	css := pat.CSS()                           // url('data:image/png;base64,...')
package graintile
