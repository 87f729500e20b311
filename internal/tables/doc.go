// Package tables precomputes the per-block-size constants the transform
// and floor stages need: bit-reversal permutations, IMDCT twiddle
// factors, overlap-add window slopes, the bark-scale cosine map used by
// floor type 0, and the static floor-1 dB lookup table.
//
// Ported from: header_cached.rs and the static tables in header.rs and
// audio.rs in lewton
package tables
