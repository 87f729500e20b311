package tables

import "math"

// Twiddle holds the three twiddle-factor tables the IMDCT indexes into,
// for one block size: A in steps 0-3, C in step 7, B in the final step.
//
// Ported from: TwiddleFactors in lewton's header_cached.rs
type Twiddle struct {
	A []float32
	B []float32
	C []float32
}

// ComputeTwiddle builds the twiddle tables for a block of size
// 1<<blocksizeLog.
//
// Ported from: compute_twiddle_factors in lewton's header_cached.rs
func ComputeTwiddle(blocksizeLog uint8) Twiddle {
	n := uint32(1) << blocksizeLog
	n2 := n >> 1
	n4 := n >> 2
	n8 := n >> 3

	a := make([]float32, 0, n2)
	b := make([]float32, 0, n2)
	c := make([]float32, 0, n4)

	pi4N := 4.0 * math.Pi / float64(n)
	pi05N := 0.5 * math.Pi / float64(n)
	pi2N := 2.0 * math.Pi / float64(n)

	k2 := uint32(0)
	for k := uint32(0); k < n4; k++ {
		a = append(a,
			float32(math.Cos(float64(k)*pi4N)),
			float32(-math.Sin(float64(k)*pi4N)),
		)
		b = append(b,
			float32(math.Cos(float64(k2+1)*pi05N)*0.5),
			float32(math.Sin(float64(k2+1)*pi05N)*0.5),
		)
		k2 += 2
	}
	k2 = 0
	for i := uint32(0); i < n8; i++ {
		c = append(c,
			float32(math.Cos(float64(k2+1)*pi2N)),
			float32(-math.Sin(float64(k2+1)*pi2N)),
		)
		k2 += 2
	}
	return Twiddle{A: a, B: b, C: c}
}
