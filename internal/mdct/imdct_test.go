package mdct

import (
	"math"
	"testing"

	"github.com/llehouerou/go-vorbis/internal/bitmath"
	"github.com/llehouerou/go-vorbis/internal/tables"
)

// inverseMDCTNaive is the un-optimized, straight-line translation of the
// IMDCT kernel from "The use of multirate filter banks for coding of
// high quality digital audio", kept only to cross-check the optimized
// radix cascade in tests.
//
// Ported from: inverse_mdct_naive in lewton's imdct.rs
func inverseMDCTNaive(bd *tables.BlockSize, buffer []float32) {
	n := len(buffer)
	n2 := n >> 1
	n4 := n >> 2
	n8 := n >> 3
	n34 := n - n4

	u := make([]float32, n)
	xa := make([]float32, n)
	v := make([]float32, n)
	w := make([]float32, n)

	a := bd.Twiddle.A
	b := bd.Twiddle.B
	c := bd.Twiddle.C

	for k := 0; k < n2; k++ {
		u[k] = buffer[k]
	}
	for k := n2; k < n; k++ {
		u[k] = -buffer[n-k-1]
	}

	k2, k4 := 0, 0
	for k2 < n2 {
		v[n-k4-1] = (u[k4]-u[n-k4-1])*a[k2] - (u[k4+2]-u[n-k4-3])*a[k2+1]
		v[n-k4-3] = (u[k4]-u[n-k4-1])*a[k2+1] + (u[k4+2]-u[n-k4-3])*a[k2]
		k2 += 2
		k4 += 4
	}

	k4 = 0
	for k4 < n2 {
		w[n2+3+k4] = v[n2+3+k4] + v[k4+3]
		w[n2+1+k4] = v[n2+1+k4] + v[k4+1]
		w[k4+3] = (v[n2+3+k4]-v[k4+3])*a[n2-4-k4] - (v[n2+1+k4]-v[k4+1])*a[n2-3-k4]
		w[k4+1] = (v[n2+1+k4]-v[k4+1])*a[n2-4-k4] + (v[n2+3+k4]-v[k4+3])*a[n2-3-k4]
		k4 += 4
	}

	ld := int(bitmath.Ilog(uint64(n))) - 1
	for l := 0; l < ld-3; l++ {
		k0 := n >> (l + 2)
		k1 := 1 << (l + 3)
		rlim := n >> (l + 4)
		slim := 1 << (l + 1)
		r4 := 0
		for r := 0; r < rlim; r++ {
			s2 := 0
			for i := 0; i < slim; i++ {
				u[n-1-k0*s2-r4] = w[n-1-k0*s2-r4] + w[n-1-k0*(s2+1)-r4]
				u[n-3-k0*s2-r4] = w[n-3-k0*s2-r4] + w[n-3-k0*(s2+1)-r4]
				u[n-1-k0*(s2+1)-r4] = (w[n-1-k0*s2-r4]-w[n-1-k0*(s2+1)-r4])*a[r*k1] - (w[n-3-k0*s2-r4]-w[n-3-k0*(s2+1)-r4])*a[r*k1+1]
				u[n-3-k0*(s2+1)-r4] = (w[n-3-k0*s2-r4]-w[n-3-k0*(s2+1)-r4])*a[r*k1] + (w[n-1-k0*s2-r4]-w[n-1-k0*(s2+1)-r4])*a[r*k1+1]
				s2 += 2
			}
			r4 += 4
		}
		if l+1 < ld-3 {
			copy(w, u)
		}
	}

	for i := 0; i < n8; i++ {
		j := int(tables.BitReverse(uint32(i)) >> uint(32-ld+3))
		ii := i << 3
		if i == j {
			v[ii+1] = u[ii+1]
			v[ii+3] = u[ii+3]
			v[ii+5] = u[ii+5]
			v[ii+7] = u[ii+7]
		} else if i < j {
			j8 := j << 3
			v[j8+1], v[ii+1] = u[ii+1], u[j8+1]
			v[j8+3], v[ii+3] = u[ii+3], u[j8+3]
			v[j8+5], v[ii+5] = u[ii+5], u[j8+5]
			v[j8+7], v[ii+7] = u[ii+7], u[j8+7]
		}
	}

	for k := 0; k < n2; k++ {
		w[k] = v[k*2+1]
	}

	k2, k4 = 0, 0
	for k2 < n4 {
		u[n-1-k2] = w[k4]
		u[n-2-k2] = w[k4+1]
		u[n34-1-k2] = w[k4+2]
		u[n34-2-k2] = w[k4+3]
		k2 += 2
		k4 += 4
	}

	k2 = 0
	for k2 < n4 {
		v[n2+k2] = (u[n2+k2] + u[n-2-k2] + c[k2+1]*(u[n2+k2]-u[n-2-k2]) + c[k2]*(u[n2+k2+1]+u[n-2-k2+1])) / 2.0
		v[n-2-k2] = (u[n2+k2] + u[n-2-k2] - c[k2+1]*(u[n2+k2]-u[n-2-k2]) - c[k2]*(u[n2+k2+1]+u[n-2-k2+1])) / 2.0
		v[n2+1+k2] = (u[n2+1+k2] - u[n-1-k2] + c[k2+1]*(u[n2+1+k2]+u[n-1-k2]) - c[k2]*(u[n2+k2]-u[n-2-k2])) / 2.0
		v[n-1-k2] = (-u[n2+1+k2] + u[n-1-k2] + c[k2+1]*(u[n2+1+k2]+u[n-1-k2]) - c[k2]*(u[n2+k2]-u[n-2-k2])) / 2.0
		k2 += 2
	}

	k2 = 0
	for k := 0; k < n4; k++ {
		xa[k] = v[k2+n2]*b[k2] + v[k2+1+n2]*b[k2+1]
		xa[n2-1-k] = v[k2+n2]*b[k2+1] - v[k2+1+n2]*b[k2]
		k2 += 2
	}

	for i := 0; i < n4; i++ {
		buffer[i] = xa[i+n4]
	}
	for i := n4; i < n34; i++ {
		buffer[i] = -xa[n34-i-1]
	}
	for i := n34; i < n; i++ {
		buffer[i] = -xa[i-n34]
	}
}

func testBlockSize(blocksizeLog uint8) (*tables.BlockSize, int) {
	bd := tables.NewBlockSize(blocksizeLog)
	return &bd, 1 << blocksizeLog
}

func TestInverseMDCT_Finite(t *testing.T) {
	for _, bs := range []uint8{6, 7, 8, 11} {
		bd, n := testBlockSize(bs)
		buffer := make([]float32, n)
		for i := 0; i < n/2; i++ {
			buffer[i] = float32(math.Sin(float64(i) * 0.1))
		}

		InverseMDCT(bd, buffer, bs)

		for i, v := range buffer {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				t.Errorf("bs=%d: buffer[%d] = %v (invalid)", bs, i, v)
			}
		}
	}
}

func TestInverseMDCT_MatchesNaive(t *testing.T) {
	const bs = 6 // smallest valid Vorbis block size, n=64
	bd, n := testBlockSize(bs)

	input := make([]float32, n/2)
	for i := range input {
		input[i] = float32(math.Sin(float64(i)*0.37) + 0.2*math.Cos(float64(i)*1.1))
	}

	optimized := make([]float32, n)
	copy(optimized, input)
	InverseMDCT(bd, optimized, bs)

	naive := make([]float32, n)
	copy(naive, input)
	inverseMDCTNaive(bd, naive)

	for i := range optimized {
		diff := math.Abs(float64(optimized[i] - naive[i]))
		if diff > 5e-4 {
			t.Errorf("sample %d: optimized=%v naive=%v diff=%v", i, optimized[i], naive[i], diff)
		}
	}
}
