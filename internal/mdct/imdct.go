package mdct

import "github.com/llehouerou/go-vorbis/internal/tables"

// InverseMDCT computes the inverse MDCT in place. buffer must have
// length 1<<bs; its first n/2 elements hold the decoded spectral
// coefficients on entry, and on return the whole buffer holds the n
// time-domain samples.
//
// This is stb_vorbis's optimized four-stage radix-2 decomposition of
// the textbook IMDCT, not a direct transcription of the naive O(n^2)
// definition. See the twiddle-factor tables in internal/tables for the
// precomputed A/B/C coefficients it multiplies against.
//
// Ported from: inverse_mdct in lewton's imdct.rs
func InverseMDCT(bd *tables.BlockSize, buffer []float32, bs uint8) {
	n := len(buffer)
	n2 := n >> 1
	n4 := n >> 2
	n8 := n >> 3

	buf2 := make([]float32, n2)

	a := bd.Twiddle.A
	b := bd.Twiddle.B
	c := bd.Twiddle.C

	// Merged: copy and reflect spectral data, plus step 0. The transform's
	// output comes out at the same scale as the direct IMDCT formula, so
	// the caller applies no extra scaling during overlap-add.
	{
		aOffs := 0
		dOffs := n2 - 2
		eOffs := 0
		eStop := n2

		for eOffs != eStop {
			buf2[dOffs+1] = buffer[eOffs]*a[aOffs] - buffer[eOffs+2]*a[aOffs+1]
			buf2[dOffs] = buffer[eOffs]*a[aOffs+1] + buffer[eOffs+2]*a[aOffs]
			dOffs -= 2
			aOffs += 2
			eOffs += 4
		}

		eOffs = n2 - 3
		for {
			buf2[dOffs+1] = -buffer[eOffs+2]*a[aOffs] - -buffer[eOffs]*a[aOffs+1]
			buf2[dOffs] = -buffer[eOffs+2]*a[aOffs+1] + -buffer[eOffs]*a[aOffs]
			if dOffs < 2 {
				break
			}
			dOffs -= 2
			aOffs += 2
			eOffs -= 4
		}
	}

	u := buffer
	v := buf2

	// Step 2 (paper output is w, now u).
	{
		aOffs := n2 - 8
		d0Offs := n4
		d1Offs := 0
		e0Offs := n4
		e1Offs := 0

		for {
			v4121 := v[e0Offs+1] - v[e1Offs+1]
			v4020 := v[e0Offs] - v[e1Offs]
			u[d0Offs+1] = v[e0Offs+1] + v[e1Offs+1]
			u[d0Offs] = v[e0Offs] + v[e1Offs]
			u[d1Offs+1] = v4121*a[aOffs+4] - v4020*a[aOffs+5]
			u[d1Offs] = v4020*a[aOffs+4] + v4121*a[aOffs+5]

			v4121 = v[e0Offs+3] - v[e1Offs+3]
			v4020 = v[e0Offs+2] - v[e1Offs+2]
			u[d0Offs+3] = v[e0Offs+3] + v[e1Offs+3]
			u[d0Offs+2] = v[e0Offs+2] + v[e1Offs+2]
			u[d1Offs+3] = v4121*a[aOffs] - v4020*a[aOffs+1]
			u[d1Offs+2] = v4020*a[aOffs] + v4121*a[aOffs+1]

			if aOffs < 8 {
				break
			}
			aOffs -= 8
			d0Offs += 4
			d1Offs += 4
			e0Offs += 4
			e1Offs += 4
		}
	}

	// Step 3: the original loop can be nested r-inside-s or s-inside-r;
	// whichever iterates fewer times goes on the outside, so there are
	// two copies of the kernel, switching partway through.
	ld := int(bs)

	// For ld 6 and 7 the combined ld-6..ld-4 passes below already cover
	// iterations 0 and 1, so those are run here only for larger blocks.
	if ld > 6 {
		imdctStep3Iter0Loop(n>>4, u, n2-1-n4*0, -(n >> 3), a)
		imdctStep3Iter0Loop(n>>4, u, n2-1-n4*1, -(n >> 3), a)
	}

	if ld > 7 {
		imdctStep3InnerRLoop(n>>5, u, n2-1-n8*0, -(n >> 4), a, 16)
		imdctStep3InnerRLoop(n>>5, u, n2-1-n8*1, -(n >> 4), a, 16)
		imdctStep3InnerRLoop(n>>5, u, n2-1-n8*2, -(n >> 4), a, 16)
		imdctStep3InnerRLoop(n>>5, u, n2-1-n8*3, -(n >> 4), a, 16)
	}

	for l := 2; l < (ld-3)>>1; l++ {
		k0 := n >> (l + 2)
		k02 := k0 >> 1
		lim := 1 << (l + 1)
		for i := 0; i < lim; i++ {
			imdctStep3InnerRLoop(n>>(l+4), u, n2-1-k0*i, -k02, a, 1<<(l+3))
		}
	}
	for l := (ld - 3) >> 1; l < ld-6; l++ {
		k0 := n >> (l + 2)
		k1 := 1 << (l + 3)
		k02 := k0 >> 1
		rlim := n >> (l + 6)
		lim := 1 << (l + 1)
		iOff := n2 - 1
		aOff := 0
		for i := 0; i < rlim; i++ {
			imdctStep3InnerSLoop(lim, u, iOff, -k02, a[aOff:], k1, k0)
			aOff += k1 * 4
			iOff -= 8
		}
	}

	// Iterations ld-6, ld-5, ld-4 interleaved together: the constants on
	// passes 5 and 4 are all 1 and 0, so folding them together drops a
	// lot of needless flops.
	imdctStep3InnerSLoopLd654(n>>5, u, n2-1, a, n)

	// output is u

	// Steps 4, 5, 6: cannot be in place because of step 5.
	{
		bitrev := bd.BitRev

		d0Offs := n4 - 4
		d1Offs := n2 - 4
		bitrevOffs := 0

		for {
			k4 := int(bitrev[bitrevOffs])
			v[d1Offs+3] = u[k4+0]
			v[d1Offs+2] = u[k4+1]
			v[d0Offs+3] = u[k4+2]
			v[d0Offs+2] = u[k4+3]

			k4 = int(bitrev[bitrevOffs+1])
			v[d1Offs+1] = u[k4+0]
			v[d1Offs] = u[k4+1]
			v[d0Offs+1] = u[k4+2]
			v[d0Offs] = u[k4+3]

			if d0Offs < 4 {
				break
			}
			d0Offs -= 4
			d1Offs -= 4
			bitrevOffs += 2
		}
	}
	// (paper output is u, now v)

	// Step 7 (paper output is v, now v): this one is in place.
	{
		cOffs := 0
		dOffs := 0
		eOffs := n2 - 4

		for dOffs < eOffs {
			a02 := v[dOffs] - v[eOffs+2]
			a11 := v[dOffs+1] + v[eOffs+3]

			b0 := c[cOffs+1]*a02 + c[cOffs]*a11
			b1 := c[cOffs+1]*a11 - c[cOffs]*a02

			b2 := v[dOffs] + v[eOffs+2]
			b3 := v[dOffs+1] - v[eOffs+3]

			v[dOffs] = b2 + b0
			v[dOffs+1] = b3 + b1
			v[eOffs+2] = b2 - b0
			v[eOffs+3] = b1 - b3

			a02 = v[dOffs+2] - v[eOffs]
			a11 = v[dOffs+3] + v[eOffs+1]

			b0 = c[cOffs+3]*a02 + c[cOffs+2]*a11
			b1 = c[cOffs+3]*a11 - c[cOffs+2]*a02

			b2 = v[dOffs+2] + v[eOffs]
			b3 = v[dOffs+3] - v[eOffs+1]

			v[dOffs+2] = b2 + b0
			v[dOffs+3] = b3 + b1
			v[eOffs] = b2 - b0
			v[eOffs+1] = b1 - b3

			cOffs += 4
			dOffs += 4
			eOffs -= 4
		}
	}

	// Step 8+decode (paper output is X, now buffer): generates pairs of
	// output samples and pushes them straight through the decode
	// kernel rather than making a separate pass over the result.
	{
		d0Offs := 0
		d1Offs := n2 - 4
		d2Offs := n2
		d3Offs := n - 4

		bOffs := n2 - 8
		eOffs := n2 - 8

		for {
			p3 := buf2[eOffs+6]*b[bOffs+7] - buf2[eOffs+7]*b[bOffs+6]
			p2 := -buf2[eOffs+6]*b[bOffs+6] - buf2[eOffs+7]*b[bOffs+7]

			buffer[d0Offs] = p3
			buffer[d1Offs+3] = -p3
			buffer[d2Offs] = p2
			buffer[d3Offs+3] = p2

			p1 := buf2[eOffs+4]*b[bOffs+5] - buf2[eOffs+5]*b[bOffs+4]
			p0 := -buf2[eOffs+4]*b[bOffs+4] - buf2[eOffs+5]*b[bOffs+5]

			buffer[d0Offs+1] = p1
			buffer[d1Offs+2] = -p1
			buffer[d2Offs+1] = p0
			buffer[d3Offs+2] = p0

			p3 = buf2[eOffs+2]*b[bOffs+3] - buf2[eOffs+3]*b[bOffs+2]
			p2 = -buf2[eOffs+2]*b[bOffs+2] - buf2[eOffs+3]*b[bOffs+3]

			buffer[d0Offs+2] = p3
			buffer[d1Offs+1] = -p3
			buffer[d2Offs+2] = p2
			buffer[d3Offs+1] = p2

			p1 = buf2[eOffs]*b[bOffs+1] - buf2[eOffs+1]*b[bOffs]
			p0 = -buf2[eOffs]*b[bOffs] - buf2[eOffs+1]*b[bOffs+1]

			buffer[d0Offs+3] = p1
			buffer[d1Offs] = -p1
			buffer[d2Offs+3] = p0
			buffer[d3Offs] = p0

			if eOffs < 8 {
				break
			}
			eOffs -= 8
			bOffs -= 8
			d0Offs += 4
			d2Offs += 4
			d1Offs -= 4
			d3Offs -= 4
		}
	}
}

// imdctStep3Iter0Loop is the first (innermost-stride) iteration of
// step 3's radix cascade.
//
// Ported from: imdct_step3_iter0_loop in lewton's imdct.rs
func imdctStep3Iter0Loop(n int, e []float32, iOff, kOff int, a []float32) {
	aOffs := 0
	iOffs := iOff
	kOffs := iOff + kOff

	for i := 0; i < n>>2; i++ {
		k0020 := e[iOffs] - e[kOffs]
		k0121 := e[iOffs-1] - e[kOffs-1]
		e[iOffs] += e[kOffs]
		e[iOffs-1] += e[kOffs-1]
		e[kOffs] = k0020*a[aOffs] - k0121*a[aOffs+1]
		e[kOffs-1] = k0121*a[aOffs] + k0020*a[aOffs+1]
		aOffs += 8

		k0020 = e[iOffs-2] - e[kOffs-2]
		k0121 = e[iOffs-3] - e[kOffs-3]
		e[iOffs-2] += e[kOffs-2]
		e[iOffs-3] += e[kOffs-3]
		e[kOffs-2] = k0020*a[aOffs] - k0121*a[aOffs+1]
		e[kOffs-3] = k0121*a[aOffs] + k0020*a[aOffs+1]
		aOffs += 8

		k0020 = e[iOffs-4] - e[kOffs-4]
		k0121 = e[iOffs-5] - e[kOffs-5]
		e[iOffs-4] += e[kOffs-4]
		e[iOffs-5] += e[kOffs-5]
		e[kOffs-4] = k0020*a[aOffs] - k0121*a[aOffs+1]
		e[kOffs-5] = k0121*a[aOffs] + k0020*a[aOffs+1]
		aOffs += 8

		k0020 = e[iOffs-6] - e[kOffs-6]
		k0121 = e[iOffs-7] - e[kOffs-7]
		e[iOffs-6] += e[kOffs-6]
		e[iOffs-7] += e[kOffs-7]
		e[kOffs-6] = k0020*a[aOffs] - k0121*a[aOffs+1]
		e[kOffs-7] = k0121*a[aOffs] + k0020*a[aOffs+1]

		aOffs += 8
		iOffs -= 8
		kOffs -= 8
	}
}

// imdctStep3InnerRLoop is step 3's kernel for the iterations where r
// (the outer count) is large and s (the inner count) is small.
//
// Ported from: imdct_step3_inner_r_loop in lewton's imdct.rs
func imdctStep3InnerRLoop(lim int, e []float32, d0, kOff int, a []float32, k1 int) {
	aOffs := 0
	d0Offs := d0
	kOffs := d0 + kOff

	for i := 0; i < lim>>2; i++ {
		k0020 := e[d0Offs] - e[kOffs]
		k0121 := e[d0Offs-1] - e[kOffs-1]
		e[d0Offs] += e[kOffs]
		e[d0Offs-1] += e[kOffs-1]
		e[kOffs] = k0020*a[aOffs] - k0121*a[aOffs+1]
		e[kOffs-1] = k0121*a[aOffs] + k0020*a[aOffs+1]
		aOffs += k1

		k0020 = e[d0Offs-2] - e[kOffs-2]
		k0121 = e[d0Offs-3] - e[kOffs-3]
		e[d0Offs-2] += e[kOffs-2]
		e[d0Offs-3] += e[kOffs-3]
		e[kOffs-2] = k0020*a[aOffs] - k0121*a[aOffs+1]
		e[kOffs-3] = k0121*a[aOffs] + k0020*a[aOffs+1]
		aOffs += k1

		k0020 = e[d0Offs-4] - e[kOffs-4]
		k0121 = e[d0Offs-5] - e[kOffs-5]
		e[d0Offs-4] += e[kOffs-4]
		e[d0Offs-5] += e[kOffs-5]
		e[kOffs-4] = k0020*a[aOffs] - k0121*a[aOffs+1]
		e[kOffs-5] = k0121*a[aOffs] + k0020*a[aOffs+1]
		aOffs += k1

		k0020 = e[d0Offs-6] - e[kOffs-6]
		k0121 = e[d0Offs-7] - e[kOffs-7]
		e[d0Offs-6] += e[kOffs-6]
		e[d0Offs-7] += e[kOffs-7]
		e[kOffs-6] = k0020*a[aOffs] - k0121*a[aOffs+1]
		e[kOffs-7] = k0121*a[aOffs] + k0020*a[aOffs+1]

		d0Offs -= 8
		kOffs -= 8
		aOffs += k1
	}
}

// imdctStep3InnerSLoop is step 3's kernel for the iterations where s
// (the inner count) is large and r (the outer count) is small; a is
// already sliced to this call's twiddle sub-range, and aStride is the
// per-chunk stride within it (the earlier iterations' k1).
//
// Ported from: imdct_step3_inner_s_loop in lewton's imdct.rs
func imdctStep3InnerSLoop(n int, e []float32, iOff, kOff int, a []float32, aStride, k0 int) {
	a0 := a[0]
	a1 := a[1]
	a2 := a[aStride]
	a3 := a[aStride+1]
	a4 := a[aStride*2]
	a5 := a[aStride*2+1]
	a6 := a[aStride*3]
	a7 := a[aStride*3+1]

	iOffs := iOff
	kOffs := iOff + kOff

	i := 0
	for {
		k00 := e[iOffs] - e[kOffs]
		k11 := e[iOffs-1] - e[kOffs-1]
		e[iOffs] += e[kOffs]
		e[iOffs-1] += e[kOffs-1]
		e[kOffs] = k00*a0 - k11*a1
		e[kOffs-1] = k11*a0 + k00*a1

		k00 = e[iOffs-2] - e[kOffs-2]
		k11 = e[iOffs-3] - e[kOffs-3]
		e[iOffs-2] += e[kOffs-2]
		e[iOffs-3] += e[kOffs-3]
		e[kOffs-2] = k00*a2 - k11*a3
		e[kOffs-3] = k11*a2 + k00*a3

		k00 = e[iOffs-4] - e[kOffs-4]
		k11 = e[iOffs-5] - e[kOffs-5]
		e[iOffs-4] += e[kOffs-4]
		e[iOffs-5] += e[kOffs-5]
		e[kOffs-4] = k00*a4 - k11*a5
		e[kOffs-5] = k11*a4 + k00*a5

		k00 = e[iOffs-6] - e[kOffs-6]
		k11 = e[iOffs-7] - e[kOffs-7]
		e[iOffs-6] += e[kOffs-6]
		e[iOffs-7] += e[kOffs-7]
		e[kOffs-6] = k00*a6 - k11*a7
		e[kOffs-7] = k11*a6 + k00*a7

		i++
		if i >= n {
			break
		}
		iOffs -= k0
		kOffs -= k0
	}
}

// iter54 is the radix-4 base case step 3 bottoms out into once s has
// been halved down to 4 (adapted to Go's disallowance of negative
// indices: zm7[i] stands in for the reference's z[-7+i]).
//
// Ported from: iter_54 in lewton's imdct.rs
func iter54(zm7 []float32) {
	k00 := zm7[7] - zm7[3]
	y0 := zm7[7] + zm7[3]
	y2 := zm7[5] + zm7[1]
	k22 := zm7[5] - zm7[1]

	zm7[7] = y0 + y2
	zm7[5] = y0 - y2

	k33 := zm7[4] - zm7[0]

	zm7[3] = k00 + k33
	zm7[1] = k00 - k33

	k11 := zm7[6] - zm7[2]
	y1 := zm7[6] + zm7[2]
	y3 := zm7[4] + zm7[0]

	zm7[6] = y1 + y3
	zm7[4] = y1 - y3
	zm7[2] = k11 - k22
	zm7[0] = k11 + k22
}

// imdctStep3InnerSLoopLd654 folds step 3's last three iterations
// (ld-6, ld-5, ld-4) together, since passes 5 and 4 multiply by
// constants 1 and 0 and so contribute no real work of their own.
//
// Ported from: imdct_step3_inner_s_loop_ld654 in lewton's imdct.rs
func imdctStep3InnerSLoopLd654(n int, e []float32, iOff int, a []float32, baseN int) {
	aOff := baseN >> 3
	a2 := a[aOff]

	zOffs := iOff
	basep16 := iOff - 16*(n-1)

	for {
		k00 := e[zOffs] - e[zOffs-8]
		k11 := e[zOffs-1] - e[zOffs-9]
		e[zOffs] += e[zOffs-8]
		e[zOffs-1] += e[zOffs-9]
		e[zOffs-8] = k00
		e[zOffs-9] = k11

		k00 = e[zOffs-2] - e[zOffs-10]
		k11 = e[zOffs-3] - e[zOffs-11]
		e[zOffs-2] += e[zOffs-10]
		e[zOffs-3] += e[zOffs-11]
		e[zOffs-10] = (k00 + k11) * a2
		e[zOffs-11] = (k11 - k00) * a2

		k00 = e[zOffs-12] - e[zOffs-4]
		k11 = e[zOffs-5] - e[zOffs-13]
		e[zOffs-4] += e[zOffs-12]
		e[zOffs-5] += e[zOffs-13]
		e[zOffs-12] = k11
		e[zOffs-13] = k00

		k00 = e[zOffs-14] - e[zOffs-6]
		k11 = e[zOffs-7] - e[zOffs-15]
		e[zOffs-6] += e[zOffs-14]
		e[zOffs-7] += e[zOffs-15]
		e[zOffs-14] = (k00 + k11) * a2
		e[zOffs-15] = (k00 - k11) * a2

		iter54(e[zOffs-7:])
		iter54(e[zOffs-15:])

		if zOffs <= basep16 {
			break
		}
		zOffs -= 16
	}
}
