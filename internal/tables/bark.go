package tables

import "math"

// bark converts a frequency to the bark scale.
//
// Ported from: bark in lewton's header_cached.rs
func bark(x float32) float32 {
	xf := float64(x)
	return float32(13.1*math.Atan(0.00074*xf) +
		2.24*math.Atan(0.0000000185*xf*xf) +
		0.0001*xf)
}

// ComputeBarkMapCosOmega precomputes, for each of the n frequency bins of
// a floor-0 curve, cos(omega) where omega is the bin's position (floored
// and clamped) in the floor0_bark_map_size-wide bark map.
//
// The spec defines this as an n+1 element map whose last element is
// always -1; that element is never read (floor-0 synthesis only indexes
// map[i] for i < n), so it is omitted here.
//
// Ported from: compute_bark_map_cos_omega in lewton's header_cached.rs
func ComputeBarkMapCosOmega(n, floor0Rate, floor0BarkMapSize uint16) []float32 {
	res := make([]float32, n)
	hfl := float32(floor0Rate) / 2.0
	hflDn := hfl / float32(n)
	constPart := float32(floor0BarkMapSize) / bark(hfl)
	bmsM1 := float32(floor0BarkMapSize) - 1.0
	omegaFactor := float32(math.Pi) / float32(floor0BarkMapSize)
	for i := uint16(0); i < n; i++ {
		foobar := float32(math.Floor(float64(bark(float32(i)*hflDn) * constPart)))
		mapElem := foobar
		if mapElem > bmsM1 {
			mapElem = bmsM1
		}
		res[i] = float32(math.Cos(float64(mapElem * omegaFactor)))
	}
	return res
}
