package decode

// InverseCouple undoes the encoder's channel-coupling transform on one
// (magnitude, angle) pair of residue values.
//
// Ported from: inverse_couple in lewton's audio.rs
func InverseCouple(m, a float32) (float32, float32) {
	if m > 0 {
		if a > 0 {
			return m, m - a
		}
		return m + a, m
	}
	if a > 0 {
		return m, m + a
	}
	return m - a, m
}
