package tables

import "testing"

// Ported from: test_compute_bitreverse in lewton's header_cached.rs.
// The expected values were generated from stb_vorbis's implementation.
func TestComputeBitReverse(t *testing.T) {
	want := []uint32{
		0, 64, 32, 96,
		16, 80, 48, 112,
		8, 72, 40, 104,
		24, 88, 56, 120,
		4, 68, 36, 100,
		20, 84, 52, 116,
		12, 76, 44, 108,
		28, 92, 60, 124,
	}
	got := ComputeBitReverse(8)
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rev[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
