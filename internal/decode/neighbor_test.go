package decode

import "testing"

func TestHighNeighbor(t *testing.T) {
	v := []uint32{0, 128, 12, 46, 4, 8, 16, 23, 33, 70, 2, 6, 10, 14, 19, 28, 39, 58, 90}

	cases := []struct {
		x       int
		wantIdx int
		wantVal uint32
	}{
		{6, 3, 46},
		{17, 9, 70},
		{18, 1, 128},
	}
	for _, c := range cases {
		idx, val := HighNeighbor(v, c.x)
		if idx != c.wantIdx || val != c.wantVal {
			t.Errorf("HighNeighbor(v, %d) = (%d, %d), want (%d, %d)", c.x, idx, val, c.wantIdx, c.wantVal)
		}
	}
}

func TestLowNeighbor(t *testing.T) {
	v := []uint32{1, 4, 2, 3, 6, 5}

	cases := []struct {
		x       int
		wantIdx int
		wantVal uint32
	}{
		{3, 2, 2},
		{5, 1, 4},
	}
	for _, c := range cases {
		idx, val := LowNeighbor(v, c.x)
		if idx != c.wantIdx || val != c.wantVal {
			t.Errorf("LowNeighbor(v, %d) = (%d, %d), want (%d, %d)", c.x, idx, val, c.wantIdx, c.wantVal)
		}
	}
}

func TestLowNeighborNoneSmaller(t *testing.T) {
	v := []uint32{5, 1}
	idx, _ := LowNeighbor(v, 1)
	if idx != -1 {
		t.Errorf("LowNeighbor = %d, want -1 (no candidate smaller than v[1])", idx)
	}
}

func TestHighNeighborNoneLarger(t *testing.T) {
	v := []uint32{5, 9}
	idx, _ := HighNeighbor(v, 1)
	if idx != -1 {
		t.Errorf("HighNeighbor = %d, want -1 (no candidate larger than v[1])", idx)
	}
}
