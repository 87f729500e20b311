package filterbank

import "testing"

func TestComputeGeometry_ShortBlockAlwaysSymmetric(t *testing.T) {
	g := ComputeGeometry(256, 64, false, false, false)
	if g.LeftStart != 0 || g.LeftEnd != 128 {
		t.Errorf("left = [%d,%d), want [0,128)", g.LeftStart, g.LeftEnd)
	}
	if g.RightStart != 128 || g.RightEnd != 256 {
		t.Errorf("right = [%d,%d), want [128,256)", g.RightStart, g.RightEnd)
	}
	if g.DecodedSampleCount() != 128 {
		t.Errorf("DecodedSampleCount() = %d, want 128", g.DecodedSampleCount())
	}
}

func TestComputeGeometry_LongBlockWithShortNeighbors(t *testing.T) {
	// n=2048, bs0Exp=256, both neighbors short.
	g := ComputeGeometry(2048, 256, true, false, false)
	if g.LeftStart != (2048-256)/4 || g.LeftEnd != (2048+256)/4 {
		t.Errorf("left = [%d,%d)", g.LeftStart, g.LeftEnd)
	}
	if g.LeftUseBS1 {
		t.Error("LeftUseBS1 should be false when the previous window is short")
	}
	if g.RightStart != (2048*3-256)/4 || g.RightEnd != (2048*3+256)/4 {
		t.Errorf("right = [%d,%d)", g.RightStart, g.RightEnd)
	}
}

func TestComputeGeometry_LongBlockWithLongNeighbors(t *testing.T) {
	g := ComputeGeometry(2048, 256, true, true, true)
	if g.LeftStart != 0 || g.LeftEnd != 1024 {
		t.Errorf("left = [%d,%d), want [0,1024)", g.LeftStart, g.LeftEnd)
	}
	if !g.LeftUseBS1 {
		t.Error("LeftUseBS1 should be true when the previous window is long")
	}
	if g.RightStart != 1024 || g.RightEnd != 2048 {
		t.Errorf("right = [%d,%d), want [1024,2048)", g.RightStart, g.RightEnd)
	}
}

func TestOverlapAdd_FirstPacketDiscardsEverything(t *testing.T) {
	g := ComputeGeometry(8, 8, false, false, false)
	chanData := []float32{1, 2, 3, 4, 5, 6, 7, 8}

	trimmed, future, err := OverlapAdd(chanData, nil, nil, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trimmed) != 0 {
		t.Errorf("len(trimmed) = %d, want 0", len(trimmed))
	}
	if want := []float32{5, 6, 7, 8}; !equalSlices(future, want) {
		t.Errorf("future = %v, want %v", future, want)
	}
}

func TestOverlapAdd_Windows(t *testing.T) {
	g := ComputeGeometry(8, 8, false, false, false)
	chanData := []float32{1, 1, 1, 1, 1, 1, 1, 1}
	prevRight := []float32{2, 2, 2, 2}
	slope := []float32{0, 0.5, 0.5, 1}

	trimmed, future, err := OverlapAdd(chanData, prevRight, slope, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float32{0*1 + 2*1, 0.5*1 + 2*0.5, 0.5*1 + 2*0.5, 1*1 + 2*0}
	if !equalSlices(trimmed, want) {
		t.Errorf("trimmed = %v, want %v", trimmed, want)
	}
	if want := []float32{1, 1, 1, 1}; !equalSlices(future, want) {
		t.Errorf("future = %v, want %v", future, want)
	}
}

func TestOverlapAdd_SlopeShorterThanPreviousWindowIsBadFormat(t *testing.T) {
	g := ComputeGeometry(8, 8, false, false, false)
	chanData := make([]float32, 8)
	prevRight := []float32{1, 2, 3, 4}
	slope := []float32{0, 1}

	if _, _, err := OverlapAdd(chanData, prevRight, slope, g); err != ErrBadFormat {
		t.Errorf("err = %v, want ErrBadFormat", err)
	}
}

func equalSlices(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
