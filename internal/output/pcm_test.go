package output

import "testing"

func TestInt16FromFloat(t *testing.T) {
	cases := []struct {
		in   float32
		want int16
	}{
		{0, 0},
		{1, 32767},  // clipped: round(32768) = 32768 -> clip to 32767
		{-1, -32768},
		{0.5, 16384},
		{2, 32767},
		{-2, -32768},
	}
	for _, c := range cases {
		if got := Int16FromFloat(c.in); got != c.want {
			t.Errorf("Int16FromFloat(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFloatPlanarRoundTrip(t *testing.T) {
	s := NewFloatPlanar(2)
	s.FromFloats([][]float32{{0.1, 0.2, 0.3}, {-0.1, -0.2, -0.3}})
	if s.NumSamples() != 3 {
		t.Fatalf("NumSamples() = %d, want 3", s.NumSamples())
	}
	s.Truncate(2)
	if s.NumSamples() != 2 {
		t.Fatalf("after Truncate, NumSamples() = %d, want 2", s.NumSamples())
	}
	if len(s.Chans[1]) != 2 || s.Chans[1][0] != -0.1 {
		t.Errorf("Chans[1] = %v", s.Chans[1])
	}
}

func TestInt16PlanarConversion(t *testing.T) {
	s := NewInt16Planar(1)
	s.FromFloats([][]float32{{1, -1, 0}})
	want := []int16{32767, -32768, 0}
	for i, w := range want {
		if s.Chans[0][i] != w {
			t.Errorf("Chans[0][%d] = %d, want %d", i, s.Chans[0][i], w)
		}
	}
}

func TestFloatInterleaved(t *testing.T) {
	s := &FloatInterleaved{}
	s.FromFloats([][]float32{{1, 2, 3}, {4, 5, 6}})
	want := []float32{1, 4, 2, 5, 3, 6}
	if len(s.Data) != len(want) {
		t.Fatalf("Data = %v, want %v", s.Data, want)
	}
	for i := range want {
		if s.Data[i] != want[i] {
			t.Errorf("Data[%d] = %v, want %v", i, s.Data[i], want[i])
		}
	}
	if s.NumSamples() != 3 {
		t.Errorf("NumSamples() = %d, want 3", s.NumSamples())
	}
	s.Truncate(1)
	if s.NumSamples() != 1 {
		t.Errorf("after Truncate, NumSamples() = %d, want 1", s.NumSamples())
	}
}

func TestInt16Interleaved(t *testing.T) {
	s := &Int16Interleaved{}
	s.FromFloats([][]float32{{1, -1}, {0, 0.5}})
	want := []int16{32767, 0, -32768, 16384}
	if len(s.Data) != len(want) {
		t.Fatalf("Data = %v, want %v", s.Data, want)
	}
	for i := range want {
		if s.Data[i] != want[i] {
			t.Errorf("Data[%d] = %d, want %d", i, s.Data[i], want[i])
		}
	}
}
