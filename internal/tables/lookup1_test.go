package tables

import "testing"

// Ported from: test_lookup1_values in lewton's header.rs
func TestLookup1Values(t *testing.T) {
	cases := []struct {
		entries uint32
		dims    uint16
		want    uint32
	}{
		// 2^10 = 1024
		{1025, 10, 2},
		{1024, 10, 2},
		{1023, 10, 1},
		// 5^5 = 3125
		{3126, 5, 5},
		{3125, 5, 5},
		{3124, 5, 4},
		// edge cases
		{1, 1, 1},
		{0, 15, 0},
		{0, 0, 0},
		{1, 0, 0xffffffff},
		{400, 0, 0xffffffff},
	}
	for _, c := range cases {
		if got := Lookup1Values(c.entries, c.dims); got != c.want {
			t.Errorf("Lookup1Values(%d, %d) = %d, want %d", c.entries, c.dims, got, c.want)
		}
	}
}
