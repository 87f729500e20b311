package huffman

import "testing"

// walk feeds the bits of path (path's pathLen low bits, MSB first) into
// tree and returns the decoded leaf value. It fails the test if the
// walk does not terminate within pathLen bits.
func walk(t *testing.T, tree *Tree, path uint32, pathLen uint8) uint32 {
	t.Helper()
	var w Walker
	for i := uint8(0); i < pathLen; i++ {
		bit := path&(1<<(pathLen-1-i)) != 0
		if v, ok := tree.Next(&w, bit); ok {
			if i != pathLen-1 {
				t.Fatalf("decoded leaf after %d bits, expected %d", i+1, pathLen)
			}
			return v
		}
	}
	t.Fatalf("walk did not reach a leaf within %d bits", pathLen)
	return 0
}

// Ported from: test_huffman_tree in lewton's huffman_tree.rs
func TestBuildOfficialExample(t *testing.T) {
	tree, err := Build([]uint8{2, 4, 4, 4, 4, 2, 3, 3})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	cases := []struct {
		path    uint32
		pathLen uint8
		want    uint32
	}{
		{0b00, 2, 0},
		{0b0100, 4, 1},
		{0b0101, 4, 2},
		{0b0110, 4, 3},
		{0b0111, 4, 4},
		{0b10, 2, 5},
		{0b110, 3, 6},
		{0b111, 3, 7},
	}
	for _, c := range cases {
		if got := walk(t, tree, c.path, c.pathLen); got != c.want {
			t.Errorf("walk(%0*b) = %d, want %d", c.pathLen, c.path, got, c.want)
		}
	}
}

func TestBuildDeepLengths(t *testing.T) {
	lengths := make([]uint8, 33)
	for i := range lengths {
		lengths[i] = uint8(i + 1)
	}
	lengths[32] = 32
	if _, err := Build(lengths); err != nil {
		t.Fatalf("Build: %v", err)
	}
}

// Ported from: test_under_over_spec in lewton's huffman_tree.rs
func TestUnderOverSpecified(t *testing.T) {
	if _, err := Build([]uint8{2, 4, 4, 4, 4, 2, 3}); err == nil {
		t.Error("expected underspecified tree to be rejected")
	}
	if _, err := Build([]uint8{2, 4, 4, 4, 2, 3, 3}); err == nil {
		t.Error("expected underspecified tree to be rejected")
	}
	if _, err := Build([]uint8{2, 4, 4, 4, 4, 2, 3, 3, 3}); err == nil {
		t.Error("expected overspecified tree to be rejected")
	}
}

// Ported from: test_single_entry_huffman_tree in lewton's huffman_tree.rs
func TestSingleEntry(t *testing.T) {
	tree, err := Build([]uint8{1})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := walk(t, tree, 0, 1); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if got := walk(t, tree, 1, 1); got != 0 {
		t.Errorf("got %d, want 0", got)
	}

	tree, err = Build([]uint8{0, 0, 1, 0})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := walk(t, tree, 0, 1); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if got := walk(t, tree, 1, 1); got != 2 {
		t.Errorf("got %d, want 2", got)
	}

	if _, err := Build([]uint8{2}); err == nil {
		t.Error("expected length-2 single entry to be rejected")
	}
}

// Ported from: test_unordered_huffman_tree in lewton's huffman_tree.rs
func TestUnorderedLengths(t *testing.T) {
	tree, err := Build([]uint8{2, 4, 4, 2, 4, 4, 3, 3})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	cases := []struct {
		path    uint32
		pathLen uint8
		want    uint32
	}{
		{0b00, 2, 0},
		{0b0100, 4, 1},
		{0b0101, 4, 2},
		{0b10, 2, 3},
		{0b0110, 4, 4},
		{0b0111, 4, 5},
		{0b110, 3, 6},
		{0b111, 3, 7},
	}
	for _, c := range cases {
		if got := walk(t, tree, c.path, c.pathLen); got != c.want {
			t.Errorf("walk(%0*b) = %d, want %d", c.pathLen, c.path, got, c.want)
		}
	}
}

// Ported from: test_extracted_huffman_tree in lewton's huffman_tree.rs
// (lengths extracted from a real-world Vorbis stream's codebook).
func TestRealWorldLengths(t *testing.T) {
	lengths := []uint8{
		5, 6, 11, 11, 11, 11, 10, 10, 12, 11, 5, 2, 11, 5, 6, 6,
		7, 9, 11, 13, 13, 10, 7, 11, 6, 7, 8, 9, 10, 12, 11, 5,
		11, 6, 8, 7, 9, 11, 14, 15, 11, 6, 6, 8, 4, 5, 7, 8,
		10, 13, 10, 5, 7, 7, 5, 5, 6, 8, 10, 11, 10, 7, 7, 8,
		6, 5, 5, 7, 9, 9, 11, 8, 8, 11, 8, 7, 6, 6, 7, 9,
		12, 11, 10, 13, 9, 9, 7, 7, 7, 9, 11, 13, 12, 15, 12, 11,
		9, 8, 8, 8,
	}
	if _, err := Build(lengths); err != nil {
		t.Fatalf("Build: %v", err)
	}
}

func TestEmptyCodebookRejected(t *testing.T) {
	if _, err := Build([]uint8{0, 0, 0}); err == nil {
		t.Error("expected empty codebook to be rejected")
	}
}
