// Package huffman builds and walks the prefix-code trees used by Vorbis
// codebooks.
//
// Ported from: VorbisHuffmanTree / HuffTree in lewton's huffman_tree.rs
package huffman

import "errors"

// Errors returned by Build when a codeword-length vector does not
// describe a valid Huffman tree.
//
// Ported from: HuffmanError in lewton's huffman_tree.rs
var (
	ErrOverspecified   = errors.New("huffman: codebook is overspecified")
	ErrUnderpopulated  = errors.New("huffman: codebook is underpopulated")
	ErrInvalidSingle   = errors.New("huffman: single-entry codebook must have length 1")
	ErrEmptyCodebook   = errors.New("huffman: codebook has no codewords")
)

// interiorBit marks an entry in Tree.prog as an interior node; entries
// with this bit clear are leaves carrying a payload value.
const interiorBit = uint32(1) << 31

// Tree is a Huffman prefix-code tree flattened into a single slice so
// that decode is an array walk rather than a pointer chase.
//
// Entry layout: a leaf entry is its payload value (high bit clear); an
// interior entry has the high bit set and is followed by two slots
// holding the indices (into prog) of its left (bit 0) and right (bit 1)
// children.
type Tree struct {
	prog []uint32

	single      bool
	singleValue uint32
}

// buildNode is the intermediate recursive tree used only during
// construction; Build flattens it into a Tree's prog slice afterward.
//
// Ported from: HuffTree in lewton's huffman_tree.rs
type buildNode struct {
	evenChildren bool
	hasPayload   bool
	payload      uint32
	l, r         *buildNode
}

func newBuildNode() *buildNode {
	return &buildNode{evenChildren: true}
}

// insert places payload at the given depth, always preferring the
// leftmost subtree with room. Returns false if there was no room (the
// codeword collides with an existing leaf or a too-shallow interior
// node).
//
// Ported from: HuffTree::insert_rec in lewton's huffman_tree.rs
func (n *buildNode) insert(payload uint32, depth uint8) bool {
	if n.hasPayload {
		return false
	}
	if depth == 0 {
		if n.l != nil || n.r != nil {
			return false
		}
		n.hasPayload = true
		n.payload = payload
		return true
	}
	if n.evenChildren {
		if n.l != nil {
			return false
		}
		child := newBuildNode()
		child.insert(payload, depth-1)
		n.l = child
		n.evenChildren = false
		return true
	}

	if !n.l.evenChildren && n.l.insert(payload, depth-1) {
		n.evenChildren = n.l.evenChildren && n.r != nil && n.r.evenChildren
		return true
	}
	if n.r != nil {
		ok := n.r.insert(payload, depth-1)
		n.evenChildren = n.l.evenChildren && n.r.evenChildren
		return ok
	}
	child := newBuildNode()
	ok := child.insert(payload, depth-1)
	n.evenChildren = n.l.evenChildren && child.evenChildren
	n.r = child
	return ok
}

// Build constructs a Tree from a per-codeword-index length vector. A
// zero length means "this index has no codeword" (a sparse codebook).
//
// Ported from: VorbisHuffmanTree::load_from_array in lewton's huffman_tree.rs
func Build(lengths []uint8) (*Tree, error) {
	root := newBuildNode()
	count := 0
	lastValid := -1
	for i, length := range lengths {
		if length == 0 {
			continue
		}
		count++
		lastValid = i
		if !root.insert(uint32(i), length) {
			return nil, ErrOverspecified
		}
	}

	if count == 0 {
		return nil, ErrEmptyCodebook
	}

	if count == 1 {
		if lengths[lastValid] != 1 {
			return nil, ErrInvalidSingle
		}
		return &Tree{single: true, singleValue: uint32(lastValid)}, nil
	}

	if !root.evenChildren {
		return nil, ErrUnderpopulated
	}

	t := &Tree{prog: make([]uint32, 0, count*2)}
	flatten(root, &t.prog)
	return t, nil
}

// flatten appends node (and, recursively, its subtree) to prog in
// pre-order and returns the index it was written at.
//
// Ported from: the `traverse` closure in VorbisHuffmanTree::load_from_array
func flatten(n *buildNode, prog *[]uint32) uint32 {
	pos := uint32(len(*prog))
	hasChildren := n.l != nil || n.r != nil

	var entry uint32
	if hasChildren {
		entry = interiorBit
	} else {
		entry = n.payload
	}
	*prog = append(*prog, entry)

	if hasChildren {
		*prog = append(*prog, 0, 0)
		left := flatten(n.l, prog)
		right := flatten(n.r, prog)
		(*prog)[pos+1] = left
		(*prog)[pos+2] = right
	}
	return pos
}

// Walker tracks progress through one Huffman decode, one bit at a time.
type Walker struct {
	pos uint32
}

// Next advances the walk by one bit. It returns (value, true) once a
// leaf is reached, resetting the walker for the next decode.
//
// Ported from: VorbisHuffmanIter::next in lewton's huffman_tree.rs
func (t *Tree) Next(w *Walker, bit bool) (uint32, bool) {
	if t.single {
		return t.singleValue, true
	}
	idx := w.pos + 1
	if bit {
		idx++
	}
	w.pos = t.prog[idx]
	entry := t.prog[w.pos]
	if entry&interiorBit != 0 {
		return 0, false
	}
	w.pos = 0
	return entry, true
}

// SingleValue reports whether this tree is the single-entry special
// case and, if so, its lone value.
func (t *Tree) SingleValue() (uint32, bool) {
	return t.singleValue, t.single
}
