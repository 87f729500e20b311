// Package setup parses the three Vorbis headers (identification,
// comment, setup) that precede every audio packet in a stream.
//
// Ported from: header.rs in lewton
package setup

import (
	"github.com/llehouerou/go-vorbis/internal/huffman"
	"github.com/llehouerou/go-vorbis/internal/tables"
)

// Ident is the identification header: basic stream parameters plus the
// per-block-size tables derived from BlockSize0/BlockSize1.
//
// Ported from: IdentHeader in lewton's header.rs
type Ident struct {
	AudioChannels    uint8
	AudioSampleRate  uint32
	BitrateMaximum   int32
	BitrateNominal   int32
	BitrateMinimum   int32
	BlockSize0       uint8
	BlockSize1       uint8
	CachedBlockSizes [2]tables.BlockSize
}

// Comment is a key/value pair from the comment header's comment list.
type Comment struct {
	Key   string
	Value string
}

// CommentHeader is the comment header: the encoder's vendor string plus
// its list of metadata comments.
//
// Ported from: CommentHeader in lewton's header.rs
type CommentHeader struct {
	Vendor   string
	Comments []Comment
}

// Codebook is one entry of the setup header's codebook list: a Huffman
// tree over Entries codewords, plus an optional VQ lookup table mapping
// each codeword to a Dimensions-wide vector of values.
//
// Ported from: Codebook in lewton's header.rs
type Codebook struct {
	Dimensions uint16
	Entries    uint32

	// VqLookupVec is nil if the codebook has lookup type 0 (a pure
	// entropy-coding codebook with no attached vector values).
	VqLookupVec []float32

	HuffmanTree *huffman.Tree
}

// Floor is either a FloorTypeZero or a FloorTypeOne.
//
// Ported from: Floor in lewton's header.rs
type Floor interface {
	isFloor()
}

// FloorTypeZero is a type-0 floor: an LSP-like curve reconstructed from
// Order cosine coefficients, synthesized over a precomputed bark-scale
// frequency map.
//
// Ported from: FloorTypeZero in lewton's header.rs
type FloorTypeZero struct {
	Order           uint8
	Rate            uint16
	BarkMapSize     uint16
	AmplitudeBits   uint8
	AmplitudeOffset uint8
	NumberOfBooks   uint8
	BookList        []uint8

	// CachedBarkCosOmega holds the bark-map cos(omega) precomputation
	// for each of the stream's two block sizes (short, long).
	CachedBarkCosOmega [2][]float32
}

func (*FloorTypeZero) isFloor() {}

// FloorTypeOne is a type-1 floor: a piecewise-linear curve over the dB
// scale, interpolated between (X, Y) points whose X coordinates are
// fixed by the header and whose Y coordinates are read per packet.
//
// Ported from: FloorTypeOne in lewton's header.rs
type FloorTypeOne struct {
	Multiplier       uint8
	PartitionClass   []uint8
	ClassDimensions  []uint8
	ClassSubclasses  []uint8
	SubclassBooks    [][]int16
	ClassMasterbooks []uint8
	XList            []uint32

	// XListSorted pairs each XList index with its value, sorted by
	// value; floor curve synthesis walks points in X order but floor1_
	// final_y is indexed by the original (unsorted) position.
	XListSorted []XListEntry
}

func (*FloorTypeOne) isFloor() {}

// XListEntry is one (original index, X value) pair of a sorted XList.
type XListEntry struct {
	Index int
	Value uint32
}

// ResidueBook holds, for one residue partition class, the (up to 8)
// codebook indices used across its cascade passes. A pass with no
// codebook is skipped during residue decode.
//
// Ported from: ResidueBook in lewton's header.rs
type ResidueBook struct {
	valsUsed uint8
	valI     [8]uint8
}

// Get returns the codebook index for pass i (0 <= i < 8) and whether
// that pass is used at all.
func (b ResidueBook) Get(i uint8) (uint8, bool) {
	if b.valsUsed&(1<<i) == 0 {
		return 0, false
	}
	return b.valI[i], true
}

// Residue is one entry of the setup header's residue list.
//
// Ported from: Residue in lewton's header.rs
type Residue struct {
	Type            uint8
	Begin           uint32
	End             uint32
	PartitionSize   uint32
	Classifications uint8
	Classbook       uint8
	Books           []ResidueBook
}

// Mapping is one entry of the setup header's mapping list: it assigns
// each audio channel to a submap (a floor + residue pair) and lists the
// channel-coupling steps applied before residue decode.
//
// Ported from: Mapping in lewton's header.rs
type Mapping struct {
	Submaps        uint8
	Magnitudes     []uint8
	Angles         []uint8
	Mux            []uint8
	SubmapFloors   []uint8
	SubmapResidues []uint8
}

// Mode is one entry of the setup header's mode list: it selects a block
// size (via BlockFlag) and a Mapping.
//
// Ported from: ModeInfo in lewton's header.rs
type Mode struct {
	BlockFlag bool
	Mapping   uint8
}

// Header is the fully parsed setup header.
//
// Ported from: SetupHeader in lewton's header.rs
type Header struct {
	Codebooks []*Codebook
	Floors    []Floor
	Residues  []*Residue
	Mappings  []*Mapping
	Modes     []*Mode
}
