package setup

import "github.com/llehouerou/go-vorbis/internal/bitpack"

// readResidue parses one entry of the setup header's residue list.
//
// Ported from: read_residue in lewton's header.rs
func readResidue(r *bitpack.Reader, codebooks []*Codebook) (*Residue, error) {
	typ, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	if typ > 2 {
		return nil, ErrHeaderBadFormat
	}

	begin, err := r.ReadUint(24)
	if err != nil {
		return nil, err
	}
	end, err := r.ReadUint(24)
	if err != nil {
		return nil, err
	}
	if begin > end {
		return nil, ErrHeaderBadFormat
	}

	partitionSizeRaw, err := r.ReadUint(24)
	if err != nil {
		return nil, err
	}
	partitionSize := uint32(partitionSizeRaw) + 1

	classificationsRaw, err := r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	classifications := uint8(classificationsRaw) + 1

	classbook, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}
	if classbook >= uint64(len(codebooks)) {
		return nil, ErrHeaderBadFormat
	}

	cascade := make([]uint8, classifications)
	for i := range cascade {
		low, err := r.ReadUint(3)
		if err != nil {
			return nil, err
		}
		flag, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		var high uint64
		if flag {
			high, err = r.ReadUint(5)
			if err != nil {
				return nil, err
			}
		}
		cascade[i] = uint8(high<<3) | uint8(low)
	}

	books := make([]ResidueBook, classifications)
	for i, c := range cascade {
		b, err := readResidueBook(r, c, codebooks)
		if err != nil {
			return nil, err
		}
		books[i] = b
	}

	return &Residue{
		Type:            uint8(typ),
		Begin:           uint32(begin),
		End:             uint32(end),
		PartitionSize:   partitionSize,
		Classifications: classifications,
		Classbook:       uint8(classbook),
		Books:           books,
	}, nil
}

// readResidueBook reads the (up to 8) codebook indices one residue
// classification's cascade passes use.
//
// Ported from: ResidueBook::read_book in lewton's header.rs. Note the
// upstream loop only covers passes 0..6 (7 of the 8 cascade bits); the
// eighth pass, when its cascade bit is set, is never read from the
// bitstream and decodes using a zero-valued book index instead. Real
// encoders rarely emit eight cascade passes, so this has not been
// observed to matter in practice; matched here for bit-exact parity with
// the reference decoder this format was implemented against.
func readResidueBook(r *bitpack.Reader, valsUsed uint8, codebooks []*Codebook) (ResidueBook, error) {
	var valI [8]uint8
	for i := uint8(0); i < 7; i++ {
		if valsUsed&(1<<i) == 0 {
			continue
		}
		v, err := r.ReadUint(8)
		if err != nil {
			return ResidueBook{}, err
		}
		idx := int(v)
		if idx >= len(codebooks) || codebooks[idx].VqLookupVec == nil {
			return ResidueBook{}, ErrHeaderBadFormat
		}
		valI[i] = uint8(v)
	}
	return ResidueBook{valsUsed: valsUsed, valI: valI}, nil
}
