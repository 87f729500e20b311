package setup

import (
	"github.com/llehouerou/go-vorbis/internal/bitmath"
	"github.com/llehouerou/go-vorbis/internal/bitpack"
	"github.com/llehouerou/go-vorbis/internal/huffman"
	"github.com/llehouerou/go-vorbis/internal/tables"
)

// codebookSyncPattern is the 24-bit pattern every codebook begins with.
const codebookSyncPattern = 0x564342

// readCodebook parses one entry of the setup header's codebook list: a
// codeword-length vector (built into a Huffman tree) plus an optional VQ
// lookup table.
//
// Ported from: read_codebook in lewton's header.rs
func readCodebook(r *bitpack.Reader) (*Codebook, error) {
	sync, err := r.ReadUint(24)
	if err != nil {
		return nil, err
	}
	if sync != codebookSyncPattern {
		return nil, ErrHeaderBadFormat
	}

	dimensionsRaw, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	entriesRaw, err := r.ReadUint(24)
	if err != nil {
		return nil, err
	}
	entries, err := convertToUint32(entriesRaw)
	if err != nil {
		return nil, err
	}

	ordered, err := r.ReadBool()
	if err != nil {
		return nil, err
	}

	lengths := make([]uint8, entries)
	if !ordered {
		sparse, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		for i := range lengths {
			if sparse {
				present, err := r.ReadBool()
				if err != nil {
					return nil, err
				}
				if !present {
					continue
				}
			}
			l, err := r.ReadUint(5)
			if err != nil {
				return nil, err
			}
			lengths[i] = uint8(l) + 1
		}
	} else {
		l, err := r.ReadUint(5)
		if err != nil {
			return nil, err
		}
		currentLength := uint8(l) + 1
		var currentEntry uint32
		for currentEntry < entries {
			number, err := r.ReadUint(uint(bitmath.Ilog(uint64(entries - currentEntry))))
			if err != nil {
				return nil, err
			}
			if currentEntry+uint32(number) > entries {
				return nil, ErrHeaderBadFormat
			}
			for i := currentEntry; i < currentEntry+uint32(number); i++ {
				lengths[i] = currentLength
			}
			currentEntry += uint32(number)
			currentLength++
		}
	}

	tree, err := huffman.Build(lengths)
	if err != nil {
		return nil, ErrHeaderBadFormat
	}

	lookupType, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}
	if lookupType > 2 {
		return nil, ErrHeaderBadFormat
	}

	var vqVec []float32
	if lookupType != 0 {
		min, err := r.ReadFloat32()
		if err != nil {
			return nil, err
		}
		delta, err := r.ReadFloat32()
		if err != nil {
			return nil, err
		}
		valueBitsRaw, err := r.ReadUint(4)
		if err != nil {
			return nil, err
		}
		valueBits := uint(valueBitsRaw) + 1
		sequenceP, err := r.ReadBool()
		if err != nil {
			return nil, err
		}

		var lookupValues uint32
		if lookupType == 1 {
			lookupValues = tables.Lookup1Values(entries, uint16(dimensionsRaw))
		} else {
			v, err := convertToUint32(uint64(entries) * dimensionsRaw)
			if err != nil {
				return nil, err
			}
			lookupValues = v
		}

		multiplicands := make([]uint32, lookupValues)
		for i := range multiplicands {
			v, err := r.ReadUint(valueBits)
			if err != nil {
				return nil, err
			}
			multiplicands[i] = uint32(v)
		}

		vqVec = expandLookup(lookupType, multiplicands, min, delta, sequenceP, entries, uint16(dimensionsRaw))
	}

	return &Codebook{
		Dimensions:  uint16(dimensionsRaw),
		Entries:     entries,
		VqLookupVec: vqVec,
		HuffmanTree: tree,
	}, nil
}

// expandLookup materializes a VQ lookup codebook's multiplicand array
// into its full entries*dimensions vector of values.
//
// Ported from: lookup_vec_val_decode in lewton's header.rs
func expandLookup(lookupType uint64, multiplicands []uint32, min, delta float32, sequenceP bool, entries uint32, dim uint16) []float32 {
	out := make([]float32, 0, uint64(entries)*uint64(dim))
	lookupValues := uint32(len(multiplicands))

	if lookupType == 1 {
		for lookupOffset := uint32(0); lookupOffset < entries; lookupOffset++ {
			var last float32
			indexDivisor := uint32(1)
			for d := uint16(0); d < dim; d++ {
				multiplicandOffset := (lookupOffset / indexDivisor) % lookupValues
				elem := float32(multiplicands[multiplicandOffset])*delta + min + last
				if sequenceP {
					last = elem
				}
				out = append(out, elem)
				indexDivisor *= lookupValues
			}
		}
		return out
	}

	offset := uint32(0)
	for lookupOffset := uint32(0); lookupOffset < entries; lookupOffset++ {
		var last float32
		for d := uint16(0); d < dim; d++ {
			elem := float32(multiplicands[offset])*delta + min + last
			if sequenceP {
				last = elem
			}
			out = append(out, elem)
			offset++
		}
	}
	return out
}
