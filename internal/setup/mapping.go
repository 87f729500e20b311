package setup

import "github.com/llehouerou/go-vorbis/internal/bitpack"

// readMapping parses one entry of the setup header's mapping list.
//
// Ported from: read_mapping in lewton's header.rs
func readMapping(r *bitpack.Reader, audioChanIlog uint8, audioChannels uint8, floorCount, residueCount uint8) (*Mapping, error) {
	typ, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	if typ != 0 {
		return nil, ErrHeaderBadFormat
	}

	hasSubmaps, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	submaps := uint8(1)
	if hasSubmaps {
		v, err := r.ReadUint(4)
		if err != nil {
			return nil, err
		}
		submaps = uint8(v) + 1
	}

	hasCoupling, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	var couplingSteps uint16
	if hasCoupling {
		v, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		couplingSteps = uint16(v) + 1
	}

	magnitudes := make([]uint8, couplingSteps)
	angles := make([]uint8, couplingSteps)
	for i := range magnitudes {
		m, err := r.ReadUint(uint(audioChanIlog))
		if err != nil {
			return nil, err
		}
		a, err := r.ReadUint(uint(audioChanIlog))
		if err != nil {
			return nil, err
		}
		if m == a || uint8(m) >= audioChannels || uint8(a) >= audioChannels {
			return nil, ErrHeaderBadFormat
		}
		magnitudes[i] = uint8(m)
		angles[i] = uint8(a)
	}

	reserved, err := r.ReadUint(2)
	if err != nil {
		return nil, err
	}
	if reserved != 0 {
		return nil, ErrHeaderBadFormat
	}

	mux := make([]uint8, audioChannels)
	if submaps > 1 {
		for i := range mux {
			v, err := r.ReadUint(4)
			if err != nil {
				return nil, err
			}
			if uint8(v) >= submaps {
				return nil, ErrHeaderBadFormat
			}
			mux[i] = uint8(v)
		}
	}

	floors := make([]uint8, submaps)
	residues := make([]uint8, submaps)
	for i := range floors {
		if _, err := r.ReadUint(8); err != nil {
			return nil, err
		}
		f, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		res, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		if uint8(f) >= floorCount || uint8(res) >= residueCount {
			return nil, ErrHeaderBadFormat
		}
		floors[i] = uint8(f)
		residues[i] = uint8(res)
	}

	return &Mapping{
		Submaps:        submaps,
		Magnitudes:     magnitudes,
		Angles:         angles,
		Mux:            mux,
		SubmapFloors:   floors,
		SubmapResidues: residues,
	}, nil
}
