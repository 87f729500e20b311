package setup

import "github.com/llehouerou/go-vorbis/internal/bitpack"

// readMode parses one entry of the setup header's mode list.
//
// Ported from: read_mode_info in lewton's header.rs
func readMode(r *bitpack.Reader, mappingCount uint8) (*Mode, error) {
	blockflag, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	windowType, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	transformType, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	mapping, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}

	if windowType != 0 || transformType != 0 || uint8(mapping) >= mappingCount {
		return nil, ErrHeaderBadFormat
	}

	return &Mode{BlockFlag: blockflag, Mapping: uint8(mapping)}, nil
}
