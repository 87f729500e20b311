package setup

import (
	"github.com/llehouerou/go-vorbis/internal/bitmath"
	"github.com/llehouerou/go-vorbis/internal/bitpack"
)

// ReadSetup parses the setup header, the third and last header packet of
// every Vorbis stream. audioChannels, bs0 and bs1 come from the stream's
// already-parsed identification header.
//
// Ported from: read_header_setup in lewton's header.rs
func ReadSetup(packet []byte, audioChannels uint8, bs0, bs1 uint8) (*Header, error) {
	r := bitpack.NewReader(packet)
	hdID, err := readHeaderBegin(r)
	if err != nil {
		return nil, err
	}
	if hdID != 5 {
		return nil, &BadTypeError{Got: hdID}
	}

	audioChanIlog := bitmath.Ilog(uint64(audioChannels - 1))

	cbCountRaw, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}
	codebookCount := uint16(cbCountRaw) + 1
	codebooks := make([]*Codebook, codebookCount)
	for i := range codebooks {
		cb, err := readCodebook(r)
		if err != nil {
			return nil, err
		}
		codebooks[i] = cb
	}

	timeCountRaw, err := r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	timeCount := uint8(timeCountRaw) + 1
	for i := uint8(0); i < timeCount; i++ {
		v, err := r.ReadUint(16)
		if err != nil {
			return nil, err
		}
		if v != 0 {
			return nil, ErrHeaderBadFormat
		}
	}

	floorCountRaw, err := r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	floorCount := uint8(floorCountRaw) + 1
	floors := make([]Floor, floorCount)
	for i := range floors {
		fl, err := readFloor(r, codebookCount, bs0, bs1)
		if err != nil {
			return nil, err
		}
		floors[i] = fl
	}

	residueCountRaw, err := r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	residueCount := uint8(residueCountRaw) + 1
	residues := make([]*Residue, residueCount)
	for i := range residues {
		res, err := readResidue(r, codebooks)
		if err != nil {
			return nil, err
		}
		residues[i] = res
	}

	mappingCountRaw, err := r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	mappingCount := uint8(mappingCountRaw) + 1
	mappings := make([]*Mapping, mappingCount)
	for i := range mappings {
		m, err := readMapping(r, audioChanIlog, audioChannels, floorCount, residueCount)
		if err != nil {
			return nil, err
		}
		mappings[i] = m
	}

	modeCountRaw, err := r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	modeCount := uint8(modeCountRaw) + 1
	modes := make([]*Mode, modeCount)
	for i := range modes {
		md, err := readMode(r, mappingCount)
		if err != nil {
			return nil, err
		}
		modes[i] = md
	}

	framing, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !framing {
		return nil, ErrHeaderBadFormat
	}

	return &Header{
		Codebooks: codebooks,
		Floors:    floors,
		Residues:  residues,
		Mappings:  mappings,
		Modes:     modes,
	}, nil
}
