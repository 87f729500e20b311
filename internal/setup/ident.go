package setup

import (
	"github.com/llehouerou/go-vorbis/internal/bitpack"
	"github.com/llehouerou/go-vorbis/internal/tables"
)

// ReadIdent parses the identification header, the first packet of every
// Vorbis stream. If it returns an error, the whole stream is undecodable.
//
// Ported from: read_header_ident in lewton's header.rs
func ReadIdent(packet []byte) (*Ident, error) {
	r := bitpack.NewReader(packet)
	hdID, err := readHeaderBegin(r)
	if err != nil {
		return nil, err
	}
	if hdID != 1 {
		return nil, &BadTypeError{Got: hdID}
	}

	version, err := r.ReadUint(32)
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, ErrUnsupportedVersion
	}

	channels, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}
	sampleRate, err := r.ReadUint(32)
	if err != nil {
		return nil, err
	}
	bitrateMax, err := r.ReadInt(32)
	if err != nil {
		return nil, err
	}
	bitrateNom, err := r.ReadInt(32)
	if err != nil {
		return nil, err
	}
	bitrateMin, err := r.ReadInt(32)
	if err != nil {
		return nil, err
	}
	bs0, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}
	bs1, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}
	framing, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}

	if bs0 < 6 || bs0 > 13 || bs1 < 6 || bs1 > 13 ||
		framing != 1 || bs0 > bs1 ||
		channels == 0 || sampleRate == 0 {
		return nil, ErrHeaderBadFormat
	}

	return &Ident{
		AudioChannels:   uint8(channels),
		AudioSampleRate: uint32(sampleRate),
		BitrateMaximum:  int32(bitrateMax),
		BitrateNominal:  int32(bitrateNom),
		BitrateMinimum:  int32(bitrateMin),
		BlockSize0:      uint8(bs0),
		BlockSize1:      uint8(bs1),
		CachedBlockSizes: [2]tables.BlockSize{
			tables.NewBlockSize(uint8(bs0)),
			tables.NewBlockSize(uint8(bs1)),
		},
	}, nil
}
