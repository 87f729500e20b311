package setup

import "github.com/llehouerou/go-vorbis/internal/bitpack"

var vorbisMagic = [6]byte{'v', 'o', 'r', 'b', 'i', 's'}

// readHeaderBegin reads the packet-type byte and the six-byte "vorbis"
// capture pattern every header packet starts with, returning the type
// byte (the caller checks it's the type it expected: 1, 3, or 5).
//
// Ported from: read_header_begin_body! in lewton's header.rs
func readHeaderBegin(r *bitpack.Reader) (byte, error) {
	typ, err := r.ReadUint(8)
	if err != nil {
		return 0, err
	}
	if typ&1 == 0 {
		return 0, ErrHeaderIsAudio
	}
	for _, want := range vorbisMagic {
		got, err := r.ReadUint(8)
		if err != nil {
			return 0, err
		}
		if byte(got) != want {
			return 0, ErrNotVorbisHeader
		}
	}
	return byte(typ), nil
}

func convertToUint32(v uint64) (uint32, error) {
	u := uint32(v)
	if uint64(u) != v {
		return 0, ErrBufferNotAddressable
	}
	return u, nil
}
