package setup

import (
	"errors"
	"fmt"

	"github.com/llehouerou/go-vorbis/internal/bitpack"
)

// Sentinel errors returned while parsing the three Vorbis headers. The
// root package maps these onto its own Error taxonomy; they are not
// meant to be matched on by callers outside this module.
var (
	ErrNotVorbisHeader      = errors.New("setup: packet does not carry the vorbis capture pattern")
	ErrUnsupportedVersion   = errors.New("setup: unsupported vorbis_version")
	ErrHeaderIsAudio        = errors.New("setup: packet's low bit marks it as an audio packet")
	ErrHeaderBadFormat      = errors.New("setup: header violates the vorbis format")
	ErrUtf8Decode           = errors.New("setup: comment field is not valid utf-8")
	ErrBufferNotAddressable = errors.New("setup: computed buffer size does not fit this platform's address range")
)

// ErrEndOfPacket is returned when a header's fields run past the packet's
// end; this mirrors bitpack.ErrEndOfPacket but is named locally so header
// callers need not import bitpack just to compare errors.
var ErrEndOfPacket = bitpack.ErrEndOfPacket

// BadTypeError reports that a packet's header-type byte did not match the
// header type the caller asked for.
type BadTypeError struct {
	Got byte
}

func (e *BadTypeError) Error() string {
	return fmt.Sprintf("setup: unexpected header type %d", e.Got)
}
