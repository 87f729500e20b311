package vorbis

// Error is a Vorbis decoder error code, covering both header-phase and
// audio-phase failures.
type Error int

// Error codes. Header-phase errors are fatal to the whole stream;
// audio-phase errors reject only the packet that triggered them.
const (
	// ErrNotVorbisHeader is returned when a header packet's type byte
	// isn't followed by the "vorbis" capture pattern.
	ErrNotVorbisHeader Error = iota + 1
	// ErrUnsupportedVorbisVersion is returned when the identification
	// header's vorbis_version field isn't 0.
	ErrUnsupportedVorbisVersion
	// ErrHeaderBadType is returned when a header packet's type byte
	// isn't the 1/3/5 the caller asked to parse.
	ErrHeaderBadType
	// ErrHeaderBadFormat is returned for any other structural
	// violation discovered while parsing a header packet.
	ErrHeaderBadFormat
	// ErrHeaderIsAudio is returned when DecodeHeaders is handed an
	// audio packet instead of a header packet.
	ErrHeaderIsAudio
	// ErrUtf8Decode is returned when the comment header's vendor
	// string isn't valid UTF-8. Individual malformed comment entries
	// are silently skipped instead, matching lewton's
	// read_header_comment.
	ErrUtf8Decode
	// ErrAudioIsHeader is returned when DecodeAudio is handed a header
	// packet instead of an audio packet.
	ErrAudioIsHeader
	// ErrAudioBadFormat is returned for a structural violation
	// discovered while decoding an audio packet. The packet is
	// rejected; the decoder's overlap state is reset since it is no
	// longer consistent.
	ErrAudioBadFormat
	// ErrEndOfPacket is returned when a header packet ends before all of
	// its fields are read, or when an audio packet's framing fields
	// (the header bit, mode number, window flags) run past the end of
	// the packet. For audio this is fatal for framing, unlike the same condition
	// encountered while reading a floor or residue, which is tolerated
	// internally and never surfaces as an error.
	ErrEndOfPacket
	// ErrBufferNotAddressable is returned when a size computed from
	// the bitstream exceeds what fits in this platform's address
	// range. It's a resource error, not a stream error.
	ErrBufferNotAddressable
)

var errMessages = map[Error]string{
	ErrNotVorbisHeader:          "packet does not carry the vorbis capture pattern",
	ErrUnsupportedVorbisVersion: "unsupported vorbis_version",
	ErrHeaderBadType:            "header packet type does not match what was expected",
	ErrHeaderBadFormat:          "header violates the vorbis format",
	ErrHeaderIsAudio:            "expected a header packet, got an audio packet",
	ErrUtf8Decode:               "comment header vendor string is not valid utf-8",
	ErrAudioIsHeader:            "expected an audio packet, got a header packet",
	ErrAudioBadFormat:           "audio packet violates the vorbis format",
	ErrEndOfPacket:              "packet ended before its framing fields were fully read",
	ErrBufferNotAddressable:     "computed buffer size does not fit this platform's address range",
}

// Error implements the error interface.
func (e Error) Error() string {
	if msg, ok := errMessages[e]; ok {
		return msg
	}
	return "unknown vorbis error"
}
