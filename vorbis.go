package vorbis

import "github.com/llehouerou/go-vorbis/internal/setup"

// IdentHeader is the identification header: the stream's basic format
// parameters. It carries the tables NewDecoder needs alongside a
// SetupHeader, so callers should treat it as opaque beyond its exported
// fields.
//
// Ported from: IdentHeader in lewton's header.rs
type IdentHeader struct {
	// Channels is the number of audio channels, 1-255.
	Channels uint8
	// SampleRate is the stream's sample rate in Hz.
	SampleRate uint32
	// BitrateMaximum, BitrateNominal, and BitrateMinimum are bitrate
	// hints from the encoder; 0 means "unset".
	BitrateMaximum int32
	BitrateNominal int32
	BitrateMinimum int32
	// BlockSize0 and BlockSize1 are the stream's two block-size
	// exponents (short and long), 6-13 with BlockSize0 <= BlockSize1.
	BlockSize0 uint8
	BlockSize1 uint8

	internal *setup.Ident
}

// Comment is one "KEY=value" metadata entry from a comment header.
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

// SetupHeader is the parsed codebook/floor/residue/mapping/mode tables
// that drive every audio packet of the stream. Its contents are private:
// a SetupHeader is only useful passed to NewDecoder.
//
// Ported from: SetupHeader in lewton's header.rs
type SetupHeader struct {
	internal *setup.Header
}
