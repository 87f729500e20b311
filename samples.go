package vorbis

import "github.com/llehouerou/go-vorbis/internal/output"

// Samples is the sample-sink capability an audio-packet decode writes
// its result through: convert a per-channel vector of floats in
// [-1, 1] into the caller's chosen PCM representation, and support
// truncating it to a shorter length. DecodeAudio is written against
// this interface so the core never branches on sample type or channel
// layout.
//
// Ported from: the Samples trait in lewton's samples.rs
type Samples interface {
	// FromFloats replaces the sink's contents with floats, one slice
	// per channel.
	FromFloats(floats [][]float32)
	// Truncate drops every channel's samples beyond limit.
	Truncate(limit int)
	// NumSamples reports the per-channel sample count currently held.
	NumSamples() int
}

// Float32Samples is a planar (non-interleaved) float32 PCM sink: one
// []float32 slice per channel, samples in [-1, 1].
type Float32Samples = output.FloatPlanar

// NewFloat32Samples allocates a planar float32 sink for channels
// channels.
func NewFloat32Samples(channels int) *Float32Samples {
	return output.NewFloatPlanar(channels)
}

// Int16Samples is a planar (non-interleaved) 16-bit signed PCM sink:
// one []int16 slice per channel.
type Int16Samples = output.Int16Planar

// NewInt16Samples allocates a planar int16 sink for channels channels.
func NewInt16Samples(channels int) *Int16Samples {
	return output.NewInt16Planar(channels)
}

// InterleavedFloat32Samples is an interleaved float32 PCM sink: Data
// holds Channels-wide frames back to back.
type InterleavedFloat32Samples = output.FloatInterleaved

// NewInterleavedFloat32Samples allocates an interleaved float32 sink.
// Its channel count is set on the first call to FromFloats.
func NewInterleavedFloat32Samples() *InterleavedFloat32Samples {
	return &output.FloatInterleaved{}
}

// InterleavedInt16Samples is an interleaved 16-bit signed PCM sink:
// Data holds Channels-wide frames back to back.
type InterleavedInt16Samples = output.Int16Interleaved

// NewInterleavedInt16Samples allocates an interleaved int16 sink. Its
// channel count is set on the first call to FromFloats.
func NewInterleavedInt16Samples() *InterleavedInt16Samples {
	return &output.Int16Interleaved{}
}
