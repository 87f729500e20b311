// Package vorbis provides a pure Go decoder for the Vorbis I audio
// compression format.
//
// Given a framed Vorbis bitstream (the three setup headers followed by
// audio packets), it reconstructs per-channel PCM samples bit-exact
// with the Vorbis I specification. Framing (Ogg demuxing) is left to
// the caller; this package decodes packet payloads.
//
// # Basic Usage
//
// To decode a stream whose three header packets and audio packets have
// already been demuxed:
//
//	ident, _, setup, err := vorbis.DecodeHeaders(identPkt, commentPkt, setupPkt)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dec := vorbis.NewDecoder(ident, setup)
//
//	sink := vorbis.NewFloat32Samples(int(ident.Channels))
//	for _, packet := range audioPackets {
//	    if err := dec.DecodeAudio(packet, sink); err != nil {
//	        // A malformed packet rejects only itself; decoding may
//	        // continue with the next one.
//	        continue
//	    }
//	    // sink.Chans now holds this packet's per-channel samples.
//	}
//
// # Thread Safety
//
// A Decoder is owned by exactly one caller; it performs no internal
// locking and holds no package-level state. Multiple Decoder instances
// may run on independent goroutines provided none is shared.
//
// # Reference
//
// Ported from lewton (https://github.com/RustAudio/lewton), a Rust
// Vorbis I decoder, following the Vorbis I specification.
package vorbis
