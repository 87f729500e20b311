// Package filterbank computes Vorbis's per-packet window geometry and
// performs the overlap-add that turns two overlapping IMDCT outputs
// into one stream of non-overlapping samples.
//
// Ported from: the windowing-info and overlap-add code shared by
// get_decoded_sample_count and read_audio_packet_generic in lewton's
// audio.rs
package filterbank
