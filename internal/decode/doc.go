// Package decode reconstructs one audio packet's per-channel spectra:
// floor curve synthesis (types 0 and 1), residue decode (types 0, 1, 2),
// and the channel-coupling inverse transform.
//
// Ported from: audio.rs in lewton
package decode
