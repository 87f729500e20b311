// Package mdct implements the inverse modified discrete cosine
// transform (IMDCT) Vorbis uses to turn a decoded spectral floor*residue
// product back into time-domain samples.
//
// Ported from: imdct.rs in lewton
package mdct
