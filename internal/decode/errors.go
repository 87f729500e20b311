package decode

import "errors"

// ErrBadFormat signals a structural violation discovered while decoding
// an audio packet's floor or residue data, the same undecodable-packet
// condition lewton's audio.rs rejects. The root package maps this onto
// its AudioBadFormat error.
var ErrBadFormat = errors.New("decode: audio packet is undecodable")
