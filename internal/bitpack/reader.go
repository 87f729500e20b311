// Package bitpack implements the LSB-first bit cursor Vorbis packets are
// read through.
//
// Ported from: BitpackCursor in lewton's bitpacking.rs
package bitpack

import (
	"errors"
	"math"

	"github.com/llehouerou/go-vorbis/internal/huffman"
)

// ErrEndOfPacket is returned when a read runs past the end of the
// buffer. It is a normal condition while reading residues or floor-1
// Y coordinates and a fatal one while reading header fields or
// audio-packet framing bits.
var ErrEndOfPacket = errors.New("bitpack: end of packet")

// Reader is an LSB-first bit cursor over an immutable byte slice.
type Reader struct {
	data    []byte
	bytePos int
	bitPos  uint // next unread bit within data[bytePos], 0 = LSB
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// BitsLeft reports how many unread bits remain in the buffer.
func (r *Reader) BitsLeft() int64 {
	total := int64(len(r.data)) * 8
	consumed := int64(r.bytePos)*8 + int64(r.bitPos)
	if consumed > total {
		return 0
	}
	return total - consumed
}

// ReadUint reads n unsigned bits, 0 <= n <= 64, LSB-first.
//
// Ported from: read_dyn_uint / the read_uN! macro family in bitpacking.rs
func (r *Reader) ReadUint(n uint) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	var result uint64
	var gotten uint
	for gotten < n {
		if r.bytePos >= len(r.data) {
			return 0, ErrEndOfPacket
		}
		avail := 8 - r.bitPos
		need := n - gotten
		take := avail
		if need < take {
			take = need
		}
		chunk := (uint64(r.data[r.bytePos]) >> r.bitPos) & ((uint64(1) << take) - 1)
		result |= chunk << gotten
		gotten += take
		r.bitPos += take
		if r.bitPos == 8 {
			r.bitPos = 0
			r.bytePos++
		}
	}
	return result, nil
}

// ReadInt reads n bits and sign-extends the result, 0 <= n <= 64.
//
// Ported from: read_dyn_int in bitpacking.rs
func (r *Reader) ReadInt(n uint) (int64, error) {
	u, err := r.ReadUint(n)
	if err != nil {
		return 0, err
	}
	if n == 0 || n == 64 {
		return int64(u), nil
	}
	signBit := uint64(1) << (n - 1)
	if u&signBit != 0 {
		u -= signBit << 1
	}
	return int64(u), nil
}

// ReadBool reads a single bit as a boolean.
func (r *Reader) ReadBool() (bool, error) {
	u, err := r.ReadUint(1)
	if err != nil {
		return false, err
	}
	return u != 0, nil
}

// floatUnpackExponentBias is the exponent bias of the Vorbis packed
// float32 representation.
const floatUnpackExponentBias = 788

// ReadFloat32 reads 32 bits and unpacks them per the Vorbis packed
// float representation: a sign bit, a 10-bit biased exponent, and a
// 21-bit mantissa, combined as mantissa * 2^(exponent-788).
//
// Ported from: float32_unpack in lewton's bitpacking.rs
func (r *Reader) ReadFloat32() (float32, error) {
	bits, err := r.ReadUint(32)
	if err != nil {
		return 0, err
	}
	v := uint32(bits)
	mantissa := v & 0x1fffff
	sign := v & 0x80000000
	exponent := int32((v&0x7fe00000)>>21) - floatUnpackExponentBias
	ret := float64(mantissa) * math.Pow(2, float64(exponent))
	if sign != 0 {
		ret = -ret
	}
	return float32(ret), nil
}

// ReadHuffman walks tree one bit at a time and returns the decoded
// leaf value.
//
// Ported from: read_huffman in lewton's bitpacking.rs
func (r *Reader) ReadHuffman(tree *huffman.Tree) (uint32, error) {
	if v, ok := tree.SingleValue(); ok {
		if _, err := r.ReadBool(); err != nil {
			return 0, err
		}
		return v, nil
	}
	var w huffman.Walker
	for {
		bit, err := r.ReadBool()
		if err != nil {
			return 0, err
		}
		if v, ok := tree.Next(&w, bit); ok {
			return v, nil
		}
	}
}
