package bitpack

import (
	"math"
	"testing"

	"github.com/llehouerou/go-vorbis/internal/huffman"
)

// Ported from: the read_uN tests in lewton's bitpacking.rs, using the
// four-byte test array from the Vorbis I spec, section 2.1.6.
func TestReadUintSpecVector(t *testing.T) {
	data := []byte{0b11111100, 0b01001000, 0b11001110, 0b00000110}
	r := NewReader(data)

	if v, err := r.ReadUint(4); err != nil || v != 12 {
		t.Fatalf("read_u4 = %d, %v, want 12", v, err)
	}
	if v, err := r.ReadUint(3); err != nil || v != 7 {
		t.Fatalf("read_u3 = %d, %v, want 7", v, err)
	}
	if v, err := r.ReadUint(7); err != nil || v != 17 {
		t.Fatalf("read_u7 = %d, %v, want 17", v, err)
	}
	if v, err := r.ReadUint(13); err != nil || v != 6969 {
		t.Fatalf("read_u13 = %d, %v, want 6969", v, err)
	}
}

func TestReadUintCapturePattern(t *testing.T) {
	// The Ogg/Vorbis capture pattern byte 0x42, 0x43, 0x56 read
	// LSB-first as a 24-bit value is 0x564342.
	data := []byte{0x42, 0x43, 0x56}
	r := NewReader(data)
	v, err := r.ReadUint(24)
	if err != nil {
		t.Fatalf("ReadUint: %v", err)
	}
	if v != 0x564342 {
		t.Fatalf("got %#x, want %#x", v, 0x564342)
	}
}

func TestReadUintEndOfPacket(t *testing.T) {
	r := NewReader([]byte{0xff})
	if _, err := r.ReadUint(16); err != ErrEndOfPacket {
		t.Fatalf("got %v, want ErrEndOfPacket", err)
	}
}

func TestReadIntSignExtends(t *testing.T) {
	// 0b1111 as a 4-bit signed value is -1.
	r := NewReader([]byte{0b00001111})
	v, err := r.ReadInt(4)
	if err != nil {
		t.Fatalf("ReadInt: %v", err)
	}
	if v != -1 {
		t.Fatalf("got %d, want -1", v)
	}
}

func TestReadIntPositive(t *testing.T) {
	r := NewReader([]byte{0b00000011})
	v, err := r.ReadInt(4)
	if err != nil {
		t.Fatalf("ReadInt: %v", err)
	}
	if v != 3 {
		t.Fatalf("got %d, want 3", v)
	}
}

func le32Bytes(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// Ported from: the float32_unpack tests in lewton's bitpacking.rs.
func TestReadFloat32(t *testing.T) {
	cases := []struct {
		bits uint32
		want float32
	}{
		{0, 0},
		{1, 0},
		{1611661312, 1.0},
		{3780634624, -1530.0},
		{0x80000000, float32(math.Copysign(0, -1))},
		{1654652929, 2.0},
		{1653604352, 1048576.0},
		{3800039425, -1.0},
		{1654652927, 2097151.0},
	}
	for _, c := range cases {
		r := NewReader(le32Bytes(c.bits))
		got, err := r.ReadFloat32()
		if err != nil {
			t.Fatalf("ReadFloat32(%d): %v", c.bits, err)
		}
		if got != c.want && !(math.IsInf(float64(got), -1) && math.IsInf(float64(c.want), -1)) {
			t.Errorf("ReadFloat32(%d) = %v, want %v", c.bits, got, c.want)
		}
	}
}

func TestBitsLeft(t *testing.T) {
	r := NewReader([]byte{0, 0, 0})
	if r.BitsLeft() != 24 {
		t.Fatalf("got %d, want 24", r.BitsLeft())
	}
	if _, err := r.ReadUint(5); err != nil {
		t.Fatal(err)
	}
	if r.BitsLeft() != 19 {
		t.Fatalf("got %d, want 19", r.BitsLeft())
	}
}

// Ported from: read_huffman test coverage, against the official
// example codebook from the Vorbis I spec, section 3.2.1.
func TestReadHuffman(t *testing.T) {
	tree, err := huffman.Build([]uint8{2, 4, 4, 4, 4, 2, 3, 3})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Codeword for value 5 is "10", MSB-first on the wire; bitpack
	// is LSB-first so the wire byte carries bit0=1 (first bit read),
	// bit1=0 (second bit read).
	r := NewReader([]byte{0b00000001})
	v, err := r.ReadHuffman(tree)
	if err != nil {
		t.Fatalf("ReadHuffman: %v", err)
	}
	if v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
}

func TestReadBool(t *testing.T) {
	r := NewReader([]byte{0b00000101})
	b0, _ := r.ReadBool()
	b1, _ := r.ReadBool()
	b2, _ := r.ReadBool()
	if b0 != true || b1 != false || b2 != true {
		t.Fatalf("got %v %v %v, want true false true", b0, b1, b2)
	}
}
