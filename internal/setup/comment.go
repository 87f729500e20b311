package setup

import (
	"strings"
	"unicode/utf8"

	"github.com/llehouerou/go-vorbis/internal/bitpack"
)

// ReadComment parses the comment header: the encoder's vendor string and
// its list of "KEY=value" metadata entries.
//
// Ported from: read_header_comment in lewton's header.rs
func ReadComment(packet []byte) (*CommentHeader, error) {
	r := bitpack.NewReader(packet)
	hdID, err := readHeaderBegin(r)
	if err != nil {
		return nil, err
	}
	if hdID != 3 {
		return nil, &BadTypeError{Got: hdID}
	}

	vendorBytes, err := readByteVector(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(vendorBytes) {
		return nil, ErrUtf8Decode
	}

	count, err := r.ReadUint(32)
	if err != nil {
		return nil, err
	}

	comments := make([]Comment, 0, count)
	for i := uint64(0); i < count; i++ {
		raw, err := readByteVector(r)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(raw) {
			continue
		}
		s := string(raw)
		eq := strings.IndexByte(s, '=')
		if eq < 0 {
			continue
		}
		comments = append(comments, Comment{Key: s[:eq], Value: s[eq+1:]})
	}

	framing, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}
	if framing != 1 {
		return nil, ErrHeaderBadFormat
	}

	return &CommentHeader{Vendor: string(vendorBytes), Comments: comments}, nil
}

// readByteVector reads a u32 length prefix followed by that many raw
// bytes, byte-aligned (every comment-header field is).
func readByteVector(r *bitpack.Reader) ([]byte, error) {
	n, err := r.ReadUint(32)
	if err != nil {
		return nil, err
	}
	length, err := convertToUint32(n)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	for i := range buf {
		b, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		buf[i] = byte(b)
	}
	return buf, nil
}
