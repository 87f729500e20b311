package decode

import (
	"errors"

	"github.com/llehouerou/go-vorbis/internal/bitpack"
	"github.com/llehouerou/go-vorbis/internal/setup"
)

// ErrNoVqLookup is returned when a Huffman codeword decoded during audio
// decode names a codebook with no attached VQ lookup table.
var ErrNoVqLookup = errors.New("decode: codebook has no vq lookup table")

// ReadHuffmanVQ decodes one Huffman codeword from cb and returns its
// attached dimensions-wide VQ vector.
//
// Ported from: read_huffman_vq in lewton's audio.rs
func ReadHuffmanVQ(r *bitpack.Reader, cb *setup.Codebook) ([]float32, error) {
	idx, err := r.ReadHuffman(cb.HuffmanTree)
	if err != nil {
		return nil, err
	}
	if cb.VqLookupVec == nil {
		return nil, ErrNoVqLookup
	}
	dim := int(cb.Dimensions)
	start := int(idx) * dim
	if start+dim > len(cb.VqLookupVec) {
		return nil, ErrNoVqLookup
	}
	return cb.VqLookupVec[start : start+dim], nil
}
