package decode

import (
	"github.com/llehouerou/go-vorbis/internal/bitpack"
	"github.com/llehouerou/go-vorbis/internal/setup"
)

// ReadResidue decodes one mapping submap's residue vectors for every
// channel assigned to it. Residue type 2 is decoded as a single
// interleaved virtual channel and then deinterleaved back out, the
// way the Vorbis I specification's residue type 2 decode requires.
//
// Ported from: residue_packet_decode in lewton's audio.rs
func ReadResidue(r *bitpack.Reader, blocksize uint16, doNotDecode []bool, res *setup.Residue, codebooks []*setup.Codebook) ([][]float32, error) {
	ch := len(doNotDecode)
	vecSize := int(blocksize) / 2

	if res.Type != 2 {
		return residuePartitionsDecode(r, blocksize, doNotDecode, res, codebooks)
	}

	toDecode := false
	for _, skip := range doNotDecode {
		if !skip {
			toDecode = true
			break
		}
	}
	if !toDecode {
		out := make([][]float32, ch)
		for i := range out {
			out[i] = make([]float32, vecSize)
		}
		return out, nil
	}

	vectors, err := residuePartitionsDecode(r, blocksize*uint16(ch), []bool{false}, res, codebooks)
	if err != nil {
		return nil, err
	}
	interleaved := vectors[0]

	out := make([][]float32, ch)
	for j := 0; j < ch; j++ {
		deinterleaved := make([]float32, 0, vecSize)
		for i := j; i < len(interleaved); i += ch {
			deinterleaved = append(deinterleaved, interleaved[i])
		}
		out[j] = deinterleaved
	}
	return out, nil
}

// residuePartitionsDecode decodes the 8-pass partition-classification
// cascade for one residue packet, producing one zero-initialized vector
// per channel in doNotDecode and filling in the channels that aren't
// skipped. Running out of packet partway through is tolerated: the
// partially-filled vectors are returned rather than an error.
//
// Ported from: residue_packet_decode_inner in lewton's audio.rs
func residuePartitionsDecode(r *bitpack.Reader, curBlocksize uint16, doNotDecode []bool, res *setup.Residue, codebooks []*setup.Codebook) ([][]float32, error) {
	ch := len(doNotDecode)
	actualSize := int(curBlocksize) / 2

	// Older versions of the spec say max() here, but that was a bug,
	// fixed upstream since.
	limitBegin := min(int(res.Begin), actualSize)
	limitEnd := min(int(res.End), actualSize)

	classbook := codebooks[res.Classbook]
	classwordsPerCodeword := int(classbook.Dimensions)
	nToRead := limitEnd - limitBegin

	vectors := make([][]float32, ch)
	for i := range vectors {
		vectors[i] = make([]float32, actualSize)
	}

	if nToRead == 0 {
		return vectors, nil
	}
	if classwordsPerCodeword == 0 {
		// A value of 0 would make the classword loop below spin forever.
		return nil, ErrBadFormat
	}
	partitionsToRead := nToRead / int(res.PartitionSize)

	clStride := partitionsToRead + classwordsPerCodeword
	classifications := make([]uint32, ch*clStride)

pseudoReturn:
	for pass := 0; pass < 8; pass++ {
		partitionCount := 0
		for partitionCount < partitionsToRead {
			if pass == 0 {
				for j, skip := range doNotDecode {
					if skip {
						continue
					}
					temp, err := r.ReadHuffman(classbook.HuffmanTree)
					if err != nil {
						break pseudoReturn
					}
					for i := classwordsPerCodeword - 1; i >= 0; i-- {
						classifications[j*clStride+i+partitionCount] = temp % uint32(res.Classifications)
						temp /= uint32(res.Classifications)
					}
				}
			}
			for i := 0; i < classwordsPerCodeword; i++ {
				if partitionCount >= partitionsToRead {
					break
				}
				for j, skip := range doNotDecode {
					if skip {
						continue
					}
					offs := limitBegin + partitionCount*int(res.PartitionSize)
					vecJOffs := vectors[j][offs:]
					vqclass := classifications[j*clStride+partitionCount]
					vqbook, ok := res.Books[vqclass].Get(uint8(pass))
					if !ok {
						continue
					}
					codebook := codebooks[vqbook]
					if err := readResiduePartition(r, codebook, res, vecJOffs); err != nil {
						if err == bitpack.ErrEndOfPacket {
							break pseudoReturn
						}
						return nil, ErrBadFormat
					}
				}
				partitionCount++
			}
		}
	}

	return vectors, nil
}

// readResiduePartition decodes consecutive VQ codewords from codebook
// into vec: strided by codebook dimensions for residue type 0, and
// contiguous for types 1 and 2. Running out of packet mid-codeword is
// reported as bitpack.ErrEndOfPacket, which the caller treats as the
// normal end of this residue's data rather than a decode failure.
//
// Ported from: residue_packet_read_partition in lewton's audio.rs
func readResiduePartition(r *bitpack.Reader, codebook *setup.Codebook, res *setup.Residue, vec []float32) error {
	if res.Type == 0 {
		dim := int(codebook.Dimensions)
		step := int(res.PartitionSize) / dim
		for i := 0; i < step; i++ {
			entry, err := ReadHuffmanVQ(r, codebook)
			if err != nil {
				return err
			}
			for j, e := range entry {
				vec[i+j*step] += e
			}
		}
		return nil
	}

	partitionSize := int(res.PartitionSize)
	i := 0
	for i < partitionSize {
		entry, err := ReadHuffmanVQ(r, codebook)
		if err != nil {
			return err
		}
		if i+len(entry) > len(vec) {
			break
		}
		for k, e := range entry {
			vec[i+k] += e
		}
		i += len(entry)
	}
	return nil
}
