package decode

import (
	"math"

	"github.com/llehouerou/go-vorbis/internal/bitmath"
	"github.com/llehouerou/go-vorbis/internal/bitpack"
	"github.com/llehouerou/go-vorbis/internal/setup"
)

// FloorZero holds one channel's decoded floor-0 parameters for one audio
// packet.
type FloorZero struct {
	coefficients []float32
	amplitude    uint64
	floor        *setup.FloorTypeZero
}

// ReadFloorZero decodes one channel's floor-0 amplitude and LSP-like
// coefficients. unused reports that the packet carries no contribution
// for this channel (end of packet or a zero amplitude both count as
// "unused", not an error).
//
// Ported from: floor_zero_decode in lewton's audio.rs
func ReadFloorZero(r *bitpack.Reader, codebooks []*setup.Codebook, fl *setup.FloorTypeZero) (FloorZero, bool, error) {
	amplitude, err := r.ReadUint(uint(fl.AmplitudeBits))
	if err != nil || amplitude == 0 {
		return FloorZero{}, true, nil
	}

	bookNumber, err := r.ReadUint(uint(bitmath.Ilog(uint64(fl.NumberOfBooks))))
	if err != nil {
		return FloorZero{}, true, nil
	}
	if bookNumber >= uint64(len(fl.BookList)) {
		return FloorZero{}, false, ErrBadFormat
	}
	codebookIdx := fl.BookList[bookNumber]
	if int(codebookIdx) >= len(codebooks) {
		return FloorZero{}, false, ErrBadFormat
	}
	codebook := codebooks[codebookIdx]

	coefficients := make([]float32, 0, fl.Order)
	var last float32
	for len(coefficients) < int(fl.Order) {
		vec, verr := ReadHuffmanVQ(r, codebook)
		if verr != nil {
			if verr == bitpack.ErrEndOfPacket {
				return FloorZero{}, true, nil
			}
			return FloorZero{}, false, ErrBadFormat
		}

		filled := false
		var lastNew float32
		for _, e := range vec {
			coefficients = append(coefficients, float32(math.Cos(float64(last+e))))
			lastNew = e
			if len(coefficients) == int(fl.Order) {
				filled = true
				break
			}
		}
		if filled {
			break
		}
		last += lastNew
	}

	return FloorZero{coefficients: coefficients, amplitude: amplitude, floor: fl}, false, nil
}

// ComputeCurve synthesizes floor-0's linear-amplitude curve over n
// frequency bins.
//
// Ported from: floor_zero_compute_curve in lewton's audio.rs
func (f *FloorZero) ComputeCurve(blockflag bool, n uint16) []float32 {
	fl := f.floor
	idx := 0
	if blockflag {
		idx = 1
	}
	cosOmega := fl.CachedBarkCosOmega[idx]

	output := make([]float32, 0, n)
	lfvCommonTerm := float32(f.amplitude) * float32(fl.AmplitudeOffset) / float32((uint64(1)<<fl.AmplitudeBits)-1)

	var pUpper, qUpper int
	if fl.Order&1 == 1 {
		pUpper = (int(fl.Order) - 3) / 2
		qUpper = (int(fl.Order) - 1) / 2
	} else {
		v := (int(fl.Order) - 2) / 2
		pUpper, qUpper = v, v
	}

	i := 0
	for i < int(n) {
		omega := cosOmega[i]
		var p, q float32
		if fl.Order&1 == 1 {
			p = 1 - omega*omega
			q = 0.25
		} else {
			p = (1 - omega) / 2
			q = (1 + omega) / 2
		}
		for j := 0; j <= pUpper; j++ {
			pm := f.coefficients[2*j+1] - omega
			p *= 4 * pm * pm
		}
		for j := 0; j <= qUpper; j++ {
			qm := f.coefficients[2*j] - omega
			q *= 4 * qm * qm
		}

		arg := lfvCommonTerm/float32(math.Sqrt(float64(p+q))) - float32(fl.AmplitudeOffset)
		linear := float32(math.Exp(0.11512925 * float64(arg)))

		for i < int(n) && cosOmega[i] == omega {
			output = append(output, linear)
			i++
		}
	}
	return output
}
