package decode

import (
	"github.com/llehouerou/go-vorbis/internal/bitmath"
	"github.com/llehouerou/go-vorbis/internal/bitpack"
	"github.com/llehouerou/go-vorbis/internal/setup"
	"github.com/llehouerou/go-vorbis/internal/tables"
)

// floor1Range is the Y-coordinate range selected by floor 1's
// class_subclass multiplier, indexed by multiplier-1.
var floor1Range = [4]uint16{256, 128, 86, 64}

// FloorOne holds one channel's decoded floor-1 Y coordinates for one
// audio packet.
type FloorOne struct {
	y     []uint32
	floor *setup.FloorTypeOne
}

// ReadFloorOne decodes one channel's floor-1 Y coordinates. Any read
// running past the end of the packet while decoding, including the
// leading nonzero flag, makes the channel's floor unused for this
// packet rather than an error.
//
// Ported from: floor_one_decode in lewton's audio.rs
func ReadFloorOne(r *bitpack.Reader, codebooks []*setup.Codebook, fl *setup.FloorTypeOne) (FloorOne, bool, error) {
	nonzero, err := r.ReadBool()
	if err != nil || !nonzero {
		return FloorOne{}, true, nil
	}

	rangeVal := floor1Range[fl.Multiplier-1]
	b := uint(bitmath.Ilog(uint64(rangeVal - 1)))

	y := make([]uint32, 0, len(fl.XList))
	y0, err := r.ReadUint(b)
	if err != nil {
		return FloorOne{}, true, nil
	}
	y1, err := r.ReadUint(b)
	if err != nil {
		return FloorOne{}, true, nil
	}
	y = append(y, uint32(y0), uint32(y1))

	for _, class := range fl.PartitionClass {
		cdim := fl.ClassDimensions[class]
		cbits := fl.ClassSubclasses[class]
		csub := uint32(1)<<cbits - 1

		var cval uint32
		if cbits > 0 {
			cbook := fl.ClassMasterbooks[class]
			v, err := r.ReadHuffman(codebooks[cbook].HuffmanTree)
			if err != nil {
				return FloorOne{}, true, nil
			}
			cval = v
		}

		for i := uint8(0); i < cdim; i++ {
			book := fl.SubclassBooks[class][cval&csub]
			cval >>= cbits
			if book >= 0 {
				v, err := r.ReadHuffman(codebooks[book].HuffmanTree)
				if err != nil {
					return FloorOne{}, true, nil
				}
				y = append(y, v)
			} else {
				y = append(y, 0)
			}
		}
	}

	return FloorOne{y: y, floor: fl}, false, nil
}

// ComputeCurve synthesizes floor-1's piecewise-linear dB curve over n
// frequency bins, given the channel's decoded Y coordinates.
//
// Ported from: floor_one_curve_synthesis in lewton's audio.rs
func (f *FloorOne) ComputeCurve(n uint16) []float32 {
	fl := f.floor
	finalY, step2Flag := computeFinalY(f.y, fl)

	finalYSorted := func(i int) uint32 { return finalY[fl.XListSorted[i].Index] }
	xListSorted := func(i int) uint32 { return fl.XListSorted[i].Value }
	step2FlagSorted := func(i int) bool { return step2Flag[fl.XListSorted[i].Index] }

	var hx, hy, lx uint32
	floorPoints := make([]uint32, 0, n)
	ly := finalYSorted(0) * uint32(fl.Multiplier)

	for i := 1; i < len(fl.XList); i++ {
		if step2FlagSorted(i) {
			hy = finalYSorted(i) * uint32(fl.Multiplier)
			hx = xListSorted(i)
			renderLine(lx, ly, hx, hy, &floorPoints)
			lx, ly = hx, hy
		}
	}

	if hx < uint32(n) {
		renderLine(hx, hy, uint32(n), hy, &floorPoints)
	} else if hx > uint32(n) {
		floorPoints = floorPoints[:n]
	}

	out := make([]float32, len(floorPoints))
	for i, idx := range floorPoints {
		out[i] = tables.Floor1InverseDB[idx]
	}
	return out
}

// computeFinalY derives floor-1's step-2 "final Y" curve points and
// which points survived step 2, the curve-amplitude computation from
// the Vorbis I specification's floor 1 decode.
//
// Ported from: floor_one_curve_compute_amplitude in lewton's audio.rs
func computeFinalY(floor1Y []uint32, fl *setup.FloorTypeOne) ([]uint32, []bool) {
	rangeVal := int32(floor1Range[fl.Multiplier-1])

	n := len(fl.XList)
	step2Flag := make([]bool, n)
	finalY := make([]uint32, n)
	step2Flag[0], step2Flag[1] = true, true
	finalY[0], finalY[1] = floor1Y[0], floor1Y[1]

	for i := 2; i < n; i++ {
		lowIdx, lowVal := LowNeighbor(fl.XList, i)
		highIdx, highVal := HighNeighbor(fl.XList, i)
		predicted := int32(renderPoint(lowVal, finalY[lowIdx], highVal, finalY[highIdx], fl.XList[i]))
		val := int32(floor1Y[i])
		highroom := rangeVal - predicted
		lowroom := predicted
		room := minInt32(highroom, lowroom) * 2

		if val > 0 {
			step2Flag[lowIdx] = true
			step2Flag[highIdx] = true
			step2Flag[i] = true
			if val >= room {
				if highroom > lowroom {
					finalY[i] = uint32(predicted + val - lowroom)
				} else {
					finalY[i] = uint32(predicted - val + highroom - 1)
				}
			} else {
				var half int32
				if val%2 == 1 {
					half = (-val - 1) >> 1
				} else {
					half = val >> 1
				}
				finalY[i] = uint32(predicted + half)
			}
		} else {
			finalY[i] = uint32(predicted)
			step2Flag[i] = false
		}
	}

	for i := range finalY {
		if finalY[i] > uint32(rangeVal-1) {
			finalY[i] = uint32(rangeVal - 1)
		}
	}

	return finalY, step2Flag
}

// renderPoint interpolates floor-1's Y value at x along the line from
// (x0,y0) to (x1,y1).
//
// Ported from: render_point in lewton's audio.rs
func renderPoint(x0, y0, x1, y1, x uint32) uint32 {
	dy := int32(y1) - int32(y0)
	adx := x1 - x0
	ady := uint32(absInt32(dy))
	errv := ady * (x - x0)
	off := errv / adx
	if dy < 0 {
		return y0 - off
	}
	return y0 + off
}

// renderLine rasterizes the line from (x0,y0) to (x1,y1) into *out, one
// point per integer x in [x0,x1).
//
// Ported from: render_line in lewton's audio.rs
func renderLine(x0, y0, x1, y1 uint32, out *[]uint32) {
	dy := int32(y1) - int32(y0)
	adx := int32(x1) - int32(x0)
	ady := absInt32(dy)
	base := dy / adx
	y := int32(y0)
	var errv int32
	sy := base
	if dy < 0 {
		sy--
	} else {
		sy++
	}
	ady -= absInt32(base) * adx
	*out = append(*out, uint32(y))
	for x := x0 + 1; x < x1; x++ {
		errv += ady
		if errv >= adx {
			errv -= adx
			y += sy
		} else {
			y += base
		}
		*out = append(*out, uint32(y))
	}
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
