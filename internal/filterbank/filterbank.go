package filterbank

import "errors"

// ErrBadFormat signals a previous-window length longer than the
// current window's slope table, a condition lewton's audio.rs rejects
// as undecodable that can only be discovered at overlap-add time.
var ErrBadFormat = errors.New("filterbank: window geometry is undecodable")

// Geometry describes one audio packet's window boundaries: where its
// left edge overlaps the previous packet's trailing half, and where its
// own trailing half begins for the next packet to overlap against.
//
// Ported from: the windowing-info computation shared by
// get_decoded_sample_count and read_audio_packet_generic in lewton's
// audio.rs
type Geometry struct {
	LeftStart, LeftEnd int
	LeftN              int
	LeftUseBS1         bool
	RightStart, RightEnd int
}

// ComputeGeometry derives a packet's window geometry. n is the block's
// sample count (1<<blockSizeLog) and bs0Exp is 1<<ident.BlockSize0.
// prevWinFlag and nextWinFlag are read from the packet only when
// modeBlockflag selects the long block; for a short-block mode both
// default to true (a short block always overlaps symmetrically).
func ComputeGeometry(n, bs0Exp int, modeBlockflag, prevWinFlag, nextWinFlag bool) Geometry {
	windowCenter := n >> 1

	var leftStart, leftEnd, leftN int
	leftUseBS1 := modeBlockflag
	if !modeBlockflag || prevWinFlag {
		leftStart, leftEnd, leftN = 0, windowCenter, n>>1
	} else {
		leftStart = (n - bs0Exp) >> 2
		leftEnd = (n + bs0Exp) >> 2
		leftN = bs0Exp >> 1
		leftUseBS1 = false
	}

	var rightStart, rightEnd int
	if !modeBlockflag || nextWinFlag {
		rightStart, rightEnd = windowCenter, n
	} else {
		rightStart = (n*3 - bs0Exp) >> 2
		rightEnd = (n*3 + bs0Exp) >> 2
	}

	return Geometry{
		LeftStart: leftStart, LeftEnd: leftEnd, LeftN: leftN, LeftUseBS1: leftUseBS1,
		RightStart: rightStart, RightEnd: rightEnd,
	}
}

// DecodedSampleCount reports how many samples one channel of this
// window contributes once overlap-add trims it down, without needing
// any decoded audio data.
//
// Ported from: get_decoded_sample_count in lewton's audio.rs
func (g Geometry) DecodedSampleCount() int {
	return g.RightStart - g.LeftStart
}

// OverlapAdd windows chanData's left edge against prevRight (the tail
// kept from the previous window, or nil on the first packet of a
// stream after a reset) and trims the result down to the
// non-overlapping region. It returns the trimmed samples (a subslice
// of chanData, reusing its storage) and the new tail to pass as
// prevRight for the following packet.
//
// Ported from: the overlap-add block in read_audio_packet_generic in
// lewton's audio.rs
func OverlapAdd(chanData, prevRight, winSlope []float32, g Geometry) (trimmed, future []float32, err error) {
	if prevRight == nil {
		future = append([]float32(nil), chanData[g.RightStart:g.RightEnd]...)
		return chanData[:0], future, nil
	}

	plen := len(prevRight)
	if len(winSlope) < plen {
		// Can be triggered by a malformed stream: a long block's
		// previous tail is longer than this block's short slope table.
		return nil, nil, ErrBadFormat
	}
	slope := winSlope[:plen]

	for i := 0; i < plen; i++ {
		v := chanData[g.LeftStart+i]
		chanData[g.LeftStart+i] = v*slope[i] + prevRight[i]*slope[plen-1-i]
	}

	future = append([]float32(nil), chanData[g.RightStart:g.RightEnd]...)

	if g.LeftStart > 0 {
		for i := 0; i < g.RightStart-g.LeftStart; i++ {
			chanData[i] = chanData[i+g.LeftStart]
		}
	}

	return chanData[:g.RightStart-g.LeftStart], future, nil
}
