package vorbis

import (
	"errors"

	"github.com/llehouerou/go-vorbis/internal/bitmath"
	"github.com/llehouerou/go-vorbis/internal/bitpack"
	"github.com/llehouerou/go-vorbis/internal/decode"
	"github.com/llehouerou/go-vorbis/internal/filterbank"
	"github.com/llehouerou/go-vorbis/internal/mdct"
	"github.com/llehouerou/go-vorbis/internal/setup"
)

// DecodeHeaders parses a stream's three header packets, in order, into
// the tables NewDecoder needs.
//
// Ported from: the header-reading calls in lewton's inside_ogg.rs
func DecodeHeaders(identBytes, commentBytes, setupBytes []byte) (*IdentHeader, *CommentHeader, *SetupHeader, error) {
	ident, err := setup.ReadIdent(identBytes)
	if err != nil {
		return nil, nil, nil, mapHeaderErr(err)
	}
	comment, err := setup.ReadComment(commentBytes)
	if err != nil {
		return nil, nil, nil, mapHeaderErr(err)
	}
	hdr, err := setup.ReadSetup(setupBytes, ident.AudioChannels, ident.BlockSize0, ident.BlockSize1)
	if err != nil {
		return nil, nil, nil, mapHeaderErr(err)
	}

	comments := make([]Comment, len(comment.Comments))
	for i, c := range comment.Comments {
		comments[i] = Comment{Key: c.Key, Value: c.Value}
	}

	return &IdentHeader{
			Channels:       ident.AudioChannels,
			SampleRate:     ident.AudioSampleRate,
			BitrateMaximum: ident.BitrateMaximum,
			BitrateNominal: ident.BitrateNominal,
			BitrateMinimum: ident.BitrateMinimum,
			BlockSize0:     ident.BlockSize0,
			BlockSize1:     ident.BlockSize1,
			internal:       ident,
		},
		&CommentHeader{Vendor: comment.Vendor, Comments: comments},
		&SetupHeader{internal: hdr},
		nil
}

// mapHeaderErr translates internal/setup's sentinel errors onto this
// package's Error taxonomy.
func mapHeaderErr(err error) error {
	var badType *setup.BadTypeError
	switch {
	case errors.As(err, &badType):
		return ErrHeaderBadType
	case errors.Is(err, setup.ErrNotVorbisHeader):
		return ErrNotVorbisHeader
	case errors.Is(err, setup.ErrUnsupportedVersion):
		return ErrUnsupportedVorbisVersion
	case errors.Is(err, setup.ErrHeaderIsAudio):
		return ErrHeaderIsAudio
	case errors.Is(err, setup.ErrUtf8Decode):
		return ErrUtf8Decode
	case errors.Is(err, setup.ErrBufferNotAddressable):
		return ErrBufferNotAddressable
	case errors.Is(err, setup.ErrEndOfPacket):
		return ErrEndOfPacket
	default:
		return ErrHeaderBadFormat
	}
}

// mapAudioErr translates an error raised while decoding an audio
// packet's framing, floor, residue, or window geometry onto this
// package's Error taxonomy. Every one of these is a per-packet reject.
func mapAudioErr(err error) error {
	switch {
	case errors.Is(err, bitpack.ErrEndOfPacket):
		return ErrEndOfPacket
	default:
		return ErrAudioBadFormat
	}
}

// Decoder decodes a single Vorbis logical stream's audio packets. It
// holds the stream's immutable header tables plus the one piece of
// state that changes packet to packet: the previous packet's trailing
// overlap half.
//
// Ported from: the ident/setup/PreviousWindowRight trio threaded
// through lewton's audio.rs
type Decoder struct {
	ident    *setup.Ident
	setupHdr *setup.Header

	hasPrev   bool
	prevRight [][]float32
}

// NewDecoder builds a Decoder from a stream's identification and setup
// headers. The returned Decoder starts with no overlap state primed:
// its first DecodeAudio call emits no samples.
func NewDecoder(ident *IdentHeader, setupHdr *SetupHeader) *Decoder {
	return &Decoder{
		ident:     ident.internal,
		setupHdr:  setupHdr.internal,
		prevRight: make([][]float32, ident.Channels),
	}
}

// ResetOverlap discards the decoder's inter-packet overlap state. Call
// this after a seek, or after an audio error, so that the next
// DecodeAudio call starts as if from a fresh stream (emitting no
// samples for that first packet).
func (d *Decoder) ResetOverlap() {
	d.hasPrev = false
	for i := range d.prevRight {
		d.prevRight[i] = nil
	}
}

// decodedFloor is one channel's floor decode result for one packet:
// either unused, or a synthesizable curve of one of the two floor
// kinds.
type decodedFloor struct {
	unused bool
	zero   decode.FloorZero
	one    decode.FloorOne
	isZero bool
}

func (f *decodedFloor) computeCurve(blockflag bool, n uint16) []float32 {
	switch {
	case f.unused:
		return make([]float32, n)
	case f.isZero:
		return f.zero.ComputeCurve(blockflag, n)
	default:
		return f.one.ComputeCurve(n)
	}
}

// modeHeader holds the packet framing this decoder's two entry points
// (DecodeAudio and PreviewSampleCount) both need: the selected mode,
// the block's sample count, and its window geometry.
//
// Ported from: the shared prologue of get_decoded_sample_count and
// read_audio_packet_generic in lewton's audio.rs
type modeHeader struct {
	mode *setup.Mode
	n    int
	geom filterbank.Geometry
}

// readModeHeader reads an audio packet's packet-type bit, mode number,
// and (for long blocks) previous/next window flags, then derives the
// window geometry they determine.
func (d *Decoder) readModeHeader(r *bitpack.Reader) (modeHeader, error) {
	isHeader, err := r.ReadBool()
	if err != nil {
		return modeHeader{}, mapAudioErr(err)
	}
	if isHeader {
		return modeHeader{}, ErrAudioIsHeader
	}

	modeWidth := uint(bitmath.Ilog(uint64(len(d.setupHdr.Modes) - 1)))
	modeNumber, err := r.ReadUint(modeWidth)
	if err != nil {
		return modeHeader{}, mapAudioErr(err)
	}
	if int(modeNumber) >= len(d.setupHdr.Modes) {
		return modeHeader{}, ErrAudioBadFormat
	}
	mode := d.setupHdr.Modes[modeNumber]

	bsExp := d.ident.BlockSize0
	if mode.BlockFlag {
		bsExp = d.ident.BlockSize1
	}
	n := 1 << bsExp

	prevWinFlag, nextWinFlag := true, true
	if mode.BlockFlag {
		prevWinFlag, err = r.ReadBool()
		if err != nil {
			return modeHeader{}, mapAudioErr(err)
		}
		nextWinFlag, err = r.ReadBool()
		if err != nil {
			return modeHeader{}, mapAudioErr(err)
		}
	}

	bs0Exp := 1 << d.ident.BlockSize0
	geom := filterbank.ComputeGeometry(n, bs0Exp, mode.BlockFlag, prevWinFlag, nextWinFlag)

	return modeHeader{mode: mode, n: n, geom: geom}, nil
}

// PreviewSampleCount predicts how many PCM samples a packet would emit
// if it were decoded, without decoding its floor or residue data.
//
// Ported from: get_decoded_sample_count in lewton's audio.rs
func (d *Decoder) PreviewSampleCount(packet []byte) (int, error) {
	r := bitpack.NewReader(packet)
	mh, err := d.readModeHeader(r)
	if err != nil {
		return 0, err
	}
	return mh.geom.DecodedSampleCount(), nil
}

// DecodeAudio decodes one audio packet, writing its per-channel PCM
// samples into sink. On a fresh decoder (or immediately after
// ResetOverlap), the first packet emits no samples: overlap-add has
// nothing to overlap against yet.
//
// A non-nil error rejects only this packet; the decoder's overlap
// state is reset so the next packet starts as if from a fresh stream,
// except when the packet was simply a header packet out of sequence
// (ErrAudioIsHeader), which never touched any decode state.
//
// Ported from: read_audio_packet_generic in lewton's audio.rs
func (d *Decoder) DecodeAudio(packet []byte, sink Samples) error {
	chans, err := d.decodeAudio(packet)
	if err != nil {
		if !errors.Is(err, ErrAudioIsHeader) {
			d.ResetOverlap()
		}
		return err
	}
	sink.FromFloats(chans)
	return nil
}

func (d *Decoder) decodeAudio(packet []byte) ([][]float32, error) {
	r := bitpack.NewReader(packet)
	mh, err := d.readModeHeader(r)
	if err != nil {
		return nil, err
	}
	mode := mh.mode
	n := mh.n
	mapping := d.setupHdr.Mappings[mode.Mapping]
	channels := len(d.prevRight)

	floors := make([]decodedFloor, channels)
	for j := 0; j < channels; j++ {
		submap := mapping.Mux[j]
		floorIdx := mapping.SubmapFloors[submap]
		switch fl := d.setupHdr.Floors[floorIdx].(type) {
		case *setup.FloorTypeZero:
			fz, unused, ferr := decode.ReadFloorZero(r, d.setupHdr.Codebooks, fl)
			if ferr != nil {
				return nil, mapAudioErr(ferr)
			}
			floors[j] = decodedFloor{unused: unused, zero: fz, isZero: true}
		case *setup.FloorTypeOne:
			fo, unused, ferr := decode.ReadFloorOne(r, d.setupHdr.Codebooks, fl)
			if ferr != nil {
				return nil, mapAudioErr(ferr)
			}
			floors[j] = decodedFloor{unused: unused, one: fo}
		default:
			return nil, ErrAudioBadFormat
		}
	}

	noResidue := make([]bool, channels)
	for j := range floors {
		noResidue[j] = floors[j].unused
	}
	for i, mag := range mapping.Magnitudes {
		ang := mapping.Angles[i]
		if !(noResidue[mag] && noResidue[ang]) {
			noResidue[mag] = false
			noResidue[ang] = false
		}
	}

	residueVectors := make([][]float32, channels)
	for i := 0; i < int(mapping.Submaps); i++ {
		var doNotDecode []bool
		var chanIdx []int
		for j := 0; j < channels; j++ {
			if int(mapping.Mux[j]) == i {
				doNotDecode = append(doNotDecode, noResidue[j])
				chanIdx = append(chanIdx, j)
			}
		}
		if len(chanIdx) == 0 {
			continue
		}
		res := d.setupHdr.Residues[mapping.SubmapResidues[i]]
		vecs, rerr := decode.ReadResidue(r, uint16(n), doNotDecode, res, d.setupHdr.Codebooks)
		if rerr != nil {
			return nil, mapAudioErr(rerr)
		}
		for k, j := range chanIdx {
			residueVectors[j] = vecs[k]
		}
	}

	for i := len(mapping.Magnitudes) - 1; i >= 0; i-- {
		mag := mapping.Magnitudes[i]
		ang := mapping.Angles[i]
		mv, av := residueVectors[mag], residueVectors[ang]
		for k := range mv {
			mv[k], av[k] = decode.InverseCouple(mv[k], av[k])
		}
	}

	bsIdx := 0
	bsExp := d.ident.BlockSize0
	if mode.BlockFlag {
		bsIdx = 1
		bsExp = d.ident.BlockSize1
	}
	bd := &d.ident.CachedBlockSizes[bsIdx]

	spectra := make([][]float32, channels)
	for j := 0; j < channels; j++ {
		curve := floors[j].computeCurve(mode.BlockFlag, uint16(n/2))
		spectrum := make([]float32, n)
		for k := 0; k < n/2; k++ {
			spectrum[k] = curve[k] * residueVectors[j][k]
		}
		mdct.InverseMDCT(bd, spectrum, bsExp)
		spectra[j] = spectrum
	}

	out := make([][]float32, channels)
	for j := 0; j < channels; j++ {
		var prev []float32
		if d.hasPrev {
			prev = d.prevRight[j]
		}
		winSlope := d.ident.CachedBlockSizes[boolIdx(mh.geom.LeftUseBS1)].WindowSlope
		trimmed, future, oerr := filterbank.OverlapAdd(spectra[j], prev, winSlope, mh.geom)
		if oerr != nil {
			return nil, mapAudioErr(oerr)
		}
		d.prevRight[j] = future
		out[j] = trimmed
	}
	d.hasPrev = true

	return out, nil
}

func boolIdx(b bool) int {
	if b {
		return 1
	}
	return 0
}
