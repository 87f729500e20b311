package setup

import (
	"sort"

	"github.com/llehouerou/go-vorbis/internal/bitpack"
	"github.com/llehouerou/go-vorbis/internal/tables"
)

// readFloor parses one entry of the setup header's floor list, dispatching
// on the 16-bit floor type that precedes its type-specific fields.
//
// Ported from: read_floor in lewton's header.rs
func readFloor(r *bitpack.Reader, codebookCount uint16, bs0, bs1 uint8) (Floor, error) {
	floorType, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	switch floorType {
	case 0:
		return readFloorZero(r, codebookCount, bs0, bs1)
	case 1:
		return readFloorOne(r, codebookCount)
	default:
		return nil, ErrHeaderBadFormat
	}
}

func readFloorZero(r *bitpack.Reader, codebookCount uint16, bs0, bs1 uint8) (*FloorTypeZero, error) {
	order, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}
	rate, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	barkMapSize, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	ampBits, err := r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	if ampBits > 64 {
		return nil, ErrHeaderBadFormat
	}
	ampOffset, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}
	numBooksRaw, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}
	numBooks := uint8(numBooksRaw) + 1

	bookList := make([]uint8, numBooks)
	for i := range bookList {
		v, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		if uint16(v) >= codebookCount {
			return nil, ErrHeaderBadFormat
		}
		bookList[i] = uint8(v)
	}

	return &FloorTypeZero{
		Order:           uint8(order),
		Rate:            uint16(rate),
		BarkMapSize:     uint16(barkMapSize),
		AmplitudeBits:   uint8(ampBits),
		AmplitudeOffset: uint8(ampOffset),
		NumberOfBooks:   numBooks,
		BookList:        bookList,
		CachedBarkCosOmega: [2][]float32{
			tables.ComputeBarkMapCosOmega(uint16(1)<<(bs0-1), uint16(rate), uint16(barkMapSize)),
			tables.ComputeBarkMapCosOmega(uint16(1)<<(bs1-1), uint16(rate), uint16(barkMapSize)),
		},
	}, nil
}

func readFloorOne(r *bitpack.Reader, codebookCount uint16) (*FloorTypeOne, error) {
	partitionsRaw, err := r.ReadUint(5)
	if err != nil {
		return nil, err
	}
	partitions := uint8(partitionsRaw)

	partitionClass := make([]uint8, partitions)
	maxClass := int16(-1)
	for i := range partitionClass {
		c, err := r.ReadUint(4)
		if err != nil {
			return nil, err
		}
		partitionClass[i] = uint8(c)
		if int16(c) > maxClass {
			maxClass = int16(c)
		}
	}

	numClasses := int(maxClass) + 1
	classDims := make([]uint8, numClasses)
	classSubclasses := make([]uint8, numClasses)
	subclassBooks := make([][]int16, numClasses)
	classMasterbooks := make([]uint8, numClasses)

	for i := 0; i < numClasses; i++ {
		d, err := r.ReadUint(3)
		if err != nil {
			return nil, err
		}
		classDims[i] = uint8(d) + 1

		sc, err := r.ReadUint(2)
		if err != nil {
			return nil, err
		}
		classSubclasses[i] = uint8(sc)

		if sc != 0 {
			mb, err := r.ReadUint(8)
			if err != nil {
				return nil, err
			}
			if uint16(mb) >= codebookCount {
				return nil, ErrHeaderBadFormat
			}
			classMasterbooks[i] = uint8(mb)
		}

		numBooks := 1 << sc
		books := make([]int16, numBooks)
		for j := range books {
			b, err := r.ReadUint(8)
			if err != nil {
				return nil, err
			}
			book := int16(b) - 1
			if book >= int16(codebookCount) {
				return nil, ErrHeaderBadFormat
			}
			books[j] = book
		}
		subclassBooks[i] = books
	}

	multiplierRaw, err := r.ReadUint(2)
	if err != nil {
		return nil, err
	}
	multiplier := uint8(multiplierRaw) + 1

	rangebits, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}

	values := uint32(2)
	for _, c := range partitionClass {
		values += uint32(classDims[c])
	}
	if values > 65 {
		return nil, ErrHeaderBadFormat
	}

	xList := make([]uint32, 0, values)
	xList = append(xList, 0, uint32(1)<<rangebits)
	for _, c := range partitionClass {
		for i := uint8(0); i < classDims[c]; i++ {
			v, err := r.ReadUint(uint(rangebits))
			if err != nil {
				return nil, err
			}
			xList = append(xList, uint32(v))
		}
	}

	sorted := make([]XListEntry, len(xList))
	for i, v := range xList {
		sorted[i] = XListEntry{Index: i, Value: v}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	last := uint32(1)
	for _, e := range sorted {
		if e.Value == last {
			return nil, ErrHeaderBadFormat
		}
		last = e.Value
	}

	return &FloorTypeOne{
		Multiplier:       multiplier,
		PartitionClass:   partitionClass,
		ClassDimensions:  classDims,
		ClassSubclasses:  classSubclasses,
		SubclassBooks:    subclassBooks,
		ClassMasterbooks: classMasterbooks,
		XList:            xList,
		XListSorted:      sorted,
	}, nil
}
