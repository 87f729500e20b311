package tables

// maxBasesWithoutOverflow[d] is the largest base that can be raised to
// exponent d without overflowing a uint32, indexed by codebook dimension.
//
// Ported from: MAX_BASES_WITHOUT_OVERFLOW in lewton's header.rs
var maxBasesWithoutOverflow = [32]uint32{
	0xffffffff, 0xffffffff, 0x0000ffff, 0x00000659,
	0x000000ff, 0x00000054, 0x00000028, 0x00000017,
	0x0000000f, 0x0000000b, 0x00000009, 0x00000007,
	0x00000006, 0x00000005, 0x00000004, 0x00000004,
	0x00000003, 0x00000003, 0x00000003, 0x00000003,
	0x00000003, 0x00000002, 0x00000002, 0x00000002,
	0x00000002, 0x00000002, 0x00000002, 0x00000002,
	0x00000002, 0x00000002, 0x00000002, 0x00000002,
}

// maxBaseMaxBitsWithoutOverflow[d] is the index of the highest set bit
// in maxBasesWithoutOverflow[d], the first bit lookup1Values's binary
// search disputes.
//
// Ported from: MAX_BASE_MAX_BITS_WITHOUT_OVERFLOW in lewton's header.rs
var maxBaseMaxBitsWithoutOverflow = [32]uint8{
	0x1f, 0x1f, 0x0f, 0x0a,
	0x07, 0x06, 0x05, 0x04,
	0x03, 0x03, 0x03, 0x02,
	0x02, 0x02, 0x02, 0x02,
	0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01,
}

// expFast computes base^exponent, 0 <= exponent < 256, assuming the result
// does not overflow a uint32.
//
// Ported from: exp_fast in lewton's header.rs
func expFast(base uint32, exponent uint8) uint32 {
	res := uint32(1)
	selfMul := base
	for i := uint(0); i < 8; i++ {
		if uint8(1<<i)&exponent > 0 {
			res *= selfMul
		}
		next := selfMul * selfMul
		if selfMul != 0 && next/selfMul != selfMul {
			return res
		}
		selfMul = next
	}
	return res
}

// Lookup1Values computes the side length of the implicit multi-dimensional
// lookup table a lookup-type-1 VQ codebook's multiplicand array encodes,
// i.e. the largest integer v such that v^codebookDimensions <=
// codebookEntries.
//
// Ported from: lookup1_values in lewton's header.rs
func Lookup1Values(codebookEntries uint32, codebookDimensions uint16) uint32 {
	if codebookDimensions >= 32 {
		if codebookEntries == 0 {
			return 0
		}
		return 1
	}
	maxBaseBits := maxBaseMaxBitsWithoutOverflow[codebookDimensions]
	maxBase := maxBasesWithoutOverflow[codebookDimensions]
	var baseBits uint32
	for i := uint8(0); i < maxBaseBits+1; i++ {
		curDisputedBit := uint32(1) << (maxBaseBits - i)
		baseBits |= curDisputedBit
		if maxBase < baseBits || expFast(baseBits, uint8(codebookDimensions)) > codebookEntries {
			baseBits &^= curDisputedBit
		}
	}
	return baseBits
}
