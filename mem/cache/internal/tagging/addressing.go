package tagging

import "math/bits"

// An AddressMapper splits a word address into block offset, set index, and
// tag, and rebuilds a block address from a tag and a set index.
//
// The field widths are floor(log2(blockSize)) and floor(log2(numSets)). The
// mapping is exact only when both sizes are powers of two. For other sizes
// the widths are truncated and the decomposition does not cover every set
// or every word of a block.
type AddressMapper struct {
	offsetBits uint
	indexBits  uint
}

// NewAddressMapper creates an AddressMapper for the given geometry. Both
// sizes must be positive.
func NewAddressMapper(blockSize, numSets int) AddressMapper {
	return AddressMapper{
		offsetBits: floorLog2(blockSize),
		indexBits:  floorLog2(numSets),
	}
}

func floorLog2(n int) uint {
	return uint(bits.Len(uint(n)) - 1)
}

// IsPowerOfTwo returns true if n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// OffsetBits returns the number of address bits used as block offset.
func (m AddressMapper) OffsetBits() uint {
	return m.offsetBits
}

// IndexBits returns the number of address bits used as set index.
func (m AddressMapper) IndexBits() uint {
	return m.indexBits
}

// Offset returns the position of addr within its block.
func (m AddressMapper) Offset(addr uint64) uint64 {
	return addr & (1<<m.offsetBits - 1)
}

// SetIndex returns the set that addr maps to.
func (m AddressMapper) SetIndex(addr uint64) int {
	return int((addr >> m.offsetBits) & (1<<m.indexBits - 1))
}

// Tag returns the tag of addr.
func (m AddressMapper) Tag(addr uint64) uint64 {
	return addr >> (m.offsetBits + m.indexBits)
}

// BlockAddress returns the address of the first word of the block that holds
// tag in set setID.
func (m AddressMapper) BlockAddress(tag uint64, setID int) uint64 {
	return tag<<(m.indexBits+m.offsetBits) | uint64(setID)<<m.offsetBits
}
