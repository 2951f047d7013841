package md

// Machine word geometry used by the packed containers.
const UintSizeShift = 5 + (^uint(0) >> 63)
const BitsPerUint = (1 << UintSizeShift)
const BytesPerUint = BitsPerUint / 8
const UintSizeMask = BitsPerUint - 1

// UintsFor returns how many uints hold n bits.
func UintsFor(n uint) uint {
	return (n + UintSizeMask) >> UintSizeShift
}
