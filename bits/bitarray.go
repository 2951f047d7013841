package bits

//
// Packed bit array
//

import (
	mbits "math/bits"
	"strings"

	"github.com/pi/cods"
	"github.com/pi/cods/debug"
	"github.com/pi/cods/md"
)

type BitArray struct {
	len  uint
	data []uint
}

// NewBitArray returns an array of n bits, all unset.
func NewBitArray(n uint) (*BitArray, error) {
	if n == 0 {
		return nil, cods.ErrInvalidArgument
	}
	return &BitArray{
		data: make([]uint, md.UintsFor(n)),
		len:  n,
	}, nil
}

func (a *BitArray) Len() uint {
	return a.len
}

func (a *BitArray) check(index uint) error {
	debug.Assert(a != nil, "nil bit array")
	if index >= a.len {
		return cods.IndexError(int(index), int(a.len))
	}
	return nil
}

func (a *BitArray) Get(index uint) (bool, error) {
	if err := a.check(index); err != nil {
		return false, err
	}
	return a.bit(index), nil
}

func (a *BitArray) bit(index uint) bool {
	return (a.data[index>>md.UintSizeShift]>>(index&md.UintSizeMask))&1 == 1
}

// Put stores value at index and returns the former bit.
func (a *BitArray) Put(index uint, value bool) (bool, error) {
	if err := a.check(index); err != nil {
		return false, err
	}
	former := a.bit(index)
	wi := index >> md.UintSizeShift
	bi := index & md.UintSizeMask
	if value {
		a.data[wi] |= 1 << bi
	} else {
		a.data[wi] &= ^(uint(1) << bi)
	}
	return former, nil
}

func (a *BitArray) Set(index uint) (bool, error) {
	return a.Put(index, true)
}

func (a *BitArray) Unset(index uint) (bool, error) {
	return a.Put(index, false)
}

// Count returns the number of set bits.
func (a *BitArray) Count() uint {
	var n int
	for _, w := range a.data {
		n += mbits.OnesCount(w)
	}
	return uint(n)
}

// NextSet returns the index of the first set bit at or after from.
func (a *BitArray) NextSet(from uint) (uint, bool) {
	return a.scan(from, 0)
}

// NextClear returns the index of the first unset bit at or after from.
func (a *BitArray) NextClear(from uint) (uint, bool) {
	return a.scan(from, ^uint(0))
}

// scan xors every word with flip so that the wanted bits read as ones
func (a *BitArray) scan(from uint, flip uint) (uint, bool) {
	if from >= a.len {
		return 0, false
	}
	wi := from >> md.UintSizeShift
	w := (a.data[wi] ^ flip) >> (from & md.UintSizeMask)
	if w != 0 {
		i := from + uint(mbits.TrailingZeros(w))
		return i, i < a.len
	}
	for wi++; wi < uint(len(a.data)); wi++ {
		if w = a.data[wi] ^ flip; w != 0 {
			i := wi<<md.UintSizeShift + uint(mbits.TrailingZeros(w))
			return i, i < a.len
		}
	}
	return 0, false
}

// reset all bits to 0
func (a *BitArray) Clear() {
	for i := 0; i < len(a.data); i++ {
		a.data[i] = 0
	}
}

func (a *BitArray) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := uint(0); i < a.len; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		if a.bit(i) {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
