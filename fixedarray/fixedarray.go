package fixedarray

//
// FixedArray - fixed count of slots, each either set or unset.
//

import (
	"strings"

	"github.com/pi/cods"
	"github.com/pi/cods/bits"
	"github.com/pi/cods/debug"
)

type FixedArray[T any] struct {
	items []T
	set   *bits.BitArray
}

// New returns a fixed array of size unset slots.
func New[T any](size int) (*FixedArray[T], error) {
	if size <= 0 {
		return nil, cods.ErrInvalidArgument
	}
	set, err := bits.NewBitArray(uint(size))
	if err != nil {
		return nil, err
	}
	return &FixedArray[T]{
		items: make([]T, size),
		set:   set,
	}, nil
}

// Size returns the slot count.
func (a *FixedArray[T]) Size() int {
	debug.Assert(a != nil, "nil fixed array")
	return len(a.items)
}

// Count returns the number of set slots.
func (a *FixedArray[T]) Count() int {
	return int(a.set.Count())
}

func (a *FixedArray[T]) check(index int) error {
	debug.Assert(a != nil, "nil fixed array")
	if index < 0 || index >= len(a.items) {
		return cods.IndexError(index, len(a.items))
	}
	return nil
}

func (a *FixedArray[T]) IsSet(index int) (bool, error) {
	if err := a.check(index); err != nil {
		return false, err
	}
	return a.isSet(index), nil
}

func (a *FixedArray[T]) isSet(index int) bool {
	v, _ := a.set.Get(uint(index))
	return v
}

// Get returns the element at index, the zero value for an unset slot.
func (a *FixedArray[T]) Get(index int) (T, error) {
	if err := a.check(index); err != nil {
		var zero T
		return zero, err
	}
	return a.items[index], nil
}

func (a *FixedArray[T]) Set(index int, value T) error {
	_, err := a.Swap(index, value)
	return err
}

// Swap stores value at index and returns the former element.
func (a *FixedArray[T]) Swap(index int, value T) (T, error) {
	if err := a.check(index); err != nil {
		var zero T
		return zero, err
	}
	return a.swap(index, value), nil
}

// Unset empties the slot at index and returns the former element.
func (a *FixedArray[T]) Unset(index int) (T, error) {
	if err := a.check(index); err != nil {
		var zero T
		return zero, err
	}
	return a.unset(index), nil
}

// Put stores value in the first unset slot.
func (a *FixedArray[T]) Put(value T) (int, error) {
	i, ok := a.set.NextClear(0)
	if !ok {
		return -1, cods.ErrNotFound
	}
	a.swap(int(i), value)
	return int(i), nil
}

// At is the unchecked read. It panics on an out of range index.
func (a *FixedArray[T]) At(index int) T {
	return a.items[index]
}

// Store is the unchecked write. It panics on an out of range index.
func (a *FixedArray[T]) Store(index int, value T) {
	a.swap(index, value)
}

// Clear is the unchecked Unset.
func (a *FixedArray[T]) Clear(index int) {
	a.unset(index)
}

func (a *FixedArray[T]) swap(index int, value T) T {
	former := a.items[index]
	a.items[index] = value
	a.set.Set(uint(index))
	return former
}

func (a *FixedArray[T]) unset(index int) T {
	var zero T
	former := a.items[index]
	a.items[index] = zero
	a.set.Unset(uint(index))
	return former
}

// Each calls fn with every set element in slot order.
func (a *FixedArray[T]) Each(fn func(T)) {
	for i, ok := a.set.NextSet(0); ok; i, ok = a.set.NextSet(i + 1) {
		fn(a.items[i])
	}
}

// FindFunc returns the first set element matching pred and its slot.
func (a *FixedArray[T]) FindFunc(pred cods.Predicate[T]) (T, int, error) {
	for i, ok := a.set.NextSet(0); ok; i, ok = a.set.NextSet(i + 1) {
		if pred(a.items[i]) {
			return a.items[i], int(i), nil
		}
	}
	var zero T
	return zero, -1, cods.ErrNotFound
}

// Find returns the first set element equivalent to value under eq
// (cods.Identical when eq is nil).
func (a *FixedArray[T]) Find(value T, eq cods.Equals[T]) (T, int, error) {
	if eq == nil {
		eq = cods.Identical[T]
	}
	return a.FindFunc(func(e T) bool { return eq(e, value) })
}

// RemoveMatching unsets the first slot equivalent to value and returns
// its element.
func (a *FixedArray[T]) RemoveMatching(value T, eq cods.Equals[T]) (T, error) {
	_, i, err := a.Find(value, eq)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.unset(i), nil
}

// Reset unsets every slot, passing set elements to destroy when not nil.
func (a *FixedArray[T]) Reset(destroy cods.Destructor[T]) {
	if destroy != nil {
		a.Each(destroy)
	}
	var zero T
	for i := range a.items {
		a.items[i] = zero
	}
	a.set.Clear()
}

// Free releases the slots, passing set elements to destroy when not nil.
// The array must not be used afterwards.
func (a *FixedArray[T]) Free(destroy cods.Destructor[T]) {
	a.Reset(destroy)
	a.items = nil
}

func (a *FixedArray[T]) String() string {
	return a.Format(nil)
}

// Format renders every slot as [e0, e1, ...], unset slots as _.
func (a *FixedArray[T]) Format(f cods.Formatter[T]) string {
	if f == nil {
		f = cods.FormatDefault[T]
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range a.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		if a.isSet(i) {
			sb.WriteString(f(a.items[i]))
		} else {
			sb.WriteByte('_')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
