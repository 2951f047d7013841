package array

//
// Array - growable array of elements, backed by a FixedArray.
//

import (
	"github.com/cockroachdb/errors"

	"github.com/pi/cods"
	"github.com/pi/cods/debug"
	"github.com/pi/cods/fixedarray"
)

type Array[T any] struct {
	size  int
	max   int
	items *fixedarray.FixedArray[T]
}

// New returns an empty array with room for capacity elements.
func New[T any](capacity int, opts ...Option) (*Array[T], error) {
	if capacity <= 0 {
		return nil, cods.ErrInvalidArgument
	}
	o := buildOptions(opts)
	if capacity > o.maxCapacity {
		return nil, errors.Wrapf(cods.ErrOutOfMemory, "capacity %d exceeds limit %d", capacity, o.maxCapacity)
	}
	items, err := fixedarray.New[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Array[T]{
		max:   o.maxCapacity,
		items: items,
	}, nil
}

// FromSlice returns an array holding items in order, with capacity
// len(items).
func FromSlice[T any](items []T, opts ...Option) (*Array[T], error) {
	a, err := New[T](len(items), opts...)
	if err != nil {
		return nil, err
	}
	for _, v := range items {
		if _, err := a.Append(v); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Size returns the number of elements.
func (a *Array[T]) Size() int {
	debug.Assert(a != nil, "nil array")
	return a.size
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	debug.Assert(a != nil && a.items != nil, "nil or freed array")
	return a.items.Size()
}

// normalize maps a possibly negative index onto [0, size).
func normalize(index, size int) (int, bool) {
	if index < 0 {
		index += size
		return index, index >= 0
	}
	return index, index < size
}

func (a *Array[T]) index(index int) (int, error) {
	debug.Assert(a != nil && a.items != nil, "nil or freed array")
	i, ok := normalize(index, a.size)
	if !ok {
		return -1, cods.IndexError(index, a.size)
	}
	return i, nil
}

// Get returns the element at index. Negative indexes count from the end,
// -1 being the last element.
func (a *Array[T]) Get(index int) (T, error) {
	i, err := a.index(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.items.At(i), nil
}

// Set replaces the element at index and returns the former one.
func (a *Array[T]) Set(index int, value T) (T, error) {
	i, err := a.index(index)
	if err != nil {
		var zero T
		return zero, err
	}
	former := a.items.At(i)
	a.items.Store(i, value)
	return former, nil
}

// Insert places value at index, shifting the following elements right.
// index may equal Size() to append. It returns the normalized index.
func (a *Array[T]) Insert(index int, value T) (int, error) {
	debug.Assert(a != nil && a.items != nil, "nil or freed array")
	i := index
	if index != a.size {
		var ok bool
		if i, ok = normalize(index, a.size); !ok {
			return -1, cods.IndexError(index, a.size)
		}
	}
	if a.size == a.items.Size() {
		if err := a.grow(); err != nil {
			return -1, err
		}
	}
	for k := a.size; k > i; k-- {
		a.items.Store(k, a.items.At(k-1))
	}
	a.items.Store(i, value)
	a.size++
	return i, nil
}

// Append adds value after the last element and returns its index.
func (a *Array[T]) Append(value T) (int, error) {
	return a.Insert(a.Size(), value)
}

// Remove deletes the element at index, shifting the following elements
// left, and returns it.
func (a *Array[T]) Remove(index int) (T, error) {
	i, err := a.index(index)
	if err != nil {
		var zero T
		return zero, err
	}
	removed := a.items.At(i)
	for k := i; k < a.size-1; k++ {
		a.items.Store(k, a.items.At(k+1))
	}
	a.size--
	a.items.Clear(a.size)
	return removed, nil
}

// grow moves the elements into a backing store 1.5 times larger. The
// array is untouched when it fails.
func (a *Array[T]) grow() error {
	c := a.items.Size()
	if c >= a.max {
		return errors.Wrapf(cods.ErrOutOfMemory, "capacity %d at limit", c)
	}
	n := c + c/2 + c%2
	if n > a.max || n < c {
		n = a.max
	}
	items, err := fixedarray.New[T](n)
	if err != nil {
		return err
	}
	for i := 0; i < a.size; i++ {
		items.Store(i, a.items.At(i))
	}
	a.items = items
	if debug.Enabled {
		debug.Log("array: grew %d -> %d", c, n)
	}
	return nil
}
