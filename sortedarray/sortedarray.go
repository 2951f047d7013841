package sortedarray

//
// SortedArray - elements kept in ascending comparator order over a
// growable Array. Equivalent elements are rejected.
//

import (
	"github.com/cockroachdb/errors"

	"github.com/pi/cods"
	"github.com/pi/cods/array"
	"github.com/pi/cods/debug"
)

type SortedArray[T any] struct {
	array *array.Array[T]
	cmp   cods.Comparator[T]
}

// New returns an empty sorted array with room for capacity elements,
// ordered by cmp.
func New[T any](capacity int, cmp cods.Comparator[T], opts ...array.Option) (*SortedArray[T], error) {
	if cmp == nil {
		return nil, errors.Wrap(cods.ErrInvalidArgument, "nil comparator")
	}
	a, err := array.New[T](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SortedArray[T]{array: a, cmp: cmp}, nil
}

func (s *SortedArray[T]) Size() int {
	debug.Assert(s != nil, "nil sorted array")
	return s.array.Size()
}

// search returns the index of an element equivalent to value, or the
// position value would be inserted at.
func (s *SortedArray[T]) search(value T) (int, bool) {
	n := s.array.Size()
	switch n {
	case 0:
		return 0, false
	case 1:
		c := s.cmp(value, s.at(0))
		if c == 0 {
			return 0, true
		} else if c < 0 {
			return 0, false
		}
		return 1, false
	}
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		c := s.cmp(value, s.at(mid))
		if c < 0 {
			hi = mid
		} else if c > 0 {
			lo = mid + 1
		} else {
			return mid, true
		}
	}
	return lo, false
}

func (s *SortedArray[T]) at(i int) T {
	v, _ := s.array.Get(i)
	return v
}

// Add inserts value at its ordered position and returns that position.
// It fails with cods.ErrDuplicateKey when an equivalent element is
// present.
func (s *SortedArray[T]) Add(value T) (int, error) {
	i, found := s.search(value)
	if found {
		return -1, errors.Wrapf(cods.ErrDuplicateKey, "equivalent element at %d", i)
	}
	return s.array.Insert(i, value)
}

// Get returns the element at index. Negative indexes are rejected.
func (s *SortedArray[T]) Get(index int) (T, error) {
	if index < 0 {
		var zero T
		return zero, cods.IndexError(index, s.Size())
	}
	return s.array.Get(index)
}

// IndexOf returns the index of the element equivalent to value, or -1.
func (s *SortedArray[T]) IndexOf(value T) int {
	if i, found := s.search(value); found {
		return i
	}
	return -1
}

// GetEquivalent returns the stored element equivalent to value.
func (s *SortedArray[T]) GetEquivalent(value T) (T, bool) {
	if i, found := s.search(value); found {
		return s.at(i), true
	}
	var zero T
	return zero, false
}

func (s *SortedArray[T]) Contains(value T) bool {
	_, found := s.search(value)
	return found
}

// Remove deletes the element at index and returns it. Negative indexes
// are rejected.
func (s *SortedArray[T]) Remove(index int) (T, error) {
	if index < 0 {
		var zero T
		return zero, cods.IndexError(index, s.Size())
	}
	return s.array.Remove(index)
}

// Each calls fn with every element in ascending order.
func (s *SortedArray[T]) Each(fn func(T)) {
	s.array.Each(fn)
}

// Values returns a copy of the elements in ascending order.
func (s *SortedArray[T]) Values() []T {
	return s.array.Values()
}

// Free passes every element to destroy, when not nil, and drops the
// backing array.
func (s *SortedArray[T]) Free(destroy cods.Destructor[T]) {
	s.array.Free(destroy)
}

func (s *SortedArray[T]) String() string {
	return s.array.String()
}

// Format renders the elements as [e0, e1, ...] using f.
func (s *SortedArray[T]) Format(f cods.Formatter[T]) string {
	return s.array.Format(f)
}
