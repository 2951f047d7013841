package array

import (
	"strings"

	"github.com/pi/cods"
)

// Each calls fn with every element in order.
func (a *Array[T]) Each(fn func(T)) {
	for i := 0; i < a.size; i++ {
		fn(a.items.At(i))
	}
}

// FindFunc returns the first element matching pred and its index.
func (a *Array[T]) FindFunc(pred cods.Predicate[T]) (T, int, error) {
	for i := 0; i < a.size; i++ {
		if e := a.items.At(i); pred(e) {
			return e, i, nil
		}
	}
	var zero T
	return zero, -1, cods.ErrNotFound
}

// Find returns the first element equivalent to value under eq and its
// index. A nil eq compares with cods.Identical.
func (a *Array[T]) Find(value T, eq cods.Equals[T]) (T, int, error) {
	if eq == nil {
		eq = cods.Identical[T]
	}
	return a.FindFunc(func(e T) bool { return eq(e, value) })
}

// RemoveMatching removes and returns the first element equivalent to value.
func (a *Array[T]) RemoveMatching(value T, eq cods.Equals[T]) (T, error) {
	_, i, err := a.Find(value, eq)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.Remove(i)
}

// Values returns a copy of the elements.
func (a *Array[T]) Values() []T {
	r := make([]T, a.size)
	for i := range r {
		r[i] = a.items.At(i)
	}
	return r
}

// Free passes every element to destroy, when not nil, and drops the
// backing store. The array must not be used afterwards.
func (a *Array[T]) Free(destroy cods.Destructor[T]) {
	if destroy != nil {
		a.Each(destroy)
	}
	a.items.Free(nil)
	a.items = nil
	a.size = 0
}

func (a *Array[T]) String() string {
	return a.Format(nil)
}

// Format renders the array as [e0, e1, ...] using f, or %v when f is nil.
func (a *Array[T]) Format(f cods.Formatter[T]) string {
	if f == nil {
		f = cods.FormatDefault[T]
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f(a.items.At(i)))
	}
	sb.WriteByte(']')
	return sb.String()
}
