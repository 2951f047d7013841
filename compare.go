package cods

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Comparator returns a negative number if a < b, a positive number if a > b
// and zero if a and b are equivalent.
type Comparator[T any] func(a, b T) int

// Equals reports whether a and b are equivalent.
type Equals[T any] func(a, b T) bool

// Predicate selects elements.
type Predicate[T any] func(T) bool

// Destructor releases whatever an element owns.
type Destructor[T any] func(T)

// Formatter renders a single element.
type Formatter[T any] func(T) string

// Compare is the natural order of ordered types.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Reverse flips the order of cmp.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// Identical compares with ==. For pointer element types this is address
// identity. It panics if the dynamic type of T is not comparable.
func Identical[T any](a, b T) bool {
	return any(a) == any(b)
}

// FormatDefault renders v with the %v verb; pointers print as addresses.
func FormatDefault[T any](v T) string {
	return fmt.Sprintf("%v", v)
}
