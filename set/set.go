package set

//
// Set - set of comparable values. Defined as map[T]struct{}
//
type Set[T comparable] map[T]struct{}

// Of constructs a set of the arguments
func Of[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	s.AddAll(values)
	return s
}

// Len returns number of elements in the receiver
func (s Set[T]) Len() int {
	return len(s)
}

// AsSlice returns the receiver's elements in unspecified order
func (s Set[T]) AsSlice() []T {
	result := make([]T, 0, len(s))
	for v := range s {
		result = append(result, v)
	}
	return result
}

// Includes returns true if the receiver contains value
func (s Set[T]) Includes(value T) bool {
	_, ok := s[value]
	return ok
}

// Intersects returns true if the receiver contains any value from other set
func (s Set[T]) Intersects(other Set[T]) bool {
	for v := range other {
		if _, ok := s[v]; ok {
			return true
		}
	}
	return false
}

// Intersect returns set of common to receiver and the other set values
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	result := make(Set[T])
	for v := range s {
		if _, ok := other[v]; ok {
			result.Add(v)
		}
	}
	return result
}

// Union returns set of all values of the receiver and other set
func (s Set[T]) Union(other Set[T]) Set[T] {
	result := s.Clone()
	result.AddSet(other)
	return result
}

// Clone returns copy of the receiver
func (s Set[T]) Clone() Set[T] {
	result := make(Set[T], len(s))
	result.AddSet(s)
	return result
}

// Add adds element to the receiver
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Remove deletes element from the receiver
func (s Set[T]) Remove(v T) {
	delete(s, v)
}

// AddAll adds all values from slice
func (s Set[T]) AddAll(values []T) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// AddSet adds all elements of src set to the receiver
func (s Set[T]) AddSet(src Set[T]) {
	for v := range src {
		s[v] = struct{}{}
	}
}
