package linkedlist

//
// List - singly linked list. Positional operations walk from the head.
//

import (
	"strings"

	"github.com/pi/cods"
	"github.com/pi/cods/debug"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list. The zero value is an empty list.
type List[T any] struct {
	head *node[T]
	len  int
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	debug.Assert(l != nil, "nil list")
	return l.len
}

// walk returns the node n links past the head.
func (l *List[T]) walk(n int) *node[T] {
	item := l.head
	for i := 0; i < n && item != nil; i++ {
		item = item.next
	}
	return item
}

func (l *List[T]) check(index int) error {
	debug.Assert(l != nil, "nil list")
	if index < 0 || index >= l.len {
		return cods.IndexError(index, l.len)
	}
	return nil
}

// Get returns the element at index, which must be in [0, Len()).
func (l *List[T]) Get(index int) (T, error) {
	if err := l.check(index); err != nil {
		var zero T
		return zero, err
	}
	return l.walk(index).value, nil
}

// Set replaces the element at index and returns the former one.
func (l *List[T]) Set(index int, value T) (T, error) {
	if err := l.check(index); err != nil {
		var zero T
		return zero, err
	}
	item := l.walk(index)
	former := item.value
	item.value = value
	return former, nil
}

// Insert places value before the element at index; index == Len()
// appends. It returns index.
func (l *List[T]) Insert(index int, value T) (int, error) {
	debug.Assert(l != nil, "nil list")
	if index < 0 || index > l.len {
		return -1, cods.IndexError(index, l.len)
	}
	item := &node[T]{value: value}
	if index == 0 {
		item.next = l.head
		l.head = item
	} else {
		prev := l.walk(index - 1)
		item.next = prev.next
		prev.next = item
	}
	l.len++
	return index, nil
}

// Append adds value at the tail and returns its index.
func (l *List[T]) Append(value T) (int, error) {
	return l.Insert(l.Len(), value)
}

// Remove unlinks the element at index and returns it.
func (l *List[T]) Remove(index int) (T, error) {
	if err := l.check(index); err != nil {
		var zero T
		return zero, err
	}
	var item *node[T]
	if index == 0 {
		item = l.head
		l.head = item.next
	} else {
		prev := l.walk(index - 1)
		item = prev.next
		prev.next = item.next
	}
	item.next = nil
	l.len--
	return item.value, nil
}

// Each calls fn with every element from head to tail.
func (l *List[T]) Each(fn func(T)) {
	for item := l.head; item != nil; item = item.next {
		fn(item.value)
	}
}

// FindFunc returns the first element matching pred and its index.
func (l *List[T]) FindFunc(pred cods.Predicate[T]) (T, int, error) {
	i := 0
	for item := l.head; item != nil; item = item.next {
		if pred(item.value) {
			return item.value, i, nil
		}
		i++
	}
	var zero T
	return zero, -1, cods.ErrNotFound
}

// Find returns the first element equivalent to value under eq and its
// index. A nil eq compares with cods.Identical.
func (l *List[T]) Find(value T, eq cods.Equals[T]) (T, int, error) {
	if eq == nil {
		eq = cods.Identical[T]
	}
	return l.FindFunc(func(e T) bool { return eq(e, value) })
}

// RemoveMatching unlinks and returns the first element equivalent to value.
func (l *List[T]) RemoveMatching(value T, eq cods.Equals[T]) (T, error) {
	if eq == nil {
		eq = cods.Identical[T]
	}
	var prev *node[T]
	for item := l.head; item != nil; prev, item = item, item.next {
		if !eq(item.value, value) {
			continue
		}
		if prev == nil {
			l.head = item.next
		} else {
			prev.next = item.next
		}
		item.next = nil
		l.len--
		return item.value, nil
	}
	var zero T
	return zero, cods.ErrNotFound
}

// Values returns the elements from head to tail.
func (l *List[T]) Values() []T {
	r := make([]T, 0, l.len)
	l.Each(func(v T) { r = append(r, v) })
	return r
}

// Free passes every element to destroy, when not nil, and unlinks all
// nodes. The list is empty afterwards.
func (l *List[T]) Free(destroy cods.Destructor[T]) {
	for item := l.head; item != nil; {
		if destroy != nil {
			destroy(item.value)
		}
		next := item.next
		item.next = nil
		item = next
	}
	l.head = nil
	l.len = 0
}

func (l *List[T]) String() string {
	return l.Format(nil)
}

// Format renders the list as (e0, e1, ...) using f, or %v when f is nil.
func (l *List[T]) Format(f cods.Formatter[T]) string {
	if f == nil {
		f = cods.FormatDefault[T]
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for item := l.head; item != nil; item = item.next {
		if item != l.head {
			sb.WriteString(", ")
		}
		sb.WriteString(f(item.value))
	}
	sb.WriteByte(')')
	return sb.String()
}
