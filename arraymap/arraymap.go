package arraymap

//
// Map - keys in a SortedArray, values in an index-aligned Array.
//

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pi/cods"
	"github.com/pi/cods/array"
	"github.com/pi/cods/sortedarray"
)

type Map[K, V any] struct {
	keys   *sortedarray.SortedArray[K]
	values *array.Array[V]
}

// New returns an empty map with room for capacity entries, keys ordered
// by cmp.
func New[K, V any](capacity int, cmp cods.Comparator[K], opts ...array.Option) (*Map[K, V], error) {
	keys, err := sortedarray.New[K](capacity, cmp, opts...)
	if err != nil {
		return nil, err
	}
	values, err := array.New[V](capacity, opts...)
	if err != nil {
		keys.Free(nil)
		return nil, err
	}
	return &Map[K, V]{keys: keys, values: values}, nil
}

func (m *Map[K, V]) Len() int {
	return m.keys.Size()
}

// Put adds a new entry. It fails with cods.ErrDuplicateKey when an
// equivalent key is present.
func (m *Map[K, V]) Put(key K, value V) error {
	i, err := m.keys.Add(key)
	if err != nil {
		return err
	}
	if _, err := m.values.Insert(i, value); err != nil {
		if _, rerr := m.keys.Remove(i); rerr != nil {
			return errors.CombineErrors(err, rerr)
		}
		return err
	}
	return nil
}

// Get returns the value stored under the key equivalent to key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	i := m.keys.IndexOf(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	v, err := m.values.Get(i)
	return v, err == nil
}

// GetOr returns the value stored under key, or def when key is absent.
func (m *Map[K, V]) GetOr(key K, def V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

func (m *Map[K, V]) Contains(key K) bool {
	return m.keys.Contains(key)
}

// Remove deletes the entry under key and returns its value.
func (m *Map[K, V]) Remove(key K) (V, error) {
	i := m.keys.IndexOf(key)
	if i < 0 {
		var zero V
		return zero, cods.ErrNotFound
	}
	if _, err := m.keys.Remove(i); err != nil {
		var zero V
		return zero, err
	}
	return m.values.Remove(i)
}

// Each calls fn with every entry in ascending key order.
func (m *Map[K, V]) Each(fn func(K, V)) {
	for i := 0; i < m.keys.Size(); i++ {
		k, _ := m.keys.Get(i)
		v, _ := m.values.Get(i)
		fn(k, v)
	}
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	return m.keys.Values()
}

// Free passes keys and values to their destructors, either may be nil.
func (m *Map[K, V]) Free(kd cods.Destructor[K], vd cods.Destructor[V]) {
	m.values.Free(vd)
	m.keys.Free(kd)
}

func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	m.Each(func(k K, v V) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(cods.FormatDefault(k))
		sb.WriteString(": ")
		sb.WriteString(cods.FormatDefault(v))
	})
	sb.WriteByte('}')
	return sb.String()
}
