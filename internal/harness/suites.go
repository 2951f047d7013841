package harness

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/pi/cods"
	"github.com/pi/cods/array"
	"github.com/pi/cods/arraymap"
	"github.com/pi/cods/bits"
	"github.com/pi/cods/fixedarray"
	"github.com/pi/cods/linkedlist"
	"github.com/pi/cods/set"
	"github.com/pi/cods/sortedarray"
)

func init() {
	register("array", checkArray)
	register("sortedarray", checkSortedArray)
	register("linkedlist", checkLinkedList)
	register("fixedarray", checkFixedArray)
	register("bitarray", checkBitArray)
	register("arraymap", checkArrayMap)
}

func checkArray(env *Env) error {
	a, err := array.New[int](4)
	if err != nil {
		return err
	}
	for _, v := range []int{5, 9, 2} {
		a.Append(v)
	}
	last, err := a.Get(-1)
	if err := check(err == nil && last == 2, "get(-1) = %d, %v", last, err); err != nil {
		return err
	}
	if i, err := a.Insert(1, 7); err != nil || i != 1 {
		return errors.Newf("insert(1, 7) = %d, %v", i, err)
	}
	if err := check(slices.Equal(a.Values(), []int{5, 7, 9, 2}), "sequence %v", a.Values()); err != nil {
		return err
	}

	// growth from a single slot, then random insert/remove against a slice
	a, err = array.New[int](1)
	if err != nil {
		return err
	}
	var model []int
	capacity := a.Cap()
	for n := 0; n < env.Elements; n++ {
		v := int(env.Gen.Next())
		if len(model) > 0 && env.Gen.Intn(4) == 0 {
			i := env.Gen.Intn(len(model))
			got, err := a.Remove(i)
			if err != nil || got != model[i] {
				return errors.Newf("remove(%d) = %d, %v; want %d", i, got, err, model[i])
			}
			model = append(model[:i], model[i+1:]...)
			continue
		}
		i := env.Gen.Intn(len(model) + 1)
		if _, err := a.Insert(i, v); err != nil {
			return errors.Wrapf(err, "insert(%d)", i)
		}
		model = append(model[:i], append([]int{v}, model[i:]...)...)
		if a.Cap() < capacity || a.Cap() < a.Size() {
			return errors.Newf("capacity %d after %d, size %d", a.Cap(), capacity, a.Size())
		}
		capacity = a.Cap()
	}
	env.Log.Debug("array checked", zap.Int("size", a.Size()), zap.Int("cap", a.Cap()))
	return check(slices.Equal(a.Values(), model), "array diverged from model")
}

func checkSortedArray(env *Env) error {
	s, err := sortedarray.New[int](4, cods.Compare[int])
	if err != nil {
		return err
	}
	for _, step := range []struct{ v, want int }{{9, 0}, {3, 0}, {7, 1}} {
		if i, err := s.Add(step.v); err != nil || i != step.want {
			return errors.Newf("add(%d) = %d, %v; want %d", step.v, i, err, step.want)
		}
	}
	if _, err := s.Add(7); !errors.Is(err, cods.ErrDuplicateKey) {
		return errors.Newf("duplicate add: %v", err)
	}

	present := set.Of(3, 7, 9)
	for n := 0; n < env.Elements; n++ {
		v := env.Gen.Intn(env.Elements)
		_, err := s.Add(v)
		if present.Includes(v) {
			if !errors.Is(err, cods.ErrDuplicateKey) {
				return errors.Newf("add(%d) of a present value: %v", v, err)
			}
		} else if err != nil {
			return errors.Wrapf(err, "add(%d)", v)
		}
		present.Add(v)
	}
	prev := -1
	for i := 0; i < s.Size(); i++ {
		v, _ := s.Get(i)
		if v <= prev {
			return errors.Newf("order broken at %d: %d after %d", i, v, prev)
		}
		prev = v
	}
	for v := range present {
		if i := s.IndexOf(v); i < 0 {
			return errors.Newf("index_of(%d) = -1", v)
		}
	}
	return check(s.Size() == present.Len(), "size %d, want %d", s.Size(), present.Len())
}

func checkLinkedList(env *Env) error {
	l := linkedlist.New[int]()
	l.Append(1)
	l.Append(2)
	if i, err := l.Insert(1, 99); err != nil || i != 1 {
		return errors.Newf("insert(1, 99) = %d, %v", i, err)
	}
	if err := check(l.String() == "(1, 99, 2)", "list %s", l); err != nil {
		return err
	}
	if v, err := l.Remove(0); err != nil || v != 1 {
		return errors.Newf("remove(0) = %d, %v", v, err)
	}

	n := env.Elements / 10
	if n == 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		if _, err := l.Insert(env.Gen.Intn(l.Len()+1), i); err != nil {
			return err
		}
	}
	for l.Len() > 0 {
		if _, err := l.Remove(env.Gen.Intn(l.Len())); err != nil {
			return err
		}
	}
	_, err := l.Get(0)
	return check(errors.Is(err, cods.ErrIndexOutOfRange), "get on empty list: %v", err)
}

func checkFixedArray(env *Env) error {
	size := env.Elements/100 + 1
	a, err := fixedarray.New[int](size)
	if err != nil {
		return err
	}
	for i := 0; i < size; i++ {
		if j, err := a.Put(i); err != nil || j != i {
			return errors.Newf("put(%d) = %d, %v", i, j, err)
		}
	}
	if _, err := a.Put(size); !errors.Is(err, cods.ErrNotFound) {
		return errors.Newf("put into full array: %v", err)
	}
	hole := env.Gen.Intn(size)
	a.Unset(hole)
	if j, err := a.Put(-1); err != nil || j != hole {
		return errors.Newf("put after unset(%d) = %d, %v", hole, j, err)
	}
	return check(a.Count() == size, "count %d, want %d", a.Count(), size)
}

func checkBitArray(env *Env) error {
	b, err := bits.NewBitArray(uint(env.Elements))
	if err != nil {
		return err
	}
	want := make(set.Set[uint])
	for n := 0; n < env.Elements; n++ {
		i := uint(env.Gen.Intn(env.Elements))
		v := env.Gen.Next()&1 == 1
		former, err := b.Put(i, v)
		if err != nil || former != want.Includes(i) {
			return errors.Newf("put(%d) former %v, %v", i, former, err)
		}
		if v {
			want.Add(i)
		} else {
			want.Remove(i)
		}
	}
	return check(b.Count() == uint(want.Len()), "count %d, want %d", b.Count(), want.Len())
}

func checkArrayMap(env *Env) error {
	m, err := arraymap.New[int, int](8, cods.Compare[int])
	if err != nil {
		return err
	}
	for n := 0; n < env.Elements; n++ {
		k := env.Gen.Intn(env.Elements)
		err := m.Put(k, -k)
		if err != nil && !errors.Is(err, cods.ErrDuplicateKey) {
			return err
		}
	}
	var failed error
	m.Each(func(k, v int) {
		if failed == nil && v != -k {
			failed = errors.Newf("entry %d: %d", k, v)
		}
	})
	return failed
}
