package linkedlist

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pi/cods"
	th "github.com/pi/cods/internal/testhelpers"
)

func TestListScenario(t *testing.T) {
	convey.Convey("Given an empty list", t, func() {
		l := New[int]()
		convey.So(l.Len(), convey.ShouldEqual, 0)

		convey.Convey("appending 1 and 2 then inserting 99 at 1", func() {
			i, err := l.Append(1)
			convey.So(err, convey.ShouldBeNil)
			convey.So(i, convey.ShouldEqual, 0)
			i, err = l.Append(2)
			convey.So(err, convey.ShouldBeNil)
			convey.So(i, convey.ShouldEqual, 1)
			i, err = l.Insert(1, 99)
			convey.So(err, convey.ShouldBeNil)
			convey.So(i, convey.ShouldEqual, 1)

			convey.So(l.Values(), convey.ShouldResemble, []int{1, 99, 2})

			convey.Convey("removing the head returns 1", func() {
				v, err := l.Remove(0)
				convey.So(err, convey.ShouldBeNil)
				convey.So(v, convey.ShouldEqual, 1)
				convey.So(l.Values(), convey.ShouldResemble, []int{99, 2})
				convey.So(l.Len(), convey.ShouldEqual, 2)
			})

			convey.Convey("removing the tail returns 2", func() {
				v, err := l.Remove(2)
				convey.So(err, convey.ShouldBeNil)
				convey.So(v, convey.ShouldEqual, 2)
				convey.So(l.Values(), convey.ShouldResemble, []int{1, 99})
			})
		})

		convey.Convey("every position is out of range", func() {
			_, err := l.Get(0)
			convey.So(errors.Is(err, cods.ErrIndexOutOfRange), convey.ShouldBeTrue)
			_, err = l.Remove(0)
			convey.So(errors.Is(err, cods.ErrIndexOutOfRange), convey.ShouldBeTrue)
			_, err = l.Insert(1, 5)
			convey.So(errors.Is(err, cods.ErrIndexOutOfRange), convey.ShouldBeTrue)
			convey.So(l.Len(), convey.ShouldEqual, 0)
		})
	})
}

func TestNegativeIndexRejected(t *testing.T) {
	l := New[string]()
	l.Append("a")
	l.Append("b")
	_, err := l.Get(-1)
	assert.True(t, errors.Is(err, cods.ErrIndexOutOfRange))
	_, err = l.Set(-1, "x")
	assert.True(t, errors.Is(err, cods.ErrIndexOutOfRange))
	_, err = l.Insert(-1, "x")
	assert.True(t, errors.Is(err, cods.ErrIndexOutOfRange))
	_, err = l.Remove(-1)
	assert.True(t, errors.Is(err, cods.ErrIndexOutOfRange))
	assert.Equal(t, []string{"a", "b"}, l.Values())
}

func TestSet(t *testing.T) {
	l := New[int]()
	for i := 0; i < 5; i++ {
		l.Append(i)
	}
	former, err := l.Set(3, 30)
	require.NoError(t, err)
	assert.Equal(t, 3, former)
	v, err := l.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 30, v)
	_, err = l.Set(5, 0)
	assert.True(t, errors.Is(err, cods.ErrIndexOutOfRange))
}

func TestZeroValue(t *testing.T) {
	var l List[int]
	i, err := l.Append(4)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, l.Len())
}

// positional consistency against a slice model
func TestAgainstSlice(t *testing.T) {
	g := th.NewSeqGen(th.SgRand)
	l := New[int]()
	var model []int
	inserts, removes := 0, 0

	for step := 0; step < 5000; step++ {
		switch op := g.Intn(4); {
		case op <= 1:
			i := g.Intn(len(model) + 1)
			v := int(g.Next())
			got, err := l.Insert(i, v)
			require.NoError(t, err)
			require.Equal(t, i, got)
			model = append(model[:i], append([]int{v}, model[i:]...)...)
			inserts++
		case op == 2 && len(model) > 0:
			i := g.Intn(len(model))
			v, err := l.Remove(i)
			require.NoError(t, err)
			require.Equal(t, model[i], v)
			model = append(model[:i], model[i+1:]...)
			removes++
		case op == 3 && len(model) > 0:
			i := g.Intn(len(model))
			v := int(g.Next())
			former, err := l.Set(i, v)
			require.NoError(t, err)
			require.Equal(t, model[i], former)
			model[i] = v
		}
		require.Equal(t, inserts-removes, l.Len())
	}
	for i, want := range model {
		v, err := l.Get(i)
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
}

func TestFindAndRemoveMatching(t *testing.T) {
	a, b, c := "x", "y", "y"
	l := New[*string]()
	l.Append(&a)
	l.Append(&b)

	_, _, err := l.Find(&c, nil)
	assert.True(t, errors.Is(err, cods.ErrNotFound))

	byValue := func(p, q *string) bool { return *p == *q }
	e, i, err := l.Find(&c, byValue)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Same(t, &b, e)

	e, err = l.RemoveMatching(&a, nil)
	require.NoError(t, err)
	assert.Same(t, &a, e)
	assert.Equal(t, 1, l.Len())

	e, err = l.RemoveMatching(&c, byValue)
	require.NoError(t, err)
	assert.Same(t, &b, e)
	assert.Equal(t, 0, l.Len())

	_, err = l.RemoveMatching(&c, byValue)
	assert.True(t, errors.Is(err, cods.ErrNotFound))
}

func TestFindFunc(t *testing.T) {
	l := New[int]()
	for _, v := range []int{42, 3, 7, 13} {
		l.Append(v)
	}
	v, i, err := l.FindFunc(func(v int) bool { return v < 10 })
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, i)
	_, i, err = l.FindFunc(func(v int) bool { return v > 100 })
	assert.True(t, errors.Is(err, cods.ErrNotFound))
	assert.Equal(t, -1, i)
}

func TestFormatAndFree(t *testing.T) {
	l := New[int]()
	assert.Equal(t, "()", l.String())
	for _, v := range []int{42, 3, 7} {
		l.Append(v)
	}
	assert.Equal(t, "(42, 3, 7)", l.String())

	var freed []int
	l.Free(func(v int) { freed = append(freed, v) })
	assert.Equal(t, []int{42, 3, 7}, freed)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "()", l.String())
}

func Test_ListLarge(t *testing.T) {
	const n = 2000
	l := New[int]()
	for i := 0; i < n; i++ {
		l.Append(i)
	}
	for i := 0; i < n; i += 97 {
		v, err := l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}
