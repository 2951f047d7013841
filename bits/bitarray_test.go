package bits

import (
	"testing"

	"github.com/RoaringBitmap/roaring"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pi/cods"
	th "github.com/pi/cods/internal/testhelpers"
)

func Test_BitArray(t *testing.T) {
	const N = 100000
	a, err := NewBitArray(N)
	require.NoError(t, err)

	for i := uint(0); i < N; i++ {
		if v, _ := a.Get(i); v {
			assert.FailNow(t, "1")
		}
	}

	for i := uint(0); i < N; i++ {
		a.Put(i, true)
		if v, _ := a.Get(i); !v {
			assert.FailNow(t, "2.0")
		}
	}
	assert.EqualValues(t, N, a.Count())

	a.Clear()
	assert.EqualValues(t, 0, a.Count())

	for i := uint(0); i < N; i += 2 {
		a.Put(i, false)
		a.Put(i+1, true)
	}

	for i := uint(0); i < N; i += 2 {
		if v, _ := a.Get(i); v {
			assert.Fail(t, "3")
		}
		if v, _ := a.Get(i + 1); !v {
			assert.Fail(t, "4")
		}
	}
	assert.EqualValues(t, N/2, a.Count())
}

func TestNewBitArrayZero(t *testing.T) {
	a, err := NewBitArray(0)
	assert.Nil(t, a)
	assert.True(t, errors.Is(err, cods.ErrInvalidArgument))
}

func TestPutReturnsFormer(t *testing.T) {
	a, err := NewBitArray(10)
	require.NoError(t, err)
	former, err := a.Set(3)
	require.NoError(t, err)
	assert.False(t, former)
	former, err = a.Set(3)
	require.NoError(t, err)
	assert.True(t, former)
	former, err = a.Unset(3)
	require.NoError(t, err)
	assert.True(t, former)
	v, _ := a.Get(3)
	assert.False(t, v)
}

func TestOutOfRange(t *testing.T) {
	a, err := NewBitArray(70)
	require.NoError(t, err)
	a.Set(69)
	_, err = a.Get(70)
	assert.True(t, errors.Is(err, cods.ErrIndexOutOfRange))
	_, err = a.Put(70, true)
	assert.True(t, errors.Is(err, cods.ErrIndexOutOfRange))
	assert.EqualValues(t, 1, a.Count())
}

func TestScan(t *testing.T) {
	a, err := NewBitArray(130)
	require.NoError(t, err)
	_, ok := a.NextSet(0)
	assert.False(t, ok)
	i, ok := a.NextClear(0)
	assert.True(t, ok)
	assert.EqualValues(t, 0, i)

	a.Set(5)
	a.Set(100)
	i, ok = a.NextSet(0)
	assert.True(t, ok)
	assert.EqualValues(t, 5, i)
	i, ok = a.NextSet(6)
	assert.True(t, ok)
	assert.EqualValues(t, 100, i)
	_, ok = a.NextSet(101)
	assert.False(t, ok)

	for j := uint(0); j < 130; j++ {
		a.Set(j)
	}
	_, ok = a.NextClear(0)
	assert.False(t, ok)
	a.Unset(129)
	i, ok = a.NextClear(64)
	assert.True(t, ok)
	assert.EqualValues(t, 129, i)
}

func TestString(t *testing.T) {
	a, err := NewBitArray(3)
	require.NoError(t, err)
	a.Set(1)
	assert.Equal(t, "[false, true, false]", a.String())
}

func TestAgainstRoaring(t *testing.T) {
	const size = 5000
	a, err := NewBitArray(size)
	require.NoError(t, err)
	oracle := roaring.New()
	g := th.NewSeqGen(th.SgRand)

	for n := 0; n < 20000; n++ {
		i := uint(g.Intn(size))
		v := g.Next()&1 == 1
		former, err := a.Put(i, v)
		require.NoError(t, err)
		require.Equal(t, oracle.Contains(uint32(i)), former)
		if v {
			oracle.Add(uint32(i))
		} else {
			oracle.Remove(uint32(i))
		}
	}
	assert.EqualValues(t, oracle.GetCardinality(), a.Count())
	next, ok := a.NextSet(0)
	if oracle.IsEmpty() {
		assert.False(t, ok)
	} else {
		assert.True(t, ok)
		assert.EqualValues(t, oracle.Minimum(), next)
	}
}
