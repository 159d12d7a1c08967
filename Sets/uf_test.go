package Sets

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = *rand.New(rand.NewSource(0))

var _ DisjointSets = (*UnionFind)(nil)

func TestUnionFind_New(t *testing.T) {
	for _, n := range []int{0, -3} {
		u, err := NewUnionFind(n)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
	u, err := NewUnionFind(5)
	require.NoError(t, err)
	assert.Equal(t, 5, u.Len())
	assert.Equal(t, 5, u.Count())
	for i := range 5 {
		r, err := u.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, r)
	}
}

func TestUnionFind_Union(t *testing.T) {
	u, _ := NewUnionFind(6)
	ok, err := u.Union(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	r, _ := u.Find(1)
	assert.Equal(t, 0, r, "ties put y's root under x's")

	u.Union(2, 3)
	u.Union(3, 1)
	assert.Equal(t, 3, u.Count())
	c, _ := u.IsConnected(0, 2)
	assert.True(t, c)
	c, _ = u.IsConnected(0, 4)
	assert.False(t, c)

	ok, err = u.Union(1, 2)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, u.Count())

	// a singleton goes under the higher ranked root.
	u.Union(4, 0)
	r4, _ := u.Find(4)
	r0, _ := u.Find(0)
	assert.Equal(t, r0, r4)
	assert.NotEqual(t, 4, r4)
	assert.Equal(t, 2, u.Count())
}

func TestUnionFind_OutOfRange(t *testing.T) {
	u, _ := NewUnionFind(3)
	_, err := u.Find(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	var oe *ElementOutOfRangeError
	_, err = u.Union(0, -1)
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, -1, oe.Element)
	assert.Equal(t, 3, oe.Len)
	assert.Equal(t, 3, u.Count(), "nothing merged")
	r, _ := u.Find(0)
	assert.Equal(t, 0, r)
	_, err = u.IsConnected(5, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// TestUnionFind_Random compares against naive label propagation.
func TestUnionFind_Random(t *testing.T) {
	const n = 500
	u, _ := NewUnionFind(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	groups := n
	for range 2000 {
		x, y := rg.Intn(n), rg.Intn(n)
		merged, err := u.Union(x, y)
		require.NoError(t, err)
		lx, ly := label[x], label[y]
		require.Equal(t, lx != ly, merged)
		if merged {
			for i := range label {
				if label[i] == ly {
					label[i] = lx
				}
			}
			groups--
		}
		require.Equal(t, groups, u.Count())

		a, b := rg.Intn(n), rg.Intn(n)
		c, _ := u.IsConnected(a, b)
		require.Equal(t, label[a] == label[b], c)
		ra, _ := u.Find(a)
		rra, _ := u.Find(ra)
		require.Equal(t, ra, rra)
	}
}
