package bch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func gf8(t *testing.T) *Field {
	t.Helper()
	f, err := NewField(NewBitPoly(1, 0, 1, 1))
	require.NoError(t, err)
	return f
}

func TestNewFieldGF8Alphas(t *testing.T) {
	f := gf8(t)
	assert.Equal(t, 3, f.M)
	assert.Equal(t, 8, f.Q)

	want := []BitPoly{
		NewBitPoly(0, 0, 1),
		NewBitPoly(0, 1, 0),
		NewBitPoly(1, 0, 0),
		NewBitPoly(0, 1, 1),
		NewBitPoly(1, 1, 0),
		NewBitPoly(1, 1, 1),
		NewBitPoly(1, 0, 1),
		NewBitPoly(0, 0, 1),
	}
	for i, w := range want {
		assert.True(t, f.Alphas[i].Equal(w), "alphas[%d] = %s, want %s", i, f.Alphas[i], w)
	}
	assert.True(t, f.Alphas[0].Equal(f.Alphas[f.Q-1]))
}

func TestNewFieldGF8AdditionTableRowZero(t *testing.T) {
	f := gf8(t)
	want := []int{-1, 3, 6, 1, 5, 4, 2, -1}
	for j, w := range want {
		assert.Equal(t, w, f.AddTable[0][j], "addTable[0][%d]", j)
	}
}

func TestAdditionTableRoundTrip(t *testing.T) {
	f := gf8(t)
	for i := 0; i < f.Q; i++ {
		for j := 0; j < f.Q; j++ {
			xr := Add(f.Alphas[i], f.Alphas[j])
			idx := f.AddTable[i][j]
			if idx == ZeroLog {
				assert.Equal(t, 0, CountOnes(xr), "alphas[%d]+alphas[%d] should be zero", i, j)
			} else {
				assert.True(t, xr.Equal(f.Alphas[idx]), "alphas[%d]+alphas[%d] should equal alphas[%d]", i, j, idx)
			}
		}
	}
}

func TestLogMulIdentityAndInverse(t *testing.T) {
	f := gf8(t)
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(0, f.Q-2).Draw(rt, "a")
		inv := f.LogInv(a)
		assert.Equal(t, 0, f.LogMul(a, inv))
	})
}

func TestLogAddZeroLogIdentity(t *testing.T) {
	f := gf8(t)
	for a := 0; a < f.Q-1; a++ {
		assert.Equal(t, a, f.LogAdd(a, ZeroLog))
		assert.Equal(t, a, f.LogAdd(ZeroLog, a))
	}
	assert.Equal(t, ZeroLog, f.LogAdd(ZeroLog, ZeroLog))
}
