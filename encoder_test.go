package bch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeN7K4T1Vector(t *testing.T) {
	enc := NewEncoder(7, 4, 1, NewBitPoly(1, 0, 1, 1))
	codeword, err := enc.Encode(NewBitPoly(1, 0, 0, 1))
	require.NoError(t, err)
	assert.True(t, codeword.Equal(NewBitPoly(1, 0, 0, 1, 1, 1, 0)), "got %s", codeword)
}

func TestEncodeMessageTooLong(t *testing.T) {
	enc := NewEncoder(7, 4, 1, NewBitPoly(1, 0, 1, 1))
	_, err := enc.Encode(NewBitPoly(1, 1, 1, 1, 1))
	require.Error(t, err)
	var bErr *Error
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, MessageTooLong, bErr.Kind)
}

func TestEncodeIsDivisibleByGenerator(t *testing.T) {
	enc := NewEncoder(15, 7, 2, NewBitPoly(1, 0, 0, 1, 1))
	codeword, err := enc.Encode(NewBitPoly(1, 0, 0, 1, 0, 0, 0))
	require.NoError(t, err)
	remainder, err := RemainderDivide(codeword, enc.gen.Poly)
	require.NoError(t, err)
	assert.Equal(t, 0, CountOnes(remainder))
}

func TestNewEncoderPanicsOnBadParams(t *testing.T) {
	assert.Panics(t, func() {
		NewEncoder(8, 4, 1, NewBitPoly(1, 0, 1, 1))
	})
}
