package bch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBerlekampDecodeN7K4T1SingleBitError(t *testing.T) {
	dec := NewBerlekampDecoder(7, 4, 1, NewBitPoly(1, 0, 1, 1))
	message, _, err := dec.Decode(NewBitPoly(1, 1, 0, 1, 1, 1, 0))
	require.NoError(t, err)
	assert.True(t, message.Equal(NewBitPoly(1, 0, 0, 1)), "message = %s", message)
}

func TestBerlekampDecodeN15K7T2TwoBitError(t *testing.T) {
	p := NewBitPoly(1, 0, 0, 1, 1)
	enc := NewEncoder(15, 7, 2, p)
	codeword, err := enc.Encode(NewBitPoly(1, 0, 0, 1, 0, 0, 0))
	require.NoError(t, err)

	received := codeword.Clone()
	received[0] ^= 1
	received[1] ^= 1

	dec := NewBerlekampDecoder(15, 7, 2, p)
	message, _, err := dec.Decode(received)
	require.NoError(t, err)
	assert.True(t, message.Equal(NewBitPoly(1, 0, 0, 1, 0, 0, 0)), "message = %s", message)
}

// TestBerlekampDecodeN31K21T2WhereSimpleDecoderFails covers a case where two
// single-bit errors (t=2) lie too far apart for any cyclic rotation to bring
// both into the cyclic-trial decoder's r-bit syndrome window, yet remain
// within the Berlekamp decoder's algebraic correction radius.
func TestBerlekampDecodeN31K21T2WhereSimpleDecoderFails(t *testing.T) {
	p := NewBitPoly(1, 0, 0, 1, 0, 1)
	enc := NewEncoder(31, 21, 2, p)
	msg := NewBitPoly(1, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	codeword, err := enc.Encode(msg)
	require.NoError(t, err)

	received := codeword.Clone()
	received[0] ^= 1
	received[10] ^= 1

	dec := NewBerlekampDecoder(31, 21, 2, p)
	message, _, err := dec.Decode(received)
	require.NoError(t, err)
	assert.True(t, message.Equal(msg), "message = %s, want %s", message, msg)
}

func TestBerlekampDecodeNoErrorRoundTrip(t *testing.T) {
	p := NewBitPoly(1, 0, 1, 1)
	enc := NewEncoder(7, 4, 1, p)
	codeword, err := enc.Encode(NewBitPoly(1, 0, 0, 1))
	require.NoError(t, err)

	dec := NewBerlekampDecoder(7, 4, 1, p)
	message, errPattern, err := dec.Decode(codeword)
	require.NoError(t, err)
	assert.True(t, message.Equal(NewBitPoly(1, 0, 0, 1)))
	assert.Equal(t, 0, CountOnes(errPattern))
}
