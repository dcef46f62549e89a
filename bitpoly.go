package bch

import "strings"

// BitPoly is a bit polynomial: an ordered sequence of 0/1 coefficients, the
// leftmost entry (index 0) being the highest-degree coefficient. A BitPoly
// of length L represents a polynomial of working degree L-1; leading zeros
// may be present and are stripped by TruncateLeadingZeros.
type BitPoly []byte

// NewBitPoly builds a BitPoly from literal 0/1 values, highest degree first.
func NewBitPoly(bits ...byte) BitPoly {
	out := make(BitPoly, len(bits))
	copy(out, bits)
	return out
}

// Clone returns an independent copy.
func (a BitPoly) Clone() BitPoly {
	out := make(BitPoly, len(a))
	copy(out, a)
	return out
}

// Equal reports whether a and b have the same length and coefficients.
func (a BitPoly) Equal(b BitPoly) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the polynomial as a string of '0'/'1' characters, highest
// degree first.
func (a BitPoly) String() string {
	var sb strings.Builder
	sb.Grow(len(a))
	for _, b := range a {
		if b != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Add zero-extends the shorter operand on the high (left) side to match the
// longer one, then XORs elementwise. The result has length max(|a|, |b|).
func Add(a, b BitPoly) BitPoly {
	if len(a) < len(b) {
		a = PrependZeros(a, len(b)-len(a))
	} else if len(b) < len(a) {
		b = PrependZeros(b, len(a)-len(b))
	}
	out := make(BitPoly, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// TruncateLeadingZeros drops leading (high-degree) zero coefficients. An
// all-zero or empty input truncates to the empty polynomial.
func TruncateLeadingZeros(a BitPoly) BitPoly {
	i := 0
	for i < len(a) && a[i] == 0 {
		i++
	}
	return append(BitPoly{}, a[i:]...)
}

// PrependZeros zero-extends a on the high (left) side by n bits.
func PrependZeros(a BitPoly, n int) BitPoly {
	if n <= 0 {
		return append(BitPoly{}, a...)
	}
	out := make(BitPoly, n+len(a))
	copy(out[n:], a)
	return out
}

// RemainderDivide performs GF(2) long division of dividend by divisor and
// returns the remainder. Both operands are stripped of leading zeros first.
// It fails with a DivisionByZero *Error if divisor strips to empty. If the
// stripped divisor is longer than the stripped dividend, the stripped
// dividend is returned unchanged (degree-0 division case). Otherwise the
// remainder is normalized to length (deg(divisor)); callers that concatenate
// it with a message depend on this exact length.
func RemainderDivide(dividend, divisor BitPoly) (BitPoly, error) {
	d := TruncateLeadingZeros(dividend)
	v := TruncateLeadingZeros(divisor)
	if len(v) == 0 {
		return nil, &Error{Kind: DivisionByZero, Msg: "remainder_divide: divisor is the zero polynomial"}
	}
	if len(v) > len(d) {
		return append(BitPoly{}, d...), nil
	}

	rem := append(BitPoly{}, d...)
	for len(rem) >= len(v) {
		if rem[0] == 1 {
			for i := 0; i < len(v); i++ {
				rem[i] ^= v[i]
			}
		}
		rem = rem[1:]
	}
	return append(BitPoly{}, rem...), nil
}

// CyclicShift rotates a by n positions. Positive n shifts left (earlier
// indices pull values from later ones); negative n shifts right. |n| may
// exceed len(a); it is reduced modulo len(a) and normalized to be
// non-negative. The input is not mutated.
func CyclicShift(a BitPoly, n int) BitPoly {
	l := len(a)
	if l == 0 {
		return BitPoly{}
	}
	n %= l
	if n < 0 {
		n += l
	}
	out := make(BitPoly, l)
	for i := 0; i < l; i++ {
		out[i] = a[(i+n)%l]
	}
	return out
}

// CountOnes returns the Hamming weight of a.
func CountOnes(a BitPoly) int {
	n := 0
	for _, b := range a {
		if b != 0 {
			n++
		}
	}
	return n
}

// InvertBit returns a copy of a with the bit at index i flipped.
func InvertBit(a BitPoly, i int) BitPoly {
	out := a.Clone()
	out[i] ^= 1
	return out
}

// multiplyTwo multiplies two GF(2) polynomials, both highest-degree-first.
// The result has length len(a)+len(b)-1 and is not truncated of leading
// zeros (a genuine product of nonzero polynomials with leading 1 never has
// a leading zero; callers pass such operands).
func multiplyTwo(a, b BitPoly) BitPoly {
	if len(a) == 0 || len(b) == 0 {
		return BitPoly{}
	}
	out := make(BitPoly, len(a)+len(b)-1)
	for i, ca := range a {
		if ca == 0 {
			continue
		}
		for j, cb := range b {
			if cb != 0 {
				out[i+j] ^= 1
			}
		}
	}
	return out
}

// multiplyPolys folds multiplyTwo across polys in order, starting from the
// multiplicative identity [1].
func multiplyPolys(polys []BitPoly) BitPoly {
	result := BitPoly{1}
	for _, p := range polys {
		result = multiplyTwo(result, p)
	}
	return result
}
