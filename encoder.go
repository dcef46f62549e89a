package bch

import "fmt"

// Encoder turns k-bit messages into n-bit BCH codewords against a fixed
// generator polynomial.
type Encoder struct {
	n, k int
	gen  *Generator
}

// NewEncoder builds the generator polynomial from (n, k, t, primitivePoly)
// and returns an Encoder. Bad parameters are a programmer error: this
// constructor panics rather than returning an error, per the codec's
// construction-time validation policy.
func NewEncoder(n, k, t int, primitivePoly BitPoly) *Encoder {
	gen, err := BuildGenerator(n, k, t, primitivePoly)
	if err != nil {
		panic(err)
	}
	return &Encoder{n: n, k: k, gen: gen}
}

// NewEncoderWithGenerator builds an Encoder from a precomputed generator
// polynomial, skipping field/layer construction entirely.
func NewEncoderWithGenerator(n, k int, generator BitPoly) *Encoder {
	gen, err := NewGeneratorFromPoly(n, k, generator)
	if err != nil {
		panic(err)
	}
	return &Encoder{n: n, k: k, gen: gen}
}

// Encode maps a message of length <= k to a length-n codeword [message |
// parity] such that G(x) divides the codeword polynomial. The message is
// first left-padded to exactly k bits (high-order zeros, treating a shorter
// message as the same numeric value with more significant zero bits), then
// right-padded with r = n-k zero bits before the parity remainder is
// computed and XORed into those r low-order positions.
func (e *Encoder) Encode(message BitPoly) (BitPoly, error) {
	if len(message) > e.k {
		return nil, &Error{Kind: MessageTooLong, Msg: fmt.Sprintf("message has %d bits, k=%d", len(message), e.k)}
	}

	padded := make(BitPoly, e.n)
	copy(padded[e.k-len(message):e.k], message)

	parity, err := RemainderDivide(padded, e.gen.Poly)
	if err != nil {
		return nil, err
	}

	codeword := padded.Clone()
	offset := e.n - len(parity)
	for i, b := range parity {
		codeword[offset+i] ^= b
	}
	return codeword, nil
}
