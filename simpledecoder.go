package bch

import "fmt"

// SimpleDecoder is the brute-force cyclic-trial decoder: it rotates the
// received word through all n positions looking for one whose syndrome has
// Hamming weight <= t.
type SimpleDecoder struct {
	n, k, t int
	gen     *Generator
}

// NewSimpleDecoder builds the generator polynomial from (n, k, t,
// primitivePoly). Bad parameters panic; see NewEncoder.
func NewSimpleDecoder(n, k, t int, primitivePoly BitPoly) *SimpleDecoder {
	gen, err := BuildGenerator(n, k, t, primitivePoly)
	if err != nil {
		panic(err)
	}
	return &SimpleDecoder{n: n, k: k, t: t, gen: gen}
}

// NewSimpleDecoderWithGenerator builds a SimpleDecoder from a precomputed
// generator polynomial.
func NewSimpleDecoderWithGenerator(n, k, t int, generator BitPoly) *SimpleDecoder {
	gen, err := NewGeneratorFromPoly(n, k, generator)
	if err != nil {
		panic(err)
	}
	return &SimpleDecoder{n: n, k: k, t: t, gen: gen}
}

// Decode tries every cyclic rotation of received, stopping at the first
// whose syndrome (received mod G, right-normalized to r = n-k bits) has
// Hamming weight <= t: a correctable error pattern is eventually rotated
// into a position where the syndrome equals the error itself. It returns
// the recovered message (first k bits of the corrected, un-rotated word)
// and, as the error pattern, the qualifying r-bit syndrome cyclically
// shifted by -i within its own r bits (i being the number of rotations
// tried). DecodeFailure is returned if no rotation qualifies within n
// iterations.
func (d *SimpleDecoder) Decode(received BitPoly) (message, errorPattern BitPoly, err error) {
	if len(received) > d.n {
		return nil, nil, &Error{Kind: InputTooLong, Msg: fmt.Sprintf("received word has %d bits, n=%d", len(received), d.n)}
	}

	word := PrependZeros(received, d.n-len(received))
	r := d.n - d.k

	for i := 0; i < d.n; i++ {
		syndrome, err := RemainderDivide(word, d.gen.Poly)
		if err != nil {
			return nil, nil, err
		}
		syndrome = PrependZeros(syndrome, r-len(syndrome))

		if CountOnes(syndrome) <= d.t {
			correction := PrependZeros(syndrome, len(word)-len(syndrome))
			corrected := Add(word, correction)
			corrected = CyclicShift(corrected, -i)

			decodedMessage := append(BitPoly{}, corrected[:d.k]...)
			decodedError := CyclicShift(syndrome, -i)
			return decodedMessage, decodedError, nil
		}

		word = CyclicShift(word, 1)
	}

	return nil, nil, &Error{Kind: DecodeFailure, Msg: "no cyclic rotation produced a syndrome of weight <= t"}
}
