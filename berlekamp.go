package bch

import "fmt"

// BerlekampDecoder solves the key equation for the error-locator polynomial
// via Berlekamp's iterative algorithm, then completes the correction with a
// Chien search and a direct XOR correction.
type BerlekampDecoder struct {
	n, k, t int
	gen     *Generator
	field   *Field
}

// NewBerlekampDecoder builds the field, the generator polynomial, and
// returns a BerlekampDecoder. Bad parameters panic; see NewEncoder.
func NewBerlekampDecoder(n, k, t int, primitivePoly BitPoly) *BerlekampDecoder {
	gen, err := BuildGenerator(n, k, t, primitivePoly)
	if err != nil {
		panic(err)
	}
	return &BerlekampDecoder{n: n, k: k, t: t, gen: gen, field: gen.Field}
}

// bkRow is one row of the Berlekamp iteration table. mu2 is 2*mu (using an
// integer doubled step avoids representing the "-1/2" initial row as a
// fraction): mu2 == -1 is that row, mu2 == 0 is the mu=0 row, and so on.
type bkRow struct {
	mu2   int
	sigma []int // log-form coefficients, index = power of x, ZeroLog for zero
	disc  int   // log-form discrepancy, ZeroLog for zero
	l     int   // deg(sigma)
	m     int   // step count mu2 - l
}

// Decode computes syndromes, solves the key equation for sigma^(t), locates
// its roots via Chien search, and XORs the corresponding bit positions of
// the received word.
func (d *BerlekampDecoder) Decode(received BitPoly) (message, errorPattern BitPoly, err error) {
	if len(received) > d.n {
		return nil, nil, &Error{Kind: InputTooLong, Msg: fmt.Sprintf("received word has %d bits, n=%d", len(received), d.n)}
	}
	word := PrependZeros(received, d.n-len(received))

	syndromes := d.computeSyndromes(word)
	sigma, lt := d.solveKeyEquation(syndromes)
	roots := d.chienSearch(sigma)

	if len(roots) != lt {
		return nil, nil, &Error{Kind: DecodeFailure, Msg: fmt.Sprintf("located %d roots, expected deg(sigma)=%d", len(roots), lt)}
	}

	errPattern := make(BitPoly, d.n)
	for _, j := range roots {
		pos := d.n - 1 - j
		if pos < 0 || pos >= d.n {
			return nil, nil, &Error{Kind: DecodeFailure, Msg: "error-locator root outside the codeword"}
		}
		errPattern[pos] ^= 1
	}

	corrected := Add(word, errPattern)
	if residue, rerr := RemainderDivide(corrected, d.gen.Poly); rerr == nil && CountOnes(residue) != 0 {
		return nil, nil, &Error{Kind: DecodeFailure, Msg: "corrected word fails the generator parity check"}
	}

	decodedMessage := append(BitPoly{}, corrected[:d.k]...)
	return decodedMessage, errPattern, nil
}

// computeSyndromes evaluates the received polynomial at alpha^i for
// i = 1..2t, in log form. For each i it reduces the received word modulo
// the minimal polynomial of the coset containing i (reusing FirstNLayers),
// then folds the contribution of every set bit of that remainder: a bit at
// degree p contributes log value (p*i) mod (Q-1).
func (d *BerlekampDecoder) computeSyndromes(word BitPoly) []int {
	q1 := d.field.Q - 1
	layers := FirstNLayers(2*d.t, d.field.Q)

	syndromes := make([]int, 2*d.t+1) // 1-indexed; index 0 unused
	minPolyCache := make(map[string]BitPoly)

	for i := 1; i <= 2*d.t; i++ {
		layer := layers[i-1]
		key := layerKey(layer)
		m, ok := minPolyCache[key]
		if !ok {
			m = MinimalPolynomial(layer, d.field)
			minPolyCache[key] = m
		}

		remainder, _ := RemainderDivide(word, m)
		lm := len(remainder)
		acc := ZeroLog
		for idx, bit := range remainder {
			if bit == 0 {
				continue
			}
			p := lm - 1 - idx
			logVal := (i * p) % q1
			acc = d.field.LogAdd(acc, logVal)
		}
		syndromes[i] = acc
	}
	return syndromes
}

func layerKey(layer Layer) string {
	b := make([]byte, 0, len(layer)*4)
	for _, e := range layer {
		b = append(b, byte(e), byte(e>>8), byte(e>>16), byte(e>>24))
	}
	return string(b)
}

// solveKeyEquation runs Berlekamp's iteration from the initial rows at
// mu=-1/2 and mu=0 up to sigma^(t), returning its log-form coefficients
// (index = power of x) and its degree l_t.
func (d *BerlekampDecoder) solveKeyEquation(S []int) ([]int, int) {
	rows := make([]bkRow, 0, d.t+2)
	rows = append(rows, bkRow{mu2: -1, sigma: []int{0}, disc: 0, l: 0, m: -1})
	rows = append(rows, bkRow{mu2: 0, sigma: []int{0}, disc: S[1], l: 0, m: 0})

	for mu := 0; mu < d.t; mu++ {
		cur := rows[mu+1]
		next := bkRow{mu2: 2 * (mu + 1)}

		if cur.disc == ZeroLog {
			next.sigma = append([]int{}, cur.sigma...)
			next.l = cur.l
		} else {
			bestIdx := -1
			for j := 0; j <= mu; j++ {
				if rows[j].disc == ZeroLog {
					continue
				}
				if bestIdx == -1 || rows[j].m > rows[bestIdx].m || (rows[j].m == rows[bestIdx].m && j > bestIdx) {
					bestIdx = j
				}
			}
			rho := rows[bestIdx]

			coefLog := d.field.LogDiv(cur.disc, rho.disc)
			shift := 2*mu - rho.mu2

			maxLen := len(cur.sigma)
			if len(rho.sigma)+shift > maxLen {
				maxLen = len(rho.sigma) + shift
			}
			sigma := make([]int, maxLen)
			for i := range sigma {
				sigma[i] = ZeroLog
			}
			for i, v := range cur.sigma {
				sigma[i] = d.field.LogAdd(sigma[i], v)
			}
			for i, v := range rho.sigma {
				if v == ZeroLog {
					continue
				}
				term := d.field.LogMul(coefLog, v)
				sigma[i+shift] = d.field.LogAdd(sigma[i+shift], term)
			}

			l := cur.l
			if rho.l+shift > l {
				l = rho.l + shift
			}
			next.sigma = sigma[:l+1]
			next.l = l
		}

		next.m = next.mu2 - next.l

		if mu+1 < d.t {
			acc := S[2*mu+3]
			for i := 1; i <= next.l; i++ {
				coeff := ZeroLog
				if i < len(next.sigma) {
					coeff = next.sigma[i]
				}
				if coeff == ZeroLog {
					continue
				}
				term := d.field.LogMul(coeff, S[2*mu+3-i])
				acc = d.field.LogAdd(acc, term)
			}
			next.disc = acc
		} else {
			next.disc = ZeroLog
		}

		rows = append(rows, next)
	}

	final := rows[d.t+1]
	return final.sigma, final.l
}

// chienSearch evaluates sigma(alpha^-j) for j = 0..n-1 and returns every j
// where the evaluation is zero: a root whose reciprocal alpha^j marks an
// error at exponent j (bit position n-1-j in this repo's endianness).
func (d *BerlekampDecoder) chienSearch(sigma []int) []int {
	q1 := d.field.Q - 1
	var roots []int
	for j := 0; j < d.n; j++ {
		acc := ZeroLog
		for i, coeff := range sigma {
			if coeff == ZeroLog {
				continue
			}
			exp := ((-i * j) % q1 + q1) % q1
			term := d.field.LogMul(coeff, exp)
			acc = d.field.LogAdd(acc, term)
		}
		if acc == ZeroLog {
			roots = append(roots, j)
		}
	}
	return roots
}
