package bch

// ZeroLog is the sentinel log-form value representing the zero element of
// GF(2^m). It threads through every log-form arithmetic helper as the
// additive identity.
const ZeroLog = -1

// Field is a constructed GF(2^m): the alphas table (dense form of every
// power of alpha) and the addition table (log-form XOR lookup). It is
// immutable after NewField returns and safe to share by reference across
// goroutines driving independent encode/decode calls.
type Field struct {
	M             int      // field degree; primitive polynomial has degree M
	Q             int      // 2^M
	PrimitivePoly BitPoly  // length M+1, leading coefficient 1
	Alphas        []BitPoly // length Q; Alphas[i] is the dense form of alpha^i
	AddTable      [][]int  // Q x Q; AddTable[i][j] = k s.t. alpha^i + alpha^j = alpha^k, or ZeroLog
}

// NewField constructs GF(2^m) from a primitive polynomial of degree m
// (leading coefficient 1, length m+1), per the alphas-table and
// addition-table construction algorithm.
func NewField(primitivePoly BitPoly) (*Field, error) {
	p := TruncateLeadingZeros(primitivePoly)
	if len(p) == 0 || p[0] != 1 {
		return nil, &Error{Kind: InvalidParameters, Msg: "primitive polynomial must be non-empty with leading coefficient 1"}
	}

	m := len(p) - 1
	q := 1 << uint(m)

	alphas := make([]BitPoly, q)
	alpha0 := make(BitPoly, m)
	alpha0[m-1] = 1
	alphas[0] = alpha0

	for i := 1; i < q; i++ {
		prev := alphas[i-1]
		shifted := make(BitPoly, m+1)
		copy(shifted, prev)
		shifted[m] = 0
		if shifted[0] == 1 {
			for j := range shifted {
				shifted[j] ^= p[j]
			}
		}
		alphas[i] = append(BitPoly{}, shifted[1:]...)
	}

	addTable := make([][]int, q)
	for i := 0; i < q; i++ {
		addTable[i] = make([]int, q)
		for j := 0; j < q; j++ {
			xr := Add(alphas[i], alphas[j])
			addTable[i][j] = indexOfAlpha(alphas, xr)
		}
	}

	return &Field{M: m, Q: q, PrimitivePoly: p, Alphas: alphas, AddTable: addTable}, nil
}

func indexOfAlpha(alphas []BitPoly, target BitPoly) int {
	if CountOnes(target) == 0 {
		return ZeroLog
	}
	for i, a := range alphas {
		if a.Equal(target) {
			return i
		}
	}
	return ZeroLog
}

// LogMul multiplies two field elements given in log form: the product's log
// is the sum of the logs, mod Q-1. ZeroLog propagates (zero times anything
// is zero).
func (f *Field) LogMul(a, b int) int {
	if a == ZeroLog || b == ZeroLog {
		return ZeroLog
	}
	return (a + b) % (f.Q - 1)
}

// LogInv returns the log of the multiplicative inverse of a non-zero
// element given in log form.
func (f *Field) LogInv(a int) int {
	if a == ZeroLog {
		panic("bch: inverse of the zero field element")
	}
	q1 := f.Q - 1
	return (q1 - a) % q1
}

// LogDiv divides two field elements given in log form (a / b).
func (f *Field) LogDiv(a, b int) int {
	if a == ZeroLog {
		return ZeroLog
	}
	return f.LogMul(a, f.LogInv(b))
}

// LogAdd adds two field elements given in log form via the addition table.
// ZeroLog acts as the identity for this operation.
func (f *Field) LogAdd(a, b int) int {
	if a == ZeroLog {
		return b
	}
	if b == ZeroLog {
		return a
	}
	return f.AddTable[a][b]
}
