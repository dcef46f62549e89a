package bch

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Generator is the generator polynomial G(x) together with the field it was
// built over. It is owned by each codec instance; BuildGenerator computes
// it, or it may be precomputed externally and injected via the codecs'
// ...WithGenerator constructors.
type Generator struct {
	Poly  BitPoly
	N, K, T int
	Field *Field
}

// BuildGenerator computes the disjoint cyclotomic cosets of DisjointLayers
// (grown from odd starts 1, 3, 5, ...; at most t of them, fewer when the
// first ones already cover {1, ..., 2t}), maps each to its minimal
// polynomial, and multiplies them
// together over GF(2) to produce G(x). It validates the result against n
// and k before returning.
func BuildGenerator(n, k, t int, primitivePoly BitPoly) (*Generator, error) {
	field, err := NewField(primitivePoly)
	if err != nil {
		return nil, err
	}

	layers := DisjointLayers(t, field.Q)
	polys := make([]BitPoly, 0, len(layers))
	for _, layer := range layers {
		polys = append(polys, MinimalPolynomial(layer, field))
	}
	g := multiplyPolys(polys)

	if err := validateParams(n, k, g, field.PrimitivePoly); err != nil {
		return nil, err
	}
	return &Generator{Poly: g, N: n, K: k, T: t, Field: field}, nil
}

// NewGeneratorFromPoly wraps an externally precomputed generator polynomial
// (no field is built, since only the Berlekamp decoder needs field
// arithmetic) after validating it against n and k.
func NewGeneratorFromPoly(n, k int, g BitPoly) (*Generator, error) {
	if err := validateGeneratorDegree(n, k, g); err != nil {
		return nil, err
	}
	return &Generator{Poly: TruncateLeadingZeros(g), N: n, K: k}, nil
}

// validateParams checks the generator-degree invariants together with the
// primitive polynomial's leading coefficient, aggregating every violation
// (rather than stopping at the first) into one InvalidParameters error.
func validateParams(n, k int, g, primitivePoly BitPoly) error {
	var errs *multierror.Error
	if err := validateGeneratorDegree(n, k, g); err != nil {
		if be, ok := err.(*Error); ok {
			if me, ok := be.Err.(*multierror.Error); ok {
				errs = multierror.Append(errs, me.Errors...)
			}
		}
	}
	if len(primitivePoly) == 0 || primitivePoly[0] != 1 {
		errs = multierror.Append(errs, fmt.Errorf("primitive polynomial has leading coefficient 0 or is empty"))
	}
	if errs.ErrorOrNil() != nil {
		return &Error{Kind: InvalidParameters, Msg: "bad coder parameters", Err: errs}
	}
	return nil
}

// validateGeneratorDegree checks the generator-only invariants: non-empty,
// monic, and n == k + deg(G).
func validateGeneratorDegree(n, k int, g BitPoly) error {
	var errs *multierror.Error
	g = TruncateLeadingZeros(g)
	if len(g) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("generator polynomial is empty"))
	} else {
		if g[0] != 1 {
			errs = multierror.Append(errs, fmt.Errorf("generator polynomial has leading coefficient 0"))
		}
		if n != k+len(g)-1 {
			errs = multierror.Append(errs, fmt.Errorf("n (%d) != k (%d) + deg(G) (%d)", n, k, len(g)-1))
		}
	}
	if errs.ErrorOrNil() != nil {
		return &Error{Kind: InvalidParameters, Msg: "bad coder parameters", Err: errs}
	}
	return nil
}
