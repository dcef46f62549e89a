package bch

import "sort"

// Layer is a cyclotomic coset: a sorted set of exponents closed under
// doubling modulo Q-1. All its elements share the same minimal polynomial
// over GF(2).
type Layer []int

// doubleCoset grows the coset of start under repeated doubling modulo q1,
// stopping as soon as a repeat would occur, and returns it sorted.
func doubleCoset(start, q1 int) Layer {
	seen := make(map[int]bool)
	var layer Layer
	e := ((start % q1) + q1) % q1
	for !seen[e] {
		seen[e] = true
		layer = append(layer, e)
		e = (e * 2) % q1
	}
	sort.Ints(layer)
	return layer
}

// FirstNLayers returns, for each starting exponent e in 1..n, the
// cyclotomic coset grown from e. Duplicates are expected (distinct starting
// exponents commonly land in the same coset); callers that need distinct
// cosets deduplicate by sorted content. This is the variant the Berlekamp
// decoder uses to map a syndrome index directly to its minimal polynomial;
// it is deliberately kept separate from DisjointLayers, which serves
// generator assembly and must never double-cover an exponent.
func FirstNLayers(n, q int) []Layer {
	q1 := q - 1
	layers := make([]Layer, n)
	for e := 1; e <= n; e++ {
		layers[e-1] = doubleCoset(e, q1)
	}
	return layers
}

// DisjointLayers builds t pairwise-disjoint cyclotomic cosets whose union
// covers every exponent in {1, ..., 2t} exactly once, by repeatedly popping
// the smallest remaining odd candidate start, growing its coset, and
// striking every covered exponent from the candidate list. It stops early,
// before t layers are produced, once every remaining candidate exceeds 2t.
func DisjointLayers(t, q int) []Layer {
	q1 := q - 1
	var candidates []int
	for c := 1; c < q1; c += 2 {
		candidates = append(candidates, c)
	}

	var layers []Layer
	for len(layers) < t {
		if len(candidates) == 0 || candidates[0] > 2*t {
			break
		}
		start := candidates[0]
		candidates = candidates[1:]

		layer := doubleCoset(start, q1)
		layers = append(layers, layer)

		members := make(map[int]bool, len(layer))
		for _, e := range layer {
			members[e] = true
		}
		filtered := candidates[:0]
		for _, c := range candidates {
			if !members[c] {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
	}
	return layers
}

// combinations returns every k-element subset of items, as a fresh slice
// per subset, in lexicographic index order.
func combinations(items []int, k int) [][]int {
	n := len(items)
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	var result [][]int
	for {
		combo := make([]int, k)
		for i, ix := range idx {
			combo[i] = items[ix]
		}
		result = append(result, combo)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return result
}

// MinimalPolynomial computes the degree-len(layer) minimal polynomial over
// GF(2) whose roots are {alpha^e : e in layer}, via the elementary
// symmetric polynomial of the layer's alpha powers: coefficient of
// x^(L-idx) is the sum, in GF(2^m), of the products of every idx-subset of
// the layer's exponents. Positions 0 and L are always 1.
func MinimalPolynomial(layer Layer, f *Field) BitPoly {
	l := len(layer)
	minPol := make(BitPoly, l+1)
	minPol[0] = 1
	minPol[l] = 1

	q1 := f.Q - 1
	for idx := 1; idx < l; idx++ {
		acc := ZeroLog
		for _, combo := range combinations(layer, idx) {
			s := 0
			for _, e := range combo {
				s = (s + e) % q1
			}
			acc = f.LogAdd(acc, s)
		}
		if acc != ZeroLog {
			minPol[idx] = 1
		}
	}
	return minPol
}
