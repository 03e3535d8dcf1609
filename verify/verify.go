// Package verify implements the naive verifier (V): it re-evaluates every
// equation in a system from scratch at a candidate assignment, independent
// of the derivative engine and enumerator, so it can cross-check their
// result.
package verify

import "github.com/mqsolve/mqsolve/coeffs"

// Verify re-evaluates every equation of s at x (x[v] must be 0 or 1 for
// each variable v) and reports whether all of them evaluate to zero.
func Verify(s *coeffs.Store, x []byte) bool {
	n := s.NumVars()
	for e := 0; e < s.NumEquations(); e++ {
		if Evaluate(s, e, x) != 0 {
			return false
		}
	}
	_ = n
	return true
}

// Evaluate computes f_e(x) from scratch: the XOR of a_ij*x_i*x_j over
// i<=j, plus the linear terms, plus the constant. Square-monomial slots
// are zero after normalization and contribute nothing.
func Evaluate(s *coeffs.Store, e int, x []byte) byte {
	n := s.NumVars()
	var res byte
	for b := 0; b < n; b++ {
		for a := 0; a <= b; a++ {
			if s.Quad(e, a, b) == 1 {
				res ^= x[a] & x[b]
			}
		}
	}
	for v := 0; v < n; v++ {
		res ^= x[v] & s.Linear(e, v)
	}
	res ^= s.Const(e)
	return res
}
