// Package testutil provides shared rapid.T generators for property-based
// tests across mqsolve's packages, playing the same role the teacher's
// testutils package plays for its integration tests: a single place for
// test setup that would otherwise be copy-pasted into every _test.go file.
package testutil

import (
	"pgregory.net/rapid"

	"github.com/mqsolve/mqsolve/coeffs"
)

// RandomStore draws a Store of m equations in n variables with uniformly
// random 0/1 coefficients.
func RandomStore(t *rapid.T, n, m int) *coeffs.Store {
	s := coeffs.New(n, m)
	terms := coeffs.NumTerms(n)
	for e := 0; e < m; e++ {
		for k := 0; k < terms; k++ {
			s.Set(e, k, byte(rapid.IntRange(0, 1).Draw(t, "coef")))
		}
	}
	return s
}

// RandomNormalizedStore is RandomStore followed by coeffs.Normalize.
func RandomNormalizedStore(t *rapid.T, n, m int) *coeffs.Store {
	s := RandomStore(t, n, m)
	coeffs.Normalize(s)
	return s
}

// RandomAssignment draws a uniformly random 0/1 vector of length n.
func RandomAssignment(t *rapid.T, n int) []byte {
	x := make([]byte, n)
	for v := range x {
		x[v] = byte(rapid.IntRange(0, 1).Draw(t, "x"))
	}
	return x
}
