// Package coeffs implements the dense coefficient store (CS) for a system
// of quadratic GF(2) polynomials, and the normalization pass that folds
// square terms (x^2 = x) into the matching linear term.
package coeffs

import "fmt"

// Store holds m equations of n variables each, in a single contiguous
// row-major buffer indexed buf[e*T+k], replacing the classic
// double-pointer "array of row pointers" table with one allocation.
type Store struct {
	buf []byte
	n   int
	m   int
	t   int
}

// NumTerms returns the number of coefficients per equation for n variables:
// n(n+1)/2 quadratic terms, n linear terms, and one constant term.
func NumTerms(n int) int {
	return n*(n+1)/2 + n + 1
}

// QuadIndex returns the coefficient index of the monomial x_a*x_b, a <= b
// required. Panics if a > b.
func QuadIndex(a, b int) int {
	if a > b {
		panic(fmt.Sprintf("coeffs: QuadIndex requires a<=b, got a=%d b=%d", a, b))
	}
	return b*(b+1)/2 + a
}

// SquareIndex returns the coefficient index of the monomial x_v*x_v.
func SquareIndex(v int) int {
	return QuadIndex(v, v)
}

// LinearIndex returns the coefficient index of the monomial x_v, for a
// system of n variables.
func LinearIndex(n, v int) int {
	return n*(n+1)/2 + v
}

// ConstIndex returns the coefficient index of the constant term, for a
// system of n variables.
func ConstIndex(n int) int {
	return NumTerms(n) - 1
}

// New allocates a Store for m equations in n variables, with all
// coefficients zeroed.
func New(n, m int) *Store {
	t := NumTerms(n)
	return &Store{
		buf: make([]byte, m*t),
		n:   n,
		m:   m,
		t:   t,
	}
}

// NumVars returns n.
func (s *Store) NumVars() int { return s.n }

// NumEquations returns m.
func (s *Store) NumEquations() int { return s.m }

// NumTerms returns T, the number of coefficients per equation.
func (s *Store) NumTerms() int { return s.t }

// Get returns the coefficient at equation e, term index k.
func (s *Store) Get(e, k int) byte {
	return s.buf[e*s.t+k]
}

// Set sets the coefficient at equation e, term index k to v (must be 0 or 1).
func (s *Store) Set(e, k int, v byte) {
	s.buf[e*s.t+k] = v
}

// Row returns the coefficient slice for equation e, sharing the Store's
// backing array. Callers must not retain it past a subsequent mutation of
// a different equation's row expecting isolation — it is a view, not a copy.
func (s *Store) Row(e int) []byte {
	return s.buf[e*s.t : (e+1)*s.t]
}

// Quad returns the coefficient of x_a*x_b (a<=b) in equation e.
func (s *Store) Quad(e, a, b int) byte {
	return s.Get(e, QuadIndex(a, b))
}

// Linear returns the coefficient of x_v in equation e.
func (s *Store) Linear(e, v int) byte {
	return s.Get(e, LinearIndex(s.n, v))
}

// Const returns the constant term of equation e.
func (s *Store) Const(e int) byte {
	return s.Get(e, ConstIndex(s.n))
}

// FromRows builds a Store from m rows of T coefficients each, validating
// dimensions and that every coefficient is 0 or 1.
func FromRows(rows [][]byte, n int) (*Store, error) {
	t := NumTerms(n)
	s := New(n, len(rows))
	for e, row := range rows {
		if len(row) != t {
			return nil, fmt.Errorf("coeffs: equation %d has %d coefficients, want %d", e, len(row), t)
		}
		for k, v := range row {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("coeffs: equation %d coefficient %d is %d, want 0 or 1", e, k, v)
			}
			s.Set(e, k, v)
		}
	}
	return s, nil
}
