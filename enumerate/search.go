// Package enumerate implements the Gray-code enumeration loop (E): it
// walks {0,1}^n in reflected Gray-code order, incrementally updating a
// packed "all equations evaluated at the current point" word from the
// derivative tables instead of re-evaluating the system, and returns the
// first zero found.
package enumerate

import (
	"math/bits"

	"github.com/mqsolve/mqsolve/derivative"
)

// Result is a found root, decoded to a 0/1-per-byte assignment, together
// with the Gray-code step count at which it was found.
type Result struct {
	X    []byte
	Step uint64
}

// Search walks the Gray code over {0,1}^n looking for a point at which
// every equation in t evaluates to zero. n must be >= 1 (the caller must
// reject n == 0 before calling Search, per spec.md §4.3).
//
// The loop maintains two invariants (spec.md §4.3):
//
//	I1: F equals f(g(c)) packed across equations, at the end of step c.
//	I2: immediately before step c+1, DV[v] for v = ctz(c+1) equals
//	    df/dx_v(g(c)); for other v, DV[v] holds the derivative at the
//	    point last visited before x_v was toggled, which is all that is
//	    ever read.
func Search(n int, t *derivative.Table) *Result {
	f := t.F
	dv := make([]uint64, len(t.DV))
	copy(dv, t.DV)

	var c uint64
	bound := (uint64(1) << uint(n)) - 1

	for f != 0 && c < bound {
		c++
		fp := bits.TrailingZeros64(c)

		if c&(c-1) != 0 {
			pre := bits.TrailingZeros64(c ^ (uint64(1) << uint(fp)))
			dv[fp] ^= t.P[fp][pre]
		}

		f ^= dv[fp]
	}

	if f != 0 {
		return nil
	}

	gray := c ^ (c >> 1)
	x := make([]byte, n)
	for v := 0; v < n; v++ {
		x[v] = byte((gray >> uint(v)) & 1)
	}
	return &Result{X: x, Step: c}
}
