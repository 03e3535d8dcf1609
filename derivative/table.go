// Package derivative computes first- and second-order partial derivatives
// of a quadratic GF(2) system and packs them across equations into the
// machine words the enumerator walks.
//
// The first-order derivative vectors D[e][v] are stored as bitsets rather
// than byte slices: unlike the coefficient store, whose layout spec.md
// fixes at one byte per coefficient, nothing constrains how a derivative
// vector is held in memory, and a bitset is the natural fit for a value
// that is read one bit at a time by buildP and initDV.
package derivative

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/mqsolve/mqsolve/coeffs"
)

// MaxEquations is w, the native machine word width the packed tables
// assume. The kernel's precondition is m <= MaxEquations.
const MaxEquations = 64

// Table holds the derivative tables for a normalized system: the
// first-order vectors D, the packed second-order cross-derivatives P, the
// initial packed derivative evaluations DV, and the initial packed
// function evaluation F (the enumerator's starting state).
type Table struct {
	n, m int

	// D[e][v] is the length n+1 coefficient vector of df_e/dx_v: bit i
	// (i<n) is the linear coefficient of x_i, bit n is the constant term.
	D [][]*bitset.BitSet

	// P[j][i] packs, across equations, the constant value of
	// d2f_e/(dx_i dx_j). P[j][i] == P[i][j] and P[i][i] == 0.
	P [][]uint64

	// DV[v] packs, across equations, df_e/dx_v evaluated at the Gray-code
	// predecessor of the first point at which x_v is toggled.
	DV []uint64

	// F packs, across equations, f_e(0^n) — the function evaluated at
	// the all-zero starting point.
	F uint64
}

// Build computes the derivative tables for a normalized coefficient store.
// It returns an error if m exceeds MaxEquations, the kernel's precondition.
func Build(s *coeffs.Store) (*Table, error) {
	n, m := s.NumVars(), s.NumEquations()
	if m > MaxEquations {
		return nil, fmt.Errorf("derivative: m=%d exceeds the %d-bit word width", m, MaxEquations)
	}

	d := make([][]*bitset.BitSet, m)
	for e := 0; e < m; e++ {
		d[e] = make([]*bitset.BitSet, n)
		for v := 0; v < n; v++ {
			d[e][v] = diff(s, e, v)
		}
	}

	t := &Table{
		n: n,
		m: m,
		D: d,
	}
	t.P = t.buildP()
	t.DV = t.initDV()
	t.F = t.initF(s)
	return t, nil
}

// diff computes the length n+1 derivative vector of equation e with
// respect to variable v, per spec.md §4.2.1: d[i] = a_{min(i,v),max(i,v)}
// for i != v, d[v] = 0, d[n] = b_v.
func diff(s *coeffs.Store, e, v int) *bitset.BitSet {
	n := s.NumVars()
	d := bitset.New(uint(n + 1))
	for i := 0; i < n; i++ {
		if i == v {
			continue
		}
		a, b := i, v
		if a > b {
			a, b = b, a
		}
		if s.Quad(e, a, b) == 1 {
			d.Set(uint(i))
		}
	}
	if s.Linear(e, v) == 1 {
		d.Set(uint(n))
	}
	return d
}

// buildP derives the packed second-order table from D: P[j][i]'s bit e is
// D[e][j]'s bit i.
func (t *Table) buildP() [][]uint64 {
	p := make([][]uint64, t.n)
	for j := 0; j < t.n; j++ {
		p[j] = make([]uint64, t.n)
		for i := 0; i < t.n; i++ {
			var word uint64
			for e := 0; e < t.m; e++ {
				if t.D[e][j].Test(uint(i)) {
					word |= 1 << uint(e)
				}
			}
			p[j][i] = word
		}
	}
	return p
}

// initDV computes the packed initial derivative evaluations per
// spec.md §4.2.3: DV[0] is the constant term of df/dx_0; for v>=1, DV[v]
// is that constant term XORed with D[e][v][v-1], since x_{v-1} has
// already been set to 1 by the time x_v is first toggled in the Gray code.
func (t *Table) initDV() []uint64 {
	dv := make([]uint64, t.n)
	for v := 0; v < t.n; v++ {
		var word uint64
		for e := 0; e < t.m; e++ {
			bit := t.D[e][v].Test(uint(t.n))
			if v >= 1 && t.D[e][v].Test(uint(v-1)) {
				bit = !bit
			}
			if bit {
				word |= 1 << uint(e)
			}
		}
		dv[v] = word
	}
	return dv
}

// initF packs f_e(0^n) across equations: the constant term of each
// equation, since every other monomial vanishes at x = 0^n.
func (t *Table) initF(s *coeffs.Store) uint64 {
	var f uint64
	for e := 0; e < t.m; e++ {
		if s.Const(e) == 1 {
			f |= 1 << uint(e)
		}
	}
	return f
}
