package coeffs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNumTerms(t *testing.T) {
	assert.Equal(t, 1, NumTerms(0))
	assert.Equal(t, 3, NumTerms(1))
	assert.Equal(t, 6, NumTerms(2))
	assert.Equal(t, 10, NumTerms(3))
}

func TestQuadIndexCanonicalOrder(t *testing.T) {
	// n=2: monomials in order x0x0, x0x1, x1x1, x0, x1, 1
	assert.Equal(t, 0, QuadIndex(0, 0))
	assert.Equal(t, 1, QuadIndex(0, 1))
	assert.Equal(t, 2, QuadIndex(1, 1))
}

func TestQuadIndexPanicsOnMisorder(t *testing.T) {
	assert.Panics(t, func() { QuadIndex(1, 0) })
}

func TestFromRowsRejectsWrongWidth(t *testing.T) {
	_, err := FromRows([][]byte{{0, 1}}, 1)
	require.Error(t, err)
}

func TestFromRowsRejectsBadCoefficient(t *testing.T) {
	_, err := FromRows([][]byte{{0, 1, 2}}, 1)
	require.Error(t, err)
}

func TestFromRowsRoundTrip(t *testing.T) {
	rows := [][]byte{{0, 1, 1}, {1, 0, 0}}
	s, err := FromRows(rows, 1)
	require.NoError(t, err)
	for e, row := range rows {
		for k, v := range row {
			assert.Equal(t, v, s.Get(e, k))
		}
	}
}

// TestIndicesPartitionRow checks that for every n, the quad/linear/const
// index helpers cover [0,T) exactly once each — the canonical layout of
// spec.md §3.
func TestIndicesPartitionRow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		seen := make([]bool, NumTerms(n))

		mark := func(idx int) {
			require.False(t, seen[idx], "index %d assigned twice", idx)
			seen[idx] = true
		}

		for b := 0; b < n; b++ {
			for a := 0; a <= b; a++ {
				mark(QuadIndex(a, b))
			}
		}
		for v := 0; v < n; v++ {
			mark(LinearIndex(n, v))
		}
		mark(ConstIndex(n))

		for _, s := range seen {
			assert.True(t, s)
		}
	})
}
