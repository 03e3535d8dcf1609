package challenge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Galois Field : GF(2)
Number of variables : 2
Number of polynomials : 1
Seed : 12345
********************
0 1 0 1 0 1;
`

func TestReadSample(t *testing.T) {
	sys, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 2, sys.N)
	assert.Equal(t, 1, sys.M)
	assert.Equal(t, byte(1), sys.Store.Get(0, 1))
	assert.Equal(t, byte(1), sys.Store.Get(0, 5))
}

func TestReadRejectsWrongField(t *testing.T) {
	bad := strings.Replace(sample, "GF(2)", "GF(3)", 1)
	_, err := Read(strings.NewReader(bad))
	require.Error(t, err)
}

func TestReadRejectsWrongTokenCount(t *testing.T) {
	bad := strings.Replace(sample, "0 1 0 1 0 1;", "0 1 0 1;", 1)
	_, err := Read(strings.NewReader(bad))
	require.Error(t, err)
}

func TestReadRejectsMissingEquations(t *testing.T) {
	bad := `Galois Field : GF(2)
Number of variables : 2
Number of polynomials : 2
********************
0 1 0 1 0 1;
`
	_, err := Read(strings.NewReader(bad))
	require.Error(t, err)
}

func TestReadAcceptsLargeSeed(t *testing.T) {
	big := strings.Replace(sample, "Seed : 12345", "Seed : 99999999999999999999", 1)
	_, err := Read(strings.NewReader(big))
	require.NoError(t, err)
}

func TestReadRejectsMissingHeader(t *testing.T) {
	bad := `Number of variables : 2
Number of polynomials : 1
********************
0 1 0 1 0 1;
`
	_, err := Read(strings.NewReader(bad))
	require.Error(t, err)
}
