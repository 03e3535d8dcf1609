package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveScenario3(t *testing.T) {
	// n=2, m=1, x0*x1 + x0 + 1 = 0
	sol, err := Solve(context.Background(), [][]byte{{0, 1, 0, 1, 0, 1}}, 2, 1)
	require.NoError(t, err)
	require.NotNil(t, sol)
	assert.Equal(t, []byte{1, 0}, sol.X)
}

func TestSolveScenario5Unsolvable(t *testing.T) {
	rows := [][]byte{
		{0, 0, 0, 0, 0, 0, 1, 1, 1, 1},
		{0, 0, 0, 0, 0, 0, 1, 1, 1, 0},
	}
	sol, err := Solve(context.Background(), rows, 3, 2)
	require.NoError(t, err)
	assert.Nil(t, sol)
}

func TestSolveRejectsZeroVariables(t *testing.T) {
	_, err := Solve(context.Background(), nil, 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPreconditionViolation))
}

func TestSolveRejectsTooManyEquations(t *testing.T) {
	rows := make([][]byte, 65)
	for i := range rows {
		rows[i] = make([]byte, 3)
	}
	_, err := Solve(context.Background(), rows, 1, 65)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPreconditionViolation))
}

func TestSolveRespectsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Solve(ctx, [][]byte{{0, 1, 0}}, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
