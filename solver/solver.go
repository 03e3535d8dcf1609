// Package solver wires the coefficient store, normalizer, derivative
// engine, enumerator and verifier into the single entry point spec.md §6
// describes: Solve(system, n, m) -> Option<x>.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mqsolve/mqsolve/coeffs"
	"github.com/mqsolve/mqsolve/derivative"
	"github.com/mqsolve/mqsolve/enumerate"
	"github.com/mqsolve/mqsolve/internal/log"
	"github.com/mqsolve/mqsolve/verify"
)

// ErrPreconditionViolation is returned when n == 0 or m exceeds the
// kernel's machine-word width (spec.md §4.4, §7).
var ErrPreconditionViolation = errors.New("solver: precondition violated")

// ErrVerificationFailure is returned when the enumerator reports a root
// that the naive verifier rejects. This can only happen if there is a bug
// in the derivative engine or enumerator; it must be impossible on
// correctly normalized input (spec.md §7).
var ErrVerificationFailure = errors.New("solver: enumerator result failed verification")

// Solution is the decoded root and the Gray-code step count at which the
// enumerator found it.
type Solution struct {
	X    []byte
	Step uint64
}

// Solve finds an assignment that zeroes every equation of system, a system
// of m quadratic equations in n GF(2) variables laid out in the spec.md §3
// canonical monomial order. It returns (nil, nil) when no root exists.
//
// ctx is checked once before the kernel runs, not inside the enumeration
// loop: the kernel has no cooperative cancellation points (spec.md §5), so
// a timeout can only bound whether Solve starts, not abort it mid-search.
// Use enumerate's 2^n iteration bound, which is always finite, for that.
func Solve(ctx context.Context, system [][]byte, n, m int) (*Solution, error) {
	store, err := coeffs.FromRows(system, n)
	if err != nil {
		return nil, fmt.Errorf("solver: building coefficient store: %w", err)
	}
	return SolveStore(ctx, store)
}

// SolveStore is Solve for a caller that already has a *coeffs.Store (e.g.
// the challenge reader), avoiding a redundant row-by-row rebuild.
func SolveStore(ctx context.Context, store *coeffs.Store) (*Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n, m := store.NumVars(), store.NumEquations()
	if n == 0 {
		return nil, fmt.Errorf("%w: n must be >= 1", ErrPreconditionViolation)
	}
	if m > derivative.MaxEquations {
		return nil, fmt.Errorf("%w: m=%d exceeds %d equations", ErrPreconditionViolation, m, derivative.MaxEquations)
	}

	logger := log.Logger().With().Str("component", "solver").Int("n", n).Int("m", m).Logger()

	coeffs.Normalize(store)

	table, err := derivative.Build(store)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreconditionViolation, err)
	}

	logger.Debug().Msg("brute forcing")
	result := enumerate.Search(n, table)
	if result == nil {
		logger.Info().Msg("no solution found")
		return nil, nil
	}

	if !verify.Verify(store, result.X) {
		return nil, fmt.Errorf("%w: step %d, x=%v", ErrVerificationFailure, result.Step, result.X)
	}

	logger.Info().Uint64("step", result.Step).Msg("found valid solution")
	return &Solution{X: result.X, Step: result.Step}, nil
}
