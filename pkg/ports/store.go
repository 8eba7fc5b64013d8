package ports

import (
	"context"

	"github.com/aretw0/abacus/pkg/algebra"
)

// ProblemStore collects generated problems for a worksheet run and enforces
// uniqueness on Problem.Key.
type ProblemStore interface {
	// Add appends the problem unless one with the same Key was added before.
	// It reports whether the problem was actually stored.
	Add(ctx context.Context, p algebra.Problem) (bool, error)

	// List returns the stored problems in insertion order.
	List(ctx context.Context) ([]algebra.Problem, error)

	// Len returns the number of stored problems.
	Len(ctx context.Context) (int, error)

	// Clear removes every stored problem.
	Clear(ctx context.Context) error
}
