package ports

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/abacus/pkg/algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunProblemStoreContract runs a suite of tests to verify that a
// ProblemStore implementation adheres to the defined interface contract.
func RunProblemStoreContract(t *testing.T, store ProblemStore) {
	ctx := context.Background()

	problem := func(i int) algebra.Problem {
		return algebra.Problem{
			QuestionText:  fmt.Sprintf("%d + %d", i, i+1),
			SolutionText:  fmt.Sprintf("%d", 2*i+1),
			QuestionLaTeX: fmt.Sprintf("%d + %d", i, i+1),
			SolutionLaTeX: fmt.Sprintf("%d", 2*i+1),
		}
	}

	t.Run("Add and List", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx))

		added, err := store.Add(ctx, problem(1))
		require.NoError(t, err)
		assert.True(t, added, "first Add should store the problem")

		added, err = store.Add(ctx, problem(2))
		require.NoError(t, err)
		assert.True(t, added)

		list, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, problem(1), list[0], "List should preserve insertion order")
		assert.Equal(t, problem(2), list[1])
	})

	t.Run("Duplicate Rejection", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx))

		_, err := store.Add(ctx, problem(3))
		require.NoError(t, err)

		added, err := store.Add(ctx, problem(3))
		require.NoError(t, err)
		assert.False(t, added, "Add should reject a problem with a seen Key")

		n, err := store.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "a rejected duplicate must not grow the store")

		// Identity is the question and solution pair, so the same question
		// with a different solution is a distinct problem.
		variant := problem(3)
		variant.SolutionText = "something else"
		added, err = store.Add(ctx, variant)
		require.NoError(t, err)
		assert.True(t, added, "a different solution makes a different Key")
	})

	t.Run("Clear", func(t *testing.T) {
		_, err := store.Add(ctx, problem(4))
		require.NoError(t, err)

		require.NoError(t, store.Clear(ctx))

		n, err := store.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		// A cleared key can be added again.
		added, err := store.Add(ctx, problem(4))
		require.NoError(t, err)
		assert.True(t, added)
	})
}
