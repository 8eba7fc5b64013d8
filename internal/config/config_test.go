package config_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/aretw0/abacus/internal/config"
	"github.com/aretw0/abacus/internal/generator"
	"github.com/aretw0/abacus/pkg/adapters/gosym"
	"github.com/aretw0/abacus/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	ws, err := config.Parse([]byte(`
problems:
  - kind: numerical
`))
	require.NoError(t, err)
	assert.Equal(t, "Worksheet", ws.Title)
	require.Len(t, ws.Problems, 1)
	assert.Equal(t, 1, ws.Problems[0].Count)
}

func TestParseFull(t *testing.T) {
	ws, err := config.Parse([]byte(`
title: Algebra Review
author: Ms. Rivera
message: Show your work.
shuffle: true
seed: 42
problems:
  - kind: numerical
    count: 5
    params:
      terms: 3
      ops: "+-"
  - kind: quadratic
    count: 2
`))
	require.NoError(t, err)
	assert.Equal(t, "Algebra Review", ws.Title)
	assert.Equal(t, "Ms. Rivera", ws.Author)
	assert.True(t, ws.Shuffle)
	assert.Equal(t, uint64(42), ws.Seed)
	require.Len(t, ws.Problems, 2)
	assert.Equal(t, 5, ws.Problems[0].Count)
	assert.Equal(t, config.KindQuadratic, ws.Problems[1].Kind)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"not yaml":       `{{`,
		"no blocks":      `title: Empty`,
		"unknown kind":   "problems:\n  - kind: calculus",
		"negative count": "problems:\n  - kind: numerical\n    count: -2",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(input))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestBlockDecode(t *testing.T) {
	b := config.Block{
		Kind: config.KindNumerical,
		Params: map[string]any{
			"terms":           3,
			"ops":             "+-*",
			"max_lowest_term": 12,
		},
	}
	var p generator.NumericalParams
	require.NoError(t, b.Decode(&p))
	assert.Equal(t, 3, p.Terms)
	assert.Equal(t, "+-*", p.Ops)
	assert.Equal(t, int64(12), p.MaxLowestTerm)
}

func TestBlockDecodeRejectsUnknownParams(t *testing.T) {
	b := config.Block{
		Kind:   config.KindNumerical,
		Params: map[string]any{"term_count": 3},
	}
	var p generator.NumericalParams
	err := b.Decode(&p)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestBlockDecodeNilParams(t *testing.T) {
	var p generator.NumericalParams
	require.NoError(t, config.Block{Kind: config.KindNumerical}.Decode(&p))
	assert.Zero(t, p.Terms)
}

func newTestGenerator() *generator.Generator {
	return generator.New(gosym.New(), memory.NewStore(),
		generator.WithRand(rand.New(rand.NewPCG(1, 0))))
}

func TestApplyFillsStore(t *testing.T) {
	gen := newTestGenerator()
	ws, err := config.Parse([]byte(`
problems:
  - kind: numerical
    count: 3
  - kind: frac_to_dec
`))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, config.Apply(ctx, gen, ws))

	n, err := gen.Store().Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestApplyReportsFailingBlock(t *testing.T) {
	gen := newTestGenerator()
	ws, err := config.Parse([]byte(`
problems:
  - kind: linear
    params:
      order_lhs: 3
`))
	require.NoError(t, err)

	err = config.Apply(context.Background(), gen, ws)
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrBadParams)
	assert.Contains(t, err.Error(), "block 0 (linear)")
}
