// Package generator samples practice problems: numeric simplification,
// algebraic expressions, factoring, and equation solving. Sampled
// expressions are rendered into Problems and collected in a ProblemStore,
// which also screens out duplicates.
package generator

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aretw0/abacus/internal/logging"
	"github.com/aretw0/abacus/pkg/ports"
	"github.com/aretw0/abacus/pkg/render"
)

// Generator owns one sampling session: an engine for symbolic arithmetic,
// a store for the produced problems, and a seedable random source.
type Generator struct {
	engine ports.SymbolicEngine
	store  ports.ProblemStore
	render *render.Renderer
	rng    *rand.Rand
	log    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithRand sets the random source, making the sampling deterministic.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// New builds a Generator over the given engine and store.
func New(engine ports.SymbolicEngine, store ports.ProblemStore, opts ...Option) *Generator {
	g := &Generator{
		engine: engine,
		store:  store,
		render: render.New(engine),
		rng:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		log:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Store exposes the problem sink, for listing and clearing.
func (g *Generator) Store() ports.ProblemStore { return g.store }

// Engine exposes the symbolic backend.
func (g *Generator) Engine() ports.SymbolicEngine { return g.engine }

// intBetween returns a uniform value in [lo, hi].
func (g *Generator) intBetween(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Int64N(hi-lo+1)
}

// oneInFour reports a 25% chance event.
func (g *Generator) oneInFour() bool {
	return g.rng.IntN(4) == 0
}

// coinFlip reports a 50% chance event.
func (g *Generator) coinFlip() bool {
	return g.rng.IntN(2) == 0
}

// pickRune draws a uniform character from a non-empty string.
func (g *Generator) pickRune(s string) string {
	runes := []rune(s)
	return string(runes[g.rng.IntN(len(runes))])
}

func pickInt64(g *Generator, xs []int64) int64 {
	return xs[g.rng.IntN(len(xs))]
}
