package abacus

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/aretw0/abacus/internal/generator"
	"github.com/aretw0/abacus/internal/logging"
	"github.com/aretw0/abacus/pkg/adapters/gosym"
	"github.com/aretw0/abacus/pkg/adapters/memory"
	"github.com/aretw0/abacus/pkg/algebra"
	"github.com/aretw0/abacus/pkg/ports"
)

// Version of the library.
var Version = "0.1.0"

// Parameter types for the Add methods, re-exported from the sampling
// engine so callers outside the module can name them.
type (
	NumericalParams  = generator.NumericalParams
	AlgebraicParams  = generator.AlgebraicParams
	FactorableParams = generator.FactorableParams
	EquationParams   = generator.EquationParams
	QuadraticParams  = generator.QuadraticParams
	ConversionParams = generator.ConversionParams
)

// Generator is the high-level problem generator.
type Generator struct {
	inner  *generator.Generator
	engine ports.SymbolicEngine
	store  ports.ProblemStore
	logger *slog.Logger
	seed   *uint64
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithEngine injects a custom symbolic engine, bypassing the default
// gosymbol backend.
func WithEngine(e ports.SymbolicEngine) Option {
	return func(g *Generator) { g.engine = e }
}

// WithStore injects a custom problem store (e.g. the Redis adapter).
func WithStore(s ports.ProblemStore) Option {
	return func(g *Generator) { g.store = s }
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithSeed makes the sampling deterministic.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.seed = &seed }
}

// New initializes a Generator. Without options it samples with the
// gosymbol engine into an in-memory store.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.engine == nil {
		g.engine = gosym.New()
	}
	if g.store == nil {
		g.store = memory.NewStore()
	}
	if g.logger == nil {
		g.logger = logging.NewNop()
	}

	genOpts := []generator.Option{generator.WithLogger(g.logger)}
	if g.seed != nil {
		genOpts = append(genOpts, generator.WithRand(rand.New(rand.NewPCG(*g.seed, 0))))
	}
	g.inner = generator.New(g.engine, g.store, genOpts...)
	return g
}

// Engine returns the symbolic backend in use.
func (g *Generator) Engine() ports.SymbolicEngine { return g.engine }

// Store returns the problem sink in use.
func (g *Generator) Store() ports.ProblemStore { return g.store }

// AddNumerical samples a numeric simplification problem.
func (g *Generator) AddNumerical(ctx context.Context, p NumericalParams) (algebra.Problem, error) {
	return g.inner.AddNumerical(ctx, p)
}

// AddLinear samples a linear equation or inequality problem.
func (g *Generator) AddLinear(ctx context.Context, p EquationParams) (algebra.Problem, error) {
	return g.inner.AddLinear(ctx, p)
}

// AddQuadratic samples a quadratic equation problem.
func (g *Generator) AddQuadratic(ctx context.Context, p QuadraticParams) (algebra.Problem, error) {
	return g.inner.AddQuadratic(ctx, p)
}

// AddFactorable samples a polynomial factoring problem.
func (g *Generator) AddFactorable(ctx context.Context, p FactorableParams) (algebra.Problem, error) {
	return g.inner.AddFactorable(ctx, p)
}

// AddFracToDec samples a fraction-to-decimal conversion problem.
func (g *Generator) AddFracToDec(ctx context.Context, p ConversionParams) (algebra.Problem, error) {
	return g.inner.AddFracToDec(ctx, p)
}

// AddDecToFrac samples a decimal-to-fraction conversion problem.
func (g *Generator) AddDecToFrac(ctx context.Context, p ConversionParams) (algebra.Problem, error) {
	return g.inner.AddDecToFrac(ctx, p)
}

// Problems lists every stored problem in insertion order.
func (g *Generator) Problems(ctx context.Context) ([]algebra.Problem, error) {
	return g.store.List(ctx)
}

// Clear removes every stored problem.
func (g *Generator) Clear(ctx context.Context) error {
	return g.store.Clear(ctx)
}
