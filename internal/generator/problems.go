package generator

import (
	"context"
	"fmt"

	"github.com/aretw0/abacus/pkg/algebra"
)

// maxAttempts bounds how many fresh samples an Add call may draw before
// concluding the parameter space is exhausted of new problems.
const maxAttempts = 100

func (g *Generator) addWithRetry(ctx context.Context, build func() (algebra.Problem, error)) (algebra.Problem, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return algebra.Problem{}, err
		}
		p, err := build()
		if err != nil {
			return algebra.Problem{}, err
		}
		added, err := g.store.Add(ctx, p)
		if err != nil {
			return algebra.Problem{}, err
		}
		if added {
			g.log.Debug("problem added", "question", p.QuestionText, "attempt", attempt+1)
			return p, nil
		}
		g.log.Debug("duplicate rejected", "question", p.QuestionText)
	}
	return algebra.Problem{}, fmt.Errorf("%w after %d attempts", ErrExhausted, maxAttempts)
}

// AddNumerical samples a numeric simplification problem into the store.
func (g *Generator) AddNumerical(ctx context.Context, p NumericalParams) (algebra.Problem, error) {
	return g.addWithRetry(ctx, func() (algebra.Problem, error) {
		expr, err := g.NumericalExpression(p)
		if err != nil {
			return algebra.Problem{}, err
		}
		return g.render.FromExpression(expr)
	})
}

// AddLinear samples a linear equation problem into the store. Side orders
// above one are rejected.
func (g *Generator) AddLinear(ctx context.Context, p EquationParams) (algebra.Problem, error) {
	if p.OrderLHS > 1 || p.OrderRHS > 1 {
		return algebra.Problem{}, fmt.Errorf("%w: linear problems allow side orders 0 and 1", ErrBadParams)
	}
	return g.addWithRetry(ctx, func() (algebra.Problem, error) {
		eq, err := g.Equation(p)
		if err != nil {
			return algebra.Problem{}, err
		}
		return g.render.FromEquation(eq)
	})
}

// AddQuadratic samples a quadratic equation problem into the store.
func (g *Generator) AddQuadratic(ctx context.Context, p QuadraticParams) (algebra.Problem, error) {
	return g.addWithRetry(ctx, func() (algebra.Problem, error) {
		eq, err := g.quadraticEquation(p)
		if err != nil {
			return algebra.Problem{}, err
		}
		return g.render.FromEquation(eq)
	})
}

// AddFactorable samples a factoring problem into the store: the question
// is an expanded polynomial, the answer its factored form.
func (g *Generator) AddFactorable(ctx context.Context, p FactorableParams) (algebra.Problem, error) {
	return g.addWithRetry(ctx, func() (algebra.Problem, error) {
		expr, err := g.FactorableExpression(p)
		if err != nil {
			return algebra.Problem{}, err
		}
		return g.render.FromExpression(expr)
	})
}

// AddFracToDec samples a fraction whose answer is its decimal expansion
// to five places.
func (g *Generator) AddFracToDec(ctx context.Context, p ConversionParams) (algebra.Problem, error) {
	if err := p.normalize(); err != nil {
		return algebra.Problem{}, err
	}
	return g.addWithRetry(ctx, func() (algebra.Problem, error) {
		prob, dec, err := g.conversionParts(p)
		if err != nil {
			return algebra.Problem{}, err
		}
		prob.SolutionText = dec
		prob.SolutionLaTeX = dec
		return prob, nil
	})
}

// AddDecToFrac samples a decimal whose answer is the reduced fraction.
func (g *Generator) AddDecToFrac(ctx context.Context, p ConversionParams) (algebra.Problem, error) {
	if err := p.normalize(); err != nil {
		return algebra.Problem{}, err
	}
	return g.addWithRetry(ctx, func() (algebra.Problem, error) {
		prob, dec, err := g.conversionParts(p)
		if err != nil {
			return algebra.Problem{}, err
		}
		prob.QuestionText = dec
		prob.QuestionLaTeX = dec
		return prob, nil
	})
}

// conversionParts samples a single unreduced fraction and returns its
// rendered problem plus the five-place decimal form of its value.
func (g *Generator) conversionParts(p ConversionParams) (algebra.Problem, string, error) {
	expr, err := g.NumericalExpression(NumericalParams{
		Terms:         1,
		Types:         "f",
		MaxLowestTerm: p.MaxLowestTerm,
		MaxMultiple:   p.MaxMultiple,
	})
	if err != nil {
		return algebra.Problem{}, "", err
	}
	prob, err := g.render.FromExpression(expr)
	if err != nil {
		return algebra.Problem{}, "", err
	}
	f, err := expr.Reduced()[0].Value().Float64()
	if err != nil {
		return algebra.Problem{}, "", err
	}
	return prob, fmt.Sprintf("%.5f", f), nil
}
