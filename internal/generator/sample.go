package generator

import (
	"fmt"
	"math"

	"github.com/aretw0/abacus/pkg/algebra"
)

// numPart is one sampled numeric position before it becomes a Term. held
// marks values whose display was overridden (unreduced fractions and
// radicals), so later multiplications know to recompose the display.
type numPart struct {
	unred algebra.Value
	red   algebra.Value
	held  bool
}

// sampleNumerical draws the numeric parts and operator tokens for an
// expression of p.Terms positions.
func (g *Generator) sampleNumerical(p NumericalParams) ([]numPart, []string, error) {
	if err := p.normalize(); err != nil {
		return nil, nil, err
	}

	// Perfect squares up to MaxMultiple serve as radical multipliers, so
	// every sampled radical reduces cleanly.
	var squares []int64
	for i := int64(1); i*i <= p.MaxMultiple; i++ {
		squares = append(squares, i*i)
	}

	baseRoot := g.intBetween(1, p.MaxLowestTerm)

	parts := make([]numPart, 0, p.Terms)
	ops := make([]string, 0, p.Terms+1)
	ops = append(ops, "")

	for n := 0; n < p.Terms; n++ {
		c0 := g.intBetween(1, p.MaxLowestTerm)
		c1 := g.intBetween(1, p.MaxLowestTerm)
		square := squares[g.rng.IntN(len(squares))]
		mult := g.intBetween(1, p.MaxMultiple)
		if g.oneInFour() {
			c0 = -c0
		}
		if g.oneInFour() {
			c1 = -c1
		}
		if c0 > c1 {
			c0, c1 = c1, c0
		}
		if p.MixedRoots {
			baseRoot = g.intBetween(1, p.MaxLowestTerm)
		}

		var part numPart
		var err error
		switch g.pickRune(p.Types) {
		case "i":
			v := g.engine.Int(c0)
			part = numPart{unred: v, red: v}
		case "r":
			part, err = g.radicalPart(c0, square, baseRoot)
		case "f":
			part, err = g.fractionPart(c0, c1, mult)
		}
		if err != nil {
			return nil, nil, err
		}
		parts = append(parts, part)

		if n < p.Terms-1 {
			ops = append(ops, g.pickRune(p.Ops))
		}
	}
	ops = append(ops, "")
	return parts, ops, nil
}

// radicalPart builds c0*sqrt(square*base), displayed with the radicand
// unreduced and computed with the perfect square folded into the
// coefficient so like radicals can combine.
func (g *Generator) radicalPart(c0, square, base int64) (numPart, error) {
	k := int64(math.Round(math.Sqrt(float64(square))))
	root, err := g.engine.Sqrt(g.engine.Int(base))
	if err != nil {
		return numPart{}, err
	}
	red, err := g.engine.Int(c0 * k).Mul(root, false)
	if err != nil {
		return numPart{}, err
	}

	radicand := square * base
	var text, latex string
	switch c0 {
	case 1:
		text = fmt.Sprintf("sqrt(%d)", radicand)
		latex = fmt.Sprintf(`\sqrt{%d}`, radicand)
	case -1:
		text = fmt.Sprintf("-sqrt(%d)", radicand)
		latex = fmt.Sprintf(`-\sqrt{%d}`, radicand)
	default:
		text = fmt.Sprintf("%d*sqrt(%d)", c0, radicand)
		latex = fmt.Sprintf(`%d \sqrt{%d}`, c0, radicand)
	}
	return numPart{unred: g.engine.Hold(red, text, latex), red: red, held: true}, nil
}

// fractionPart builds (c0*mult)/(c1*mult), displayed uncancelled and
// computed as the exact reduced rational.
func (g *Generator) fractionPart(c0, c1, mult int64) (numPart, error) {
	num, den := c0*mult, c1*mult
	red, err := g.engine.Rational(num, den)
	if err != nil {
		return numPart{}, err
	}
	text := fmt.Sprintf("%d/%d", num, den)
	latex := fmt.Sprintf(`\frac{%d}{%d}`, num, den)
	return numPart{unred: g.engine.Hold(red, text, latex), red: red, held: true}, nil
}

// NumericalExpression samples a purely numeric expression.
func (g *Generator) NumericalExpression(p NumericalParams) (*algebra.Expression, error) {
	parts, ops, err := g.sampleNumerical(p)
	if err != nil {
		return nil, err
	}
	unred := make([]algebra.Term, 0, len(parts))
	red := make([]algebra.Term, 0, len(parts))
	for _, part := range parts {
		unred = append(unred, algebra.NewTerm(part.unred))
		red = append(red, algebra.NewTerm(part.red))
	}
	return algebra.NewExpression(unred, red, ops)
}

// AlgebraicExpression samples a polynomial expression: variable powers
// from Order down to the constant term, scaled by sampled or supplied
// coefficients.
func (g *Generator) AlgebraicExpression(p AlgebraicParams) (*algebra.Expression, error) {
	if err := p.normalize(); err != nil {
		return nil, err
	}

	variables := make([]algebra.Value, 0, len(p.Symbols))
	for _, r := range p.Symbols {
		variables = append(variables, g.engine.Symbol(string(r)))
	}

	monomial := func(order int) (algebra.Value, error) {
		v := g.engine.Int(1)
		fixed := variables[g.rng.IntN(len(variables))]
		for i := 0; i < order; i++ {
			factor := fixed
			if p.MixedVar {
				factor = variables[g.rng.IntN(len(variables))]
			}
			next, err := v.Mul(factor, false)
			if err != nil {
				return nil, err
			}
			v = next
		}
		return v, nil
	}

	// Highest order first, then pad with random orders or trim to fit.
	algebraic := make([]algebra.Value, 0, p.Terms)
	for o := p.Order; o >= 0; o-- {
		v, err := monomial(o)
		if err != nil {
			return nil, err
		}
		algebraic = append(algebraic, v)
	}
	for len(algebraic) < p.Terms {
		v, err := monomial(int(g.intBetween(0, int64(p.Order))))
		if err != nil {
			return nil, err
		}
		algebraic = append(algebraic, v)
	}
	algebraic = algebraic[:p.Terms]

	numeric := NumericalParams{
		Terms:         p.Terms,
		Types:         p.Types,
		MaxLowestTerm: p.MaxLowestTerm,
		MaxMultiple:   p.MaxMultiple,
		MixedRoots:    p.MixedRoots,
	}
	if len(p.Coeff) != 0 {
		// Supplied coefficients ride on unit constants; zero entries
		// zero out their term and get pruned at construction.
		numeric.Types = "i"
		numeric.MaxLowestTerm = 1
		numeric.MaxMultiple = 1
	}
	parts, ops, err := g.sampleNumerical(numeric)
	if err != nil {
		return nil, err
	}

	unred := make([]algebra.Term, 0, len(parts))
	red := make([]algebra.Term, 0, len(parts))
	for i, part := range parts {
		scale := algebraic[i]
		if len(p.Coeff) != 0 {
			scale, err = scale.Mul(g.engine.Int(p.Coeff[i]), false)
			if err != nil {
				return nil, err
			}
		}
		u, err := g.scaleDisplay(part, scale)
		if err != nil {
			return nil, err
		}
		r, err := part.red.Mul(scale, false)
		if err != nil {
			return nil, err
		}
		unred = append(unred, algebra.NewTerm(u))
		red = append(red, algebra.NewTerm(r))
	}
	return algebra.NewExpression(unred, red, ops)
}

// scaleDisplay multiplies an unreduced numeric value by an algebraic
// factor. Held displays are recomposed around the factor instead of being
// lost to canonical rendering.
func (g *Generator) scaleDisplay(part numPart, scale algebra.Value) (algebra.Value, error) {
	product, err := part.unred.Mul(scale, false)
	if err != nil {
		return nil, err
	}
	scaleText := scale.Render(algebra.DialectText)
	if !part.held || scaleText == "1" {
		if part.held && scaleText == "1" {
			return part.unred, nil
		}
		return product, nil
	}
	text := part.unred.Render(algebra.DialectText) + "*" + scaleText
	latex := part.unred.Render(algebra.DialectLaTeX) + " " + scale.Render(algebra.DialectLaTeX)
	return g.engine.Hold(product, text, latex), nil
}

// FactorableExpression samples a product of binomials, shown expanded with
// the factored form as the answer.
func (g *Generator) FactorableExpression(p FactorableParams) (*algebra.Expression, error) {
	if err := p.normalize(); err != nil {
		return nil, err
	}

	factorParams := func() AlgebraicParams {
		ap := AlgebraicParams{
			Terms:         2,
			Symbols:       p.Symbols,
			Order:         1,
			MaxLowestTerm: p.MaxLowestTerm,
		}
		if !p.LeadingCoeff {
			ap.Coeff = []int64{1, g.intBetween(0, p.MaxLowestTerm)}
		}
		return ap
	}

	expr, err := g.AlgebraicExpression(factorParams())
	if err != nil {
		return nil, err
	}
	if err := expr.Simplify(); err != nil {
		return nil, err
	}
	for i := 1; i < p.Order; i++ {
		next, err := g.AlgebraicExpression(factorParams())
		if err != nil {
			return nil, err
		}
		if err := next.Simplify(); err != nil {
			return nil, err
		}
		expr, err = expr.Mul(next)
		if err != nil {
			return nil, err
		}
	}
	if err := expr.Simplify(); err != nil {
		return nil, err
	}

	// Swap the reduced side for its factored form; the expanded polynomial
	// stays as the question.
	variable := string([]rune(p.Symbols)[0])
	expanded := expr.Reduced()[0]
	factored, ok, err := g.engine.Factor(expanded.Value(), variable)
	if err != nil {
		return nil, err
	}
	if !ok {
		g.log.Debug("no factorization found", "expression", expanded.Text())
	}
	return algebra.NewExpression(
		expr.Unreduced(),
		[]algebra.Term{algebra.NewTerm(factored)},
		expr.Operators(),
	)
}

// Equation samples an equation or inequality with independently shaped
// sides.
func (g *Generator) Equation(p EquationParams) (*algebra.Equation, error) {
	if err := p.normalize(); err != nil {
		return nil, err
	}
	lhs, err := g.AlgebraicExpression(AlgebraicParams{
		Terms:         p.LHSTerms,
		Types:         p.Types,
		Symbols:       p.Symbols,
		Order:         p.OrderLHS,
		MixedVar:      p.MixedVar,
		Coeff:         p.LHSCoeff,
		MaxLowestTerm: p.MaxLowestTerm,
		MaxMultiple:   p.MaxMultiple,
		MixedRoots:    p.MixedRoots,
	})
	if err != nil {
		return nil, err
	}
	rhs, err := g.AlgebraicExpression(AlgebraicParams{
		Terms:         p.RHSTerms,
		Types:         p.Types,
		Symbols:       p.Symbols,
		Order:         p.OrderRHS,
		MixedVar:      p.MixedVar,
		Coeff:         p.RHSCoeff,
		MaxLowestTerm: p.MaxLowestTerm,
		MaxMultiple:   p.MaxMultiple,
		MixedRoots:    p.MixedRoots,
	})
	if err != nil {
		return nil, err
	}
	variable := string([]rune(p.Symbols)[0])
	return algebra.NewEquation(lhs, rhs, p.Relation, variable)
}
