package generator

import (
	"math"

	"github.com/aretw0/abacus/pkg/algebra"
)

// quadraticCoefficients samples a, b, c for ax^2 + bx + c = 0 with a
// discriminant of the requested character: negative for unsolvable,
// positive non-square for irrational roots.
func (g *Generator) quadraticCoefficients(p QuadraticParams) (a, b, c int64) {
	maxSq := p.MaxLowestTerm * p.MaxLowestTerm

	var squares []int64
	for i := int64(0); i < p.MaxLowestTerm; i++ {
		squares = append(squares, i*i)
	}

	var discrim, b2 int64
	if p.Unsolvable {
		b2 = pickInt64(g, squares)
		discrim = -g.intBetween(1, maxSq)
	} else {
		var notSquares []int64
		for i := int64(0); i < maxSq; i++ {
			if !isPerfectSquare(i) {
				notSquares = append(notSquares, i)
			}
		}
		discrim = pickInt64(g, notSquares)
		b2 = pickInt64(g, squares)
		// Scaling by 4 keeps the discriminant non-square while making
		// b^2 - discrim divisible by 4, so a and c stay integral.
		if (discrim-b2)%4 != 0 {
			discrim *= 4
			b2 *= 4
		}
	}
	product := discrim - b2 // this is -4ac

	choices := divisors(product)
	for i := len(choices) - 1; i >= 0; i-- {
		if choices[i] > p.MaxLowestTerm {
			choices = append(choices[:i], choices[i+1:]...)
		}
	}
	a = pickInt64(g, choices)
	if len(choices) > 1 {
		for i, d := range choices {
			if d == a {
				choices = append(choices[:i], choices[i+1:]...)
				break
			}
		}
	}
	c = pickInt64(g, choices) / -4
	if product < 0 && ((a < 0 && c > 0) || (a > 0 && c < 0)) {
		c = -c
	}
	b = int64(math.Round(math.Sqrt(float64(b2))))

	if g.coinFlip() {
		a, c = -a, -c
	}
	if g.coinFlip() {
		b = -b
	}
	return a, b, c
}

// quadraticEquation samples a quadratic of the requested character. The
// factorable default builds the left side as a product of binomials; the
// other shapes place sampled coefficients against a zero right side.
func (g *Generator) quadraticEquation(p QuadraticParams) (*algebra.Equation, error) {
	if err := p.normalize(); err != nil {
		return nil, err
	}

	if p.Irrational || p.Unsolvable {
		a, b, c := g.quadraticCoefficients(p)
		return g.Equation(EquationParams{
			LHSTerms:      3,
			OrderLHS:      2,
			LHSCoeff:      []int64{a, b, c},
			RHSCoeff:      []int64{0},
			MaxLowestTerm: p.MaxLowestTerm,
			Relation:      p.Relation,
		})
	}

	lhs, err := g.FactorableExpression(FactorableParams{
		Order:         2,
		MaxLowestTerm: p.MaxLowestTerm,
		LeadingCoeff:  p.LeadingCoeff,
	})
	if err != nil {
		return nil, err
	}
	zero := algebra.NewTerm(g.engine.Int(0))
	rhs, err := algebra.NewExpression(
		[]algebra.Term{zero}, []algebra.Term{zero}, []string{"", ""},
	)
	if err != nil {
		return nil, err
	}
	return algebra.NewEquation(lhs, rhs, p.Relation, "x")
}

func isPerfectSquare(n int64) bool {
	if n < 0 {
		return false
	}
	r := int64(math.Round(math.Sqrt(float64(n))))
	return r*r == n
}

// divisors returns the positive divisors of |n| in ascending order.
func divisors(n int64) []int64 {
	if n < 0 {
		n = -n
	}
	var low, high []int64
	for d := int64(1); d*d <= n; d++ {
		if n%d == 0 {
			low = append(low, d)
			if d != n/d {
				high = append(high, n/d)
			}
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}
	return low
}
