package gosym

import (
	"fmt"
	"sort"
	"strings"

	gosymbol "github.com/njchilds90/gosymbol"

	"github.com/aretw0/abacus/pkg/algebra"
)

// newtonSearchRange bounds the root search for polynomials above cubic.
const (
	newtonSearchRange = 100.0
	newtonTolerance   = 1e-9
	newtonMaxIter     = 200
)

// SolveEquality returns the real roots of v == 0 in the given variable,
// dispatching on polynomial degree. Exact symbolic roots are preserved when
// the kernel can produce them (linear, quadratic); higher degrees fall back
// to numeric root finding.
func (e *Engine) SolveEquality(v algebra.Value, variable string) ([]algebra.Value, error) {
	val, err := unwrap(v)
	if err != nil {
		return nil, err
	}
	expr := gosymbol.Expand(val.expr)
	coeffs := gosymbol.PolyCoeffs(expr, variable)
	coeff := func(deg int) gosymbol.Expr {
		if c, ok := coeffs[deg]; ok {
			return c
		}
		return gosymbol.N(0)
	}

	var res gosymbol.SolveResult
	switch deg := gosymbol.Degree(expr, variable); deg {
	case 0:
		if n, ok := expr.Eval(); ok && n.IsZero() {
			return nil, fmt.Errorf("%w: identity holds for every %s", algebra.ErrDomain, variable)
		}
		return nil, nil
	case 1:
		res = gosymbol.SolveLinear(coeff(1), coeff(0))
	case 2:
		res = gosymbol.SolveQuadraticExact(coeff(2), coeff(1), coeff(0))
		if res.Error == "" && !res.ExactForm {
			// The kernel falls back to float roots when the discriminant is
			// not a perfect square; build the exact radical forms instead.
			res = exactQuadraticRoots(coeff(2), coeff(1), coeff(0))
		}
	case 3:
		res = gosymbol.SolveCubic(coeff(3), coeff(2), coeff(1), coeff(0))
	default:
		res = gosymbol.SolvePolynomialNewton(expr, variable, newtonSearchRange, newtonTolerance, newtonMaxIter)
	}

	if res.Error != "" {
		switch {
		case len(res.Solutions) > 0:
			// Real roots alongside a discarded complex pair.
		case strings.Contains(res.Error, "no solution") || strings.Contains(res.Error, "complex"):
			// A contradiction or a complex-only root set is simply "no real
			// solution", not a failure.
			return nil, nil
		default:
			return nil, fmt.Errorf("%w: %s", algebra.ErrDomain, res.Error)
		}
	}

	var roots []algebra.Value
	var seen []gosymbol.Expr
	for _, sol := range res.Solutions {
		dup := false
		for _, s := range seen {
			if s.Equal(sol) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen = append(seen, sol)
		roots = append(roots, &value{expr: sol})
	}
	return roots, nil
}

// exactQuadraticRoots builds (-b ± sqrt(b²-4ac)) / (2a) symbolically, so an
// irrational discriminant renders as a radical rather than a float.
func exactQuadraticRoots(a, b, c gosymbol.Expr) gosymbol.SolveResult {
	disc := gosymbol.AddOf(gosymbol.MulOf(b, b), gosymbol.MulOf(gosymbol.N(-4), a, c)).Simplify()
	negB := gosymbol.MulOf(gosymbol.N(-1), b)
	inv2a := gosymbol.PowOf(gosymbol.MulOf(gosymbol.N(2), a), gosymbol.N(-1))
	root := gosymbol.SqrtOf(disc)
	x1 := gosymbol.MulOf(gosymbol.AddOf(negB, root), inv2a).Simplify()
	x2 := gosymbol.MulOf(gosymbol.AddOf(negB, gosymbol.MulOf(gosymbol.N(-1), root)), inv2a).Simplify()
	return gosymbol.SolveResult{Solutions: []gosymbol.Expr{x1, x2}, ExactForm: true}
}

// SolveInequality solves "v <rel> 0" by locating the equality roots and
// classifying the sign of v on each interval between them at a sample
// point. Endpoints are closed exactly when the relation is non-strict.
func (e *Engine) SolveInequality(v algebra.Value, variable string, rel algebra.Relation) ([]algebra.Interval, error) {
	if rel == algebra.RelEqual || !rel.Valid() {
		return nil, fmt.Errorf("%w: %q is not an inequality relation", algebra.ErrDomain, rel)
	}
	val, err := unwrap(v)
	if err != nil {
		return nil, err
	}
	expr := gosymbol.Expand(val.expr)

	roots, err := e.SolveEquality(v, variable)
	if err != nil {
		// An identity means v is constantly zero; only non-strict
		// relations are satisfied, everywhere.
		if strings.Contains(err.Error(), "identity") && !rel.Strict() {
			return []algebra.Interval{{LoUnbounded: true, HiUnbounded: true}}, nil
		}
		if strings.Contains(err.Error(), "identity") {
			return nil, nil
		}
		return nil, err
	}

	type boundary struct {
		v algebra.Value
		f float64
	}
	bounds := make([]boundary, 0, len(roots))
	for _, r := range roots {
		f, err := r.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric root %s in inequality", algebra.ErrDomain, r.Render(algebra.DialectText))
		}
		bounds = append(bounds, boundary{v: r, f: f})
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i].f < bounds[j].f })

	satisfied := func(x float64) (bool, error) {
		at := expr.Sub(variable, gosymbol.NFloat(x)).Simplify()
		n, ok := at.Eval()
		if !ok {
			return false, fmt.Errorf("%w: cannot evaluate at %s = %g", algebra.ErrDomain, variable, x)
		}
		switch rel {
		case algebra.RelLess, algebra.RelLessEqual:
			return n.IsNegative(), nil
		default:
			return n.IsPositive(), nil
		}
	}

	// Sample one point per region: before the first root, between
	// consecutive roots, after the last root.
	samples := make([]float64, 0, len(bounds)+1)
	if len(bounds) == 0 {
		samples = append(samples, 0)
	} else {
		samples = append(samples, bounds[0].f-1)
		for i := 0; i+1 < len(bounds); i++ {
			samples = append(samples, (bounds[i].f+bounds[i+1].f)/2)
		}
		samples = append(samples, bounds[len(bounds)-1].f+1)
	}

	open := rel.Strict()
	var out []algebra.Interval
	regionOK := make([]bool, len(samples))
	for i, x := range samples {
		ok, err := satisfied(x)
		if err != nil {
			return nil, err
		}
		regionOK[i] = ok
	}

	for i := 0; i < len(samples); i++ {
		if !regionOK[i] {
			// A root between two failing regions still satisfies a
			// non-strict relation on its own.
			if !open && i+1 < len(samples) && !regionOK[i+1] {
				r := bounds[i].v
				out = append(out, algebra.Interval{Lo: r, Hi: r})
			}
			continue
		}
		iv := algebra.Interval{LoOpen: open, HiOpen: open}
		if i == 0 {
			iv.LoUnbounded = true
			iv.LoOpen = false
		} else {
			iv.Lo = bounds[i-1].v
		}
		// Extend through consecutive satisfied regions. For non-strict
		// relations the shared root joins them into one interval.
		j := i
		for !open && j+1 < len(samples) && regionOK[j+1] {
			j++
		}
		if j == len(samples)-1 {
			iv.HiUnbounded = true
			iv.HiOpen = false
		} else {
			iv.Hi = bounds[j].v
		}
		out = append(out, iv)
		i = j
	}
	return out, nil
}
