package gosym

import (
	"fmt"
	"strconv"
	"strings"

	gosymbol "github.com/njchilds90/gosymbol"

	"github.com/aretw0/abacus/pkg/algebra"
)

// value implements algebra.Value over a gosymbol expression tree. The
// optional text/latex fields override the canonical renderings, which lets
// the generator show unreduced shapes like "20/8" while computing with the
// exact quantity.
type value struct {
	expr  gosymbol.Expr
	text  string
	latex string
}

func unwrap(v algebra.Value) (*value, error) {
	val, ok := v.(*value)
	if !ok {
		return nil, fmt.Errorf("%w: foreign value %T passed to gosym engine", algebra.ErrDomain, v)
	}
	return val, nil
}

func (v *value) binary(other algebra.Value, expand bool, op func(a, b gosymbol.Expr) gosymbol.Expr) (algebra.Value, error) {
	o, err := unwrap(other)
	if err != nil {
		return nil, err
	}
	out := op(v.expr, o.expr)
	if expand {
		out = gosymbol.Expand(out)
	}
	return &value{expr: normalized(out)}, nil
}

// normalized applies the canonicalizations the kernel's Simplify leaves
// undone: repeated factors become powers, like sum terms merge.
func normalized(e gosymbol.Expr) gosymbol.Expr {
	return collectLike(mergePowers(e.Simplify()))
}

// mergePowers rewrites repeated equal factors as a single power, so an
// expanded product renders "x^2" rather than "x*x".
func mergePowers(e gosymbol.Expr) gosymbol.Expr {
	switch t := e.(type) {
	case *gosymbol.Add:
		terms := t.Terms()
		out := make([]gosymbol.Expr, len(terms))
		for i, x := range terms {
			out[i] = mergePowers(x)
		}
		return gosymbol.AddOf(out...)
	case *gosymbol.Mul:
		type counted struct {
			f gosymbol.Expr
			n int64
		}
		var counts []counted
		for _, f := range t.Factors() {
			f = mergePowers(f)
			merged := false
			for i := range counts {
				if counts[i].f.Equal(f) {
					counts[i].n++
					merged = true
					break
				}
			}
			if !merged {
				counts = append(counts, counted{f: f, n: 1})
			}
		}
		out := make([]gosymbol.Expr, 0, len(counts))
		for _, c := range counts {
			if c.n == 1 {
				out = append(out, c.f)
			} else {
				out = append(out, gosymbol.PowOf(c.f, gosymbol.N(c.n)))
			}
		}
		return gosymbol.MulOf(out...)
	}
	return e
}

// collectLike merges sum terms sharing the same symbolic part. The kernel's
// Simplify accumulates bare numbers and bare symbols but leaves products
// split, so "3*x + 2*x" and "3*sqrt(2) + 5*sqrt(2)" would otherwise render
// un-merged.
func collectLike(e gosymbol.Expr) gosymbol.Expr {
	a, ok := e.(*gosymbol.Add)
	if !ok {
		return e
	}
	type group struct {
		rest   gosymbol.Expr
		coeffs []gosymbol.Expr
	}
	var groups []*group
	var nums []gosymbol.Expr
	for _, t := range a.Terms() {
		if _, isNum := t.(*gosymbol.Num); isNum {
			nums = append(nums, t)
			continue
		}
		coeff, rest := splitCoeff(t)
		merged := false
		for _, g := range groups {
			if g.rest.Equal(rest) {
				g.coeffs = append(g.coeffs, coeff)
				merged = true
				break
			}
		}
		if !merged {
			groups = append(groups, &group{rest: rest, coeffs: []gosymbol.Expr{coeff}})
		}
	}
	out := make([]gosymbol.Expr, 0, len(groups)+len(nums))
	for _, g := range groups {
		out = append(out, gosymbol.MulOf(gosymbol.AddOf(g.coeffs...), g.rest))
	}
	out = append(out, nums...)
	return gosymbol.AddOf(out...)
}

// splitCoeff peels a leading numeric coefficient off a product.
func splitCoeff(t gosymbol.Expr) (coeff, rest gosymbol.Expr) {
	m, ok := t.(*gosymbol.Mul)
	if !ok {
		return gosymbol.N(1), t
	}
	factors := m.Factors()
	if n, isNum := factors[0].(*gosymbol.Num); isNum {
		return n, gosymbol.MulOf(factors[1:]...)
	}
	return gosymbol.N(1), t
}

func (v *value) Add(other algebra.Value, expand bool) (algebra.Value, error) {
	return v.binary(other, expand, func(a, b gosymbol.Expr) gosymbol.Expr {
		return gosymbol.AddOf(a, b)
	})
}

func (v *value) Sub(other algebra.Value, expand bool) (algebra.Value, error) {
	return v.binary(other, expand, func(a, b gosymbol.Expr) gosymbol.Expr {
		return gosymbol.AddOf(a, gosymbol.MulOf(gosymbol.N(-1), b))
	})
}

func (v *value) Mul(other algebra.Value, expand bool) (algebra.Value, error) {
	return v.binary(other, expand, func(a, b gosymbol.Expr) gosymbol.Expr {
		return gosymbol.MulOf(a, b)
	})
}

// Div cancels common structure where possible. Division by a numerically
// zero value is rejected before it can reach the kernel, which panics.
func (v *value) Div(other algebra.Value, expand bool) (algebra.Value, error) {
	o, err := unwrap(other)
	if err != nil {
		return nil, err
	}
	if o.IsZero() {
		return nil, fmt.Errorf("%w: division by zero", algebra.ErrDomain)
	}
	out := gosymbol.Cancel(v.expr, o.expr)
	if expand {
		out = gosymbol.Expand(out)
	}
	return &value{expr: normalized(out)}, nil
}

func (v *value) Pow(other algebra.Value, expand bool) (algebra.Value, error) {
	return v.binary(other, expand, func(a, b gosymbol.Expr) gosymbol.Expr {
		return gosymbol.PowOf(a, b)
	})
}

func (v *value) Render(d algebra.Dialect) string {
	if d == algebra.DialectLaTeX {
		if v.latex != "" {
			return v.latex
		}
		return cleanSigns(renderExpr(v.expr, true))
	}
	if v.text != "" {
		return v.text
	}
	return cleanSigns(renderExpr(v.expr, false))
}

// renderExpr walks the expression tree so half-integer powers print as
// square roots ("sqrt(2)", "\sqrt{2}") instead of the kernel's "2^1/2".
// Everything else defers to the kernel's own renderers.
func renderExpr(e gosymbol.Expr, latex bool) string {
	switch t := e.(type) {
	case *gosymbol.Num:
		// A float that round-tripped through big.Rat has an unreadable
		// exact denominator; print it as a decimal instead.
		if !t.IsInteger() {
			if d := t.Rat().Denom(); !d.IsInt64() || d.Int64() > 10000 {
				return strconv.FormatFloat(t.Float64(), 'g', 10, 64)
			}
		}
	case *gosymbol.Pow:
		if isHalf(t.ExpExpr()) {
			if latex {
				return `\sqrt{` + renderExpr(t.Base(), latex) + `}`
			}
			return "sqrt(" + renderExpr(t.Base(), latex) + ")"
		}
	case *gosymbol.Mul:
		factors := t.Factors()
		if len(factors) == 2 {
			_, restIsAdd := factors[1].(*gosymbol.Add)
			if n, ok := factors[0].(*gosymbol.Num); ok && n.IsNegOne() && !restIsAdd {
				return "-" + renderExpr(factors[1], latex)
			}
		}
		parts := make([]string, 0, len(factors))
		for _, f := range factors {
			s := renderExpr(f, latex)
			if _, isAdd := f.(*gosymbol.Add); isAdd {
				if latex {
					s = `\left(` + s + `\right)`
				} else {
					s = "(" + s + ")"
				}
			}
			parts = append(parts, s)
		}
		if latex {
			return strings.Join(parts, " ")
		}
		return strings.Join(parts, "*")
	case *gosymbol.Add:
		parts := make([]string, 0, len(t.Terms()))
		for _, term := range t.Terms() {
			parts = append(parts, renderExpr(term, latex))
		}
		return strings.Join(parts, " + ")
	}
	if latex {
		return e.LaTeX()
	}
	return e.String()
}

func isHalf(e gosymbol.Expr) bool {
	n, ok := e.(*gosymbol.Num)
	if !ok {
		return false
	}
	r := n.Rat()
	return r.Num().Int64() == 1 && r.Denom().Int64() == 2
}

// cleanSigns rewrites the kernel's "a + -b" sum rendering as "a - b".
func cleanSigns(s string) string {
	return strings.ReplaceAll(s, "+ -", "- ")
}

func (v *value) Float64() (float64, error) {
	n, ok := v.expr.Eval()
	if !ok {
		return 0, fmt.Errorf("%w: %s is not numeric", algebra.ErrDomain, v.expr.String())
	}
	return n.Float64(), nil
}

func (v *value) IsZero() bool {
	n, ok := v.expr.Eval()
	return ok && n.IsZero()
}
