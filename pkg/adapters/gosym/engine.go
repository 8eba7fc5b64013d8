// Package gosym adapts the gosymbol kernel (github.com/njchilds90/gosymbol)
// to the ports.SymbolicEngine interface. It is the default engine: exact
// rational arithmetic, deterministic simplification, pure Go.
package gosym

import (
	"fmt"
	"strings"

	gosymbol "github.com/njchilds90/gosymbol"

	"github.com/aretw0/abacus/pkg/algebra"
)

// Engine is a stateless ports.SymbolicEngine backed by gosymbol.
type Engine struct{}

// New returns a ready-to-use Engine.
func New() *Engine { return &Engine{} }

// Int builds the integer value n.
func (e *Engine) Int(n int64) algebra.Value {
	return &value{expr: gosymbol.N(n)}
}

// Rational builds the exact fraction p/q.
func (e *Engine) Rational(p, q int64) (algebra.Value, error) {
	if q == 0 {
		return nil, fmt.Errorf("%w: zero denominator in %d/%d", algebra.ErrDomain, p, q)
	}
	return &value{expr: gosymbol.F(p, q)}, nil
}

// Symbol builds the free variable with the given name.
func (e *Engine) Symbol(name string) algebra.Value {
	return &value{expr: gosymbol.S(name)}
}

// Sqrt builds the principal square root of v. A numerically negative
// argument is rejected.
func (e *Engine) Sqrt(v algebra.Value) (algebra.Value, error) {
	val, err := unwrap(v)
	if err != nil {
		return nil, err
	}
	if n, ok := val.expr.Eval(); ok && n.IsNegative() {
		return nil, fmt.Errorf("%w: square root of negative value %s", algebra.ErrDomain, n.String())
	}
	return &value{expr: gosymbol.SqrtOf(val.expr)}, nil
}

// Hold wraps v so it renders with the supplied text and latex while the
// underlying expression stays live for arithmetic. Arithmetic on a held
// value discards the display overrides.
func (e *Engine) Hold(v algebra.Value, text, latex string) algebra.Value {
	val, err := unwrap(v)
	if err != nil {
		return v
	}
	return &value{expr: val.expr, text: text, latex: latex}
}

// Expand distributes products and powers in v.
func (e *Engine) Expand(v algebra.Value) (algebra.Value, error) {
	val, err := unwrap(v)
	if err != nil {
		return nil, err
	}
	return &value{expr: normalized(gosymbol.Expand(val.expr))}, nil
}

// Factor rewrites a polynomial in the given variable as a product of
// lower-degree factors. The returned value keeps the original expression
// for arithmetic but renders in factored form.
func (e *Engine) Factor(v algebra.Value, variable string) (algebra.Value, bool, error) {
	val, err := unwrap(v)
	if err != nil {
		return nil, false, err
	}
	res := gosymbol.Factor(val.expr, variable)
	if !res.Success || len(res.Factors) == 0 {
		return v, false, nil
	}

	text := make([]string, 0, len(res.Factors))
	latex := make([]string, 0, len(res.Factors))
	for _, f := range res.Factors {
		text = append(text, factorText(f))
		latex = append(latex, factorLaTeX(f))
	}
	return &value{
		expr:  val.expr,
		text:  strings.Join(text, "*"),
		latex: strings.Join(latex, ""),
	}, true, nil
}

func factorText(f gosymbol.Expr) string {
	s := cleanSigns(renderExpr(f, false))
	if needsParens(f) {
		return "(" + s + ")"
	}
	return s
}

func factorLaTeX(f gosymbol.Expr) string {
	s := cleanSigns(renderExpr(f, true))
	if needsParens(f) {
		return `\left(` + s + `\right)`
	}
	return s
}

func needsParens(f gosymbol.Expr) bool {
	switch f.(type) {
	case *gosymbol.Add:
		return true
	}
	return false
}
