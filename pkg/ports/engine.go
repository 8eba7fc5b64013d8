package ports

import "github.com/aretw0/abacus/pkg/algebra"

// SymbolicEngine is the full capability surface the generator needs from a
// computer-algebra backend. It extends the solving slice consumed by
// algebra.Equation with value constructors and structural operations.
//
// All constructors return immutable values; see algebra.Value.
type SymbolicEngine interface {
	algebra.Solver

	// Rational builds the exact fraction p/q. A zero denominator returns an
	// error wrapping algebra.ErrDomain.
	Rational(p, q int64) (algebra.Value, error)

	// Symbol builds the free variable with the given name.
	Symbol(name string) algebra.Value

	// Sqrt builds the principal square root of v.
	Sqrt(v algebra.Value) (algebra.Value, error)

	// Hold wraps v so that it renders with the supplied text and latex
	// instead of its canonical forms, while keeping v live for arithmetic.
	// Used for display-only shapes such as unreduced fractions ("20/8").
	Hold(v algebra.Value, text, latex string) algebra.Value

	// Expand distributes products and powers in v.
	Expand(v algebra.Value) (algebra.Value, error)

	// Factor rewrites a polynomial in the given variable as a product of
	// lower-degree factors. When no factorization is found it returns v
	// unchanged and false.
	Factor(v algebra.Value, variable string) (algebra.Value, bool, error)
}
