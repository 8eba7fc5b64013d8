package algebra

// Dialect selects one of the two textual output surfaces.
type Dialect string

const (
	// DialectText is the plain-text rendering (e.g. "3*x^2 - 4").
	DialectText Dialect = "text"
	// DialectLaTeX is the typeset rendering (e.g. "3x^{2} - 4").
	DialectLaTeX Dialect = "latex"
)

// Relation joins the two sides of an Equation.
type Relation string

const (
	RelEqual        Relation = "="
	RelLess         Relation = "<"
	RelGreater      Relation = ">"
	RelLessEqual    Relation = "<="
	RelGreaterEqual Relation = ">="
)

// Valid reports whether r is one of the supported relational signs.
func (r Relation) Valid() bool {
	switch r {
	case RelEqual, RelLess, RelGreater, RelLessEqual, RelGreaterEqual:
		return true
	}
	return false
}

// Strict reports whether r excludes its boundary values.
func (r Relation) Strict() bool {
	return r == RelLess || r == RelGreater
}

// Value is one opaque symbolic quantity owned by a symbolic engine.
//
// Implementations must be immutable: every operation returns a fresh Value.
// Undefined operations (e.g. division by a zero value) must return an error
// wrapping ErrDomain rather than panic.
type Value interface {
	Add(other Value, expand bool) (Value, error)
	Sub(other Value, expand bool) (Value, error)
	Mul(other Value, expand bool) (Value, error)
	Div(other Value, expand bool) (Value, error)
	Pow(other Value, expand bool) (Value, error)

	// Render produces the textual form of the value in the given dialect.
	Render(d Dialect) string

	// Float64 evaluates the value numerically. It returns an error wrapping
	// ErrDomain when the value still contains free symbols.
	Float64() (float64, error)

	// IsZero reports whether the value is the numeric zero.
	IsZero() bool
}

// Interval is one contiguous piece of an inequality solution set.
// Unbounded ends carry a nil Value.
type Interval struct {
	Lo, Hi                   Value
	LoOpen, HiOpen           bool
	LoUnbounded, HiUnbounded bool
}

// Solver is the solving capability an Equation needs from a symbolic engine.
// It is the consumer-side slice of ports.SymbolicEngine.
type Solver interface {
	// Int builds the integer value n.
	Int(n int64) Value

	// SolveEquality returns the roots of v == 0 in the given variable.
	// An empty slice means the equation has no solution.
	SolveEquality(v Value, variable string) ([]Value, error)

	// SolveInequality returns the solution set of "v <rel> 0" as an ordered
	// interval union. An empty slice means the empty set.
	SolveInequality(v Value, variable string, rel Relation) ([]Interval, error)
}
