package algebra

// Term boxes a single symbolic value together with its two renderings.
// The renderings are derived once, at construction, and never recomputed:
// a Term is immutable, and every operation returns a new Term.
type Term struct {
	value Value
	text  string
	latex string
}

// NewTerm builds a Term from a symbolic value, caching both renderings.
func NewTerm(v Value) Term {
	return Term{
		value: v,
		text:  v.Render(DialectText),
		latex: v.Render(DialectLaTeX),
	}
}

// Value returns the boxed symbolic value.
func (t Term) Value() Value { return t.value }

// Text returns the cached plain-text rendering.
func (t Term) Text() string { return t.text }

// LaTeX returns the cached typeset rendering.
func (t Term) LaTeX() string { return t.latex }

// Render returns the cached rendering for the given dialect.
func (t Term) Render(d Dialect) string {
	if d == DialectLaTeX {
		return t.latex
	}
	return t.text
}

// IsZero reports whether the boxed value is the numeric zero.
func (t Term) IsZero() bool {
	return t.value != nil && t.value.IsZero()
}

// Add returns a new Term holding t + other.
func (t Term) Add(other Term, expand bool) (Term, error) {
	return t.apply(t.value.Add, other, expand)
}

// Sub returns a new Term holding t - other.
func (t Term) Sub(other Term, expand bool) (Term, error) {
	return t.apply(t.value.Sub, other, expand)
}

// Mul returns a new Term holding t * other.
func (t Term) Mul(other Term, expand bool) (Term, error) {
	return t.apply(t.value.Mul, other, expand)
}

// Div returns a new Term holding t / other. Division by a zero value
// surfaces the engine's ErrDomain.
func (t Term) Div(other Term, expand bool) (Term, error) {
	return t.apply(t.value.Div, other, expand)
}

// Pow returns a new Term holding t raised to other.
func (t Term) Pow(other Term, expand bool) (Term, error) {
	return t.apply(t.value.Pow, other, expand)
}

func (t Term) apply(op func(Value, bool) (Value, error), other Term, expand bool) (Term, error) {
	v, err := op(other.value, expand)
	if err != nil {
		return Term{}, err
	}
	return NewTerm(v), nil
}

// String implements fmt.Stringer using the plain-text rendering.
func (t Term) String() string { return t.text }
