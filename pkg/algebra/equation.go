package algebra

import "fmt"

// Equation joins two expressions with a relational sign. Despite the name
// it covers inequalities too; Relation decides which solving path applies.
type Equation struct {
	LHS      *Expression
	RHS      *Expression
	Relation Relation
	Variable string
}

// NewEquation validates the relational sign and the presence of both sides.
func NewEquation(lhs, rhs *Expression, rel Relation, variable string) (*Equation, error) {
	if lhs == nil || rhs == nil {
		return nil, fmt.Errorf("%w: equation requires both sides", ErrInvariant)
	}
	if !rel.Valid() {
		return nil, fmt.Errorf("%w: unknown relational sign %q", ErrInvariant, rel)
	}
	if variable == "" {
		return nil, fmt.Errorf("%w: equation requires a variable to solve for", ErrInvariant)
	}
	return &Equation{LHS: lhs, RHS: rhs, Relation: rel, Variable: variable}, nil
}

// Solution is the outcome of solving an Equation. Exactly one of Roots or
// Intervals is meaningful, selected by Inequality.
type Solution struct {
	// Roots holds the values satisfying an equality. Empty means the
	// equality has no solution.
	Roots []Value

	// Intervals holds the ordered interval union satisfying an inequality.
	// Empty means the empty set.
	Intervals []Interval

	// Inequality reports which of the two fields carries the answer.
	Inequality bool
}

// Solve collapses both sides' reduced tracks, moves everything to the left
// (lhs - rhs compared against zero), and dispatches on the relational sign.
// A side whose every term was pruned contributes zero.
func (eq *Equation) Solve(s Solver) (*Solution, error) {
	lhs, err := sideValue(eq.LHS, s)
	if err != nil {
		return nil, err
	}
	rhs, err := sideValue(eq.RHS, s)
	if err != nil {
		return nil, err
	}
	diff, err := lhs.Sub(rhs, true)
	if err != nil {
		return nil, err
	}

	if eq.Relation == RelEqual {
		roots, err := s.SolveEquality(diff, eq.Variable)
		if err != nil {
			return nil, err
		}
		return &Solution{Roots: roots}, nil
	}

	intervals, err := s.SolveInequality(diff, eq.Variable, eq.Relation)
	if err != nil {
		return nil, err
	}
	return &Solution{Intervals: intervals, Inequality: true}, nil
}

func sideValue(e *Expression, s Solver) (Value, error) {
	if e.Empty() {
		return s.Int(0), nil
	}
	t, err := e.CombineReduced()
	if err != nil {
		return nil, err
	}
	return t.Value(), nil
}

// System is an ordered collection of equations sharing a solution context.
type System struct {
	Equations []*Equation
}

// Variables returns one entry per equation, in system order. Equations
// sharing a variable repeat it; the projection mirrors Equations exactly.
func (sys *System) Variables() []string {
	out := make([]string, len(sys.Equations))
	for i, eq := range sys.Equations {
		out[i] = eq.Variable
	}
	return out
}
