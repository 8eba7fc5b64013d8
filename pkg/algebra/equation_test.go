package algebra_test

import (
	"errors"
	"testing"

	"github.com/aretw0/abacus/pkg/algebra"
)

func mustExpression(t *testing.T, terms []algebra.Term, ops []string) *algebra.Expression {
	t.Helper()
	e, err := algebra.NewExpression(terms, terms, ops)
	if err != nil {
		t.Fatalf("NewExpression failed: %v", err)
	}
	return e
}

func TestNewEquationValidation(t *testing.T) {
	e := mustExpression(t, intTerms(1), []string{"", ""})

	if _, err := algebra.NewEquation(nil, e, algebra.RelEqual, "x"); !errors.Is(err, algebra.ErrInvariant) {
		t.Fatalf("nil side: got %v, want ErrInvariant", err)
	}
	if _, err := algebra.NewEquation(e, e, "=>", "x"); !errors.Is(err, algebra.ErrInvariant) {
		t.Fatalf("bad relation: got %v, want ErrInvariant", err)
	}
	if _, err := algebra.NewEquation(e, e, algebra.RelEqual, ""); !errors.Is(err, algebra.ErrInvariant) {
		t.Fatalf("no variable: got %v, want ErrInvariant", err)
	}
}

func TestSolveLinearEquation(t *testing.T) {
	x := engine.Symbol("x")
	twoX, err := engine.Int(2).Mul(x, false)
	if err != nil {
		t.Fatalf("2*x failed: %v", err)
	}

	// 2x - 6 = 0, with the zero right side pruned to an empty expression.
	lhs := mustExpression(t,
		[]algebra.Term{algebra.NewTerm(twoX), intTerm(-6)},
		[]string{"", "+", ""},
	)
	rhs := mustExpression(t, intTerms(0), []string{"", ""})
	if !rhs.Empty() {
		t.Fatal("zero right side should prune to empty")
	}

	eq, err := algebra.NewEquation(lhs, rhs, algebra.RelEqual, "x")
	if err != nil {
		t.Fatalf("NewEquation failed: %v", err)
	}
	sol, err := eq.Solve(engine)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if sol.Inequality {
		t.Fatal("equality marked as inequality")
	}
	if len(sol.Roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(sol.Roots))
	}
	if got := sol.Roots[0].Render(algebra.DialectText); got != "3" {
		t.Fatalf("root = %q, want 3", got)
	}
}

func TestSolveQuadraticEquation(t *testing.T) {
	x := engine.Symbol("x")
	x2, err := x.Mul(x, false)
	if err != nil {
		t.Fatalf("x*x failed: %v", err)
	}
	minus5x, err := engine.Int(-5).Mul(x, false)
	if err != nil {
		t.Fatalf("-5*x failed: %v", err)
	}

	// x^2 - 5x + 6 = 0 has roots 2 and 3.
	lhs := mustExpression(t,
		[]algebra.Term{algebra.NewTerm(x2), algebra.NewTerm(minus5x), intTerm(6)},
		[]string{"", "+", "+", ""},
	)
	rhs := mustExpression(t, intTerms(0), []string{"", ""})

	eq, err := algebra.NewEquation(lhs, rhs, algebra.RelEqual, "x")
	if err != nil {
		t.Fatalf("NewEquation failed: %v", err)
	}
	sol, err := eq.Solve(engine)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(sol.Roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(sol.Roots))
	}
	got := map[string]bool{}
	for _, r := range sol.Roots {
		got[r.Render(algebra.DialectText)] = true
	}
	if !got["2"] || !got["3"] {
		t.Fatalf("roots = %v, want {2, 3}", got)
	}
}

func TestSolveInequality(t *testing.T) {
	x := engine.Symbol("x")

	// x - 4 > 0 solves to (4, inf).
	lhs := mustExpression(t,
		[]algebra.Term{algebra.NewTerm(x), intTerm(-4)},
		[]string{"", "+", ""},
	)
	rhs := mustExpression(t, intTerms(0), []string{"", ""})

	eq, err := algebra.NewEquation(lhs, rhs, algebra.RelGreater, "x")
	if err != nil {
		t.Fatalf("NewEquation failed: %v", err)
	}
	sol, err := eq.Solve(engine)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !sol.Inequality {
		t.Fatal("inequality not marked")
	}
	if len(sol.Intervals) != 1 {
		t.Fatalf("got %d intervals, want 1", len(sol.Intervals))
	}
	iv := sol.Intervals[0]
	if !iv.LoOpen || !iv.HiUnbounded {
		t.Fatalf("interval = %+v, want (4, inf)", iv)
	}
	if got := iv.Lo.Render(algebra.DialectText); got != "4" {
		t.Fatalf("lower bound = %q, want 4", got)
	}
}

func TestSystemVariables(t *testing.T) {
	e := mustExpression(t, intTerms(1), []string{"", ""})
	eqX, err := algebra.NewEquation(e, e, algebra.RelEqual, "x")
	if err != nil {
		t.Fatalf("NewEquation failed: %v", err)
	}
	eqY, err := algebra.NewEquation(e, e, algebra.RelEqual, "y")
	if err != nil {
		t.Fatalf("NewEquation failed: %v", err)
	}
	sys := algebra.System{Equations: []*algebra.Equation{eqX, eqY, eqX}}

	// One entry per equation, repeats included.
	vars := sys.Variables()
	want := []string{"x", "y", "x"}
	if len(vars) != len(want) {
		t.Fatalf("Variables = %v, want %v", vars, want)
	}
	for i := range want {
		if vars[i] != want[i] {
			t.Fatalf("Variables = %v, want %v", vars, want)
		}
	}
}
