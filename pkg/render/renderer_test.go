package render_test

import (
	"testing"

	"github.com/aretw0/abacus/pkg/adapters/gosym"
	"github.com/aretw0/abacus/pkg/algebra"
	"github.com/aretw0/abacus/pkg/render"
)

var engine = gosym.New()

func intTerms(ns ...int64) []algebra.Term {
	out := make([]algebra.Term, len(ns))
	for i, n := range ns {
		out[i] = algebra.NewTerm(engine.Int(n))
	}
	return out
}

func mustExpression(t *testing.T, terms []algebra.Term, ops []string) *algebra.Expression {
	t.Helper()
	e, err := algebra.NewExpression(terms, terms, ops)
	if err != nil {
		t.Fatalf("NewExpression failed: %v", err)
	}
	return e
}

func TestNormalizeSigns(t *testing.T) {
	cases := map[string]string{
		"2+-3":   "2-3",
		"2-+3":   "2-3",
		"2--3":   "2+3",
		"2++3":   "2+3",
		"2+--3":  "2+3",
		"x+-y-z": "x-y-z",
		"5":      "5",
	}
	for in, want := range cases {
		if got := render.NormalizeSigns(in); got != want {
			t.Fatalf("NormalizeSigns(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestQuestionInterleavesOperators(t *testing.T) {
	e := mustExpression(t, intTerms(2, -3), []string{"", "+", ""})

	if got := render.Question(e, algebra.DialectText); got != "2-3" {
		t.Fatalf("question text %q, want 2-3", got)
	}
}

func TestQuestionLaTeXOperators(t *testing.T) {
	e := mustExpression(t, intTerms(2, 3), []string{"", "*", ""})

	if got := render.Question(e, algebra.DialectLaTeX); got != `2\cdot 3` {
		t.Fatalf("question latex %q", got)
	}

	e = mustExpression(t, intTerms(8, 2), []string{"", "/", ""})
	if got := render.Question(e, algebra.DialectLaTeX); got != `8\div 2` {
		t.Fatalf("question latex %q", got)
	}
}

func TestQuestionEmptyExpression(t *testing.T) {
	e := mustExpression(t, intTerms(0), []string{"", ""})
	if got := render.Question(e, algebra.DialectText); got != "0" {
		t.Fatalf("empty question %q, want 0", got)
	}
}

func TestFromExpression(t *testing.T) {
	r := render.New(engine)
	e := mustExpression(t, intTerms(2, -3), []string{"", "+", ""})

	p, err := r.FromExpression(e)
	if err != nil {
		t.Fatalf("FromExpression failed: %v", err)
	}
	if p.QuestionText != "2-3" {
		t.Fatalf("question %q, want 2-3", p.QuestionText)
	}
	if p.SolutionText != "-1" {
		t.Fatalf("solution %q, want -1", p.SolutionText)
	}
}

func TestFromEquationEquality(t *testing.T) {
	r := render.New(engine)

	x := engine.Symbol("x")
	twoX, err := engine.Int(2).Mul(x, false)
	if err != nil {
		t.Fatalf("Mul failed: %v", err)
	}
	lhs, err := algebra.NewExpression(
		[]algebra.Term{algebra.NewTerm(twoX), algebra.NewTerm(engine.Int(-6))},
		[]algebra.Term{algebra.NewTerm(twoX), algebra.NewTerm(engine.Int(-6))},
		[]string{"", "+", ""},
	)
	if err != nil {
		t.Fatalf("NewExpression failed: %v", err)
	}
	rhs := mustExpression(t, intTerms(0), []string{"", ""})

	eq, err := algebra.NewEquation(lhs, rhs, algebra.RelEqual, "x")
	if err != nil {
		t.Fatalf("NewEquation failed: %v", err)
	}

	p, err := r.FromEquation(eq)
	if err != nil {
		t.Fatalf("FromEquation failed: %v", err)
	}
	if p.QuestionText != "2*x-6=0" {
		t.Fatalf("question %q, want 2*x-6=0", p.QuestionText)
	}
	if p.SolutionText != "x = 3" {
		t.Fatalf("solution %q, want x = 3", p.SolutionText)
	}
}

func TestFromEquationInequality(t *testing.T) {
	r := render.New(engine)

	x := engine.Symbol("x")
	lhs, err := algebra.NewExpression(
		[]algebra.Term{algebra.NewTerm(x), algebra.NewTerm(engine.Int(-4))},
		[]algebra.Term{algebra.NewTerm(x), algebra.NewTerm(engine.Int(-4))},
		[]string{"", "+", ""},
	)
	if err != nil {
		t.Fatalf("NewExpression failed: %v", err)
	}
	rhs := mustExpression(t, intTerms(0), []string{"", ""})

	eq, err := algebra.NewEquation(lhs, rhs, algebra.RelGreater, "x")
	if err != nil {
		t.Fatalf("NewEquation failed: %v", err)
	}

	p, err := r.FromEquation(eq)
	if err != nil {
		t.Fatalf("FromEquation failed: %v", err)
	}
	if p.QuestionText != "x-4>0" {
		t.Fatalf("question %q, want x-4>0", p.QuestionText)
	}
	if p.SolutionText != "x ∊ (4, ∞)" {
		t.Fatalf("solution %q, want x ∊ (4, ∞)", p.SolutionText)
	}
	if p.SolutionLaTeX != `x \in \left(4, \infty\right)` {
		t.Fatalf("solution latex %q", p.SolutionLaTeX)
	}
}

func TestFromEquationNoSolution(t *testing.T) {
	r := render.New(engine)

	lhs := mustExpression(t, intTerms(5), []string{"", ""})
	rhs := mustExpression(t, intTerms(0), []string{"", ""})

	eq, err := algebra.NewEquation(lhs, rhs, algebra.RelEqual, "x")
	if err != nil {
		t.Fatalf("NewEquation failed: %v", err)
	}
	p, err := r.FromEquation(eq)
	if err != nil {
		t.Fatalf("FromEquation failed: %v", err)
	}
	if p.SolutionText != "No solution" {
		t.Fatalf("solution %q, want No solution", p.SolutionText)
	}
	if p.SolutionLaTeX != `\text{No solution}` {
		t.Fatalf("solution latex %q", p.SolutionLaTeX)
	}
}

func TestRelationLaTeX(t *testing.T) {
	r := render.New(engine)

	x := engine.Symbol("x")
	lhs, err := algebra.NewExpression(
		[]algebra.Term{algebra.NewTerm(x)},
		[]algebra.Term{algebra.NewTerm(x)},
		[]string{"", ""},
	)
	if err != nil {
		t.Fatalf("NewExpression failed: %v", err)
	}
	rhs := mustExpression(t, intTerms(2), []string{"", ""})

	eq, err := algebra.NewEquation(lhs, rhs, algebra.RelGreaterEqual, "x")
	if err != nil {
		t.Fatalf("NewEquation failed: %v", err)
	}
	p, err := r.FromEquation(eq)
	if err != nil {
		t.Fatalf("FromEquation failed: %v", err)
	}
	if p.QuestionLaTeX != `x\geq 2` {
		t.Fatalf("question latex %q, want x\\geq 2", p.QuestionLaTeX)
	}
}
