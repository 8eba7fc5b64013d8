package algebra_test

import (
	"errors"
	"testing"

	"github.com/aretw0/abacus/pkg/adapters/gosym"
	"github.com/aretw0/abacus/pkg/algebra"
)

var engine = gosym.New()

func intTerm(n int64) algebra.Term {
	return algebra.NewTerm(engine.Int(n))
}

func intTerms(ns ...int64) []algebra.Term {
	out := make([]algebra.Term, len(ns))
	for i, n := range ns {
		out[i] = intTerm(n)
	}
	return out
}

func combineText(t *testing.T, terms []algebra.Term, ops []string) string {
	t.Helper()
	res, err := algebra.Combine(terms, ops)
	if err != nil {
		t.Fatalf("Combine(%v, %q) failed: %v", terms, ops, err)
	}
	return res.Text()
}

func TestCombineSingleTerm(t *testing.T) {
	if got := combineText(t, intTerms(7), []string{"", ""}); got != "7" {
		t.Fatalf("got %q, want 7", got)
	}
}

func TestCombineAddition(t *testing.T) {
	if got := combineText(t, intTerms(2, 3), []string{"", "+", ""}); got != "5" {
		t.Fatalf("2+3: got %q, want 5", got)
	}
}

func TestCombinePrecedence(t *testing.T) {
	// 2 + 3*4 must multiply before adding.
	got := combineText(t, intTerms(2, 3, 4), []string{"", "+", "*", ""})
	if got != "14" {
		t.Fatalf("2+3*4: got %q, want 14", got)
	}

	// 2*3 + 4 with the product on the left.
	got = combineText(t, intTerms(2, 3, 4), []string{"", "*", "+", ""})
	if got != "10" {
		t.Fatalf("2*3+4: got %q, want 10", got)
	}
}

func TestCombineExponentBeforeProduct(t *testing.T) {
	// 2*3^2 = 18
	got := combineText(t, intTerms(2, 3, 2), []string{"", "*", "^", ""})
	if got != "18" {
		t.Fatalf("2*3^2: got %q, want 18", got)
	}
}

func TestCombineGrouping(t *testing.T) {
	// (2+3)*4 = 20
	got := combineText(t, intTerms(2, 3, 4), []string{"(", "+", ")*", ""})
	if got != "20" {
		t.Fatalf("(2+3)*4: got %q, want 20", got)
	}
}

func TestCombineFusedGroupTokens(t *testing.T) {
	// (2+3)*(4+5) = 45; the middle token fuses a close, the operator,
	// and the next open.
	got := combineText(t, intTerms(2, 3, 4, 5), []string{"(", "+", ")*(", "+", ")"})
	if got != "45" {
		t.Fatalf("(2+3)*(4+5): got %q, want 45", got)
	}
}

func TestCombineUnbalancedGrouping(t *testing.T) {
	_, err := algebra.Combine(intTerms(2, 3), []string{"(", "+", ""})
	if !errors.Is(err, algebra.ErrUnbalancedGrouping) {
		t.Fatalf("missing close: got %v, want ErrUnbalancedGrouping", err)
	}

	_, err = algebra.Combine(intTerms(2, 3), []string{")", "+", "("})
	if !errors.Is(err, algebra.ErrUnbalancedGrouping) {
		t.Fatalf("close before open: got %v, want ErrUnbalancedGrouping", err)
	}
}

func TestCombineShapeInvariant(t *testing.T) {
	_, err := algebra.Combine(intTerms(2, 3), []string{"", ""})
	if !errors.Is(err, algebra.ErrInvariant) {
		t.Fatalf("short operator sequence: got %v, want ErrInvariant", err)
	}

	_, err = algebra.Combine(nil, []string{""})
	if !errors.Is(err, algebra.ErrInvariant) {
		t.Fatalf("empty terms: got %v, want ErrInvariant", err)
	}
}

func TestCombineDivisionByZero(t *testing.T) {
	_, err := algebra.Combine(intTerms(4, 0), []string{"", "/", ""})
	if !errors.Is(err, algebra.ErrDomain) {
		t.Fatalf("4/0: got %v, want ErrDomain", err)
	}
}

func TestNewExpressionValidatesShape(t *testing.T) {
	_, err := algebra.NewExpression(intTerms(1, 2), intTerms(1), []string{"", "+", ""})
	if !errors.Is(err, algebra.ErrInvariant) {
		t.Fatalf("track length mismatch: got %v, want ErrInvariant", err)
	}

	_, err = algebra.NewExpression(intTerms(1, 2), intTerms(1, 2), []string{"", ""})
	if !errors.Is(err, algebra.ErrInvariant) {
		t.Fatalf("operator length mismatch: got %v, want ErrInvariant", err)
	}
}

func TestNewExpressionPrunesZeroTerms(t *testing.T) {
	e, err := algebra.NewExpression(
		intTerms(2, 0, 3),
		intTerms(2, 0, 3),
		[]string{"", "+", "-", ""},
	)
	if err != nil {
		t.Fatalf("NewExpression failed: %v", err)
	}
	if e.Len() != 2 {
		t.Fatalf("Len = %d after pruning, want 2", e.Len())
	}
	// The zero's own operator slot goes with it.
	wantOps := []string{"", "-", ""}
	gotOps := e.Operators()
	if len(gotOps) != len(wantOps) {
		t.Fatalf("Operators = %q, want %q", gotOps, wantOps)
	}
	for i := range wantOps {
		if gotOps[i] != wantOps[i] {
			t.Fatalf("Operators = %q, want %q", gotOps, wantOps)
		}
	}

	res, err := e.CombineReduced()
	if err != nil {
		t.Fatalf("CombineReduced failed: %v", err)
	}
	if res.Text() != "-1" {
		t.Fatalf("2-3: got %q, want -1", res.Text())
	}
}

func TestPruneInspectsUnreducedOnly(t *testing.T) {
	// A term that is zero only after reduction stays visible in the
	// question; pruning never looks at the reduced track.
	e, err := algebra.NewExpression(
		intTerms(2, 5),
		intTerms(2, 0),
		[]string{"", "+", ""},
	)
	if err != nil {
		t.Fatalf("NewExpression failed: %v", err)
	}
	if e.Len() != 2 {
		t.Fatalf("Len = %d, want 2", e.Len())
	}

	res, err := e.CombineReduced()
	if err != nil {
		t.Fatalf("CombineReduced failed: %v", err)
	}
	if res.Text() != "2" {
		t.Fatalf("reduced combine %q, want 2", res.Text())
	}
}

func TestExpressionAllZerosBecomesEmpty(t *testing.T) {
	e, err := algebra.NewExpression(intTerms(0, 0), intTerms(0, 0), []string{"", "+", ""})
	if err != nil {
		t.Fatalf("NewExpression failed: %v", err)
	}
	if !e.Empty() {
		t.Fatalf("expected an empty expression, got %d terms", e.Len())
	}
}

func TestExpressionClosure(t *testing.T) {
	a, err := algebra.FromTerm(intTerm(2))
	if err != nil {
		t.Fatalf("FromTerm failed: %v", err)
	}
	b, err := algebra.FromTerm(intTerm(3))
	if err != nil {
		t.Fatalf("FromTerm failed: %v", err)
	}

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	wantOps := []string{"(", ")+(", ")"}
	gotOps := sum.Operators()
	for i := range wantOps {
		if gotOps[i] != wantOps[i] {
			t.Fatalf("closure operators = %q, want %q", gotOps, wantOps)
		}
	}
	res, err := sum.CombineReduced()
	if err != nil {
		t.Fatalf("CombineReduced failed: %v", err)
	}
	if res.Text() != "5" {
		t.Fatalf("(2)+(3): got %q, want 5", res.Text())
	}
}

func TestClosurePreservesPrecedence(t *testing.T) {
	// (2+3) * (4+5) = 45; without the grouping marks this would be 2+3*4+5.
	a, err := algebra.NewExpression(intTerms(2, 3), intTerms(2, 3), []string{"", "+", ""})
	if err != nil {
		t.Fatalf("NewExpression failed: %v", err)
	}
	b, err := algebra.NewExpression(intTerms(4, 5), intTerms(4, 5), []string{"", "+", ""})
	if err != nil {
		t.Fatalf("NewExpression failed: %v", err)
	}
	prod, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Mul failed: %v", err)
	}
	res, err := prod.CombineReduced()
	if err != nil {
		t.Fatalf("CombineReduced failed: %v", err)
	}
	if res.Text() != "45" {
		t.Fatalf("(2+3)*(4+5): got %q, want 45", res.Text())
	}
}

func TestSimplifyCollapsesTracks(t *testing.T) {
	e, err := algebra.NewExpression(intTerms(2, 3, 4), intTerms(2, 3, 4), []string{"", "+", "*", ""})
	if err != nil {
		t.Fatalf("NewExpression failed: %v", err)
	}
	if err := e.Simplify(); err != nil {
		t.Fatalf("Simplify failed: %v", err)
	}
	if e.Len() != 1 {
		t.Fatalf("Len = %d after Simplify, want 1", e.Len())
	}
	if got := e.Reduced()[0].Text(); got != "14" {
		t.Fatalf("Simplify result %q, want 14", got)
	}
	ops := e.Operators()
	if len(ops) != 2 || ops[0] != "" || ops[1] != "" {
		t.Fatalf("Simplify operators = %q, want two empty slots", ops)
	}
}
