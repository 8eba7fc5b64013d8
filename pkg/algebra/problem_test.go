package algebra_test

import (
	"testing"

	"github.com/aretw0/abacus/pkg/algebra"
)

func TestProblemKeyAndDialects(t *testing.T) {
	p := algebra.Problem{
		QuestionText:  "2+3",
		SolutionText:  "5",
		QuestionLaTeX: "2+3",
		SolutionLaTeX: "5",
	}
	other := algebra.Problem{QuestionText: "2+3", SolutionText: "6"}
	if p.Key() == other.Key() {
		t.Fatal("problems with different solutions share a key")
	}
	if p.Key() != (algebra.Problem{QuestionText: "2+3", SolutionText: "5"}).Key() {
		t.Fatal("identical question/solution pairs have different keys")
	}
	if p.Question(algebra.DialectLaTeX) != "2+3" || p.Solution(algebra.DialectText) != "5" {
		t.Fatal("dialect accessors returned the wrong field")
	}
}
