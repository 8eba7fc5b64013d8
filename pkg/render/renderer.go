// Package render turns expressions and equations into frozen Problem
// snapshots: the question from the unreduced track, the solution from the
// reduced track (or from solving), in both the text and LaTeX dialects.
package render

import (
	"strings"

	"github.com/aretw0/abacus/pkg/algebra"
)

// Renderer builds algebra.Problem values. The solver is only consulted for
// equations; expression rendering is purely structural.
type Renderer struct {
	solver algebra.Solver
}

// New returns a Renderer backed by the given solver.
func New(solver algebra.Solver) *Renderer {
	return &Renderer{solver: solver}
}

// FromExpression renders a simplification problem: the question shows the
// unreduced terms joined by their operators, the solution is the reduced
// track collapsed to a single term.
func (r *Renderer) FromExpression(e *algebra.Expression) (algebra.Problem, error) {
	qText := Question(e, algebra.DialectText)
	qLaTeX := Question(e, algebra.DialectLaTeX)

	sText, sLaTeX := "0", "0"
	if !e.Empty() {
		t, err := e.CombineReduced()
		if err != nil {
			return algebra.Problem{}, err
		}
		sText = t.Text()
		sLaTeX = t.LaTeX()
	}
	return algebra.Problem{
		QuestionText:  qText,
		SolutionText:  sText,
		QuestionLaTeX: qLaTeX,
		SolutionLaTeX: sLaTeX,
	}, nil
}

// FromEquation renders a solving problem. The question joins both sides
// with the relational sign; the solution lists roots for an equality or an
// interval union for an inequality.
func (r *Renderer) FromEquation(eq *algebra.Equation) (algebra.Problem, error) {
	sol, err := eq.Solve(r.solver)
	if err != nil {
		return algebra.Problem{}, err
	}
	return algebra.Problem{
		QuestionText:  Question(eq.LHS, algebra.DialectText) + string(eq.Relation) + Question(eq.RHS, algebra.DialectText),
		QuestionLaTeX: Question(eq.LHS, algebra.DialectLaTeX) + opToLaTeX(string(eq.Relation)) + Question(eq.RHS, algebra.DialectLaTeX),
		SolutionText:  solutionText(eq, sol, algebra.DialectText),
		SolutionLaTeX: solutionText(eq, sol, algebra.DialectLaTeX),
	}, nil
}

// Question interleaves operator tokens with the unreduced terms and culls
// doubled signs. An expression whose every term was pruned renders as "0".
func Question(e *algebra.Expression, d algebra.Dialect) string {
	if e.Empty() {
		return "0"
	}
	terms := e.Unreduced()
	ops := e.Operators()

	var b strings.Builder
	for i, t := range terms {
		b.WriteString(convertOp(ops[i], d))
		b.WriteString(t.Render(d))
	}
	b.WriteString(convertOp(ops[len(ops)-1], d))
	return NormalizeSigns(b.String())
}

// NormalizeSigns rewrites doubled sign sequences until none remain, in a
// fixed rule order: "+-" and "-+" collapse to "-", "--" and "++" to "+".
func NormalizeSigns(s string) string {
	for {
		next := s
		next = strings.ReplaceAll(next, "+-", "-")
		next = strings.ReplaceAll(next, "-+", "-")
		next = strings.ReplaceAll(next, "--", "+")
		next = strings.ReplaceAll(next, "++", "+")
		if next == s {
			return next
		}
		s = next
	}
}

func convertOp(op string, d algebra.Dialect) string {
	if d == algebra.DialectLaTeX {
		return opToLaTeX(op)
	}
	return op
}

// opToLaTeX converts operator tokens to their typeset forms. Grouping marks
// pass through, so fused tokens like ")*(" convert their inner operator.
func opToLaTeX(op string) string {
	switch op {
	case ">=":
		return `\geq `
	case "<=":
		return `\leq `
	case "!=":
		return `\neq `
	}
	op = strings.ReplaceAll(op, "*", `\cdot `)
	op = strings.ReplaceAll(op, "/", `\div `)
	return op
}

func solutionText(eq *algebra.Equation, sol *algebra.Solution, d algebra.Dialect) string {
	if sol.Inequality {
		return intervalSolution(eq.Variable, sol.Intervals, d)
	}
	return rootSolution(eq.Variable, sol.Roots, d)
}

func rootSolution(variable string, roots []algebra.Value, d algebra.Dialect) string {
	if len(roots) == 0 {
		if d == algebra.DialectLaTeX {
			return `\text{No solution}`
		}
		return "No solution"
	}
	parts := make([]string, 0, len(roots))
	for _, r := range roots {
		parts = append(parts, variable+" = "+r.Render(d))
	}
	return strings.Join(parts, ", ")
}

func intervalSolution(variable string, intervals []algebra.Interval, d algebra.Dialect) string {
	if len(intervals) == 0 {
		if d == algebra.DialectLaTeX {
			return `\varnothing`
		}
		return "∅"
	}
	parts := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		parts = append(parts, renderInterval(iv, d))
	}
	if d == algebra.DialectLaTeX {
		return variable + ` \in ` + strings.Join(parts, ` \cup `)
	}
	return variable + " ∊ " + strings.Join(parts, " ∪ ")
}

func renderInterval(iv algebra.Interval, d algebra.Dialect) string {
	// A degenerate closed interval is a single point.
	if !iv.LoUnbounded && !iv.HiUnbounded && !iv.LoOpen && !iv.HiOpen &&
		iv.Lo != nil && iv.Hi != nil && iv.Lo.Render(d) == iv.Hi.Render(d) {
		if d == algebra.DialectLaTeX {
			return `\left\{` + iv.Lo.Render(d) + `\right\}`
		}
		return "{" + iv.Lo.Render(d) + "}"
	}

	var lo, hi, lb, rb string
	switch {
	case iv.LoUnbounded:
		lb = "("
		lo = "-∞"
		if d == algebra.DialectLaTeX {
			lo = `-\infty`
		}
	case iv.LoOpen:
		lb = "("
		lo = iv.Lo.Render(d)
	default:
		lb = "["
		lo = iv.Lo.Render(d)
	}
	switch {
	case iv.HiUnbounded:
		rb = ")"
		hi = "∞"
		if d == algebra.DialectLaTeX {
			hi = `\infty`
		}
	case iv.HiOpen:
		rb = ")"
		hi = iv.Hi.Render(d)
	default:
		rb = "]"
		hi = iv.Hi.Render(d)
	}
	if d == algebra.DialectLaTeX {
		lbs := map[string]string{"(": `\left(`, "[": `\left[`}[lb]
		rbs := map[string]string{")": `\right)`, "]": `\right]`}[rb]
		return lbs + lo + ", " + hi + rbs
	}
	return lb + lo + ", " + hi + rb
}
