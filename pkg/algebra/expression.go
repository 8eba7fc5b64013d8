package algebra

import (
	"fmt"
	"slices"
	"strings"
)

// Operator tokens recognized by Combine. Interior tokens may fuse a binary
// operator with grouping marks (e.g. "(", ")", ")*("); the first and last
// token of an operator sequence are boundary slots, normally empty or a
// bare grouping mark.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/"
	OpPow = "^"
)

// Expression is an ordered sequence of Terms joined by operator tokens,
// kept in two parallel tracks. The unreduced track preserves the terms as
// they should be displayed in a question; the reduced track holds the same
// conceptual terms in pre-simplified form, free to be combined further.
//
// Invariant: len(operators) == len(unreduced)+1 == len(reduced)+1, enforced
// at construction. Positions whose unreduced term is the numeric zero are
// pruned eagerly; the reduced counterpart is not consulted, so a term that
// is zero only after reduction stays visible (documented asymmetry).
type Expression struct {
	unreduced []Term
	reduced   []Term
	operators []string
}

// NewExpression builds an Expression from parallel term tracks and an
// operator sequence, validating the shape invariant and pruning
// structural zeros. The input slices are copied.
func NewExpression(unreduced, reduced []Term, operators []string) (*Expression, error) {
	if len(unreduced) != len(reduced) {
		return nil, fmt.Errorf("%w: %d unreduced terms vs %d reduced terms",
			ErrInvariant, len(unreduced), len(reduced))
	}
	if len(operators) != len(unreduced)+1 {
		return nil, fmt.Errorf("%w: %d terms require %d operators, got %d",
			ErrInvariant, len(unreduced), len(unreduced)+1, len(operators))
	}
	e := &Expression{
		unreduced: slices.Clone(unreduced),
		reduced:   slices.Clone(reduced),
		operators: slices.Clone(operators),
	}
	e.pruneZeroUnreduced()
	return e, nil
}

// FromTerm builds a single-term Expression whose unreduced and reduced
// tracks both hold t.
func FromTerm(t Term) (*Expression, error) {
	return NewExpression([]Term{t}, []Term{t}, []string{"", ""})
}

// pruneZeroUnreduced removes every position whose unreduced term is the
// numeric zero, together with the aligned reduced term and the operator
// slot at the same index. Only the unreduced form is inspected.
func (e *Expression) pruneZeroUnreduced() {
	for i := len(e.unreduced) - 1; i >= 0; i-- {
		if !e.unreduced[i].IsZero() {
			continue
		}
		e.unreduced = slices.Delete(e.unreduced, i, i+1)
		e.reduced = slices.Delete(e.reduced, i, i+1)
		e.operators = slices.Delete(e.operators, i, i+1)
	}
}

// Len returns the number of term positions.
func (e *Expression) Len() int { return len(e.unreduced) }

// Empty reports whether every position was pruned away.
func (e *Expression) Empty() bool { return len(e.unreduced) == 0 }

// Unreduced returns a copy of the display-preserving term track.
func (e *Expression) Unreduced() []Term { return slices.Clone(e.unreduced) }

// Reduced returns a copy of the simplifiable term track.
func (e *Expression) Reduced() []Term { return slices.Clone(e.reduced) }

// Operators returns a copy of the operator-token sequence.
func (e *Expression) Operators() []string { return slices.Clone(e.operators) }

// Simplify collapses both tracks to a single term each, using the shared
// operator sequence, and resets the operators to an empty pair.
func (e *Expression) Simplify() error {
	u, err := Combine(e.unreduced, e.operators)
	if err != nil {
		return err
	}
	r, err := Combine(e.reduced, e.operators)
	if err != nil {
		return err
	}
	e.unreduced = []Term{u}
	e.reduced = []Term{r}
	e.operators = []string{"", ""}
	return nil
}

// CombineUnreduced collapses the unreduced track to a single term without
// mutating the expression.
func (e *Expression) CombineUnreduced() (Term, error) {
	return Combine(e.unreduced, e.operators)
}

// CombineReduced collapses the reduced track to a single term without
// mutating the expression.
func (e *Expression) CombineReduced() (Term, error) {
	return Combine(e.reduced, e.operators)
}

// Add returns the Expression (e) + (other), with both operands
// parenthesized so the merged sequence still resolves correctly.
func (e *Expression) Add(other *Expression) (*Expression, error) {
	return e.closure(other, OpAdd)
}

// Sub returns the Expression (e) - (other).
func (e *Expression) Sub(other *Expression) (*Expression, error) {
	return e.closure(other, OpSub)
}

// Mul returns the Expression (e) * (other).
func (e *Expression) Mul(other *Expression) (*Expression, error) {
	return e.closure(other, OpMul)
}

// Div returns the Expression (e) / (other).
func (e *Expression) Div(other *Expression) (*Expression, error) {
	return e.closure(other, OpDiv)
}

// Pow returns the Expression (e) ^ (other).
func (e *Expression) Pow(other *Expression) (*Expression, error) {
	return e.closure(other, OpPow)
}

// closure concatenates the two expressions' tracks and joins them with
// ['('] + e.operators[1:-1] + [')<op>('] + other.operators[1:-1] + [')'],
// preserving precedence regardless of what either operand contained.
func (e *Expression) closure(other *Expression, op string) (*Expression, error) {
	unreduced := make([]Term, 0, len(e.unreduced)+len(other.unreduced))
	unreduced = append(unreduced, e.unreduced...)
	unreduced = append(unreduced, other.unreduced...)

	reduced := make([]Term, 0, len(e.reduced)+len(other.reduced))
	reduced = append(reduced, e.reduced...)
	reduced = append(reduced, other.reduced...)

	operators := make([]string, 0, len(e.operators)+len(other.operators))
	operators = append(operators, "(")
	operators = append(operators, interior(e.operators)...)
	operators = append(operators, ")"+op+"(")
	operators = append(operators, interior(other.operators)...)
	operators = append(operators, ")")

	return NewExpression(unreduced, reduced, operators)
}

func interior(ops []string) []string {
	if len(ops) <= 2 {
		return nil
	}
	return ops[1 : len(ops)-1]
}

// Combine collapses a term sequence and its operator sequence into a single
// Term, respecting standard precedence (grouping > exponent > mul/div >
// add/sub) with left-to-right tie-breaking inside each level. It is
// implemented by explicit token scanning over copied slices; the inputs are
// never mutated. Each recursive step removes exactly one term, so the
// recursion always terminates.
func Combine(terms []Term, operators []string) (Term, error) {
	if len(operators) != len(terms)+1 {
		return Term{}, fmt.Errorf("%w: %d terms require %d operators, got %d",
			ErrInvariant, len(terms), len(terms)+1, len(operators))
	}
	if len(terms) == 0 {
		return Term{}, fmt.Errorf("%w: cannot combine an empty term sequence", ErrInvariant)
	}
	return combine(slices.Clone(terms), slices.Clone(operators))
}

func combine(terms []Term, ops []string) (Term, error) {
	// Base case: a single term.
	if len(terms) == 1 {
		return terms[0], nil
	}

	// Grouping resolution.
	var opens, closes []int
	for i, op := range ops {
		if strings.Contains(op, "(") {
			opens = append(opens, i)
		}
		if strings.Contains(op, ")") {
			closes = append(closes, i)
		}
	}
	if len(opens) != len(closes) {
		return Term{}, fmt.Errorf("%w: %d opening vs %d closing marks",
			ErrUnbalancedGrouping, len(opens), len(closes))
	}
	if len(opens) > 0 {
		if opens[0] >= closes[0] {
			return Term{}, fmt.Errorf("%w: closing mark at %d precedes first opening mark at %d",
				ErrUnbalancedGrouping, closes[0], opens[0])
		}
		// The last opening mark belongs to the most recently opened group;
		// its match is the nearest closing mark to its right.
		last := opens[len(opens)-1]
		closeIdx := -1
		for _, c := range closes {
			if c > last && (closeIdx == -1 || c < closeIdx) {
				closeIdx = c
			}
		}
		if closeIdx == -1 {
			return Term{}, fmt.Errorf("%w: opening mark at %d has no closing mark",
				ErrUnbalancedGrouping, last)
		}

		innerOps := make([]string, 0, closeIdx-last+1)
		innerOps = append(innerOps, "")
		innerOps = append(innerOps, ops[last+1:closeIdx]...)
		innerOps = append(innerOps, "")

		inner, err := combine(slices.Clone(terms[last:closeIdx]), innerOps)
		if err != nil {
			return Term{}, err
		}

		// Splice the folded group back in and strip its marks from the two
		// operators now adjacent to it.
		outTerms := make([]Term, 0, len(terms)-(closeIdx-last)+1)
		outTerms = append(outTerms, terms[:last]...)
		outTerms = append(outTerms, inner)
		outTerms = append(outTerms, terms[closeIdx:]...)

		outOps := make([]string, 0, len(ops)-(closeIdx-last-1))
		outOps = append(outOps, ops[:last+1]...)
		outOps = append(outOps, ops[closeIdx:]...)
		outOps[last] = strings.ReplaceAll(outOps[last], "(", "")
		outOps[last+1] = strings.ReplaceAll(outOps[last+1], ")", "")

		return combine(outTerms, outOps)
	}

	// Exponentiation: leftmost caret binds first.
	if i := slices.Index(ops, OpPow); i >= 0 {
		return foldAt(terms, ops, i, Term.Pow)
	}

	// Multiplication/division, leftmost occurrence first.
	mul := slices.Index(ops, OpMul)
	div := slices.Index(ops, OpDiv)
	if mul >= 0 && (div < 0 || mul < div) {
		return foldAt(terms, ops, mul, Term.Mul)
	}
	if div >= 0 {
		return foldAt(terms, ops, div, Term.Div)
	}

	// Addition/subtraction, leftmost occurrence first.
	add := slices.Index(ops, OpAdd)
	sub := slices.Index(ops, OpSub)
	if add >= 0 && (sub < 0 || add < sub) {
		return foldAt(terms, ops, add, Term.Add)
	}
	if sub >= 0 {
		return foldAt(terms, ops, sub, Term.Sub)
	}

	return Term{}, fmt.Errorf("%w: %d terms left with no combinable operator in %q",
		ErrInvariant, len(terms), ops)
}

// foldAt applies the binary operation joining terms[i-1] and terms[i],
// replaces the pair with the result, removes the consumed operator slot,
// and recurses on the shortened sequence.
func foldAt(terms []Term, ops []string, i int, op func(Term, Term, bool) (Term, error)) (Term, error) {
	folded, err := op(terms[i-1], terms[i], true)
	if err != nil {
		return Term{}, err
	}
	terms[i] = folded
	terms = slices.Delete(terms, i-1, i)
	ops = slices.Delete(ops, i, i+1)
	return combine(terms, ops)
}
