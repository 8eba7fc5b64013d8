package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/abacus/pkg/algebra"
)

// ErrBadParams is returned when a parameter set fails validation.
var ErrBadParams = errors.New("invalid generator parameters")

// ErrExhausted is returned when repeated sampling cannot produce a problem
// the store has not seen yet.
var ErrExhausted = errors.New("could not generate a fresh problem")

// NumericalParams drives purely numeric expression sampling.
//
// Types selects the kinds of numbers that may appear: 'i' integers,
// 'r' square roots, 'f' fractions. Ops selects the operators drawn
// between terms. MixedRoots, when false, makes every radical in the
// expression reduce to the same base root.
type NumericalParams struct {
	Terms         int    `mapstructure:"terms"`
	Ops           string `mapstructure:"ops"`
	Types         string `mapstructure:"types"`
	MaxLowestTerm int64  `mapstructure:"max_lowest_term"`
	MaxMultiple   int64  `mapstructure:"max_multiple"`
	MixedRoots    bool   `mapstructure:"mixed_roots"`
}

func (p *NumericalParams) normalize() error {
	if p.Terms == 0 {
		p.Terms = 2
	}
	if p.Ops == "" {
		p.Ops = "+-"
	}
	if p.Types == "" {
		p.Types = "i"
	}
	if p.MaxLowestTerm == 0 {
		p.MaxLowestTerm = 10
	}
	if p.MaxMultiple == 0 {
		p.MaxMultiple = 1
	}
	if p.Terms < 1 {
		return fmt.Errorf("%w: terms must be at least 1, got %d", ErrBadParams, p.Terms)
	}
	if strings.Trim(p.Ops, "+-*/^") != "" {
		return fmt.Errorf("%w: ops %q may only contain + - * / ^", ErrBadParams, p.Ops)
	}
	if strings.Trim(p.Types, "irf") != "" {
		return fmt.Errorf("%w: types %q may only contain i, r, f", ErrBadParams, p.Types)
	}
	if p.MaxLowestTerm < 1 {
		return fmt.Errorf("%w: max_lowest_term must be positive, got %d", ErrBadParams, p.MaxLowestTerm)
	}
	if p.MaxMultiple < 1 {
		return fmt.Errorf("%w: max_multiple must be positive, got %d", ErrBadParams, p.MaxMultiple)
	}
	return nil
}

// AlgebraicParams drives polynomial expression sampling. When Coeff is
// empty the coefficients come from numeric sampling; otherwise Coeff lists
// them from the highest order down, and a zero entry drops its term.
type AlgebraicParams struct {
	Terms         int     `mapstructure:"terms"`
	Types         string  `mapstructure:"types"`
	Symbols       string  `mapstructure:"symbols"`
	Order         int     `mapstructure:"order"`
	MixedVar      bool    `mapstructure:"mixed_var"`
	Coeff         []int64 `mapstructure:"coeff"`
	MaxLowestTerm int64   `mapstructure:"max_lowest_term"`
	MaxMultiple   int64   `mapstructure:"max_multiple"`
	MixedRoots    bool    `mapstructure:"mixed_roots"`
}

func (p *AlgebraicParams) normalize() error {
	if p.Terms == 0 {
		p.Terms = 2
	}
	if p.Types == "" {
		p.Types = "i"
	}
	if p.Symbols == "" {
		p.Symbols = "x"
	}
	if p.MaxLowestTerm == 0 {
		p.MaxLowestTerm = 10
	}
	if p.MaxMultiple == 0 {
		p.MaxMultiple = 1
	}
	if p.Order < 0 {
		return fmt.Errorf("%w: order must be non-negative, got %d", ErrBadParams, p.Order)
	}
	if p.Terms < 1 {
		return fmt.Errorf("%w: terms must be at least 1, got %d", ErrBadParams, p.Terms)
	}
	if len(p.Coeff) != 0 && len(p.Coeff) != p.Terms {
		return fmt.Errorf("%w: %d coefficients for %d terms", ErrBadParams, len(p.Coeff), p.Terms)
	}
	return nil
}

// FactorableParams drives sampling of polynomials built as a product of
// binomials, shown expanded and answered in factored form.
type FactorableParams struct {
	Order         int    `mapstructure:"order"`
	MaxLowestTerm int64  `mapstructure:"max_lowest_term"`
	Symbols       string `mapstructure:"symbols"`
	LeadingCoeff  bool   `mapstructure:"leading_coeff"`
}

func (p *FactorableParams) normalize() error {
	if p.Order == 0 {
		p.Order = 2
	}
	if p.MaxLowestTerm == 0 {
		p.MaxLowestTerm = 10
	}
	if p.Symbols == "" {
		p.Symbols = "x"
	}
	if p.Order < 1 {
		return fmt.Errorf("%w: order must be at least 1, got %d", ErrBadParams, p.Order)
	}
	return nil
}

// EquationParams drives equation and inequality sampling. Each side is an
// independent algebraic expression; Relation joins them.
type EquationParams struct {
	LHSTerms      int              `mapstructure:"lhs_terms"`
	RHSTerms      int              `mapstructure:"rhs_terms"`
	Types         string           `mapstructure:"types"`
	Symbols       string           `mapstructure:"symbols"`
	OrderLHS      int              `mapstructure:"order_lhs"`
	OrderRHS      int              `mapstructure:"order_rhs"`
	LHSCoeff      []int64          `mapstructure:"lhs_coeff"`
	RHSCoeff      []int64          `mapstructure:"rhs_coeff"`
	MixedVar      bool             `mapstructure:"mixed_var"`
	MaxLowestTerm int64            `mapstructure:"max_lowest_term"`
	MaxMultiple   int64            `mapstructure:"max_multiple"`
	Relation      algebra.Relation `mapstructure:"relation"`
	MixedRoots    bool             `mapstructure:"mixed_roots"`
}

func (p *EquationParams) normalize() error {
	if p.LHSTerms == 0 {
		p.LHSTerms = 2
	}
	if p.RHSTerms == 0 {
		p.RHSTerms = 1
	}
	if p.Types == "" {
		p.Types = "i"
	}
	if p.Symbols == "" {
		p.Symbols = "x"
	}
	if p.MaxLowestTerm == 0 {
		p.MaxLowestTerm = 10
	}
	if p.MaxMultiple == 0 {
		p.MaxMultiple = 1
	}
	if p.Relation == "" {
		p.Relation = algebra.RelEqual
	}
	if !p.Relation.Valid() {
		return fmt.Errorf("%w: unknown relation %q", ErrBadParams, p.Relation)
	}
	return nil
}

// QuadraticParams drives quadratic equation sampling. The default shape is
// factorable with rational roots; Irrational requests a positive
// non-square discriminant, and Unsolvable a negative one.
type QuadraticParams struct {
	MaxLowestTerm int64            `mapstructure:"max_lowest_term"`
	Irrational    bool             `mapstructure:"irrational"`
	Unsolvable    bool             `mapstructure:"unsolvable"`
	LeadingCoeff  bool             `mapstructure:"leading_coeff"`
	Relation      algebra.Relation `mapstructure:"relation"`
}

func (p *QuadraticParams) normalize() error {
	if p.MaxLowestTerm == 0 {
		p.MaxLowestTerm = 10
	}
	if p.Relation == "" {
		p.Relation = algebra.RelEqual
	}
	if !p.Relation.Valid() {
		return fmt.Errorf("%w: unknown relation %q", ErrBadParams, p.Relation)
	}
	if p.Irrational && p.Unsolvable {
		return fmt.Errorf("%w: irrational and unsolvable are mutually exclusive", ErrBadParams)
	}
	return nil
}

// ConversionParams drives fraction/decimal conversion problems.
type ConversionParams struct {
	MaxLowestTerm int64 `mapstructure:"max_lowest_term"`
	MaxMultiple   int64 `mapstructure:"max_multiple"`
}

func (p *ConversionParams) normalize() error {
	if p.MaxLowestTerm == 0 {
		p.MaxLowestTerm = 10
	}
	if p.MaxMultiple == 0 {
		p.MaxMultiple = 1
	}
	return nil
}
