package generator

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDivisors(t *testing.T) {
	cases := []struct {
		n    int64
		want []int64
	}{
		{1, []int64{1}},
		{12, []int64{1, 2, 3, 4, 6, 12}},
		{-9, []int64{1, 3, 9}},
		{7, []int64{1, 7}},
	}
	for _, c := range cases {
		got := divisors(c.n)
		if len(got) != len(c.want) {
			t.Fatalf("divisors(%d) = %v, want %v", c.n, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("divisors(%d) = %v, want %v", c.n, got, c.want)
			}
		}
	}
}

func TestIsPerfectSquare(t *testing.T) {
	for _, n := range []int64{0, 1, 4, 9, 16, 144} {
		if !isPerfectSquare(n) {
			t.Fatalf("isPerfectSquare(%d) = false", n)
		}
	}
	for _, n := range []int64{2, 3, 5, 8, -4} {
		if isPerfectSquare(n) {
			t.Fatalf("isPerfectSquare(%d) = true", n)
		}
	}
}

func TestQuadraticCoefficientsBounds(t *testing.T) {
	g := newTestGenerator(17)
	p := QuadraticParams{MaxLowestTerm: 10, Irrational: true}

	for i := 0; i < 50; i++ {
		a, b, _ := g.quadraticCoefficients(p)
		if a == 0 {
			t.Fatal("leading coefficient is zero")
		}
		if a > 10 || a < -10 {
			t.Fatalf("leading coefficient %d out of range", a)
		}
		if !isPerfectSquare(b * b) {
			t.Fatalf("b = %d", b)
		}
	}
}

func TestQuadraticParamsValidation(t *testing.T) {
	g := newTestGenerator(1)

	_, err := g.AddQuadratic(context.Background(), QuadraticParams{
		Irrational: true,
		Unsolvable: true,
	})
	if !errors.Is(err, ErrBadParams) {
		t.Fatalf("got %v, want ErrBadParams", err)
	}

	_, err = g.AddQuadratic(context.Background(), QuadraticParams{
		Relation: "=>",
	})
	if !errors.Is(err, ErrBadParams) {
		t.Fatalf("got %v, want ErrBadParams", err)
	}
}

func TestAddQuadraticFactorable(t *testing.T) {
	g := newTestGenerator(21)

	p, err := g.AddQuadratic(context.Background(), QuadraticParams{MaxLowestTerm: 5})
	if err != nil {
		t.Fatalf("AddQuadratic failed: %v", err)
	}
	if !strings.HasSuffix(p.QuestionText, "=0") {
		t.Fatalf("question %q, want a zero right side", p.QuestionText)
	}
	// Factorable quadratics have rational roots.
	if !strings.HasPrefix(p.SolutionText, "x = ") {
		t.Fatalf("solution %q, want roots for x", p.SolutionText)
	}
}
