/*
Package abacus generates algebra practice problems and assembles them into printable worksheets.

It separates the sampled presentation of a problem from its computed answer: every expression carries an "unreduced" track that preserves exactly what the student should see (uncancelled fractions, unreduced radicals) and a "reduced" track the symbolic engine is free to simplify. The question is rendered from the first, the answer from the second.

# Concept

Abacus treats a worksheet as an ordered set of problem blocks, each naming a kind (numeric simplification, linear or quadratic equations, factoring, conversions) and its sampling parameters. The generator samples candidate problems, renders them in both a plain-text and a LaTeX dialect, and collects them in a ProblemStore that screens out duplicates. This hexagonal layout keeps the sampling core decoupled from the symbolic backend and the storage, so the same generator serves the CLI, the HTTP API, and the MCP server.

# Key Features

  - Dual-Track Expressions: Questions show the sampled, unsimplified form; answers come from exact symbolic reduction.
  - Deterministic Sampling: A seeded generator reproduces the same worksheet every run.
  - Pluggable Adapters: The symbolic engine and the problem store are ports; Redis-backed storage ships in the box.
  - Printable Output: Whole worksheets render to pdflatex-ready LaTeX or terminal-friendly Markdown.

# Usage

Initialize a Generator, sample problems into its store, and hand the result to the worksheet builder.

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/abacus"
	)

	func main() {
		// Seeded for reproducible worksheets
		gen := abacus.New(abacus.WithSeed(42))
		ctx := context.Background()

		// Sample a block of numeric warm-ups
		for i := 0; i < 5; i++ {
			if _, err := gen.AddNumerical(ctx, abacus.NumericalParams{
				Terms: 3,
				Ops:   "+-*",
			}); err != nil {
				log.Fatal(err)
			}
		}

		// And a couple of quadratics
		for i := 0; i < 2; i++ {
			if _, err := gen.AddQuadratic(ctx, abacus.QuadraticParams{}); err != nil {
				log.Fatal(err)
			}
		}

		problems, err := gen.Problems(ctx)
		if err != nil {
			log.Fatal(err)
		}
		for i, p := range problems {
			fmt.Printf("%d. %s   (answer: %s)\n", i+1, p.QuestionText, p.SolutionText)
		}
	}
*/
package abacus
