// Package worksheet assembles stored problems into printable documents: a
// LaTeX source ready for pdflatex, or Markdown for terminal preview.
package worksheet

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/aretw0/abacus/pkg/algebra"
)

// Builder carries the document metadata shared by every output format.
type Builder struct {
	title   string
	author  string
	message string
	shuffle bool
	rng     *rand.Rand
}

// Option configures a Builder.
type Option func(*Builder)

// WithTitle sets the document title (default "Worksheet").
func WithTitle(title string) Option {
	return func(b *Builder) { b.title = title }
}

// WithAuthor sets the header author line.
func WithAuthor(author string) Option {
	return func(b *Builder) { b.author = author }
}

// WithMessage sets an introductory message above the problems.
func WithMessage(message string) Option {
	return func(b *Builder) { b.message = message }
}

// WithShuffle randomizes problem order at assembly time using the given
// source.
func WithShuffle(rng *rand.Rand) Option {
	return func(b *Builder) {
		b.shuffle = true
		b.rng = rng
	}
}

// New builds a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{title: "Worksheet"}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) order(problems []algebra.Problem) []algebra.Problem {
	out := make([]algebra.Problem, len(problems))
	copy(out, problems)
	if b.shuffle && b.rng != nil {
		b.rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}
	return out
}

// LaTeX renders the full worksheet document: a two-column problem section
// and a matching answer section on a fresh page.
func (b *Builder) LaTeX(problems []algebra.Problem) string {
	problems = b.order(problems)

	var questions, solutions strings.Builder
	for _, p := range problems {
		fmt.Fprintf(&questions, "\\item $ %s $\n \\vspace{10mm}\n", p.QuestionLaTeX)
		fmt.Fprintf(&solutions, "\\item $ %s $\n \\vspace{10mm}\n", p.SolutionLaTeX)
	}

	titleStr := fmt.Sprintf("\\chead{\\textbf{\\LARGE %s }}\n", b.title)
	authorStr := fmt.Sprintf("\\rhead{%s}\n", b.author)

	return fmt.Sprintf(texTemplate,
		titleStr, authorStr, b.message, questions.String(), solutions.String())
}

// Markdown renders the worksheet for terminal display.
func (b *Builder) Markdown(problems []algebra.Problem) string {
	problems = b.order(problems)

	var doc strings.Builder
	fmt.Fprintf(&doc, "# %s\n\n", b.title)
	if b.author != "" {
		fmt.Fprintf(&doc, "*%s*\n\n", b.author)
	}
	if b.message != "" {
		fmt.Fprintf(&doc, "%s\n\n", b.message)
	}
	doc.WriteString("## Problems\n\n")
	for i, p := range problems {
		fmt.Fprintf(&doc, "%d. `%s`\n", i+1, p.QuestionText)
	}
	doc.WriteString("\n## Answers\n\n")
	for i, p := range problems {
		fmt.Fprintf(&doc, "%d. `%s`\n", i+1, p.SolutionText)
	}
	return doc.String()
}

const texTemplate = `
\documentclass[11pt]{article}

\usepackage{graphicx}
\usepackage{caption}
\usepackage{subcaption}
\usepackage{float}
\usepackage{fancyhdr}
\usepackage[utf8]{inputenc}
\usepackage[english]{babel}
\usepackage{lastpage}
\usepackage{multicol}

\pagestyle{fancy}
\fancyhf{}

\rfoot{Page \thepage}
\begin{document}

\lhead{}
%s
%s
%s
\begin{multicols}{2}[\section*{Problems}]
\begin{enumerate}
%s
\end{enumerate}
\end{multicols}
\newpage
\begin{multicols}{2}[\section*{Answers}]
\begin{enumerate}
%s
\end{enumerate}
\end{multicols}

\end{document}
`
