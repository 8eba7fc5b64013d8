/*
Package algebra contains the core domain model for building practice problems:
symbolic terms, dual-track expressions, equations, and rendered problem snapshots.

The centerpiece is Expression, which keeps two parallel term sequences, one
preserved for display ("unreduced") and one free to be simplified ("reduced"),
joined by a single operator-token sequence. Combine collapses such a sequence
into a single Term while respecting operator precedence and parenthetical
grouping. This package is kept pure: the actual symbolic arithmetic lives
behind the Value and Solver interfaces and is supplied by an adapter
(see pkg/adapters/gosym).

# Key Entities

  - Term: an immutable symbolic value with renderings cached at construction.
  - Expression: parallel unreduced/reduced term tracks plus operator tokens.
  - Equation / System: expressions joined by a relational sign.
  - Problem: a frozen question/solution snapshot in both output dialects.
*/
package algebra
