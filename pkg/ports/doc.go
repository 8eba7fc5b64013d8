/*
Package ports defines the driven ports (interfaces) for the Abacus generator.

These interfaces decouple the problem-building core from external
implementations, allowing the generator to work with different symbolic
engines and problem sinks.

# Key Interfaces

  - SymbolicEngine: Supplies symbolic values and solving (e.g. gosym or a CAS bridge).
  - ProblemStore: Collects generated problems and rejects duplicates.
*/
package ports
