// Package calc implements an interactive floating-point expression evaluator.
//
// Expressions use the operators +, -, *, / and %, with ** (or ^) for
// exponentiation. "2**3**2" is the same as "2**(3**2)", and "-2**2" is the
// same as "-(2**2)". Named functions take a single parenthesized argument,
// as in "sin(pi/2)". The identifiers m0 through m9 recall memory slots, and
// "_" recalls the most recent successful result.
//
// All arithmetic is IEEE-754 binary64. Division and modulo by exactly zero
// are errors; all other special values propagate with hardware semantics.
package calc
