// Package puzzle describes the problems given to the solver: a list of numbers and a target.
//
// A puzzle can be built by hand, read from a YAML file such as
//
//	numbers: [25, 50, 75, 100, 8, 9]
//	target: 952
//
// or drawn at random the way the Countdown game show does it: a few large numbers
// among 25, 50, 75 and 100, small numbers from two copies of 1 to 10 for a total
// of six numbers, and a three-digit target.
//
// Unlike the solver, which panics on malformed input, this package reports
// problems as errors, so that user input can be rejected gracefully.
package puzzle
