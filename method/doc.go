// Package method implements the six classical root-finding iterations as pure
// step functions behind a single enumerated Method type. Representing the
// methods as compile-time variants (rather than a string-keyed table of
// closures) means adding a method extends a switch the compiler checks.
//
// Each variant advances one iteration at a time:
//
//	state, row, errMag, estimate, err := m.Step(p, state, extra)
//
// Step takes and returns State by value and never mutates shared data, so
// every method is unit-testable in isolation and the engine in package solver
// can thread state through its loop without coordination.
//
// Fatal numeric conditions (a lost bracket, a zero denominator) are reported
// through the sentinel errors ErrNotBracketed and ErrZeroDenominator; the
// engine translates them into terminal results rather than retrying.
package method
