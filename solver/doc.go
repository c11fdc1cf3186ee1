// Package solver contains the iteration engine that drives every
// root-finding method to completion. The engine owns the loop counter and the
// trace, delegates each step to the method variant, and applies one uniform
// convergence policy:
//
//  1. A fatal step error (lost bracket, zero denominator) terminates the
//     solve with an error message and no root.
//  2. An error magnitude below tolerance, or for bracketing methods an
//     |f(x)| below tolerance at the new estimate, terminates as converged.
//  3. Exhausting the iteration budget terminates unconverged but still
//     reports the best available estimate alongside the partial trace.
//
// Solve is synchronous and touches no shared state; concurrent calls need no
// coordination. The returned Result is a value the caller owns outright.
// Front ends (terminal, web) only format Results; they never see the loop.
package solver
