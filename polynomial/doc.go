// Package polynomial provides the coefficient-vector representation shared by
// every root-finding method in ZOF. A Polynomial is an ordered slice of real
// coefficients, highest degree first, evaluated with Horner's method.
//
// The package owns the two boundary concerns both front ends share:
//   - Parse converts whitespace-delimited coefficient text into a Polynomial
//     and rejects empty or non-numeric input.
//   - String renders the human-readable form shown back to the user.
//
// Polynomials are treated as immutable once constructed; Derivative returns a
// fresh slice and never touches the receiver.
package polynomial
