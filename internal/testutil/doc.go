// Package testutil provides shared fixtures for solver and server tests:
// the canonical polynomials exercised throughout the suite and request
// builders with sensible defaults that individual tests override.
package testutil
