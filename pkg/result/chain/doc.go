// Package chain provides a fluent wrapper around Result[A, E] for building
// synchronous pipelines without branching on the result at every step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/MapErr: transform the active side
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via a Matcher
//
// Methods keep the value type fixed; the package-level Then, Map and ThenTry
// change it, since Go methods cannot introduce type parameters.
package chain
