// Package result provides a closed two-variant success/failure container and
// its combinators. Results are immutable values: every combinator returns a
// new Result and never mutates its source, so values are safe to pass across
// any concurrency boundary without locking.
//
// Key operations:
// - Ok/Err: construct the success / failure variant
// - Map/MapErr: transform the active side, pass the other through unchanged
// - AndThen/AndThenCtx: short-circuiting result-returning composition
// - Tap/TapCtx: side effects on success only
// - Match: exhaustive dispatch over both variants via a Matcher
// - Unwrap/UnwrapOr/UnwrapErr: terminal extraction
// - Serialize/Hydrate/HydrateAs: canonical wire projection and recovery
//
// Faults raised (panicked) inside caller-supplied callbacks are programmer
// errors, not domain failures: combinators escalate them as *tagged.Panic
// rather than folding them into an Err.
//
// Go methods cannot introduce type parameters, so type-changing combinators
// are package-level functions taking the Result as first argument. Package
// pipe carries the curried forms for point-free composition.
package result
