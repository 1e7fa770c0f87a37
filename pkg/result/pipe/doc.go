// Package pipe provides the curried forms of the result combinators: each
// function takes only the transformer and returns a reusable function from
// Result to Result, enabling pipeline composition without binding to a
// specific instance first.
//
// Key operations:
// - Map/MapErr: lift a value transformation over Results
// - Tap/TapCtx: lift a side effect over Results
// - AndThen/AndThenCtx: lift result-returning composition
// - Match: lift a Matcher into a Result reducer
// - Unwrap: terminal extractor
//
// Usage:
//
//	double := pipe.Map[int, int, error](func(n int) int { return n * 2 })
//	res := double(result.Ok[int, error](5))
package pipe
