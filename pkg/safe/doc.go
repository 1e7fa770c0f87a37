// Package safe wraps fallible operations into Result values, optionally
// retrying with configurable backoff.
//
// Key operations:
// - Do/DoWith: run a fallible operation, converting faults into Err values
// - DoCtx/DoWithCtx: same contract for blocking operations, with
//   inter-attempt delay (constant, linear or exponential backoff)
// - ParseConfig/ParseConfigCtx: decode retry configuration from YAML,
//   ignoring unrecognized keys
//
// Without a caller-supplied catch, any fault becomes an Err wrapping a
// tagged.Unhandled; with Op{Try, Catch}, the catch maps the fault into a
// typed failure value. Retry times count additional attempts after an
// initial failure: times 0 means run exactly once. Attempts are strictly
// sequential, never concurrent.
//
// Panic escalations raised by combinator wiring are not domain faults and
// pass through safe execution untouched.
package safe
