package result

import (
	"context"

	"github.com/pedrodrocha/safe-result/pkg/tagged"
)

// Matcher pairs the two handlers required for exhaustive dispatch over a
// Result. Both handlers are mandatory: Match treats a nil handler as an
// invariant violation.
type Matcher[A, E, B any] struct {
	Ok  func(A) B
	Err func(E) B
}

// Map applies f to the success value; an Err passes through unchanged and f
// is never invoked. A fault inside f escalates as a Panic.
func Map[A, B, E any](r Result[A, E], f func(A) B) Result[B, E] {
	if r.IsErr() {
		return errFrom[B](r)
	}
	defer escalate("Map failed")
	return Ok[B, E](f(r.value))
}

// MapErr applies f to the failure value; an Ok passes through unchanged.
func MapErr[A, E, F any](r Result[A, E], f func(E) F) Result[A, F] {
	if r.IsOk() {
		return okFrom[F](r)
	}
	defer escalate("MapErr failed")
	return Err[A, F](f(r.errValue))
}

// AndThen composes f over the success value; an Err short-circuits and f is
// never called. A fault inside f escalates as a Panic.
func AndThen[A, B, E any](r Result[A, E], f func(A) Result[B, E]) Result[B, E] {
	if r.IsErr() {
		return errFrom[B](r)
	}
	defer escalate("AndThen failed")
	return f(r.value)
}

// AndThenCtx is AndThen for blocking composition, same short-circuit
// contract.
func AndThenCtx[A, B, E any](ctx context.Context, r Result[A, E], f func(context.Context, A) Result[B, E]) Result[B, E] {
	if r.IsErr() {
		return errFrom[B](r)
	}
	defer escalate("AndThenCtx failed")
	return f(ctx, r.value)
}

// Tap mirrors Result.Tap, escalating a faulting side effect as a Panic.
func Tap[A, E any](r Result[A, E], f func(A)) Result[A, E] {
	defer escalate("Tap failed")
	return r.Tap(f)
}

// TapCtx mirrors Result.TapCtx with the same escalation.
func TapCtx[A, E any](ctx context.Context, r Result[A, E], f func(context.Context, A)) Result[A, E] {
	defer escalate("TapCtx failed")
	return r.TapCtx(ctx, f)
}

// Match invokes exactly the handler matching the active variant. Both
// handlers must be present; a fault inside the invoked handler escalates as
// a Panic.
func Match[A, E, B any](r Result[A, E], m Matcher[A, E, B]) B {
	if m.Ok == nil || m.Err == nil {
		tagged.Throwf("Match requires both Ok and Err handlers")
	}
	defer escalate("Match failed")
	if r.ok {
		return m.Ok(r.value)
	}
	return m.Err(r.errValue)
}

// Unwrap mirrors Result.Unwrap as a free function.
func Unwrap[A, E any](r Result[A, E], message ...string) A {
	return r.Unwrap(message...)
}

// escalate converts a recovered fault from a caller-supplied callback into
// a Panic carrying the fault as cause. An in-flight Panic re-raises
// untouched so escalations cross combinator boundaries unobstructed.
func escalate(message string) {
	rec := recover()
	if rec == nil {
		return
	}
	if p, ok := rec.(*tagged.Panic); ok {
		panic(p)
	}
	tagged.Throw(message, rec)
}
