package safe

import (
	"fmt"

	"github.com/pedrodrocha/safe-result/pkg/result"
	"github.com/pedrodrocha/safe-result/pkg/tagged"
)

// Op pairs a fallible operation with a catch mapping any raised fault into
// a typed failure value.
type Op[A, E any] struct {
	Try   func() (A, error)
	Catch func(error) E
}

// Do runs op, converting any fault into an Err wrapping a tagged.Unhandled.
// On failure the operation is re-executed up to cfg.Retry.Times additional
// attempts, with no inter-attempt delay.
func Do[A any](op func() (A, error), cfg ...Config) result.Result[A, *tagged.Unhandled] {
	return run(firstConfig(cfg).Retry.Times, func() result.Result[A, *tagged.Unhandled] {
		v, err := attempt(op)
		if err != nil {
			return result.Err[A, *tagged.Unhandled](tagged.NewUnhandled(err))
		}
		return result.Ok[A, *tagged.Unhandled](v)
	})
}

// DoWith is Do with a caller-supplied catch producing a typed Err value.
func DoWith[A, E any](op Op[A, E], cfg ...Config) result.Result[A, E] {
	return run(firstConfig(cfg).Retry.Times, func() result.Result[A, E] {
		v, err := attempt(op.Try)
		if err != nil {
			return result.Err[A, E](op.Catch(err))
		}
		return result.Ok[A, E](v)
	})
}

// run executes once, then retries while the latest result is Err and
// attempts remain. Stops at the first Ok.
func run[A, E any](times int, execute func() result.Result[A, E]) result.Result[A, E] {
	res := execute()
	for range times {
		if res.IsOk() {
			break
		}
		res = execute()
	}
	return res
}

// attempt shields the operation: a non-Panic Go panic becomes an ordinary
// fault, a Panic escalation re-raises untouched.
func attempt[A any](op func() (A, error)) (v A, err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if p, ok := rec.(*tagged.Panic); ok {
			panic(p)
		}
		if e, ok := rec.(error); ok {
			err = e
			return
		}
		err = fmt.Errorf("operation panicked: %v", rec)
	}()
	return op()
}
