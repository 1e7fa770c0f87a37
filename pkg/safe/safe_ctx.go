package safe

import (
	"context"
	"fmt"
	"time"

	"github.com/pedrodrocha/safe-result/pkg/result"
	"github.com/pedrodrocha/safe-result/pkg/tagged"
)

// OpCtx pairs a blocking fallible operation with its catch.
type OpCtx[A, E any] struct {
	Try   func(context.Context) (A, error)
	Catch func(error) E
}

// DoCtx is Do for a blocking operation. Between attempts the executor
// pauses for the configured delay; a delay of 0 causes no pause. Attempts
// are strictly sequential on the calling goroutine.
func DoCtx[A any](ctx context.Context, op func(context.Context) (A, error), cfg ...ConfigCtx) result.Result[A, *tagged.Unhandled] {
	return runCtx(ctx, firstConfigCtx(cfg).Retry, func(ctx context.Context) result.Result[A, *tagged.Unhandled] {
		v, err := attemptCtx(ctx, op)
		if err != nil {
			return result.Err[A, *tagged.Unhandled](tagged.NewUnhandled(err))
		}
		return result.Ok[A, *tagged.Unhandled](v)
	})
}

// DoWithCtx is DoCtx with a caller-supplied catch producing a typed Err
// value.
func DoWithCtx[A, E any](ctx context.Context, op OpCtx[A, E], cfg ...ConfigCtx) result.Result[A, E] {
	return runCtx(ctx, firstConfigCtx(cfg).Retry, func(ctx context.Context) result.Result[A, E] {
		v, err := attemptCtx(ctx, op.Try)
		if err != nil {
			return result.Err[A, E](op.Catch(err))
		}
		return result.Ok[A, E](v)
	})
}

func runCtx[A, E any](ctx context.Context, retry RetryCtx, execute func(context.Context) result.Result[A, E]) result.Result[A, E] {
	res := execute(ctx)
	for attempt := range retry.Times {
		if res.IsOk() {
			break
		}
		// Cancellation during the pause stops retrying; the latest
		// failure stands.
		if !pause(ctx, retry.delay(attempt)) {
			break
		}
		res = execute(ctx)
	}
	return res
}

// pause blocks for d honoring cancellation and reports whether the next
// attempt should run.
func pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func attemptCtx[A any](ctx context.Context, op func(context.Context) (A, error)) (v A, err error) {
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
	return op(ctx)
}
