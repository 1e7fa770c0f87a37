package pipe

import (
	"context"

	"github.com/pedrodrocha/safe-result/pkg/result"
)

// Map returns a transformer applying f to the success value of any Result
// it is given.
func Map[A, B, E any](f func(A) B) func(result.Result[A, E]) result.Result[B, E] {
	return func(r result.Result[A, E]) result.Result[B, E] {
		return result.Map(r, f)
	}
}

// MapErr returns a transformer applying f to the failure value.
func MapErr[A, E, F any](f func(E) F) func(result.Result[A, E]) result.Result[A, F] {
	return func(r result.Result[A, E]) result.Result[A, F] {
		return result.MapErr(r, f)
	}
}

// Tap returns a transformer running the side effect on success.
func Tap[A, E any](f func(A)) func(result.Result[A, E]) result.Result[A, E] {
	return func(r result.Result[A, E]) result.Result[A, E] {
		return result.Tap(r, f)
	}
}

// TapCtx returns a context-first transformer for blocking side effects.
func TapCtx[A, E any](f func(context.Context, A)) func(context.Context, result.Result[A, E]) result.Result[A, E] {
	return func(ctx context.Context, r result.Result[A, E]) result.Result[A, E] {
		return result.TapCtx(ctx, r, f)
	}
}

// AndThen returns a short-circuiting transformer composing f over success.
func AndThen[A, B, E any](f func(A) result.Result[B, E]) func(result.Result[A, E]) result.Result[B, E] {
	return func(r result.Result[A, E]) result.Result[B, E] {
		return result.AndThen(r, f)
	}
}

// AndThenCtx returns the context-first analogue of AndThen.
func AndThenCtx[A, B, E any](f func(context.Context, A) result.Result[B, E]) func(context.Context, result.Result[A, E]) result.Result[B, E] {
	return func(ctx context.Context, r result.Result[A, E]) result.Result[B, E] {
		return result.AndThenCtx(ctx, r, f)
	}
}

// Match returns a reducer invoking the handler matching the active variant.
func Match[A, E, B any](m result.Matcher[A, E, B]) func(result.Result[A, E]) B {
	return func(r result.Result[A, E]) B {
		return result.Match(r, m)
	}
}

// Unwrap returns a terminal extractor of the success value.
func Unwrap[A, E any](message ...string) func(result.Result[A, E]) A {
	return func(r result.Result[A, E]) A {
		return r.Unwrap(message...)
	}
}
