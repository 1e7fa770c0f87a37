package chain

import (
	"github.com/pedrodrocha/safe-result/pkg/result"
)

// Chain wraps a Result to enable fluent composition.
type Chain[A, E any] struct {
	res result.Result[A, E]
}

// Start creates a new chain from a Result.
func Start[A, E any](r result.Result[A, E]) Chain[A, E] {
	return Chain[A, E]{res: r}
}

// FromValue creates a new chain from a success value.
func FromValue[A, E any](value A) Chain[A, E] {
	return Start(result.Ok[A, E](value))
}

// Result returns the underlying Result.
func (c Chain[A, E]) Result() result.Result[A, E] {
	return c.res
}

// Then chains a function that returns a Result of the same value type.
func (c Chain[A, E]) Then(onOk func(A) result.Result[A, E]) Chain[A, E] {
	return Chain[A, E]{res: result.AndThen(c.res, onOk)}
}

// Map chains a pure same-type transformation.
func (c Chain[A, E]) Map(onOk func(A) A) Chain[A, E] {
	return Chain[A, E]{res: result.Map(c.res, onOk)}
}

// MapErr chains a same-type transformation of the failure value.
func (c Chain[A, E]) MapErr(onErr func(E) E) Chain[A, E] {
	return Chain[A, E]{res: result.MapErr(c.res, onErr)}
}

// Ensure performs a side effect on success without changing the result.
func (c Chain[A, E]) Ensure(onOk func(A)) Chain[A, E] {
	return Chain[A, E]{res: result.Tap(c.res, onOk)}
}

// Then chains a function that moves the chain to a new value type.
func Then[A, B, E any](c Chain[A, E], onOk func(A) result.Result[B, E]) Chain[B, E] {
	return Chain[B, E]{res: result.AndThen(c.res, onOk)}
}

// Map chains a pure transformation to a new value type.
func Map[A, B, E any](c Chain[A, E], onOk func(A) B) Chain[B, E] {
	return Chain[B, E]{res: result.Map(c.res, onOk)}
}

// ThenTry chains a function that returns (B, error) — like repo calls —
// converting a returned error into the failure side.
func ThenTry[A, B any](c Chain[A, error], try func(A) (B, error)) Chain[B, error] {
	return Then(c, func(a A) result.Result[B, error] {
		b, err := try(a)
		if err != nil {
			return result.Err[B, error](err)
		}
		return result.Ok[B, error](b)
	})
}

// Finally collapses the chain into a final value via result.Match.
func Finally[A, E, B any](c Chain[A, E], m result.Matcher[A, E, B]) B {
	return result.Match(c.res, m)
}
