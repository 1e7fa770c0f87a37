package result

import (
	"context"
	"fmt"
	"hash/fnv"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/pedrodrocha/safe-result/pkg/tagged"
)

// Status identifies the active variant of a Result.
type Status string

const (
	StatusOk  Status = "ok"
	StatusErr Status = "err"
)

// Result is a closed sum with exactly two variants: Ok holding a success
// value of type A, or Err holding a failure value of type E. Exactly one
// side is ever populated and the held value is never mutated after
// construction. The identity fields (id, creation time) follow every
// pass-through copy and take no part in equality.
type Result[A, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     A
	errValue  E
	ok        bool
}

func Ok[A, E any](value A) Result[A, E] {
	return Result[A, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		ok:        true,
	}
}

func Err[A, E any](errValue E) Result[A, E] {
	return Result[A, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		errValue:  errValue,
		ok:        false,
	}
}

func (r Result[A, E]) Status() Status {
	if r.ok {
		return StatusOk
	}
	return StatusErr
}

func (r Result[A, E]) IsOk() bool {
	return r.ok
}

func (r Result[A, E]) IsErr() bool {
	return !r.ok
}

// Value returns the held success value, or the zero value on Err.
func (r Result[A, E]) Value() A {
	return r.value
}

// ErrValue returns the held failure value, or the zero value on Ok.
func (r Result[A, E]) ErrValue() E {
	return r.errValue
}

func (r Result[A, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time of construction (UTC).
func (r Result[A, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Unwrap returns the success value. Calling it on an Err is a programmer
// error and escalates as a Panic; the default message embeds the held
// failure value, a supplied message is used verbatim instead.
func (r Result[A, E]) Unwrap(message ...string) A {
	if r.ok {
		return r.value
	}
	tagged.Throwf("%s", firstOr(message, fmt.Sprintf("unwrap called on Err: %v", r.errValue)))
	return r.value
}

// UnwrapOr returns the success value, or fallback on Err. The failure value
// is never inspected.
func (r Result[A, E]) UnwrapOr(fallback A) A {
	if r.ok {
		return r.value
	}
	return fallback
}

// UnwrapErr is the mirror of Unwrap: it returns the failure value and
// escalates as a Panic when called on Ok.
func (r Result[A, E]) UnwrapErr(message ...string) E {
	if !r.ok {
		return r.errValue
	}
	tagged.Throwf("%s", firstOr(message, fmt.Sprintf("unwrap_err called on Ok: %v", r.value)))
	return r.errValue
}

// Tap runs the side effect on the success value only; the result passes
// through unchanged and f is never invoked on Err.
func (r Result[A, E]) Tap(f func(A)) Result[A, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// TapCtx is Tap for side effects that block; the context rides along so the
// effect can honor cancellation.
func (r Result[A, E]) TapCtx(ctx context.Context, f func(context.Context, A)) Result[A, E] {
	if r.ok {
		f(ctx, r.value)
	}
	return r
}

// Equal reports variant and structural value equality. Identity fields are
// excluded: two Oks holding equal values are equal regardless of when or
// where they were built.
func (r Result[A, E]) Equal(other Result[A, E]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.errValue, other.errValue)
}

// Hash digests the variant and held value. Results that compare Equal hash
// identically.
func (r Result[A, E]) Hash() uint64 {
	h := fnv.New64a()
	if r.ok {
		fmt.Fprintf(h, "ok:%v", r.value)
	} else {
		fmt.Fprintf(h, "err:%v", r.errValue)
	}
	return h.Sum64()
}

func (r Result[A, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.errValue)
}

func firstOr(messages []string, fallback string) string {
	if len(messages) > 0 {
		return messages[0]
	}
	return fallback
}

// errFrom carries an Err across an output type change, preserving the
// identity fields so the failure is the same failure, not a copy.
func errFrom[B, A, E any](r Result[A, E]) Result[B, E] {
	return Result[B, E]{
		id:        r.id,
		createdAt: r.createdAt,
		errValue:  r.errValue,
	}
}

// okFrom carries an Ok across an error type change.
func okFrom[F, A, E any](r Result[A, E]) Result[A, F] {
	return Result[A, F]{
		id:        r.id,
		createdAt: r.createdAt,
		value:     r.value,
		ok:        true,
	}
}
