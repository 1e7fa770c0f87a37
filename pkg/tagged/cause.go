package tagged

import (
	"fmt"
	"reflect"
)

// CauseKind discriminates the three cause modes of a tagged error.
type CauseKind int

const (
	// CauseNone marks an error constructed without any cause.
	CauseNone CauseKind = iota
	// CauseError marks an underlying error cause, kept for diagnostic chaining.
	CauseError
	// CauseValue marks an arbitrary non-error value attached as context.
	// A nil value is a valid CauseValue, distinct from CauseNone.
	CauseValue
)

// Cause is a plain three-case union. The kind is set at construction and
// never changes; the absent mode is never conflated with a nil value cause.
type Cause struct {
	kind  CauseKind
	err   error
	value any
}

func NoCause() Cause {
	return Cause{kind: CauseNone}
}

func ErrCause(err error) Cause {
	return Cause{kind: CauseError, err: err}
}

func ValCause(v any) Cause {
	return Cause{kind: CauseValue, value: v}
}

// CauseOf classifies an attached value: a non-nil error becomes CauseError,
// anything else (nil included) becomes CauseValue.
func CauseOf(v any) Cause {
	if err, ok := v.(error); ok && !isNil(err) {
		return ErrCause(err)
	}
	return ValCause(v)
}

func (c Cause) Kind() CauseKind {
	return c.kind
}

// IsSet reports whether any cause was attached at all.
func (c Cause) IsSet() bool {
	return c.kind != CauseNone
}

// Err returns the error cause, nil unless Kind is CauseError.
func (c Cause) Err() error {
	return c.err
}

// Value returns the value cause, nil unless Kind is CauseValue.
func (c Cause) Value() any {
	return c.value
}

func (c Cause) String() string {
	switch c.kind {
	case CauseError:
		return fmt.Sprintf("cause(error: %v)", c.err)
	case CauseValue:
		return fmt.Sprintf("cause(value: %v)", c.value)
	default:
		return "cause(none)"
	}
}

func isNil(i any) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
