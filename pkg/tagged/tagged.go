package tagged

import "fmt"

// Error is the contract every tagged domain failure implements: an ordinary
// error with a stable tag discriminator and an introspectable cause.
type Error interface {
	error
	// Tag returns the stable discriminator, one per concrete error kind.
	Tag() string
	// Cause returns the cause union attached at construction.
	Cause() Cause
}

// TaggedError is the embeddable base for concrete error kinds. It is an
// immutable value: tag, message and cause are set once by New.
type TaggedError struct {
	tag     string
	message string
	cause   Cause
}

// Option configures a TaggedError at construction.
type Option func(*TaggedError)

// WithCause attaches v as the error cause. A non-nil error is linked as
// CauseError; anything else, nil included, is kept as CauseValue. Omitting
// the option leaves the error with no cause at all.
func WithCause(v any) Option {
	return func(e *TaggedError) {
		e.cause = CauseOf(v)
	}
}

func New(tag, message string, opts ...Option) TaggedError {
	e := TaggedError{
		tag:     tag,
		message: message,
		cause:   NoCause(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (e TaggedError) Error() string {
	return e.message
}

func (e TaggedError) Tag() string {
	return e.tag
}

func (e TaggedError) Message() string {
	return e.message
}

func (e TaggedError) Cause() Cause {
	return e.cause
}

// Unwrap exposes an error cause to errors.Is/errors.As chains.
// Value causes and absent causes unwrap to nil.
func (e TaggedError) Unwrap() error {
	if e.cause.kind == CauseError {
		return e.cause.err
	}
	return nil
}

// IsError reports whether v is any error value.
func IsError(v any) bool {
	err, ok := v.(error)
	return ok && !isNil(err)
}

// IsTagged reports whether v is an error implementing the tagged contract.
func IsTagged(v any) bool {
	te, ok := v.(Error)
	return ok && !isNil(te)
}

// Errors flattens a joined error into its parts. A nil error yields an
// empty slice; a plain error yields itself.
func Errors(err error) []error {
	if isNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// UnhandledTag is the discriminator of faults that escaped an operation run
// under safe execution without a caller-supplied catch.
const UnhandledTag = "UnhandledException"

// Unhandled wraps a raw fault caught by safe execution.
type Unhandled struct {
	TaggedError
}

func NewUnhandled(cause any) *Unhandled {
	return &Unhandled{
		TaggedError: New(UnhandledTag, fmt.Sprintf("unhandled exception: %v", cause), WithCause(cause)),
	}
}
