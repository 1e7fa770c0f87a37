package tagged

import "fmt"

// PanicTag is the discriminator of the unrecoverable escalation kind.
const PanicTag = "Panic"

// Panic represents an unrecoverable error: a faulting caller-supplied
// callback, a misused terminal unwrap, or an explicit invariant violation.
// It travels through Go's panic mechanism and is never convertible back
// into a domain failure.
type Panic struct {
	TaggedError
}

func NewPanic(message string, opts ...Option) *Panic {
	return &Panic{TaggedError: New(PanicTag, message, opts...)}
}

// Throw raises a Panic carrying message and cause. It never returns.
func Throw(message string, cause any) {
	panic(NewPanic(message, WithCause(cause)))
}

// Throwf raises a Panic with a formatted message and no cause.
func Throwf(format string, args ...any) {
	panic(NewPanic(fmt.Sprintf(format, args...)))
}

// IsPanic reports whether v is a Panic escalation.
func IsPanic(v any) bool {
	_, ok := v.(*Panic)
	return ok
}
