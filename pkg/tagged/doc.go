// Package tagged provides a closed hierarchy of domain errors carrying a
// stable string discriminator, plus the Panic escalation primitive used for
// unrecoverable programmer errors.
//
// Key pieces:
// - TaggedError: embeddable base for concrete error kinds (tag, message, cause)
// - Cause: explicit three-case union (none, error cause, arbitrary value cause)
// - Match/MatchPartial: exhaustive and partial dispatch over error tags
// - Panic/Throw/Throwf: unrecoverable escalation, never a domain failure
// - Unhandled: built-in kind wrapping faults caught by safe execution
//
// Concrete error kinds embed TaggedError and add their own fields:
//
//	type NotFoundError struct {
//		tagged.TaggedError
//		ID string
//	}
//
//	func NewNotFound(id string) NotFoundError {
//		return NotFoundError{
//			TaggedError: tagged.New("NotFoundError", "not found: "+id),
//			ID:          id,
//		}
//	}
package tagged
