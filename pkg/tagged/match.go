package tagged

// Handlers maps an error tag to the handler invoked for that kind.
type Handlers[B any] map[string]func(Error) B

// Match dispatches err by tag. Dispatch is meant to be exhaustive over a
// closed set of tags: a missing handler is an invariant violation and
// escalates as a Panic naming the tag.
func Match[B any](err Error, handlers Handlers[B]) B {
	handler, ok := handlers[err.Tag()]
	if !ok {
		Throwf("No handler for error tag: %s", err.Tag())
	}
	return handler(err)
}

// MatchPartial dispatches err by tag, falling back to otherwise instead of
// failing when no handler matches.
func MatchPartial[B any](err Error, handlers Handlers[B], otherwise func(Error) B) B {
	handler, ok := handlers[err.Tag()]
	if !ok {
		return otherwise(err)
	}
	return handler(err)
}
