package result

import (
	"fmt"

	"github.com/pedrodrocha/safe-result/pkg/tagged"
)

// Serialized is the canonical wire projection of a Result:
//
//	{"status": "ok",  "value": <A>}
//	{"status": "err", "value": <E-or-string>}
type Serialized struct {
	Status Status `json:"status" yaml:"status"`
	Value  any    `json:"value" yaml:"value"`
}

// Serialize projects the result onto the wire shape. An Err holding an
// error value is projected to its message string rather than the object.
func (r Result[A, E]) Serialize() Serialized {
	if r.ok {
		return Serialized{Status: StatusOk, Value: r.value}
	}
	if err, ok := any(r.errValue).(error); ok && err != nil {
		return Serialized{Status: StatusErr, Value: err.Error()}
	}
	return Serialized{Status: StatusErr, Value: r.errValue}
}

// Hydrate recognizes exactly the wire shape and rebuilds an untyped Result.
// Anything else yields ok=false: absence, not a failure. Callers decide the
// fallback.
func Hydrate(data any) (Result[any, any], bool) {
	status, value, ok := wireShape(data)
	if !ok {
		return Result[any, any]{}, false
	}
	if status == StatusOk {
		return Ok[any, any](value), true
	}
	return Err[any, any](value), true
}

// HydrateAs recognizes the wire shape and decodes the value with the decoder
// matching the recognized status. A failing decoder degrades to an Err
// carrying the decode fault, not a crash.
func HydrateAs[A any](data any, okDecode func(any) (A, error), errDecode func(any) (error, error)) (Result[A, error], bool) {
	status, value, ok := wireShape(data)
	if !ok {
		return Result[A, error]{}, false
	}

	if status == StatusOk {
		v, err := runDecode(okDecode, value)
		if err != nil {
			return Err[A, error](err), true
		}
		return Ok[A, error](v), true
	}

	e, err := runDecode(errDecode, value)
	if err != nil {
		return Err[A, error](err), true
	}
	return Err[A, error](e), true
}

// runDecode shields a decoder: a returned error or a non-Panic fault becomes
// the decode error, a Panic re-raises.
func runDecode[T any](decode func(any) (T, error), value any) (out T, err error) {
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
		err = fmt.Errorf("decode failed: %v", rec)
	}()
	return decode(value)
}

// wireShape recognizes the serialized forms Hydrate accepts: the Serialized
// struct itself, a pointer to it, or a generic decoded map carrying both
// keys with a valid status literal.
func wireShape(data any) (Status, any, bool) {
	switch d := data.(type) {
	case Serialized:
		return checkedShape(d.Status, d.Value)
	case *Serialized:
		if d == nil {
			return "", nil, false
		}
		return checkedShape(d.Status, d.Value)
	case map[string]any:
		rawStatus, hasStatus := d["status"]
		value, hasValue := d["value"]
		if !hasStatus || !hasValue {
			return "", nil, false
		}
		s, ok := rawStatus.(string)
		if !ok {
			return "", nil, false
		}
		return checkedShape(Status(s), value)
	}
	return "", nil, false
}

func checkedShape(status Status, value any) (Status, any, bool) {
	if status != StatusOk && status != StatusErr {
		return "", nil, false
	}
	return status, value, true
}
