package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_Ok(t *testing.T) {
	t.Parallel()

	s := Ok[int, string](42).Serialize()
	assert.Equal(t, StatusOk, s.Status)
	assert.Equal(t, 42, s.Value)
}

func TestSerialize_ErrPlainValue(t *testing.T) {
	t.Parallel()

	s := Err[int, string]("boom").Serialize()
	assert.Equal(t, StatusErr, s.Status)
	assert.Equal(t, "boom", s.Value)
}

func TestSerialize_ErrErrorValueBecomesString(t *testing.T) {
	t.Parallel()

	s := Err[int, error](errors.New("bad connection")).Serialize()
	assert.Equal(t, StatusErr, s.Status)
	assert.Equal(t, "bad connection", s.Value)
}

func TestSerialize_JSONWireShape(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(Ok[string, string]("hi").Serialize())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","value":"hi"}`, string(raw))
}

func TestHydrate_RoundTrip(t *testing.T) {
	t.Parallel()

	ok, found := Hydrate(Ok[string, string]("payload").Serialize())
	require.True(t, found)
	assert.True(t, ok.Equal(Ok[any, any]("payload")))

	errRes, found := Hydrate(Err[string, string]("bad").Serialize())
	require.True(t, found)
	assert.True(t, errRes.Equal(Err[any, any]("bad")))
}

func TestHydrate_MapShape(t *testing.T) {
	t.Parallel()

	r, found := Hydrate(map[string]any{"status": "ok", "value": 7})
	require.True(t, found)
	assert.Equal(t, 7, r.Value())
}

func TestHydrate_RejectsEverythingElse(t *testing.T) {
	t.Parallel()

	cases := []any{
		nil,
		42,
		"ok",
		map[string]any{"status": "ok"},               // missing value
		map[string]any{"value": 1},                   // missing status
		map[string]any{"status": "meh", "value": 1},  // unknown literal
		map[string]any{"status": 1, "value": "x"},    // status not a string
		(*Serialized)(nil),                           // typed nil
		struct{ Status, Value string }{"ok", "hi"},   // wrong type
	}

	for i, data := range cases {
		_, found := Hydrate(data)
		assert.False(t, found, "case %d should yield absence", i)
	}
}

func TestHydrateAs_DecodesBothSides(t *testing.T) {
	t.Parallel()

	okDecode := func(v any) (int, error) {
		n, ok := v.(int)
		if !ok {
			return 0, fmt.Errorf("expected int, got %T", v)
		}
		return n, nil
	}
	errDecode := func(v any) (error, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return errors.New(s), nil
	}

	r, found := HydrateAs(Serialized{Status: StatusOk, Value: 3}, okDecode, errDecode)
	require.True(t, found)
	assert.Equal(t, 3, r.Unwrap())

	e, found := HydrateAs(Serialized{Status: StatusErr, Value: "down"}, okDecode, errDecode)
	require.True(t, found)
	assert.EqualError(t, e.UnwrapErr(), "down")
}

func TestHydrateAs_DecoderFailureDegradesToErr(t *testing.T) {
	t.Parallel()

	okDecode := func(v any) (int, error) { return 0, errors.New("cannot decode") }
	errDecode := func(v any) (error, error) { return nil, nil }

	r, found := HydrateAs(Serialized{Status: StatusOk, Value: "not an int"}, okDecode, errDecode)
	require.True(t, found)
	assert.True(t, r.IsErr())
	assert.EqualError(t, r.UnwrapErr(), "cannot decode")
}

func TestHydrateAs_DecoderPanicDegradesToErr(t *testing.T) {
	t.Parallel()

	okDecode := func(v any) (int, error) { panic("decoder blew up") }
	errDecode := func(v any) (error, error) { return nil, nil }

	r, found := HydrateAs(Serialized{Status: StatusOk, Value: 1}, okDecode, errDecode)
	require.True(t, found)
	require.True(t, r.IsErr())
	assert.Contains(t, r.UnwrapErr().Error(), "decoder blew up")
}

func TestHydrateAs_UnrecognizedShapeIsAbsence(t *testing.T) {
	t.Parallel()

	_, found := HydrateAs("nope",
		func(any) (int, error) { return 0, nil },
		func(any) (error, error) { return nil, nil })
	assert.False(t, found)
}
