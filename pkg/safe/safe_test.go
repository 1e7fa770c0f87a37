package safe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrodrocha/safe-result/pkg/tagged"
)

func TestDo_Success(t *testing.T) {
	t.Parallel()

	res := Do(func() (int, error) { return 7, nil })

	require.True(t, res.IsOk())
	assert.Equal(t, 7, res.Unwrap())
}

func TestDo_FaultBecomesUnhandled(t *testing.T) {
	t.Parallel()

	boom := errors.New("division by zero")
	res := Do(func() (int, error) { return 0, boom })

	require.True(t, res.IsErr())
	u := res.UnwrapErr()
	assert.Equal(t, tagged.UnhandledTag, u.Tag())
	assert.ErrorIs(t, u, boom)
}

func TestDo_PanicInOperationBecomesUnhandled(t *testing.T) {
	t.Parallel()

	res := Do(func() (int, error) { panic("exploded") })

	require.True(t, res.IsErr())
	assert.Contains(t, res.UnwrapErr().Error(), "exploded")
}

func TestDo_PanicEscalationPassesThrough(t *testing.T) {
	t.Parallel()

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		assert.True(t, tagged.IsPanic(rec))
	}()

	Do(func() (int, error) {
		tagged.Throw("wiring broken", nil)
		return 0, nil
	})
}

func TestDo_NoRetryByDefault(t *testing.T) {
	t.Parallel()

	calls := 0
	res := Do(func() (int, error) {
		calls++
		return 0, errors.New("always")
	})

	assert.True(t, res.IsErr())
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	calls := 0
	res := Do(func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 99, nil
	}, Config{Retry: Retry{Times: 2}})

	require.True(t, res.IsOk())
	assert.Equal(t, 99, res.Unwrap())
	assert.Equal(t, 3, calls)
}

func TestDo_StopsAtFirstOk(t *testing.T) {
	t.Parallel()

	calls := 0
	res := Do(func() (int, error) {
		calls++
		return calls, nil
	}, Config{Retry: Retry{Times: 5}})

	assert.Equal(t, 1, res.Unwrap())
	assert.Equal(t, 1, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	res := Do(func() (int, error) {
		calls++
		return 0, errors.New("always")
	}, Config{Retry: Retry{Times: 2}})

	assert.True(t, res.IsErr())
	assert.Equal(t, 3, calls) // initial attempt + 2 retries
}

type timeoutError struct {
	tagged.TaggedError
}

func newTimeout(cause error) timeoutError {
	return timeoutError{TaggedError: tagged.New("TimeoutError", "timed out", tagged.WithCause(cause))}
}

func TestDoWith_CatchMapsFault(t *testing.T) {
	t.Parallel()

	boom := errors.New("deadline exceeded")
	res := DoWith(Op[int, timeoutError]{
		Try:   func() (int, error) { return 0, boom },
		Catch: newTimeout,
	})

	require.True(t, res.IsErr())
	assert.Equal(t, "TimeoutError", res.UnwrapErr().Tag())
	assert.ErrorIs(t, res.UnwrapErr(), boom)
}

func TestDoWith_SuccessSkipsCatch(t *testing.T) {
	t.Parallel()

	caught := 0
	res := DoWith(Op[string, error]{
		Try: func() (string, error) { return "fine", nil },
		Catch: func(err error) error {
			caught++
			return err
		},
	})

	assert.Equal(t, "fine", res.Unwrap())
	assert.Zero(t, caught)
}

func TestDoWith_RetryFailsTwiceThenSucceeds(t *testing.T) {
	t.Parallel()

	calls := 0
	res := DoWith(Op[int, error]{
		Try: func() (int, error) {
			calls++
			if calls <= 2 {
				return 0, errors.New("transient")
			}
			return 1, nil
		},
		Catch: func(err error) error { return err },
	}, Config{Retry: Retry{Times: 2}})

	require.True(t, res.IsOk())
	assert.Equal(t, 3, calls)
}
