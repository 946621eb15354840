package errors_test

import (
	"fmt"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

// testError is a custom error type used to test default branches
// in UserMessage and Actionable without matching any sentinel.
type testError struct {
	msg string
}

func (e testError) Error() string {
	return e.msg
}

func TestSentinelErrors_Existence(t *testing.T) {
	t.Parallel()
	// Verify all sentinel errors exist and are non-nil
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrInvalidFormat", roadmaperrors.ErrInvalidFormat},
		{"ErrInvalidHierarchy", roadmaperrors.ErrInvalidHierarchy},
		{"ErrNotFound", roadmaperrors.ErrNotFound},
		{"ErrInvalidMove", roadmaperrors.ErrInvalidMove},
		{"ErrUnresolvedDependency", roadmaperrors.ErrUnresolvedDependency},
		{"ErrDependencyCycle", roadmaperrors.ErrDependencyCycle},
		{"ErrSelfDependency", roadmaperrors.ErrSelfDependency},
		{"ErrAlreadyClaimed", roadmaperrors.ErrAlreadyClaimed},
		{"ErrInvalidTransition", roadmaperrors.ErrInvalidTransition},
		{"ErrMissingReason", roadmaperrors.ErrMissingReason},
		{"ErrContainerLocked", roadmaperrors.ErrContainerLocked},
		{"ErrDuplicateID", roadmaperrors.ErrDuplicateID},
		{"ErrNoAvailableTasks", roadmaperrors.ErrNoAvailableTasks},
		{"ErrDataDirNotFound", roadmaperrors.ErrDataDirNotFound},
		{"ErrCheckFailed", roadmaperrors.ErrCheckFailed},
	}

	for _, tc := range sentinels {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err, "%s should not be nil", tc.name)
			assert.NotEmpty(t, tc.err.Error(), "%s should have a message", tc.name)
		})
	}
}

func TestSentinelErrors_LowercaseMessages(t *testing.T) {
	t.Parallel()
	sentinels := []error{
		roadmaperrors.ErrInvalidFormat,
		roadmaperrors.ErrNotFound,
		roadmaperrors.ErrInvalidMove,
		roadmaperrors.ErrAlreadyClaimed,
		roadmaperrors.ErrInvalidTransition,
		roadmaperrors.ErrDependencyCycle,
	}

	for _, err := range sentinels {
		first := rune(err.Error()[0])
		assert.True(t, unicode.IsLower(first), "message %q should start lowercase", err.Error())
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, roadmaperrors.Wrap(nil, "context"))
	})

	t.Run("preserves error chain", func(t *testing.T) {
		wrapped := roadmaperrors.Wrap(roadmaperrors.ErrNotFound, "loading task")
		require.Error(t, wrapped)
		require.ErrorIs(t, wrapped, roadmaperrors.ErrNotFound)
		assert.Equal(t, "loading task: entity not found", wrapped.Error())
	})
}

func TestWrapf(t *testing.T) {
	t.Parallel()
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, roadmaperrors.Wrapf(nil, "task %s", "P1.M1.E1.T001"))
	})

	t.Run("interpolates and preserves chain", func(t *testing.T) {
		wrapped := roadmaperrors.Wrapf(roadmaperrors.ErrAlreadyClaimed, "claiming %s", "P1.M1.E1.T001")
		require.ErrorIs(t, wrapped, roadmaperrors.ErrAlreadyClaimed)
		assert.Contains(t, wrapped.Error(), "P1.M1.E1.T001")
	})
}

func TestExitCode2Error(t *testing.T) {
	t.Parallel()
	base := roadmaperrors.ErrInvalidTransition
	wrapped := roadmaperrors.NewExitCode2Error(base)

	assert.Equal(t, base.Error(), wrapped.Error())
	require.ErrorIs(t, wrapped, base)
	assert.True(t, roadmaperrors.IsExitCode2Error(wrapped))
	assert.True(t, roadmaperrors.IsExitCode2Error(fmt.Errorf("outer: %w", wrapped)))
	assert.False(t, roadmaperrors.IsExitCode2Error(base))
	assert.False(t, roadmaperrors.IsExitCode2Error(nil))
}

func TestUserMessage(t *testing.T) {
	t.Parallel()
	t.Run("nil error", func(t *testing.T) {
		assert.Empty(t, roadmaperrors.UserMessage(nil))
	})

	t.Run("direct sentinel", func(t *testing.T) {
		msg := roadmaperrors.UserMessage(roadmaperrors.ErrAlreadyClaimed)
		assert.Contains(t, msg, "already claimed")
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := roadmaperrors.Wrap(roadmaperrors.ErrNotFound, "resolving P9")
		msg := roadmaperrors.UserMessage(err)
		assert.Contains(t, msg, "No entity")
	})

	t.Run("unknown error falls back to raw message", func(t *testing.T) {
		err := testError{msg: "something odd"}
		assert.Equal(t, "something odd", roadmaperrors.UserMessage(err))
	})
}

func TestActionable(t *testing.T) {
	t.Parallel()
	t.Run("nil error", func(t *testing.T) {
		msg, action := roadmaperrors.Actionable(nil)
		assert.Empty(t, msg)
		assert.Empty(t, action)
	})

	t.Run("sentinel with action", func(t *testing.T) {
		msg, action := roadmaperrors.Actionable(roadmaperrors.ErrMissingReason)
		assert.NotEmpty(t, msg)
		assert.Contains(t, action, "--reason")
	})

	t.Run("unknown error has no action", func(t *testing.T) {
		_, action := roadmaperrors.Actionable(testError{msg: "odd"})
		assert.Empty(t, action)
	})
}
