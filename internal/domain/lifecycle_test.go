package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/roadmap/internal/constants"
	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

// fixedClock implements clock.Clock with a settable time.
type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now() time.Time { return f.now }

func TestClaim(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("pending task is claimed", func(t *testing.T) {
		t.Parallel()
		tk := &Task{ID: "P1.M1.E1.T001", Status: constants.TaskStatusPending}
		clk := &fixedClock{now: base}

		require.NoError(t, Claim(tk, "agent-7", clk))

		assert.Equal(t, constants.TaskStatusInProgress, tk.Status)
		assert.Equal(t, "agent-7", tk.ClaimedBy)
		require.NotNil(t, tk.ClaimedAt)
		assert.Equal(t, base, *tk.ClaimedAt)
		require.NotNil(t, tk.StartedAt)
		assert.Equal(t, base, *tk.StartedAt)
	})

	t.Run("empty agent is rejected", func(t *testing.T) {
		t.Parallel()
		tk := &Task{ID: "P1.M1.E1.T001", Status: constants.TaskStatusPending}
		err := Claim(tk, "", &fixedClock{now: base})
		assert.ErrorIs(t, err, roadmaperrors.ErrEmptyValue)
		assert.Equal(t, constants.TaskStatusPending, tk.Status)
	})

	t.Run("already claimed task", func(t *testing.T) {
		t.Parallel()
		tk := &Task{ID: "P1.M1.E1.T001", Status: constants.TaskStatusInProgress, ClaimedBy: "agent-1"}
		err := Claim(tk, "agent-2", &fixedClock{now: base})
		assert.ErrorIs(t, err, roadmaperrors.ErrAlreadyClaimed)
		assert.Equal(t, "agent-1", tk.ClaimedBy, "holder is unchanged")
	})

	t.Run("non-pending status", func(t *testing.T) {
		t.Parallel()
		for _, status := range []constants.TaskStatus{
			constants.TaskStatusDone,
			constants.TaskStatusBlocked,
			constants.TaskStatusRejected,
			constants.TaskStatusCancelled,
		} {
			tk := &Task{ID: "P1.M1.E1.T001", Status: status}
			err := Claim(tk, "agent-7", &fixedClock{now: base})
			assert.ErrorIs(t, err, roadmaperrors.ErrInvalidTransition, "status %s", status)
		}
	})
}

func TestComplete(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("records completion and duration", func(t *testing.T) {
		t.Parallel()
		tk := &Task{ID: "P1.M1.E1.T001", Status: constants.TaskStatusPending}
		clk := &fixedClock{now: start}
		require.NoError(t, Claim(tk, "agent-7", clk))

		clk.now = start.Add(95*time.Minute + 30*time.Second)
		require.NoError(t, Complete(tk, clk))

		assert.Equal(t, constants.TaskStatusDone, tk.Status)
		require.NotNil(t, tk.CompletedAt)
		assert.Equal(t, clk.now, *tk.CompletedAt)
		assert.Equal(t, 95, tk.DurationMinutes, "partial minutes are floored")
	})

	t.Run("negative duration clamps to zero", func(t *testing.T) {
		t.Parallel()
		later := start.Add(time.Hour)
		tk := &Task{ID: "P1.M1.E1.T001", Status: constants.TaskStatusInProgress, StartedAt: &later}
		require.NoError(t, Complete(tk, &fixedClock{now: start}))
		assert.Equal(t, 0, tk.DurationMinutes)
	})

	t.Run("only in_progress completes", func(t *testing.T) {
		t.Parallel()
		tk := &Task{ID: "P1.M1.E1.T001", Status: constants.TaskStatusPending}
		err := Complete(tk, &fixedClock{now: start})
		assert.ErrorIs(t, err, roadmaperrors.ErrInvalidTransition)
	})
}

func TestReject(t *testing.T) {
	t.Parallel()

	t.Run("pending task with reason", func(t *testing.T) {
		t.Parallel()
		tk := &Task{ID: "P1.M1.E1.T001", Status: constants.TaskStatusPending}
		require.NoError(t, Reject(tk, "  duplicate of T003  "))
		assert.Equal(t, constants.TaskStatusRejected, tk.Status)
		assert.Equal(t, "duplicate of T003", tk.RejectionReason, "reason is trimmed")
	})

	t.Run("in_progress task", func(t *testing.T) {
		t.Parallel()
		tk := &Task{ID: "B001", Status: constants.TaskStatusInProgress}
		require.NoError(t, Reject(tk, "cannot reproduce"))
		assert.Equal(t, constants.TaskStatusRejected, tk.Status)
	})

	t.Run("blank reason is refused", func(t *testing.T) {
		t.Parallel()
		tk := &Task{ID: "P1.M1.E1.T001", Status: constants.TaskStatusPending}
		err := Reject(tk, "   ")
		assert.ErrorIs(t, err, roadmaperrors.ErrMissingReason)
		assert.Equal(t, constants.TaskStatusPending, tk.Status)
	})

	t.Run("done task cannot be rejected", func(t *testing.T) {
		t.Parallel()
		tk := &Task{ID: "P1.M1.E1.T001", Status: constants.TaskStatusDone}
		err := Reject(tk, "changed my mind")
		assert.ErrorIs(t, err, roadmaperrors.ErrInvalidTransition)
	})
}

func TestRelease(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("claimed task returns to pending", func(t *testing.T) {
		t.Parallel()
		tk := &Task{ID: "P1.M1.E1.T001", Status: constants.TaskStatusPending}
		require.NoError(t, Claim(tk, "agent-7", &fixedClock{now: base}))
		require.NoError(t, Release(tk))

		assert.Equal(t, constants.TaskStatusPending, tk.Status)
		assert.Empty(t, tk.ClaimedBy)
		assert.Nil(t, tk.ClaimedAt)
		assert.Nil(t, tk.StartedAt)
	})

	t.Run("unclaimed task cannot release", func(t *testing.T) {
		t.Parallel()
		tk := &Task{ID: "P1.M1.E1.T001", Status: constants.TaskStatusPending}
		assert.ErrorIs(t, Release(tk), roadmaperrors.ErrInvalidTransition)
	})
}
