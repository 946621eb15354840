package domain

import (
	"strings"

	"github.com/mrz1836/roadmap/internal/clock"
	"github.com/mrz1836/roadmap/internal/constants"
	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

// Claim transitions a pending, unclaimed task to in_progress and records
// the claiming agent and timestamps. Returns ErrAlreadyClaimed when
// another agent holds the task and ErrInvalidTransition when the status
// is not pending.
func Claim(t *Task, agent string, clk clock.Clock) error {
	if agent == "" {
		return roadmaperrors.Wrap(roadmaperrors.ErrEmptyValue, "agent name")
	}
	if t.IsClaimed() {
		return roadmaperrors.Wrapf(roadmaperrors.ErrAlreadyClaimed, "task %s is held by %s", t.ID, t.ClaimedBy)
	}
	if t.Status != constants.TaskStatusPending {
		return roadmaperrors.Wrapf(roadmaperrors.ErrInvalidTransition, "cannot claim task %s in status %s", t.ID, t.Status)
	}

	now := clk.Now().UTC()
	t.Status = constants.TaskStatusInProgress
	t.ClaimedBy = agent
	t.ClaimedAt = &now
	t.StartedAt = &now
	return nil
}

// Complete transitions an in_progress task to done, stamps completed_at
// and records the working duration in whole minutes (floor, minimum 0).
func Complete(t *Task, clk clock.Clock) error {
	if t.Status != constants.TaskStatusInProgress {
		return roadmaperrors.Wrapf(roadmaperrors.ErrInvalidTransition, "cannot complete task %s in status %s", t.ID, t.Status)
	}

	now := clk.Now().UTC()
	t.Status = constants.TaskStatusDone
	t.CompletedAt = &now
	if t.StartedAt != nil {
		minutes := int(now.Sub(*t.StartedAt).Minutes())
		if minutes < 0 {
			minutes = 0
		}
		t.DurationMinutes = minutes
	}
	return nil
}

// Reject transitions a pending or in_progress task to rejected. A
// non-empty reason is mandatory; rejection without explanation leaves
// the backlog unreadable for the next agent.
func Reject(t *Task, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return roadmaperrors.Wrapf(roadmaperrors.ErrMissingReason, "task %s", t.ID)
	}
	switch t.Status {
	case constants.TaskStatusPending, constants.TaskStatusInProgress:
		t.Status = constants.TaskStatusRejected
		t.RejectionReason = strings.TrimSpace(reason)
		return nil
	default:
		return roadmaperrors.Wrapf(roadmaperrors.ErrInvalidTransition, "cannot reject task %s in status %s", t.ID, t.Status)
	}
}

// Release clears the claim on an in_progress task and returns it to
// pending. Used when an agent abandons work without finishing it.
func Release(t *Task) error {
	if !t.IsClaimed() {
		return roadmaperrors.Wrapf(roadmaperrors.ErrInvalidTransition, "task %s is not claimed", t.ID)
	}
	t.Status = constants.TaskStatusPending
	t.ClaimedBy = ""
	t.ClaimedAt = nil
	t.StartedAt = nil
	return nil
}
