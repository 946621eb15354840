package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/roadmap/internal/constants"
)

func TestStatusIcon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status constants.TaskStatus
		want   string
	}{
		{constants.TaskStatusPending, "○"},
		{constants.TaskStatusInProgress, "●"},
		{constants.TaskStatusDone, "✓"},
		{constants.TaskStatusBlocked, "⚠"},
		{constants.TaskStatusRejected, "✗"},
		{constants.TaskStatusCancelled, "✗"},
		{constants.TaskStatus("bogus"), "?"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, StatusIcon(tt.status))
		})
	}
}

func TestHasColorSupport(t *testing.T) {
	t.Run("NO_COLOR disables", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.False(t, HasColorSupport())
	})

	t.Run("dumb terminal disables", func(t *testing.T) {
		t.Setenv("TERM", "dumb")
		assert.False(t, HasColorSupport())
	})
}

func TestStatusColors_CoverAllStatuses(t *testing.T) {
	t.Parallel()

	colors := StatusColors()
	for _, status := range constants.ValidTaskStatuses() {
		_, ok := colors[status]
		assert.True(t, ok, "missing color for %s", status)
	}
}

func TestRenderStatus(t *testing.T) {
	t.Parallel()

	out := RenderStatus(constants.TaskStatusDone)
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "✓")
}
