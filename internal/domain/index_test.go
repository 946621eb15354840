package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/roadmap/internal/constants"
)

func TestNewIndex_Lookups(t *testing.T) {
	t.Parallel()

	tr := newTestTree()
	ix := NewIndex(tr)

	t.Run("task lookup covers hierarchy, bugs and ideas", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"P1.M1.E1.T001", "P2.M1.E1.T001", "B001", "I001"} {
			tk, ok := ix.Task(id)
			require.True(t, ok, "expected %s in index", id)
			assert.Equal(t, id, tk.ID)
		}

		_, ok := ix.Task("P1.M1.E1.T099")
		assert.False(t, ok)
	})

	t.Run("container lookups", func(t *testing.T) {
		t.Parallel()
		p, ok := ix.Phase("P1")
		require.True(t, ok)
		assert.Equal(t, "Foundation", p.Name)

		m, ok := ix.Milestone("P1.M1")
		require.True(t, ok)
		assert.Equal(t, "Core", m.Name)

		e, ok := ix.Epic("P1.M1.E2")
		require.True(t, ok)
		assert.Equal(t, "Storage", e.Name)
	})

	t.Run("epic of task", func(t *testing.T) {
		t.Parallel()
		e, ok := ix.EpicOf("P1.M1.E1.T002")
		require.True(t, ok)
		assert.Equal(t, "P1.M1.E1", e.ID)

		_, ok = ix.EpicOf("B001")
		assert.False(t, ok, "bugs have no owning epic")
	})
}

func TestIndex_Predecessor(t *testing.T) {
	t.Parallel()

	tr := newTestTree()
	ix := NewIndex(tr)

	t.Run("second task has its sibling", func(t *testing.T) {
		t.Parallel()
		pred, ok := ix.Predecessor("P1.M1.E1.T002")
		require.True(t, ok)
		assert.Equal(t, "P1.M1.E1.T001", pred.ID)
	})

	t.Run("first task has none", func(t *testing.T) {
		t.Parallel()
		_, ok := ix.Predecessor("P1.M1.E1.T001")
		assert.False(t, ok)
	})

	t.Run("bugs and ideas have none", func(t *testing.T) {
		t.Parallel()
		_, ok := ix.Predecessor("B001")
		assert.False(t, ok)

		_, ok = ix.Predecessor("I001")
		assert.False(t, ok)
	})
}

func TestNewIndex_DuplicateIDsFirstWins(t *testing.T) {
	t.Parallel()

	tr := newTestTree()
	// Inject a second task with the same id in a different epic. The
	// index keeps the first occurrence; the consistency checker is the
	// component that reports the duplicate.
	dup := &Task{ID: "P1.M1.E1.T001", Title: "impostor", Status: constants.TaskStatusPending}
	e, _ := tr.FindEpic("P1.M1.E2")
	e.Tasks = append(e.Tasks, dup)

	ix := NewIndex(tr)
	tk, ok := ix.Task("P1.M1.E1.T001")
	require.True(t, ok)
	assert.Equal(t, "task P1.M1.E1.T001", tk.Title)

	pred, ok := ix.Predecessor("P1.M1.E1.T001")
	require.False(t, ok, "position of first occurrence wins: %v", pred)
}
