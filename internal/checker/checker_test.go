package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/domain"
)

// allPresent disables filesystem probing so tests exercise the pure
// in-memory checks.
func allPresent(string) bool { return true }

func checkTree(tr *domain.Tree) *Result {
	return Check(tr, Options{Exists: allPresent})
}

func task(id string, opts ...func(*domain.Task)) *domain.Task {
	t := &domain.Task{
		ID:            id,
		Title:         "task " + id,
		File:          id + ".todo",
		Status:        constants.TaskStatusPending,
		EstimateHours: 1,
	}
	if len(id) > 2 && id[0] == 'P' {
		dots := []int{}
		for i, c := range id {
			if c == '.' {
				dots = append(dots, i)
			}
		}
		if len(dots) == 3 {
			t.EpicID = id[:dots[2]]
			t.MilestoneID = id[:dots[1]]
			t.PhaseID = id[:dots[0]]
		}
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

func deps(ids ...string) func(*domain.Task) {
	return func(t *domain.Task) { t.DependsOn = ids }
}

// wellFormedTree returns a tree that passes every check cleanly.
func wellFormedTree() *domain.Tree {
	return &domain.Tree{
		Project: "demo",
		Phases: []*domain.Phase{{
			ID: "P1", Path: "p1",
			Milestones: []*domain.Milestone{{
				ID: "P1.M1", Path: "p1/m1",
				Epics: []*domain.Epic{{
					ID: "P1.M1.E1", Path: "p1/m1/e1",
					Tasks: []*domain.Task{
						task("P1.M1.E1.T001"),
						task("P1.M1.E1.T002", deps("T001")),
					},
				}},
			}},
		}},
		Bugs:  []*domain.Task{task("B001")},
		Ideas: []*domain.Task{task("I001")},
	}
}

func findingCodes(res *Result) []string {
	codes := make([]string, 0, len(res.Findings))
	for _, f := range res.Findings {
		codes = append(codes, f.Code)
	}
	return codes
}

func TestCheck_CleanTree(t *testing.T) {
	t.Parallel()

	res := checkTree(wellFormedTree())
	assert.True(t, res.OK)
	assert.Empty(t, res.Findings)
}

func TestCheck_StructuralPresence(t *testing.T) {
	t.Parallel()

	t.Run("missing files produce errors with locations", func(t *testing.T) {
		t.Parallel()
		res := Check(wellFormedTree(), Options{Exists: func(string) bool { return false }})

		assert.False(t, res.OK)
		codes := findingCodes(res)
		assert.Contains(t, codes, "missing_phase_index")
		assert.Contains(t, codes, "missing_milestone_index")
		assert.Contains(t, codes, "missing_epic_index")
		assert.Contains(t, codes, "missing_task_file")
	})

	t.Run("entity with no stored path is missing", func(t *testing.T) {
		t.Parallel()
		tr := wellFormedTree()
		tr.Phases[0].Path = ""
		res := checkTree(tr)
		assert.Contains(t, findingCodes(res), "missing_phase_index")
	})
}

func TestCheck_IdentifierFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*domain.Tree)
	}{
		{"bad phase id", func(tr *domain.Tree) { tr.Phases[0].ID = "Phase1" }},
		{"bad milestone id", func(tr *domain.Tree) { tr.Phases[0].Milestones[0].ID = "M1" }},
		{"bad epic id", func(tr *domain.Tree) { tr.Phases[0].Milestones[0].Epics[0].ID = "E1" }},
		{"bad task id", func(tr *domain.Tree) { tr.Phases[0].Milestones[0].Epics[0].Tasks[0].ID = "P1.M1.E1.X001" }},
		{"bad bug id", func(tr *domain.Tree) { tr.Bugs[0].ID = "BUG-1" }},
		{"bad idea id", func(tr *domain.Tree) { tr.Ideas[0].ID = "IDEA1" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tr := wellFormedTree()
			tt.mutate(tr)
			res := checkTree(tr)
			assert.False(t, res.OK)
			assert.Contains(t, findingCodes(res), "invalid_id")
		})
	}
}

func TestCheck_Uniqueness(t *testing.T) {
	t.Parallel()

	tr := wellFormedTree()
	epic := tr.Phases[0].Milestones[0].Epics[0]
	epic.Tasks = append(epic.Tasks, task("P1.M1.E1.T001"))

	res := checkTree(tr)
	assert.False(t, res.OK)

	var dup *Finding
	for i := range res.Findings {
		if res.Findings[i].Code == "duplicate_id" {
			dup = &res.Findings[i]
		}
	}
	require.NotNil(t, dup)
	assert.Equal(t, "P1.M1.E1.T001", dup.Location)
	assert.Contains(t, dup.Message, "2 times")
}

func TestCheck_DependencyResolvability(t *testing.T) {
	t.Parallel()

	t.Run("unresolvable task dependency is an error", func(t *testing.T) {
		t.Parallel()
		tr := wellFormedTree()
		tr.Phases[0].Milestones[0].Epics[0].Tasks[1].DependsOn = []string{"P9.M9.E9.T999"}
		res := checkTree(tr)
		assert.False(t, res.OK)
		assert.Contains(t, findingCodes(res), "unresolved_dependency")
	})

	t.Run("bare ids resolve through the owner scope", func(t *testing.T) {
		t.Parallel()
		// T002 depends on bare "T001": scoped to its own epic, resolves.
		res := checkTree(wellFormedTree())
		assert.True(t, res.OK)
	})

	t.Run("unknown phase dependency", func(t *testing.T) {
		t.Parallel()
		tr := wellFormedTree()
		tr.Phases[0].DependsOn = []string{"P9"}
		res := checkTree(tr)
		assert.Contains(t, findingCodes(res), "unresolved_dependency")
	})

	t.Run("bare milestone dependency scoped to phase", func(t *testing.T) {
		t.Parallel()
		tr := wellFormedTree()
		tr.Phases[0].Milestones[0].DependsOn = []string{"M9"}
		res := checkTree(tr)
		assert.Contains(t, findingCodes(res), "unresolved_dependency")
	})

	t.Run("self dependency at each level", func(t *testing.T) {
		t.Parallel()
		tr := wellFormedTree()
		tr.Phases[0].DependsOn = []string{"P1"}
		tr.Phases[0].Milestones[0].DependsOn = []string{"M1"}
		tr.Phases[0].Milestones[0].Epics[0].DependsOn = []string{"E1"}
		tr.Phases[0].Milestones[0].Epics[0].Tasks[0].DependsOn = []string{"T001"}

		res := checkTree(tr)
		assert.False(t, res.OK)

		containerCount := 0
		for _, f := range res.Findings {
			if f.Code == "self_dependency" {
				containerCount++
			}
		}
		assert.Equal(t, 3, containerCount, "phase, milestone and epic self-deps reported")
		assert.Contains(t, findingCodes(res), "self_dependency_task")
	})

	t.Run("task self dependency is never a cycle report", func(t *testing.T) {
		t.Parallel()
		tr := wellFormedTree()
		tr.Phases[0].Milestones[0].Epics[0].Tasks[0].DependsOn = []string{"T001"}

		res := checkTree(tr)
		assert.False(t, res.OK)

		codes := findingCodes(res)
		assert.Contains(t, codes, "self_dependency_task")
		assert.NotContains(t, codes, "task_dependency_cycle")
	})
}

func TestCheck_ZeroEstimate(t *testing.T) {
	t.Parallel()

	tr := wellFormedTree()
	tr.Phases[0].Milestones[0].Epics[0].Tasks[0].EstimateHours = 0
	tr.Bugs[0].EstimateHours = 0
	tr.Ideas[0].EstimateHours = 0

	res := checkTree(tr)
	assert.True(t, res.OK, "zero estimates are warnings, not errors")

	warnings := 0
	for _, f := range res.Findings {
		if f.Code == "zero_estimate" {
			assert.Equal(t, LevelWarning, f.Level)
			warnings++
		}
	}
	assert.Equal(t, 2, warnings, "tasks and bugs warn; ideas do not")
}

func TestCheck_RuntimeReferences(t *testing.T) {
	t.Parallel()

	tr := wellFormedTree()
	res := Check(tr, Options{
		Exists:         allPresent,
		ContextTaskIDs: []string{"P1.M1.E1.T001", "P1.M1.E1.T999"},
		SessionTaskIDs: []string{"B001", "B999"},
	})

	assert.True(t, res.OK, "stale runtime references are warnings")
	codes := findingCodes(res)
	assert.Contains(t, codes, "stale_context_reference")
	assert.Contains(t, codes, "stale_session_reference")
	assert.Equal(t, 2, res.WarningCount(), "known ids do not warn")
}

func TestCheck_PlaceholderContent(t *testing.T) {
	t.Parallel()

	tr := wellFormedTree()
	tr.Bugs[0].Body = "# Bug\n\nTODO: describe this task\n"

	res := checkTree(tr)
	assert.True(t, res.OK)
	assert.Contains(t, findingCodes(res), "placeholder_content")
}

func TestResult_Counts(t *testing.T) {
	t.Parallel()

	res := &Result{Findings: []Finding{
		{Level: LevelError},
		{Level: LevelWarning},
		{Level: LevelError},
	}}
	assert.Equal(t, 2, res.ErrorCount())
	assert.Equal(t, 1, res.WarningCount())
}
