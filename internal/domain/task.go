// Package domain provides shared domain types for the roadmap backlog system.
// These types are used across all internal packages to ensure consistent data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, internal/treeid,
//     internal/clock, standard library
//   - MUST NOT import: any other internal packages
//
// All YAML field names use snake_case to match the on-disk file formats.
package domain

import (
	"time"

	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/treeid"
)

// Task represents a single unit of work: a hierarchy task addressed by a
// four-segment identifier, or a flat bug/idea addressed by a B###/I### id.
// Bugs and ideas reuse this type and are distinguished purely by their id
// prefix; they carry no epic/milestone/phase back-references.
type Task struct {
	// ID is the full identifier ("P1.M2.E1.T003", "B001", "I002").
	ID string `yaml:"id"`

	// Title is the human-readable summary.
	Title string `yaml:"title"`

	// File is the storage-relative path of the backing task file.
	File string `yaml:"file,omitempty"`

	// Status is the lifecycle state. Always a canonical value; aliases
	// are normalized at load time.
	Status constants.TaskStatus `yaml:"status"`

	// EstimateHours is the non-negative effort estimate.
	EstimateHours float64 `yaml:"estimate_hours"`

	// Complexity scales the task's score (low/medium/high/critical).
	Complexity constants.Complexity `yaml:"complexity,omitempty"`

	// Priority orders available work (critical sorts first).
	Priority constants.Priority `yaml:"priority,omitempty"`

	// DependsOn lists identifiers this task depends on. Entries may be
	// abbreviated: a bare "E2" or "T004" is resolved relative to the
	// task's own milestone/epic context.
	DependsOn []string `yaml:"depends_on,omitempty"`

	// Tags are free-form labels.
	Tags []string `yaml:"tags,omitempty"`

	// ClaimedBy is the agent holding the task, empty when unclaimed.
	ClaimedBy string `yaml:"claimed_by,omitempty"`

	// ClaimedAt is when the task was claimed.
	ClaimedAt *time.Time `yaml:"claimed_at,omitempty"`

	// StartedAt is when work began.
	StartedAt *time.Time `yaml:"started_at,omitempty"`

	// CompletedAt is when the task was finished.
	CompletedAt *time.Time `yaml:"completed_at,omitempty"`

	// DurationMinutes is the recorded working time.
	DurationMinutes int `yaml:"duration_minutes,omitempty"`

	// RejectionReason records why a rejected task was rejected.
	RejectionReason string `yaml:"rejection_reason,omitempty"`

	// Body is the Markdown content below the frontmatter. Not part of
	// the frontmatter itself.
	Body string `yaml:"-"`

	// Back-references to the owning containers. Empty for bugs/ideas.
	EpicID      string `yaml:"epic,omitempty"`
	MilestoneID string `yaml:"milestone,omitempty"`
	PhaseID     string `yaml:"phase,omitempty"`
}

// TypeRank orders work item types for selection: bugs first (0), normal
// tasks (1), ideas last (2).
func (t *Task) TypeRank() int {
	switch {
	case treeid.IsBugID(t.ID):
		return 0
	case treeid.IsIdeaID(t.ID):
		return 2
	default:
		return 1
	}
}

// IsBug reports whether the item is a flat bug.
func (t *Task) IsBug() bool { return treeid.IsBugID(t.ID) }

// IsIdea reports whether the item is a flat idea.
func (t *Task) IsIdea() bool { return treeid.IsIdeaID(t.ID) }

// IsClaimed reports whether an agent currently holds the task.
func (t *Task) IsClaimed() bool { return t.ClaimedBy != "" }

// IsDone reports whether the task is complete.
func (t *Task) IsDone() bool { return t.Status == constants.TaskStatusDone }
