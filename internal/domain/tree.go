package domain

import (
	"github.com/mrz1836/roadmap/internal/constants"
	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

// Epic owns an ordered list of tasks. Task order is significant: a task
// with no explicit dependencies implicitly depends on its immediately
// preceding sibling.
type Epic struct {
	// ID is the full epic identifier ("P1.M2.E1").
	ID string `yaml:"id"`

	// Name is the human-readable epic name.
	Name string `yaml:"name"`

	// Path is the storage-relative directory of the epic.
	Path string `yaml:"path,omitempty"`

	// Status is the container status (derived bottom-up from tasks, but
	// persisted for display).
	Status constants.TaskStatus `yaml:"status,omitempty"`

	// EstimateHours is the aggregate estimate.
	EstimateHours float64 `yaml:"estimate_hours,omitempty"`

	// Complexity classifies the epic as a whole.
	Complexity constants.Complexity `yaml:"complexity,omitempty"`

	// DependsOn lists epic identifiers this epic depends on. Unqualified
	// entries ("E1") are scoped to the owning milestone.
	DependsOn []string `yaml:"depends_on,omitempty"`

	// Locked forbids adding new tasks once the epic is complete.
	Locked bool `yaml:"locked,omitempty"`

	// Tasks is the ordered task list.
	Tasks []*Task `yaml:"-"`
}

// Milestone owns an ordered list of epics.
type Milestone struct {
	ID            string               `yaml:"id"`
	Name          string               `yaml:"name"`
	Path          string               `yaml:"path,omitempty"`
	Status        constants.TaskStatus `yaml:"status,omitempty"`
	EstimateHours float64              `yaml:"estimate_hours,omitempty"`
	Complexity    constants.Complexity `yaml:"complexity,omitempty"`

	// DependsOn lists milestone identifiers; unqualified entries ("M1")
	// are scoped to the owning phase.
	DependsOn []string `yaml:"depends_on,omitempty"`

	Locked bool    `yaml:"locked,omitempty"`
	Epics  []*Epic `yaml:"-"`
}

// Phase owns an ordered list of milestones. Phase dependencies are always
// fully qualified since phases have no parent scope.
type Phase struct {
	ID            string               `yaml:"id"`
	Name          string               `yaml:"name"`
	Path          string               `yaml:"path,omitempty"`
	Status        constants.TaskStatus `yaml:"status,omitempty"`
	EstimateHours float64              `yaml:"estimate_hours,omitempty"`
	Complexity    constants.Complexity `yaml:"complexity,omitempty"`
	DependsOn     []string             `yaml:"depends_on,omitempty"`
	Locked        bool                 `yaml:"locked,omitempty"`
	Milestones    []*Milestone         `yaml:"-"`
}

// Tree is the fully loaded in-memory backlog: the phase hierarchy plus
// the flat bug and idea collections. It is constructed fresh by the store
// at the start of every command invocation and discarded at the end; no
// state is retained between invocations.
type Tree struct {
	// Project is the project name from the root index.
	Project string

	// Phases is the ordered phase list.
	Phases []*Phase

	// Bugs and Ideas are the flat collections, in index order.
	Bugs  []*Task
	Ideas []*Task
}

// AllTasks returns every hierarchy task in document order (phase, then
// milestone, then epic, then task order). Bugs and ideas are excluded.
// The hierarchy has a fixed depth, so the walk is plain nested iteration;
// nothing here recurses.
func (tr *Tree) AllTasks() []*Task {
	var out []*Task
	for _, p := range tr.Phases {
		for _, m := range p.Milestones {
			for _, e := range m.Epics {
				out = append(out, e.Tasks...)
			}
		}
	}
	return out
}

// AllWorkItems returns bugs, then hierarchy tasks, then ideas.
func (tr *Tree) AllWorkItems() []*Task {
	tasks := tr.AllTasks()
	out := make([]*Task, 0, len(tr.Bugs)+len(tasks)+len(tr.Ideas))
	out = append(out, tr.Bugs...)
	out = append(out, tasks...)
	out = append(out, tr.Ideas...)
	return out
}

// FindPhase looks up a phase by id.
func (tr *Tree) FindPhase(id string) (*Phase, bool) {
	for _, p := range tr.Phases {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// FindMilestone looks up a milestone by full id.
func (tr *Tree) FindMilestone(id string) (*Milestone, bool) {
	for _, p := range tr.Phases {
		for _, m := range p.Milestones {
			if m.ID == id {
				return m, true
			}
		}
	}
	return nil, false
}

// FindEpic looks up an epic by full id.
func (tr *Tree) FindEpic(id string) (*Epic, bool) {
	for _, p := range tr.Phases {
		for _, m := range p.Milestones {
			for _, e := range m.Epics {
				if e.ID == id {
					return e, true
				}
			}
		}
	}
	return nil, false
}

// FindTask looks up a hierarchy task, bug or idea by full id.
func (tr *Tree) FindTask(id string) (*Task, bool) {
	for _, t := range tr.AllWorkItems() {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// IsComplete reports whether every task of the epic is done.
// Empty epics are vacuously complete.
func (e *Epic) IsComplete() bool {
	for _, t := range e.Tasks {
		if !t.IsDone() {
			return false
		}
	}
	return true
}

// IsComplete reports whether every epic of the milestone is complete.
func (m *Milestone) IsComplete() bool {
	for _, e := range m.Epics {
		if !e.IsComplete() {
			return false
		}
	}
	return true
}

// IsComplete reports whether every milestone of the phase is complete.
func (p *Phase) IsComplete() bool {
	for _, m := range p.Milestones {
		if !m.IsComplete() {
			return false
		}
	}
	return true
}

// AddTask appends a task to the epic, honoring the locked flag.
func (e *Epic) AddTask(t *Task) error {
	if e.Locked {
		return roadmaperrors.Wrapf(roadmaperrors.ErrContainerLocked, "epic %s", e.ID)
	}
	e.Tasks = append(e.Tasks, t)
	return nil
}

// AddEpic appends an epic to the milestone, honoring the locked flag.
func (m *Milestone) AddEpic(e *Epic) error {
	if m.Locked {
		return roadmaperrors.Wrapf(roadmaperrors.ErrContainerLocked, "milestone %s", m.ID)
	}
	m.Epics = append(m.Epics, e)
	return nil
}

// AddMilestone appends a milestone to the phase, honoring the locked flag.
func (p *Phase) AddMilestone(m *Milestone) error {
	if p.Locked {
		return roadmaperrors.Wrapf(roadmaperrors.ErrContainerLocked, "phase %s", p.ID)
	}
	p.Milestones = append(p.Milestones, m)
	return nil
}
