package domain

// Index provides O(1) lookup over a loaded tree. It is built once per
// operation and discarded with the tree; it never outlives a command
// invocation.
type Index struct {
	tasks      map[string]*Task
	epics      map[string]*Epic
	milestones map[string]*Milestone
	phases     map[string]*Phase
	epicOf     map[string]*Epic
	position   map[string]int
}

// NewIndex builds lookup maps for every entity in the tree. Duplicate ids
// are tolerated (first occurrence wins); the consistency checker is the
// component responsible for reporting them.
func NewIndex(tr *Tree) *Index {
	ix := &Index{
		tasks:      make(map[string]*Task),
		epics:      make(map[string]*Epic),
		milestones: make(map[string]*Milestone),
		phases:     make(map[string]*Phase),
		epicOf:     make(map[string]*Epic),
		position:   make(map[string]int),
	}
	for _, p := range tr.Phases {
		if _, ok := ix.phases[p.ID]; !ok {
			ix.phases[p.ID] = p
		}
		for _, m := range p.Milestones {
			if _, ok := ix.milestones[m.ID]; !ok {
				ix.milestones[m.ID] = m
			}
			for _, e := range m.Epics {
				if _, ok := ix.epics[e.ID]; !ok {
					ix.epics[e.ID] = e
				}
				for i, t := range e.Tasks {
					if _, ok := ix.tasks[t.ID]; ok {
						continue
					}
					ix.tasks[t.ID] = t
					ix.epicOf[t.ID] = e
					ix.position[t.ID] = i
				}
			}
		}
	}
	for _, b := range tr.Bugs {
		if _, ok := ix.tasks[b.ID]; !ok {
			ix.tasks[b.ID] = b
		}
	}
	for _, i := range tr.Ideas {
		if _, ok := ix.tasks[i.ID]; !ok {
			ix.tasks[i.ID] = i
		}
	}
	return ix
}

// Task returns the task, bug or idea with the given id.
func (ix *Index) Task(id string) (*Task, bool) {
	t, ok := ix.tasks[id]
	return t, ok
}

// Epic returns the epic with the given full id.
func (ix *Index) Epic(id string) (*Epic, bool) {
	e, ok := ix.epics[id]
	return e, ok
}

// Milestone returns the milestone with the given full id.
func (ix *Index) Milestone(id string) (*Milestone, bool) {
	m, ok := ix.milestones[id]
	return m, ok
}

// Phase returns the phase with the given id.
func (ix *Index) Phase(id string) (*Phase, bool) {
	p, ok := ix.phases[id]
	return p, ok
}

// EpicOf returns the epic owning a hierarchy task. Bugs and ideas have
// no owning epic.
func (ix *Index) EpicOf(taskID string) (*Epic, bool) {
	e, ok := ix.epicOf[taskID]
	return e, ok
}

// Predecessor returns the immediately preceding sibling of a task within
// its epic. The first task of an epic, and any bug/idea, has none.
func (ix *Index) Predecessor(taskID string) (*Task, bool) {
	e, ok := ix.epicOf[taskID]
	if !ok {
		return nil, false
	}
	pos, ok := ix.position[taskID]
	if !ok || pos == 0 {
		return nil, false
	}
	return e.Tasks[pos-1], true
}
