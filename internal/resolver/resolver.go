// Package resolver computes work availability and the global priority
// ordering over a loaded backlog tree.
//
// A Resolver is built fresh from a tree for each command invocation and
// answers pure in-memory queries; it never touches the filesystem and
// never mutates the tree. Business-logic "not available" outcomes are
// encoded as booleans and absent results, not errors.
package resolver

import (
	"sort"

	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/domain"
	"github.com/mrz1836/roadmap/internal/treeid"
)

// Resolver answers availability and priority queries over a single tree.
type Resolver struct {
	tree        *domain.Tree
	ix          *domain.Index
	multipliers map[constants.Complexity]float64
}

// New creates a Resolver over the given tree. A nil multiplier table
// falls back to the default complexity multipliers.
func New(tree *domain.Tree, multipliers map[constants.Complexity]float64) *Resolver {
	if multipliers == nil {
		multipliers = constants.DefaultComplexityMultipliers()
	}
	return &Resolver{
		tree:        tree,
		ix:          domain.NewIndex(tree),
		multipliers: multipliers,
	}
}

// Score returns the task's weight: estimate hours scaled by the
// complexity multiplier. Unknown complexity scales by 1.
func (r *Resolver) Score(t *domain.Task) float64 {
	m, ok := r.multipliers[t.Complexity]
	if !ok {
		m = 1
	}
	return t.EstimateHours * m
}

// IsAvailable reports whether the task can be started right now.
//
// A task is available when it is pending and unclaimed, every explicit
// dependency is satisfied (or, for dependency-free tasks, the preceding
// sibling in the epic is done), and every container-level dependency of
// its phase, milestone and epic chain is fully complete. A dependency id
// that resolves to nothing is treated as never satisfied, not as an
// error; the consistency checker is the component that reports it.
func (r *Resolver) IsAvailable(t *domain.Task) bool {
	if t.Status != constants.TaskStatusPending || t.IsClaimed() {
		return false
	}
	if !r.dependenciesSatisfied(t, nil) {
		return false
	}
	return r.containerDependenciesComplete(t)
}

// dependenciesSatisfied checks the task's explicit dependsOn entries, or
// the implicit predecessor rule when the list is empty. assumedDone is an
// optional overlay of task ids treated as done regardless of persisted
// status; batch selection uses it, normal availability passes nil.
func (r *Resolver) dependenciesSatisfied(t *domain.Task, assumedDone map[string]bool) bool {
	if len(t.DependsOn) == 0 {
		pred, ok := r.ix.Predecessor(t.ID)
		if !ok {
			return true
		}
		return r.taskDone(pred, assumedDone)
	}
	for _, dep := range t.DependsOn {
		if !r.dependencySatisfied(t, dep, assumedDone) {
			return false
		}
	}
	return true
}

// dependencySatisfied resolves one dependency entry and checks it.
// Resolution order: direct task id, task id scoped to the owner's epic,
// direct epic id, epic id scoped to the owner's milestone. An epic
// dependency is satisfied only when all of its member tasks are done.
func (r *Resolver) dependencySatisfied(owner *domain.Task, dep string, assumedDone map[string]bool) bool {
	if target, ok := r.resolveTaskDep(owner, dep); ok {
		return r.taskDone(target, assumedDone)
	}
	if epic, ok := r.resolveEpicDep(owner, dep); ok {
		for _, member := range epic.Tasks {
			if !r.taskDone(member, assumedDone) {
				return false
			}
		}
		return true
	}
	// Unresolvable dependency ids block forever.
	return false
}

func (r *Resolver) resolveTaskDep(owner *domain.Task, dep string) (*domain.Task, bool) {
	if t, ok := r.ix.Task(dep); ok {
		return t, true
	}
	if treeid.BareSegment(treeid.KindTask, dep) && owner.EpicID != "" {
		if t, ok := r.ix.Task(owner.EpicID + "." + dep); ok {
			return t, true
		}
	}
	return nil, false
}

func (r *Resolver) resolveEpicDep(owner *domain.Task, dep string) (*domain.Epic, bool) {
	if e, ok := r.ix.Epic(dep); ok {
		return e, true
	}
	if treeid.BareSegment(treeid.KindEpic, dep) && owner.MilestoneID != "" {
		if e, ok := r.ix.Epic(owner.MilestoneID + "." + dep); ok {
			return e, true
		}
	}
	return nil, false
}

func (r *Resolver) taskDone(t *domain.Task, assumedDone map[string]bool) bool {
	if t.IsDone() {
		return true
	}
	return assumedDone[t.ID]
}

// containerDependenciesComplete checks the phase, milestone and epic
// dependency chains of a hierarchy task. Bugs and ideas live outside the
// hierarchy and always pass.
func (r *Resolver) containerDependenciesComplete(t *domain.Task) bool {
	if t.PhaseID == "" {
		return true
	}
	if p, ok := r.ix.Phase(t.PhaseID); ok {
		for _, dep := range p.DependsOn {
			target, found := r.ix.Phase(dep)
			if !found || !target.IsComplete() {
				return false
			}
		}
	}
	if m, ok := r.ix.Milestone(t.MilestoneID); ok {
		for _, dep := range m.DependsOn {
			target, found := r.resolveMilestoneDep(t.PhaseID, dep)
			if !found || !target.IsComplete() {
				return false
			}
		}
	}
	if e, ok := r.ix.Epic(t.EpicID); ok {
		for _, dep := range e.DependsOn {
			target, found := r.resolveContainerEpicDep(t.MilestoneID, dep)
			if !found || !target.IsComplete() {
				return false
			}
		}
	}
	return true
}

func (r *Resolver) resolveMilestoneDep(phaseID, dep string) (*domain.Milestone, bool) {
	if m, ok := r.ix.Milestone(dep); ok {
		return m, true
	}
	if treeid.BareSegment(treeid.KindMilestone, dep) && phaseID != "" {
		return r.ix.Milestone(phaseID + "." + dep)
	}
	return nil, false
}

func (r *Resolver) resolveContainerEpicDep(milestoneID, dep string) (*domain.Epic, bool) {
	if e, ok := r.ix.Epic(dep); ok {
		return e, true
	}
	if treeid.BareSegment(treeid.KindEpic, dep) && milestoneID != "" {
		return r.ix.Epic(milestoneID + "." + dep)
	}
	return nil, false
}

// FindAllAvailable returns the ids of every startable work item, sorted
// by type rank (bugs, tasks, ideas), then priority rank, then descending
// score. The sort is stable, so equal keys keep their tree order.
func (r *Resolver) FindAllAvailable() []string {
	var avail []*domain.Task
	for _, t := range r.tree.AllWorkItems() {
		if r.IsAvailable(t) {
			avail = append(avail, t)
		}
	}
	sort.SliceStable(avail, func(i, j int) bool {
		a, b := avail[i], avail[j]
		if a.TypeRank() != b.TypeRank() {
			return a.TypeRank() < b.TypeRank()
		}
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		return r.Score(a) > r.Score(b)
	})
	ids := make([]string, len(avail))
	for i, t := range avail {
		ids[i] = t.ID
	}
	return ids
}

// Calculate produces the global critical path and the next available
// task id. The critical path is every work item sorted purely by
// descending score; it is a priority index over the whole backlog, not a
// topological schedule, so availability plays no part in it. The next
// available id is empty when nothing is startable.
func (r *Resolver) Calculate() (criticalPath []string, nextAvailable string) {
	items := r.tree.AllWorkItems()
	ranked := make([]*domain.Task, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return r.Score(ranked[i]) > r.Score(ranked[j])
	})
	criticalPath = make([]string, len(ranked))
	for i, t := range ranked {
		criticalPath[i] = t.ID
	}

	if avail := r.FindAllAvailable(); len(avail) > 0 {
		nextAvailable = avail[0]
	}
	return criticalPath, nextAvailable
}

// PrioritizeTaskIDs re-sorts an arbitrary id subset for surfacing order:
// type rank, then priority rank, then critical-path membership (on-path
// ids first, earlier positions first), then original input order. Ids
// absent from the tree sort by their id pattern alone with the weakest
// priority.
func (r *Resolver) PrioritizeTaskIDs(ids []string, criticalPath []string) []string {
	pathPos := make(map[string]int, len(criticalPath))
	for i, id := range criticalPath {
		if _, ok := pathPos[id]; !ok {
			pathPos[id] = i
		}
	}

	out := make([]string, len(ids))
	copy(out, ids)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if ar, br := r.idTypeRank(a), r.idTypeRank(b); ar != br {
			return ar < br
		}
		if ar, br := r.idPriorityRank(a), r.idPriorityRank(b); ar != br {
			return ar < br
		}
		ap, aOn := pathPos[a]
		bp, bOn := pathPos[b]
		if aOn != bOn {
			return aOn
		}
		if aOn && bOn {
			return ap < bp
		}
		return false
	})
	return out
}

func (r *Resolver) idTypeRank(id string) int {
	if t, ok := r.ix.Task(id); ok {
		return t.TypeRank()
	}
	switch {
	case treeid.IsBugID(id):
		return 0
	case treeid.IsIdeaID(id):
		return 2
	default:
		return 1
	}
}

func (r *Resolver) idPriorityRank(id string) int {
	if t, ok := r.ix.Task(id); ok {
		return t.Priority.Rank()
	}
	return constants.Priority("").Rank()
}
