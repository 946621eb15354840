package resolver

import (
	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/domain"
)

// FindSiblingTasks collects up to count tasks from the primary's epic,
// starting just after the primary's position, that could be worked in
// the same batch. Candidates must be pending and unclaimed, and their
// dependencies (including the implicit predecessor rule) are evaluated
// as if the primary and every task already collected were done. The
// overlay is a provisional same-epic assumption, not persisted state; it
// lets one grab claim a short run of sequentially dependent tasks.
func (r *Resolver) FindSiblingTasks(primary *domain.Task, count int) []*domain.Task {
	if count <= 0 {
		return nil
	}
	epic, ok := r.ix.EpicOf(primary.ID)
	if !ok {
		return nil
	}

	start := -1
	for i, t := range epic.Tasks {
		if t.ID == primary.ID {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	assumedDone := map[string]bool{primary.ID: true}
	var out []*domain.Task
	for _, t := range epic.Tasks[start+1:] {
		if len(out) >= count {
			break
		}
		if t.Status != constants.TaskStatusPending || t.IsClaimed() {
			continue
		}
		if !r.dependenciesSatisfied(t, assumedDone) {
			continue
		}
		if !r.containerDependenciesComplete(t) {
			continue
		}
		out = append(out, t)
		assumedDone[t.ID] = true
	}
	return out
}

// FindAdditionalBugs selects up to count available bugs, other than the
// primary, that are mutually independent: no candidate may have a
// transitive dependency relationship, in either direction, with the
// primary or with any bug already selected. Returns nil when the primary
// is not a bug.
func (r *Resolver) FindAdditionalBugs(primary *domain.Task, count int) []string {
	if count <= 0 || !primary.IsBug() {
		return nil
	}

	selected := []*domain.Task{primary}
	var out []string
	for _, b := range r.tree.Bugs {
		if len(out) >= count {
			break
		}
		if b.ID == primary.ID || !r.IsAvailable(b) {
			continue
		}
		if r.relatedToAny(b, selected) {
			continue
		}
		out = append(out, b.ID)
		selected = append(selected, b)
	}
	return out
}

func (r *Resolver) relatedToAny(candidate *domain.Task, batch []*domain.Task) bool {
	for _, other := range batch {
		if r.reaches(candidate, other.ID) || r.reaches(other, candidate.ID) {
			return true
		}
	}
	return false
}

// reaches reports whether target is transitively reachable from start by
// following dependsOn edges. Traversal is iterative with a visited set
// and the standard depth bound, so dependency cycles cannot loop it.
func (r *Resolver) reaches(start *domain.Task, target string) bool {
	type node struct {
		task  *domain.Task
		depth int
	}
	visited := map[string]bool{start.ID: true}
	stack := []node{{task: start, depth: 0}}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.depth >= constants.MaxDependencyDepth {
			continue
		}
		for _, dep := range n.task.DependsOn {
			next, ok := r.resolveTaskDep(n.task, dep)
			if !ok {
				continue
			}
			if next.ID == target {
				return true
			}
			if visited[next.ID] {
				continue
			}
			visited[next.ID] = true
			stack = append(stack, node{task: next, depth: n.depth + 1})
		}
	}
	return false
}
