package checker

import "strings"

// checkCycles builds the dependency graph over every work item id and
// reports each cycle found.
//
// Edges point from a work item to the items it depends on: resolved
// task-level dependencies, epic-level dependencies expanded to one edge
// per member task of the depended-upon epic, and implicit-predecessor
// edges for dependency-free tasks. Bug dependencies participate like
// any other edge.
func (c *Checker) checkCycles() {
	adj := c.buildDependencyGraph()

	// Iterative DFS with an explicit frame stack and an on-stack set.
	// Hitting a node already on the stack closes a cycle; the slice of
	// the stack from that node onward is the cycle itself.
	const (
		white = 0 // unvisited
		gray  = 1 // on the current DFS stack
		black = 2 // fully explored
	)
	color := make(map[string]int, len(adj))

	type frame struct {
		id   string
		next int
	}

	var roots []string
	for _, t := range c.tree.AllWorkItems() {
		roots = append(roots, t.ID)
	}

	for _, root := range roots {
		if color[root] != white {
			continue
		}
		stack := []frame{{id: root}}
		color[root] = gray
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := adj[top.id]
			if top.next >= len(deps) {
				color[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}
			child := deps[top.next]
			top.next++
			switch color[child] {
			case white:
				color[child] = gray
				stack = append(stack, frame{id: child})
			case gray:
				start := 0
				for i := range stack {
					if stack[i].id == child {
						start = i
						break
					}
				}
				ids := make([]string, 0, len(stack)-start+1)
				for _, f := range stack[start:] {
					ids = append(ids, f.id)
				}
				ids = append(ids, child)
				c.reportCycle(ids, child)
			}
		}
	}
}

// reportCycle emits a single finding naming the full cycle: the stack
// slice from the repeated node onward, closed by the node itself.
func (c *Checker) reportCycle(ids []string, repeated string) {
	c.add(LevelError, "task_dependency_cycle", repeated,
		"dependency cycle: %s", strings.Join(ids, " -> "))
}

// buildDependencyGraph returns the adjacency list used by cycle
// detection. Unresolvable dependency entries contribute no edge; the
// resolvability check reports them separately.
func (c *Checker) buildDependencyGraph() map[string][]string {
	adj := make(map[string][]string)
	addEdge := func(from, to string) {
		// Self-dependencies are reported at task level, not as
		// one-node cycles.
		if from == to {
			return
		}
		adj[from] = append(adj[from], to)
	}

	for _, t := range c.tree.AllWorkItems() {
		if len(t.DependsOn) == 0 {
			if pred, ok := c.ix.Predecessor(t.ID); ok {
				addEdge(t.ID, pred.ID)
			}
			continue
		}
		for _, dep := range t.DependsOn {
			taskID, epicID := c.qualifyTaskDep(t, dep)
			switch {
			case taskID != "":
				addEdge(t.ID, taskID)
			case epicID != "":
				if epic, ok := c.ix.Epic(epicID); ok {
					for _, member := range epic.Tasks {
						addEdge(t.ID, member.ID)
					}
				}
			}
		}
	}
	return adj
}
