// Package checker validates a loaded backlog tree and reports findings.
//
// Every check runs unconditionally and appends findings; the checker
// never stops early and never returns an error. Callers decide policy
// over the findings list (strict mode fails on warnings, default mode
// on errors only).
package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/domain"
	"github.com/mrz1836/roadmap/internal/treeid"
)

// Level classifies a finding.
type Level string

// Finding levels.
const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Finding is a single validation result.
type Finding struct {
	// Level is error or warning.
	Level Level `json:"level" yaml:"level"`

	// Code is the machine-readable check identifier.
	Code string `json:"code" yaml:"code"`

	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`

	// Location names the entity or file the finding applies to.
	Location string `json:"location" yaml:"location"`
}

// Result is the outcome of a full check run.
type Result struct {
	// Findings in check order.
	Findings []Finding `json:"findings" yaml:"findings"`

	// OK is true when no error-level findings exist. Warnings do not
	// affect it; strict callers apply their own policy.
	OK bool `json:"ok" yaml:"ok"`
}

// ErrorCount returns the number of error-level findings.
func (r *Result) ErrorCount() int {
	n := 0
	for _, f := range r.Findings {
		if f.Level == LevelError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-level findings.
func (r *Result) WarningCount() int {
	return len(r.Findings) - r.ErrorCount()
}

// Options configures a check run.
type Options struct {
	// Root is the data directory; presence checks join it with the
	// stored relative paths.
	Root string

	// Exists probes a path on disk. Defaults to an os.Stat probe.
	Exists func(path string) bool

	// ContextTaskIDs and SessionTaskIDs are the task ids referenced by
	// the runtime snapshot files, when those files exist. Stale
	// references produce warnings, not errors.
	ContextTaskIDs []string
	SessionTaskIDs []string
}

// Checker runs all consistency checks over one tree.
type Checker struct {
	tree *domain.Tree
	ix   *domain.Index
	opts Options

	findings []Finding
}

// New creates a Checker for the given tree.
func New(tree *domain.Tree, opts Options) *Checker {
	if opts.Exists == nil {
		opts.Exists = func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		}
	}
	return &Checker{
		tree: tree,
		ix:   domain.NewIndex(tree),
		opts: opts,
	}
}

// Check runs every check and returns the accumulated findings.
func Check(tree *domain.Tree, opts Options) *Result {
	c := New(tree, opts)
	c.checkPresence()
	c.checkIdentifierFormats()
	c.checkUniqueness()
	c.checkDependencies()
	c.checkEstimates()
	c.checkCycles()
	c.checkRuntimeReferences()
	c.checkPlaceholders()

	res := &Result{Findings: c.findings}
	res.OK = res.ErrorCount() == 0
	return res
}

func (c *Checker) add(level Level, code, location, format string, args ...any) {
	c.findings = append(c.findings, Finding{
		Level:    level,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	})
}

// checkPresence verifies every container has its index file and every
// work item its backing file on disk.
func (c *Checker) checkPresence() {
	indexAt := func(dir string) string {
		return filepath.Join(c.opts.Root, filepath.FromSlash(dir), constants.IndexFileName)
	}
	for _, p := range c.tree.Phases {
		if p.Path == "" || !c.opts.Exists(indexAt(p.Path)) {
			c.add(LevelError, "missing_phase_index", p.ID, "phase %s has no index file on disk", p.ID)
		}
		for _, m := range p.Milestones {
			if m.Path == "" || !c.opts.Exists(indexAt(m.Path)) {
				c.add(LevelError, "missing_milestone_index", m.ID, "milestone %s has no index file on disk", m.ID)
			}
			for _, e := range m.Epics {
				if e.Path == "" || !c.opts.Exists(indexAt(e.Path)) {
					c.add(LevelError, "missing_epic_index", e.ID, "epic %s has no index file on disk", e.ID)
				}
			}
		}
	}
	for _, t := range c.tree.AllWorkItems() {
		if t.File == "" || !c.opts.Exists(filepath.Join(c.opts.Root, filepath.FromSlash(t.File))) {
			c.add(LevelError, "missing_task_file", t.ID, "work item %s has no backing file on disk", t.ID)
		}
	}
}

// checkIdentifierFormats verifies each id against its level's exact
// grammar.
func (c *Checker) checkIdentifierFormats() {
	for _, p := range c.tree.Phases {
		if !treeid.ValidPhaseID(p.ID) {
			c.add(LevelError, "invalid_id", p.ID, "phase id %q does not match P<n>", p.ID)
		}
		for _, m := range p.Milestones {
			if !treeid.ValidMilestoneID(m.ID) {
				c.add(LevelError, "invalid_id", m.ID, "milestone id %q does not match P<n>.M<n>", m.ID)
			}
			for _, e := range m.Epics {
				if !treeid.ValidEpicID(e.ID) {
					c.add(LevelError, "invalid_id", e.ID, "epic id %q does not match P<n>.M<n>.E<n>", e.ID)
				}
				for _, t := range e.Tasks {
					if !treeid.ValidTaskID(t.ID) {
						c.add(LevelError, "invalid_id", t.ID, "task id %q does not match P<n>.M<n>.E<n>.T<n>", t.ID)
					}
				}
			}
		}
	}
	for _, b := range c.tree.Bugs {
		if !treeid.IsBugID(b.ID) {
			c.add(LevelError, "invalid_id", b.ID, "bug id %q does not match B<n>", b.ID)
		}
	}
	for _, i := range c.tree.Ideas {
		if !treeid.IsIdeaID(i.ID) {
			c.add(LevelError, "invalid_id", i.ID, "idea id %q does not match I<n>", i.ID)
		}
	}
}

// checkUniqueness reports duplicate ids at any level.
func (c *Checker) checkUniqueness() {
	seen := map[string]int{}
	var order []string
	note := func(id string) {
		if seen[id] == 0 {
			order = append(order, id)
		}
		seen[id]++
	}
	for _, p := range c.tree.Phases {
		note(p.ID)
		for _, m := range p.Milestones {
			note(m.ID)
			for _, e := range m.Epics {
				note(e.ID)
				for _, t := range e.Tasks {
					note(t.ID)
				}
			}
		}
	}
	for _, t := range c.tree.Bugs {
		note(t.ID)
	}
	for _, t := range c.tree.Ideas {
		note(t.ID)
	}

	for _, id := range order {
		if n := seen[id]; n > 1 {
			c.add(LevelError, "duplicate_id", id, "id %s appears %d times", id, n)
		}
	}
}

// checkDependencies verifies every dependsOn entry resolves, after
// scope-qualification, to an existing entity of the expected kind, and
// that nothing depends on itself.
func (c *Checker) checkDependencies() {
	for _, p := range c.tree.Phases {
		for _, dep := range p.DependsOn {
			if dep == p.ID {
				c.add(LevelError, "self_dependency", p.ID, "phase %s depends on itself", p.ID)
				continue
			}
			if _, ok := c.ix.Phase(dep); !ok {
				c.add(LevelError, "unresolved_dependency", p.ID, "phase %s depends on unknown phase %q", p.ID, dep)
			}
		}
		for _, m := range p.Milestones {
			for _, dep := range m.DependsOn {
				resolved := c.qualifyMilestoneDep(p.ID, dep)
				if resolved == m.ID {
					c.add(LevelError, "self_dependency", m.ID, "milestone %s depends on itself", m.ID)
					continue
				}
				if _, ok := c.ix.Milestone(resolved); !ok {
					c.add(LevelError, "unresolved_dependency", m.ID, "milestone %s depends on unknown milestone %q", m.ID, dep)
				}
			}
			for _, e := range m.Epics {
				for _, dep := range e.DependsOn {
					resolved := c.qualifyEpicDep(m.ID, dep)
					if resolved == e.ID {
						c.add(LevelError, "self_dependency", e.ID, "epic %s depends on itself", e.ID)
						continue
					}
					if _, ok := c.ix.Epic(resolved); !ok {
						c.add(LevelError, "unresolved_dependency", e.ID, "epic %s depends on unknown epic %q", e.ID, dep)
					}
				}
				for _, t := range e.Tasks {
					c.checkTaskDependencies(t)
				}
			}
		}
	}
	for _, b := range c.tree.Bugs {
		c.checkTaskDependencies(b)
	}
	for _, i := range c.tree.Ideas {
		c.checkTaskDependencies(i)
	}
}

func (c *Checker) checkTaskDependencies(t *domain.Task) {
	for _, dep := range t.DependsOn {
		taskID, epicID := c.qualifyTaskDep(t, dep)
		if taskID == t.ID {
			c.add(LevelError, "self_dependency_task", t.ID, "task %s depends on itself", t.ID)
			continue
		}
		if taskID != "" {
			continue
		}
		if epicID != "" {
			continue
		}
		c.add(LevelError, "unresolved_dependency", t.ID, "task %s depends on unresolvable id %q", t.ID, dep)
	}
}

// qualifyMilestoneDep expands a bare M<n> against the owning phase.
func (c *Checker) qualifyMilestoneDep(phaseID, dep string) string {
	if treeid.BareSegment(treeid.KindMilestone, dep) {
		return phaseID + "." + dep
	}
	return dep
}

// qualifyEpicDep expands a bare E<n> against the owning milestone.
func (c *Checker) qualifyEpicDep(milestoneID, dep string) string {
	if treeid.BareSegment(treeid.KindEpic, dep) {
		return milestoneID + "." + dep
	}
	return dep
}

// qualifyTaskDep resolves a task-level dependency entry. Exactly one of
// the returned ids is non-empty on success: the resolved task id, or the
// resolved epic id when the entry names an epic. Both are empty when
// nothing resolves.
func (c *Checker) qualifyTaskDep(owner *domain.Task, dep string) (taskID, epicID string) {
	if _, ok := c.ix.Task(dep); ok {
		return dep, ""
	}
	if treeid.BareSegment(treeid.KindTask, dep) && owner.EpicID != "" {
		qualified := owner.EpicID + "." + dep
		if _, ok := c.ix.Task(qualified); ok {
			return qualified, ""
		}
	}
	if _, ok := c.ix.Epic(dep); ok {
		return "", dep
	}
	if treeid.BareSegment(treeid.KindEpic, dep) && owner.MilestoneID != "" {
		qualified := owner.MilestoneID + "." + dep
		if _, ok := c.ix.Epic(qualified); ok {
			return "", qualified
		}
	}
	return "", ""
}

// checkEstimates warns on zero-estimate tasks and bugs.
func (c *Checker) checkEstimates() {
	for _, t := range c.tree.AllTasks() {
		if t.EstimateHours == 0 {
			c.add(LevelWarning, "zero_estimate", t.ID, "task %s has no estimate", t.ID)
		}
	}
	for _, b := range c.tree.Bugs {
		if b.EstimateHours == 0 {
			c.add(LevelWarning, "zero_estimate", b.ID, "bug %s has no estimate", b.ID)
		}
	}
}

// checkRuntimeReferences warns when the context or sessions snapshot
// points at a task id absent from the tree. Snapshots are caches, not
// source of truth, so these are warnings.
func (c *Checker) checkRuntimeReferences() {
	for _, id := range c.opts.ContextTaskIDs {
		if _, ok := c.ix.Task(id); !ok {
			c.add(LevelWarning, "stale_context_reference", constants.ContextFileName,
				"context snapshot references unknown task %s", id)
		}
	}
	for _, id := range c.opts.SessionTaskIDs {
		if _, ok := c.ix.Task(id); !ok {
			c.add(LevelWarning, "stale_session_reference", constants.SessionsFileName,
				"sessions snapshot references unknown task %s", id)
		}
	}
}

// checkPlaceholders warns when a task body still carries template
// markers the author never replaced.
func (c *Checker) checkPlaceholders() {
	markers := constants.PlaceholderMarkers()
	for _, t := range c.tree.AllWorkItems() {
		if t.Body == "" {
			continue
		}
		for _, marker := range markers {
			if strings.Contains(t.Body, marker) {
				c.add(LevelWarning, "placeholder_content", t.ID,
					"work item %s still contains template placeholder %q", t.ID, marker)
				break
			}
		}
	}
}
