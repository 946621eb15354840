// Package mover relocates a backlog item one level up the hierarchy
// chain: task to epic, epic to milestone, or milestone to phase. The
// move renumbers the item under its destination, physically relocates
// the file or directory, updates both container indices and cascades an
// identifier remap through every file in the tree.
//
// The sequence is best effort with no multi-file atomicity: a failure
// after the physical relocation leaves the tree with the file moved but
// index bookkeeping out of sync. Callers must not assume rollback.
package mover

import (
	"context"
	"path"
	"strings"

	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/domain"
	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
	"github.com/mrz1836/roadmap/internal/store"
	"github.com/mrz1836/roadmap/internal/treeid"
)

// Result describes a completed move.
type Result struct {
	// SourceID is the moved item's original identifier.
	SourceID string `json:"source_id"`

	// DestID is the destination container's identifier.
	DestID string `json:"dest_id"`

	// NewID is the item's identifier under the destination.
	NewID string `json:"new_id"`

	// RemappedIDs maps every old identifier rewritten by the move,
	// the item itself and all of its descendants, to its new value.
	RemappedIDs map[string]string `json:"remapped_ids"`
}

// Mover performs moves over a loaded tree backed by a store.
type Mover struct {
	store *store.Store
	tree  *domain.Tree
}

// New creates a Mover for the given store and tree.
func New(st *store.Store, tree *domain.Tree) *Mover {
	return &Mover{store: st, tree: tree}
}

// Move relocates sourceID under destID. Exactly one level at a time:
// the destination kind must be the source kind's parent kind.
func (m *Mover) Move(ctx context.Context, sourceID, destID string) (*Result, error) {
	src, err := treeid.ParsePath(sourceID)
	if err != nil {
		return nil, err
	}
	dst, err := treeid.ParsePath(destID)
	if err != nil {
		return nil, err
	}
	if src.Depth() != dst.Depth()+1 || src.Depth() < 2 {
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidMove,
			"cannot move %s (%s) into %s (%s)", sourceID, src.Kind(), destID, dst.Kind())
	}

	switch src.Kind() {
	case treeid.KindTask:
		return m.moveTask(ctx, sourceID, destID)
	case treeid.KindEpic:
		return m.moveEpic(ctx, sourceID, destID)
	case treeid.KindMilestone:
		return m.moveMilestone(ctx, sourceID, destID)
	default:
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidMove, "unsupported source kind %s", src.Kind())
	}
}

func (m *Mover) moveTask(ctx context.Context, sourceID, destID string) (*Result, error) {
	ix := domain.NewIndex(m.tree)
	task, ok := ix.Task(sourceID)
	if !ok {
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrNotFound, "task %s", sourceID)
	}
	srcEpic, ok := ix.EpicOf(sourceID)
	if !ok {
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrNotFound, "owning epic of %s", sourceID)
	}
	destEpic, ok := ix.Epic(destID)
	if !ok {
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrNotFound, "epic %s", destID)
	}
	if srcEpic.ID == destEpic.ID {
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidMove, "%s is already in %s", sourceID, destID)
	}

	next := nextTaskNumber(destEpic)
	newLeaf := treeid.FormatSegment(treeid.KindTask, next)
	newID := destID + "." + newLeaf
	newFile := path.Join(destEpic.Path, taskFileName(newLeaf, task.Title))

	oldFile := task.File
	if err := m.store.MoveEntity(oldFile, newFile); err != nil {
		return nil, err
	}

	removeTask(srcEpic, task, oldFile)
	milestoneID, phaseID := containerIDs(destEpic.ID)
	task.ID = newID
	task.File = newFile
	task.EpicID = destEpic.ID
	task.MilestoneID = milestoneID
	task.PhaseID = phaseID
	if err := destEpic.AddTask(task); err != nil {
		return nil, err
	}

	if err := m.store.SaveEpicIndex(srcEpic); err != nil {
		return nil, err
	}
	if err := m.store.SaveEpicIndex(destEpic); err != nil {
		return nil, err
	}

	mapping := map[string]string{sourceID: newID}
	if err := m.store.ApplyRemap(ctx, m.tree, mapping); err != nil {
		return nil, err
	}
	return &Result{SourceID: sourceID, DestID: destID, NewID: newID, RemappedIDs: mapping}, nil
}

func (m *Mover) moveEpic(ctx context.Context, sourceID, destID string) (*Result, error) {
	ix := domain.NewIndex(m.tree)
	epic, ok := ix.Epic(sourceID)
	if !ok {
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrNotFound, "epic %s", sourceID)
	}
	srcMilestone, ok := ix.Milestone(parentID(sourceID))
	if !ok {
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrNotFound, "owning milestone of %s", sourceID)
	}
	destMilestone, ok := ix.Milestone(destID)
	if !ok {
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrNotFound, "milestone %s", destID)
	}
	if srcMilestone.ID == destMilestone.ID {
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidMove, "%s is already in %s", sourceID, destID)
	}

	next := nextChildNumber(epicLeaves(destMilestone))
	newLeaf := treeid.FormatSegment(treeid.KindEpic, next)
	newID := destID + "." + newLeaf
	newPath := path.Join(destMilestone.Path, dirName(newLeaf, epic.Name))

	oldID, oldPath := epic.ID, epic.Path
	if err := m.store.MoveEntity(oldPath, newPath); err != nil {
		return nil, err
	}

	removeEpic(srcMilestone, epic, oldPath)
	mapping := map[string]string{oldID: newID}
	epic.ID = newID
	epic.Path = newPath
	milestoneID, phaseID := destMilestone.ID, parentID(destMilestone.ID)
	for _, t := range epic.Tasks {
		oldTaskID := t.ID
		t.ID = newID + strings.TrimPrefix(oldTaskID, oldID)
		t.File = newPath + strings.TrimPrefix(t.File, oldPath)
		t.EpicID = newID
		t.MilestoneID = milestoneID
		t.PhaseID = phaseID
		mapping[oldTaskID] = t.ID
	}
	if err := destMilestone.AddEpic(epic); err != nil {
		return nil, err
	}

	if err := m.store.SaveMilestoneIndex(srcMilestone); err != nil {
		return nil, err
	}
	if err := m.store.SaveMilestoneIndex(destMilestone); err != nil {
		return nil, err
	}
	if err := m.store.SaveEpicIndex(epic); err != nil {
		return nil, err
	}

	if err := m.store.ApplyRemap(ctx, m.tree, mapping); err != nil {
		return nil, err
	}
	return &Result{SourceID: sourceID, DestID: destID, NewID: newID, RemappedIDs: mapping}, nil
}

func (m *Mover) moveMilestone(ctx context.Context, sourceID, destID string) (*Result, error) {
	ix := domain.NewIndex(m.tree)
	milestone, ok := ix.Milestone(sourceID)
	if !ok {
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrNotFound, "milestone %s", sourceID)
	}
	srcPhase, ok := ix.Phase(parentID(sourceID))
	if !ok {
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrNotFound, "owning phase of %s", sourceID)
	}
	destPhase, ok := ix.Phase(destID)
	if !ok {
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrNotFound, "phase %s", destID)
	}
	if srcPhase.ID == destPhase.ID {
		return nil, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidMove, "%s is already in %s", sourceID, destID)
	}

	next := nextChildNumber(milestoneLeaves(destPhase))
	newLeaf := treeid.FormatSegment(treeid.KindMilestone, next)
	newID := destID + "." + newLeaf
	newPath := path.Join(destPhase.Path, dirName(newLeaf, milestone.Name))

	oldID, oldPath := milestone.ID, milestone.Path
	if err := m.store.MoveEntity(oldPath, newPath); err != nil {
		return nil, err
	}

	removeMilestone(srcPhase, milestone, oldPath)
	mapping := map[string]string{oldID: newID}
	milestone.ID = newID
	milestone.Path = newPath
	for _, e := range milestone.Epics {
		oldEpicID := e.ID
		e.ID = newID + strings.TrimPrefix(oldEpicID, oldID)
		e.Path = newPath + strings.TrimPrefix(e.Path, oldPath)
		mapping[oldEpicID] = e.ID
		for _, t := range e.Tasks {
			oldTaskID := t.ID
			t.ID = newID + strings.TrimPrefix(oldTaskID, oldID)
			t.File = newPath + strings.TrimPrefix(t.File, oldPath)
			t.EpicID = e.ID
			t.MilestoneID = newID
			t.PhaseID = destPhase.ID
			mapping[oldTaskID] = t.ID
		}
	}
	if err := destPhase.AddMilestone(milestone); err != nil {
		return nil, err
	}

	if err := m.store.SavePhaseIndex(srcPhase); err != nil {
		return nil, err
	}
	if err := m.store.SavePhaseIndex(destPhase); err != nil {
		return nil, err
	}
	if err := m.store.SaveMilestoneIndex(milestone); err != nil {
		return nil, err
	}
	for _, e := range milestone.Epics {
		if err := m.store.SaveEpicIndex(e); err != nil {
			return nil, err
		}
	}

	if err := m.store.ApplyRemap(ctx, m.tree, mapping); err != nil {
		return nil, err
	}
	return &Result{SourceID: sourceID, DestID: destID, NewID: newID, RemappedIDs: mapping}, nil
}

// taskFileName builds "T###-slug.todo"; the slug is dropped entirely
// when the title yields nothing.
func taskFileName(leaf, title string) string {
	if slug := store.Slugify(title); slug != "" {
		return leaf + "-" + slug + constants.TaskFileExt
	}
	return leaf + constants.TaskFileExt
}

// dirName builds "e2-slug" style directory names for moved containers.
func dirName(leaf, name string) string {
	base := strings.ToLower(leaf)
	if slug := store.Slugify(name); slug != "" {
		return base + "-" + slug
	}
	return base
}

// parentID drops the last id segment.
func parentID(id string) string {
	if i := strings.LastIndex(id, "."); i >= 0 {
		return id[:i]
	}
	return ""
}

// containerIDs returns the milestone and phase ids of an epic id.
func containerIDs(epicID string) (milestoneID, phaseID string) {
	milestoneID = parentID(epicID)
	phaseID = parentID(milestoneID)
	return milestoneID, phaseID
}

func nextTaskNumber(e *domain.Epic) int {
	max := 0
	for _, t := range e.Tasks {
		id, err := treeid.ParsePath(t.ID)
		if err != nil {
			continue
		}
		if n, ok := treeid.SegmentNumber(id.Leaf()); ok && n > max {
			max = n
		}
	}
	return max + 1
}

func epicLeaves(m *domain.Milestone) []string {
	leaves := make([]string, 0, len(m.Epics))
	for _, e := range m.Epics {
		id, err := treeid.ParsePath(e.ID)
		if err != nil {
			continue
		}
		leaves = append(leaves, id.Leaf())
	}
	return leaves
}

func milestoneLeaves(p *domain.Phase) []string {
	leaves := make([]string, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		id, err := treeid.ParsePath(m.ID)
		if err != nil {
			continue
		}
		leaves = append(leaves, id.Leaf())
	}
	return leaves
}

func nextChildNumber(leaves []string) int {
	max := 0
	for _, leaf := range leaves {
		if n, ok := treeid.SegmentNumber(leaf); ok && n > max {
			max = n
		}
	}
	return max + 1
}

// removeTask drops a task from an epic's list. Identity matches by id,
// by leaf-id suffix, or by file path; index entries are allowed to omit
// the full id.
func removeTask(e *domain.Epic, task *domain.Task, file string) {
	leaf := ""
	if id, err := treeid.ParsePath(task.ID); err == nil {
		leaf = id.Leaf()
	}
	kept := e.Tasks[:0]
	for _, t := range e.Tasks {
		if t == task || t.ID == task.ID ||
			(leaf != "" && strings.HasSuffix(t.ID, "."+leaf)) ||
			(file != "" && t.File == file) {
			continue
		}
		kept = append(kept, t)
	}
	e.Tasks = kept
}

func removeEpic(m *domain.Milestone, epic *domain.Epic, epicPath string) {
	kept := m.Epics[:0]
	for _, e := range m.Epics {
		if e == epic || e.ID == epic.ID || (epicPath != "" && e.Path == epicPath) {
			continue
		}
		kept = append(kept, e)
	}
	m.Epics = kept
}

func removeMilestone(p *domain.Phase, milestone *domain.Milestone, msPath string) {
	kept := p.Milestones[:0]
	for _, m := range p.Milestones {
		if m == milestone || m.ID == milestone.ID || (msPath != "" && m.Path == msPath) {
			continue
		}
		kept = append(kept, m)
	}
	p.Milestones = kept
}
