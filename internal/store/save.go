package store

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/ctxutil"
	"github.com/mrz1836/roadmap/internal/domain"
	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

// SaveRootIndex rewrites the top-level index with the current phase
// list, the computed critical path and next-available pointer, and
// fresh stats.
func (s *Store) SaveRootIndex(tree *domain.Tree, criticalPath []string, nextAvailable string) error {
	return s.writeYAML(filepath.Join(s.root, constants.IndexFileName), &rootIndex{
		Project:       tree.Project,
		Phases:        tree.Phases,
		CriticalPath:  criticalPath,
		NextAvailable: nextAvailable,
		Stats:         computeStats(tree),
	})
}

func computeStats(tree *domain.Tree) *Stats {
	st := &Stats{}
	for _, t := range tree.AllWorkItems() {
		st.Total++
		switch t.Status {
		case constants.TaskStatusDone:
			st.Done++
		case constants.TaskStatusInProgress:
			st.InProgress++
		case constants.TaskStatusPending:
			st.Pending++
		}
	}
	return st
}

// SavePhaseIndex rewrites one phase directory's index.
func (s *Store) SavePhaseIndex(p *domain.Phase) error {
	return s.writeYAML(s.path(path.Join(p.Path, constants.IndexFileName)), &phaseIndex{Milestones: p.Milestones})
}

// SaveMilestoneIndex rewrites one milestone directory's index.
func (s *Store) SaveMilestoneIndex(m *domain.Milestone) error {
	return s.writeYAML(s.path(path.Join(m.Path, constants.IndexFileName)), &milestoneIndex{Epics: m.Epics})
}

// SaveEpicIndex rewrites one epic directory's index from the in-memory
// task list.
func (s *Store) SaveEpicIndex(e *domain.Epic) error {
	return s.writeYAML(s.path(path.Join(e.Path, constants.IndexFileName)), &epicIndex{Tasks: tasksToEntries(e.Tasks)})
}

// SaveFlatIndex rewrites the bugs/ or ideas/ index.
func (s *Store) SaveFlatIndex(dir string, tasks []*domain.Task) error {
	fi := &flatIndex{}
	if dir == constants.IdeasDirName {
		fi.Ideas = tasksToEntries(tasks)
	} else {
		fi.Bugs = tasksToEntries(tasks)
	}
	return s.writeYAML(filepath.Join(s.root, dir, constants.IndexFileName), fi)
}

func tasksToEntries(tasks []*domain.Task) []*taskEntry {
	entries := make([]*taskEntry, 0, len(tasks))
	for _, t := range tasks {
		entries = append(entries, &taskEntry{
			ID:     t.ID,
			File:   t.File,
			Title:  t.Title,
			Status: t.Status.String(),
		})
	}
	return entries
}

// SaveTask rewrites a single task file from its in-memory state.
func (s *Store) SaveTask(t *domain.Task) error {
	if t.File == "" {
		return roadmaperrors.Wrapf(roadmaperrors.ErrInvalidFormat, "work item %s has no file reference", t.ID)
	}
	data, err := serializeTaskFile(t)
	if err != nil {
		return err
	}
	abs := s.path(t.File)
	if err := os.MkdirAll(filepath.Dir(abs), dirPerm); err != nil {
		return roadmaperrors.Wrapf(err, "failed to create directory for %s", t.ID)
	}
	if err := os.WriteFile(abs, data, filePerm); err != nil {
		return roadmaperrors.Wrapf(err, "failed to write %s", t.ID)
	}
	return nil
}

// SaveTree writes every index and task file back to disk. Used after
// operations that touch the whole tree; targeted writers cover the
// single-task paths.
func (s *Store) SaveTree(ctx context.Context, tree *domain.Tree, criticalPath []string, nextAvailable string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if err := s.SaveRootIndex(tree, criticalPath, nextAvailable); err != nil {
		return err
	}
	for _, p := range tree.Phases {
		if err := s.SavePhaseIndex(p); err != nil {
			return err
		}
		for _, m := range p.Milestones {
			if err := s.SaveMilestoneIndex(m); err != nil {
				return err
			}
			for _, e := range m.Epics {
				if err := s.SaveEpicIndex(e); err != nil {
					return err
				}
			}
		}
	}
	if err := s.SaveFlatIndex(constants.BugsDirName, tree.Bugs); err != nil {
		return err
	}
	if err := s.SaveFlatIndex(constants.IdeasDirName, tree.Ideas); err != nil {
		return err
	}
	for _, t := range tree.AllWorkItems() {
		if err := ctxutil.Canceled(ctx); err != nil {
			return err
		}
		if t.File == "" {
			continue
		}
		if err := s.SaveTask(t); err != nil {
			return err
		}
	}
	return nil
}
