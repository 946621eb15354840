package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/ctxutil"
	"github.com/mrz1836/roadmap/internal/domain"
	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

// rootIndex is the top-level index.yaml shape.
type rootIndex struct {
	Project       string          `yaml:"project"`
	Phases        []*domain.Phase `yaml:"phases"`
	CriticalPath  []string        `yaml:"critical_path,omitempty"`
	NextAvailable string          `yaml:"next_available,omitempty"`
	Stats         *Stats          `yaml:"stats,omitempty"`
}

// Stats summarizes the backlog for the root index.
type Stats struct {
	Total      int `yaml:"total"`
	Done       int `yaml:"done"`
	InProgress int `yaml:"in_progress"`
	Pending    int `yaml:"pending"`
}

// phaseIndex is a phase directory's index.yaml shape.
type phaseIndex struct {
	Milestones []*domain.Milestone `yaml:"milestones"`
}

// milestoneIndex is a milestone directory's index.yaml shape.
type milestoneIndex struct {
	Epics []*domain.Epic `yaml:"epics"`
}

// epicIndex is an epic directory's index.yaml shape. Entries may omit
// the full id; the backing file is then the identity.
type epicIndex struct {
	Tasks []*taskEntry `yaml:"tasks"`
}

// flatIndex is the bugs/ and ideas/ index.yaml shape; exactly one of
// the two lists is populated.
type flatIndex struct {
	Bugs  []*taskEntry `yaml:"bugs,omitempty"`
	Ideas []*taskEntry `yaml:"ideas,omitempty"`
}

// taskEntry is one line of an epic or flat index: a pointer to a task
// file plus enough metadata to survive a missing file.
type taskEntry struct {
	ID     string `yaml:"id,omitempty"`
	File   string `yaml:"file"`
	Title  string `yaml:"title,omitempty"`
	Status string `yaml:"status,omitempty"`
}

// Load reads the whole tree from disk. Task files are read with bounded
// parallelism; a missing or malformed task file degrades to a warning
// and the task keeps its index-entry metadata, so the consistency
// checker can still run over the tree.
func (s *Store) Load(ctx context.Context) (*domain.Tree, []string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, nil, err
	}

	var root rootIndex
	if err := s.readYAML(filepath.Join(s.root, constants.IndexFileName), &root); err != nil {
		return nil, nil, err
	}

	tree := &domain.Tree{Project: root.Project, Phases: root.Phases}
	var warnings []string

	for _, p := range tree.Phases {
		var pi phaseIndex
		if err := s.readYAML(s.path(path.Join(p.Path, constants.IndexFileName)), &pi); err != nil {
			warnings = append(warnings, fmt.Sprintf("phase %s: %v", p.ID, err))
			continue
		}
		p.Milestones = pi.Milestones
		for _, m := range p.Milestones {
			var mi milestoneIndex
			if err := s.readYAML(s.path(path.Join(m.Path, constants.IndexFileName)), &mi); err != nil {
				warnings = append(warnings, fmt.Sprintf("milestone %s: %v", m.ID, err))
				continue
			}
			m.Epics = mi.Epics
			for _, e := range m.Epics {
				var ei epicIndex
				if err := s.readYAML(s.path(path.Join(e.Path, constants.IndexFileName)), &ei); err != nil {
					warnings = append(warnings, fmt.Sprintf("epic %s: %v", e.ID, err))
					continue
				}
				e.Tasks = entriesToTasks(ei.Tasks, e)
			}
		}
	}

	bugs, bugWarnings := s.loadFlat(constants.BugsDirName)
	ideas, ideaWarnings := s.loadFlat(constants.IdeasDirName)
	tree.Bugs = bugs
	tree.Ideas = ideas
	warnings = append(warnings, bugWarnings...)
	warnings = append(warnings, ideaWarnings...)

	fileWarnings, err := s.loadTaskFiles(ctx, tree)
	if err != nil {
		return nil, nil, err
	}
	warnings = append(warnings, fileWarnings...)

	return tree, warnings, nil
}

// entriesToTasks converts index entries into task skeletons with
// back-references to their containers. Frontmatter loaded later
// overrides these fields.
func entriesToTasks(entries []*taskEntry, e *domain.Epic) []*domain.Task {
	milestoneID, phaseID := "", ""
	if id, err := parseContainers(e.ID); err == nil {
		milestoneID, phaseID = id[0], id[1]
	}
	tasks := make([]*domain.Task, 0, len(entries))
	for _, entry := range entries {
		tasks = append(tasks, &domain.Task{
			ID:          entry.ID,
			Title:       entry.Title,
			File:        entry.File,
			Status:      constants.NormalizeTaskStatus(entry.Status),
			EpicID:      e.ID,
			MilestoneID: milestoneID,
			PhaseID:     phaseID,
		})
	}
	return tasks
}

// parseContainers returns [milestoneID, phaseID] for an epic id.
func parseContainers(epicID string) ([2]string, error) {
	last := -1
	secondLast := -1
	for i, c := range epicID {
		if c == '.' {
			secondLast = last
			last = i
		}
	}
	if last < 0 || secondLast < 0 {
		return [2]string{}, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidFormat, "epic id %q", epicID)
	}
	return [2]string{epicID[:last], epicID[:secondLast]}, nil
}

// loadFlat reads the bugs/ or ideas/ index into task skeletons.
func (s *Store) loadFlat(dir string) ([]*domain.Task, []string) {
	var fi flatIndex
	indexPath := filepath.Join(s.root, dir, constants.IndexFileName)
	if err := s.readYAML(indexPath, &fi); err != nil {
		if errors.Is(err, roadmaperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, []string{fmt.Sprintf("%s: %v", dir, err)}
	}
	entries := fi.Bugs
	if dir == constants.IdeasDirName {
		entries = fi.Ideas
	}
	tasks := make([]*domain.Task, 0, len(entries))
	for _, entry := range entries {
		file := entry.File
		if file != "" && path.Dir(file) == "." {
			file = path.Join(dir, file)
		}
		tasks = append(tasks, &domain.Task{
			ID:     entry.ID,
			Title:  entry.Title,
			File:   file,
			Status: constants.NormalizeTaskStatus(entry.Status),
		})
	}
	return tasks, nil
}

// loadTaskFiles reads every referenced task file with bounded
// parallelism. Each goroutine owns exactly one task, so merging needs
// no locking; only the warnings slice is shared.
func (s *Store) loadTaskFiles(ctx context.Context, tree *domain.Tree) ([]string, error) {
	items := tree.AllWorkItems()

	var mu sync.Mutex
	var warnings []string
	warn := func(format string, args ...any) {
		mu.Lock()
		warnings = append(warnings, fmt.Sprintf(format, args...))
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.MaxLoadConcurrency)
	for _, t := range items {
		g.Go(func() error {
			if err := ctxutil.Canceled(ctx); err != nil {
				return err
			}
			if t.File == "" {
				warn("work item %s has no file reference", t.ID)
				return nil
			}
			data, err := os.ReadFile(s.path(t.File))
			if err != nil {
				warn("work item %s: %v", t.ID, err)
				return nil
			}
			fm, body, err := parseTaskFile(data)
			if err != nil {
				warn("work item %s: %v", t.ID, err)
				return nil
			}
			applyFrontmatter(t, fm, body)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(warnings)
	return warnings, nil
}

// readYAML reads and decodes one YAML file.
func (s *Store) readYAML(abs string, out any) error {
	data, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return roadmaperrors.Wrapf(roadmaperrors.ErrNotFound, "%s", abs)
		}
		return roadmaperrors.Wrapf(err, "failed to read %s", abs)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return roadmaperrors.Wrapf(roadmaperrors.ErrMalformedIndex, "%s: %v", abs, err)
	}
	return nil
}

// writeYAML encodes and writes one YAML file, creating the parent
// directory as needed.
func (s *Store) writeYAML(abs string, in any) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return roadmaperrors.Wrapf(err, "failed to marshal %s", abs)
	}
	if err := os.MkdirAll(filepath.Dir(abs), dirPerm); err != nil {
		return roadmaperrors.Wrapf(err, "failed to create directory for %s", abs)
	}
	if err := os.WriteFile(abs, data, filePerm); err != nil {
		return roadmaperrors.Wrapf(err, "failed to write %s", abs)
	}
	return nil
}
