package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/roadmap/internal/config"
	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/domain"
	"github.com/mrz1836/roadmap/internal/errors"
	"github.com/mrz1836/roadmap/internal/resolver"
	"github.com/mrz1836/roadmap/internal/store"
	"github.com/mrz1836/roadmap/internal/tui"
)

// project bundles everything a command needs to operate on a backlog:
// the discovered store, the loaded tree, configuration and a resolver.
type project struct {
	store *store.Store
	tree  *domain.Tree
	cfg   *config.Config
	res   *resolver.Resolver
	out   tui.Output
}

// openProject discovers the data directory upward from the working
// directory, loads the full tree and wires up a resolver. Load warnings
// (missing or malformed files) are printed but never fatal.
func openProject(cmd *cobra.Command, flags *GlobalFlags) (*project, error) {
	out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	st, err := store.Discover(cwd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, err
	}

	tree, warnings, err := st.Load(cmd.Context())
	if err != nil {
		return nil, err
	}
	if !flags.Quiet {
		for _, w := range warnings {
			out.Warning(w)
		}
	}

	return &project{
		store: st,
		tree:  tree,
		cfg:   cfg,
		res:   resolver.New(tree, cfg.Scoring.ComplexityMultipliers()),
		out:   out,
	}, nil
}

// findWorkItem locates a task, bug or idea by its full identifier.
func (p *project) findWorkItem(id string) (*domain.Task, error) {
	if t, ok := p.tree.FindTask(id); ok {
		return t, nil
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "no task, bug or idea with id %q", id)
}

// saveWorkItem persists a mutated work item: its task file, the index that
// lists it, and the root index with a recalculated critical path.
func (p *project) saveWorkItem(t *domain.Task) error {
	if err := p.store.SaveTask(t); err != nil {
		return err
	}

	switch {
	case t.IsBug():
		if err := p.store.SaveFlatIndex(constants.BugsDirName, p.tree.Bugs); err != nil {
			return err
		}
	case t.IsIdea():
		if err := p.store.SaveFlatIndex(constants.IdeasDirName, p.tree.Ideas); err != nil {
			return err
		}
	default:
		epic, ok := p.tree.FindEpic(t.EpicID)
		if !ok {
			return errors.Wrapf(errors.ErrNotFound, "epic %q for task %q", t.EpicID, t.ID)
		}
		if err := p.store.SaveEpicIndex(epic); err != nil {
			return err
		}
	}

	criticalPath, nextAvailable := p.res.Calculate()
	return p.store.SaveRootIndex(p.tree, criticalPath, nextAvailable)
}
