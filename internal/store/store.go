// Package store persists the backlog tree as YAML index files and
// Markdown-frontmatter task files under the data directory.
//
// The tree is loaded fully at the start of an operation, mutated in
// memory and written back. There is no lock file and no version check;
// two simultaneous invocations race and the last writer wins.
//
// All path and file values, both in memory and inside index files, are
// data-directory-relative slash paths.
package store

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/roadmap/internal/constants"
	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// Store reads and writes one backlog data directory.
type Store struct {
	// root is the absolute path to the data directory.
	root string
}

// New creates a Store over the given data directory.
func New(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, roadmaperrors.Wrap(err, "failed to resolve data directory")
	}
	return &Store{root: abs}, nil
}

// Discover walks upward from start looking for a data directory and
// returns a Store over it. Returns ErrDataDirNotFound when no ancestor
// carries one.
func Discover(start string) (*Store, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, roadmaperrors.Wrap(err, "failed to resolve start directory")
	}
	for dir := abs; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, constants.DataDirName)
		if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() {
			return &Store{root: candidate}, nil
		}
		if dir == filepath.Dir(dir) {
			return nil, roadmaperrors.Wrapf(roadmaperrors.ErrDataDirNotFound, "no %s directory above %s", constants.DataDirName, start)
		}
	}
}

// Root returns the absolute data directory path.
func (s *Store) Root() string {
	return s.root
}

// Exists reports whether the data directory is present on disk.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.root)
	return err == nil && info.IsDir()
}

// path joins a data-dir-relative slash path into an absolute one.
func (s *Store) path(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// Init scaffolds a fresh data directory: the root index, plus empty bug
// and idea collections. Fails with ErrDataDirExists when the directory
// already holds an index.
func (s *Store) Init(project string) error {
	if _, err := os.Stat(filepath.Join(s.root, constants.IndexFileName)); err == nil {
		return roadmaperrors.Wrapf(roadmaperrors.ErrDataDirExists, "%s", s.root)
	}
	for _, dir := range []string{
		s.root,
		filepath.Join(s.root, constants.BugsDirName),
		filepath.Join(s.root, constants.IdeasDirName),
	} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return roadmaperrors.Wrap(err, "failed to create data directory")
		}
	}
	if err := s.writeYAML(filepath.Join(s.root, constants.IndexFileName), &rootIndex{Project: project}); err != nil {
		return err
	}
	if err := s.writeYAML(filepath.Join(s.root, constants.BugsDirName, constants.IndexFileName), &flatIndex{}); err != nil {
		return err
	}
	return s.writeYAML(filepath.Join(s.root, constants.IdeasDirName, constants.IndexFileName), &flatIndex{})
}
