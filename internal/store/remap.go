package store

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/ctxutil"
	"github.com/mrz1836/roadmap/internal/domain"
	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

// ApplyRemap rewrites every YAML and frontmatter file in the tree,
// replacing each string value that exactly equals an old id with its
// mapped new id. Dependency references and runtime pointers may appear
// anywhere, so this is a full-tree rewrite rather than a targeted
// patch. The walk fails fast on the first filesystem error.
func (s *Store) ApplyRemap(ctx context.Context, tree *domain.Tree, mapping map[string]string) error {
	if len(mapping) == 0 {
		return nil
	}

	for _, rel := range s.remapTargets(tree) {
		if err := ctxutil.Canceled(ctx); err != nil {
			return err
		}
		if err := s.remapFile(rel, mapping); err != nil {
			return err
		}
	}
	return nil
}

// remapTargets enumerates every rewrite candidate: all index files, all
// task/bug/idea files, and the runtime snapshots when present.
func (s *Store) remapTargets(tree *domain.Tree) []string {
	targets := []string{constants.IndexFileName}
	for _, p := range tree.Phases {
		targets = append(targets, path.Join(p.Path, constants.IndexFileName))
		for _, m := range p.Milestones {
			targets = append(targets, path.Join(m.Path, constants.IndexFileName))
			for _, e := range m.Epics {
				targets = append(targets, path.Join(e.Path, constants.IndexFileName))
			}
		}
	}
	targets = append(targets,
		path.Join(constants.BugsDirName, constants.IndexFileName),
		path.Join(constants.IdeasDirName, constants.IndexFileName),
	)
	for _, t := range tree.AllWorkItems() {
		if t.File != "" {
			targets = append(targets, t.File)
		}
	}
	targets = append(targets, constants.ContextFileName, constants.SessionsFileName)
	return targets
}

// remapFile rewrites one file in place. Missing files are skipped;
// snapshots and freshly moved entries may legitimately be absent.
func (s *Store) remapFile(rel string, mapping map[string]string) error {
	abs := s.path(rel)
	data, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return roadmaperrors.Wrapf(err, "failed to read %s", rel)
	}

	var out []byte
	if strings.HasSuffix(rel, constants.TaskFileExt) {
		out, err = remapFrontmatter(data, mapping)
	} else {
		out, err = remapYAML(data, mapping)
	}
	if err != nil {
		return roadmaperrors.Wrapf(err, "failed to remap %s", rel)
	}
	if bytes.Equal(out, data) {
		return nil
	}
	if err := os.WriteFile(abs, out, filePerm); err != nil {
		return roadmaperrors.Wrapf(err, "failed to write %s", rel)
	}
	return nil
}

// remapYAML re-serializes a YAML document with every matching scalar
// replaced.
func remapYAML(data []byte, mapping map[string]string) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return data, nil
	}
	remapNode(&doc, mapping)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// remapFrontmatter rewrites only the frontmatter block of a task file;
// the body passes through untouched.
func remapFrontmatter(data []byte, mapping map[string]string) ([]byte, error) {
	fm, body, err := parseTaskFile(data)
	if err != nil {
		return nil, err
	}
	fmData, err := yaml.Marshal(fm)
	if err != nil {
		return nil, err
	}
	remapped, err := remapYAML(fmData, mapping)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(frontmatterDelimiter + "\n")
	buf.Write(remapped)
	buf.WriteString(frontmatterDelimiter + "\n")
	if body != "" {
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}

// remapNode walks a YAML node tree with an explicit stack, replacing
// scalar values that exactly equal an old id. Keys are replaced too;
// session maps may be keyed by task id.
func remapNode(root *yaml.Node, mapping map[string]string) {
	stack := []*yaml.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Kind == yaml.ScalarNode {
			if replacement, ok := mapping[n.Value]; ok {
				n.Value = replacement
			}
			continue
		}
		stack = append(stack, n.Content...)
	}
}

// MoveEntity relocates a file or directory from one data-dir-relative
// path to another, creating the destination's parent as needed.
func (s *Store) MoveEntity(oldRel, newRel string) error {
	oldAbs := s.path(oldRel)
	newAbs := s.path(newRel)
	if err := os.MkdirAll(filepath.Dir(newAbs), dirPerm); err != nil {
		return roadmaperrors.Wrapf(err, "failed to create destination for %s", newRel)
	}
	if err := os.Rename(oldAbs, newAbs); err != nil {
		return roadmaperrors.Wrapf(err, "failed to move %s to %s", oldRel, newRel)
	}
	return nil
}
