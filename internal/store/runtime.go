package store

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mrz1836/roadmap/internal/clock"
	"github.com/mrz1836/roadmap/internal/constants"
	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

// ContextSnapshot is the .context.yaml runtime cache: a pointer to the
// task currently being worked. It is advisory; the tree remains the
// source of truth and stale pointers only ever warn.
type ContextSnapshot struct {
	CurrentTask string    `yaml:"current_task,omitempty"`
	PrimaryTask string    `yaml:"primary_task,omitempty"`
	UpdatedAt   time.Time `yaml:"updated_at"`
}

// Session records one agent's claim batch in .sessions.yaml.
type Session struct {
	ID        string    `yaml:"id"`
	Agent     string    `yaml:"agent"`
	TaskIDs   []string  `yaml:"task_ids"`
	StartedAt time.Time `yaml:"started_at"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// SessionsSnapshot is the .sessions.yaml runtime cache.
type SessionsSnapshot struct {
	Sessions []*Session `yaml:"sessions"`
}

// TaskIDs returns every task id referenced by any session.
func (sn *SessionsSnapshot) TaskIDs() []string {
	var ids []string
	for _, s := range sn.Sessions {
		ids = append(ids, s.TaskIDs...)
	}
	return ids
}

// LoadContext reads the context snapshot. A missing file returns an
// empty snapshot, not an error.
func (s *Store) LoadContext() (*ContextSnapshot, error) {
	snap := &ContextSnapshot{}
	err := s.readYAML(filepath.Join(s.root, constants.ContextFileName), snap)
	if errors.Is(err, roadmaperrors.ErrNotFound) {
		return snap, nil
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// SaveContext writes the context snapshot with a fresh timestamp.
func (s *Store) SaveContext(snap *ContextSnapshot, clk clock.Clock) error {
	snap.UpdatedAt = clk.Now().UTC()
	return s.writeYAML(filepath.Join(s.root, constants.ContextFileName), snap)
}

// ClearContext removes the context snapshot if present.
func (s *Store) ClearContext() error {
	err := os.Remove(filepath.Join(s.root, constants.ContextFileName))
	if err != nil && !os.IsNotExist(err) {
		return roadmaperrors.Wrap(err, "failed to clear context snapshot")
	}
	return nil
}

// LoadSessions reads the sessions snapshot. A missing file returns an
// empty snapshot.
func (s *Store) LoadSessions() (*SessionsSnapshot, error) {
	snap := &SessionsSnapshot{}
	err := s.readYAML(filepath.Join(s.root, constants.SessionsFileName), snap)
	if errors.Is(err, roadmaperrors.ErrNotFound) {
		return snap, nil
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// SaveSessions writes the sessions snapshot.
func (s *Store) SaveSessions(snap *SessionsSnapshot) error {
	return s.writeYAML(filepath.Join(s.root, constants.SessionsFileName), snap)
}

// StartSession appends a new session for an agent's claim batch and
// persists the snapshot.
func (s *Store) StartSession(agent string, taskIDs []string, clk clock.Clock) (*Session, error) {
	snap, err := s.LoadSessions()
	if err != nil {
		return nil, err
	}
	now := clk.Now().UTC()
	session := &Session{
		ID:        uuid.NewString(),
		Agent:     agent,
		TaskIDs:   taskIDs,
		StartedAt: now,
		UpdatedAt: now,
	}
	snap.Sessions = append(snap.Sessions, session)
	if err := s.SaveSessions(snap); err != nil {
		return nil, err
	}
	return session, nil
}
