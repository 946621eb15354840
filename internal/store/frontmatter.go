package store

import (
	"bytes"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/domain"
	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

const frontmatterDelimiter = "---"

// taskFrontmatter mirrors the on-disk frontmatter keys, including the
// legacy aliases that are normalized away at this boundary. The core
// packages only ever see canonical values.
type taskFrontmatter struct {
	ID              string     `yaml:"id,omitempty"`
	Title           string     `yaml:"title,omitempty"`
	Status          string     `yaml:"status,omitempty"`
	EstimateHours   *float64   `yaml:"estimate_hours,omitempty"`
	EstimatedHours  *float64   `yaml:"estimated_hours,omitempty"`
	Complexity      string     `yaml:"complexity,omitempty"`
	Priority        string     `yaml:"priority,omitempty"`
	DependsOn       []string   `yaml:"depends_on,omitempty"`
	Tags            []string   `yaml:"tags,omitempty"`
	ClaimedBy       string     `yaml:"claimed_by,omitempty"`
	ClaimedAt       *time.Time `yaml:"claimed_at,omitempty"`
	StartedAt       *time.Time `yaml:"started_at,omitempty"`
	CompletedAt     *time.Time `yaml:"completed_at,omitempty"`
	DurationMinutes int        `yaml:"duration_minutes,omitempty"`
	RejectionReason string     `yaml:"rejection_reason,omitempty"`
}

// parseTaskFile splits a task file into frontmatter and body and decodes
// the frontmatter. The file must open with a "---" line; a missing or
// unterminated block is an error.
func parseTaskFile(data []byte) (*taskFrontmatter, string, error) {
	text := string(bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n")))
	if !strings.HasPrefix(text, frontmatterDelimiter+"\n") && text != frontmatterDelimiter {
		return nil, "", roadmaperrors.ErrMissingFrontmatter
	}
	rest := strings.TrimPrefix(text, frontmatterDelimiter+"\n")
	end := strings.Index(rest, "\n"+frontmatterDelimiter)
	if end < 0 {
		if strings.HasPrefix(rest, frontmatterDelimiter) {
			end = -1 // empty frontmatter, delimiter on the first line
		} else {
			return nil, "", roadmaperrors.Wrap(roadmaperrors.ErrMalformedTaskFile, "unterminated frontmatter")
		}
	}

	var fmText, body string
	if end < 0 {
		fmText = ""
		body = strings.TrimPrefix(strings.TrimPrefix(rest, frontmatterDelimiter), "\n")
	} else {
		fmText = rest[:end+1]
		body = rest[end+1+len(frontmatterDelimiter):]
		body = strings.TrimPrefix(body, "\n")
	}

	fm := &taskFrontmatter{}
	if err := yaml.Unmarshal([]byte(fmText), fm); err != nil {
		return nil, "", roadmaperrors.Wrap(roadmaperrors.ErrMalformedTaskFile, err.Error())
	}
	return fm, body, nil
}

// applyFrontmatter fills a task from decoded frontmatter, normalizing
// the legacy aliases exactly once. estimated_hours is a synonym for
// estimate_hours; completed and complete are synonyms for done.
func applyFrontmatter(t *domain.Task, fm *taskFrontmatter, body string) {
	if fm.ID != "" {
		t.ID = fm.ID
	}
	if fm.Title != "" {
		t.Title = fm.Title
	}
	if fm.Status != "" {
		t.Status = constants.NormalizeTaskStatus(fm.Status)
	}
	switch {
	case fm.EstimateHours != nil:
		t.EstimateHours = *fm.EstimateHours
	case fm.EstimatedHours != nil:
		t.EstimateHours = *fm.EstimatedHours
	}
	if fm.Complexity != "" {
		t.Complexity = constants.Complexity(fm.Complexity)
	}
	if fm.Priority != "" {
		t.Priority = constants.Priority(fm.Priority)
	}
	if fm.DependsOn != nil {
		t.DependsOn = fm.DependsOn
	}
	if fm.Tags != nil {
		t.Tags = fm.Tags
	}
	t.ClaimedBy = fm.ClaimedBy
	t.ClaimedAt = fm.ClaimedAt
	t.StartedAt = fm.StartedAt
	t.CompletedAt = fm.CompletedAt
	t.DurationMinutes = fm.DurationMinutes
	t.RejectionReason = fm.RejectionReason
	t.Body = body
}

// serializeTaskFile renders a task back to canonical frontmatter plus
// body. Legacy aliases never survive a write.
func serializeTaskFile(t *domain.Task) ([]byte, error) {
	hours := t.EstimateHours
	fm := &taskFrontmatter{
		ID:              t.ID,
		Title:           t.Title,
		Status:          t.Status.String(),
		EstimateHours:   &hours,
		Complexity:      t.Complexity.String(),
		Priority:        t.Priority.String(),
		DependsOn:       t.DependsOn,
		Tags:            t.Tags,
		ClaimedBy:       t.ClaimedBy,
		ClaimedAt:       t.ClaimedAt,
		StartedAt:       t.StartedAt,
		CompletedAt:     t.CompletedAt,
		DurationMinutes: t.DurationMinutes,
		RejectionReason: t.RejectionReason,
	}
	data, err := yaml.Marshal(fm)
	if err != nil {
		return nil, roadmaperrors.Wrapf(err, "failed to marshal frontmatter for %s", t.ID)
	}

	var buf bytes.Buffer
	buf.WriteString(frontmatterDelimiter + "\n")
	buf.Write(data)
	buf.WriteString(frontmatterDelimiter + "\n")
	if t.Body != "" {
		buf.WriteString(t.Body)
		if !strings.HasSuffix(t.Body, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}
