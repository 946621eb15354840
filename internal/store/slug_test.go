package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Implement Parser", "implement-parser"},
		{"punctuation collapses", "Fix: the (really) bad bug!!", "fix-the-really-bad-bug"},
		{"diacritics fold", "Café Ünïcode Résumé", "cafe-unicode-resume"},
		{"digits survive", "Phase 2 cleanup", "phase-2-cleanup"},
		{"leading and trailing junk", "  --hello--  ", "hello"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
		{
			"truncated to limit",
			"a very long title that keeps going well past the slug limit",
			"a-very-long-title-that-keeps-g",
		},
		{
			"no trailing hyphen after truncation",
			"exactly thirty characters here plus more",
			"exactly-thirty-characters-here",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Slugify(tt.title)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), 30)
		})
	}
}
