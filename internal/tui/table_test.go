package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	columns := []TableColumn{
		{Name: "ID", Width: 16, Align: AlignLeft},
		{Name: "TITLE", Width: 20, Align: AlignLeft},
		{Name: "SCORE", Width: 6, Align: AlignRight},
	}

	t.Run("WriteHeader", func(t *testing.T) {
		var buf bytes.Buffer
		table := NewTable(&buf, columns)
		table.WriteHeader()
		output := buf.String()
		assert.Contains(t, output, "ID")
		assert.Contains(t, output, "TITLE")
		assert.Contains(t, output, "SCORE")
	})

	t.Run("WriteRow pads and aligns", func(t *testing.T) {
		var buf bytes.Buffer
		table := NewTable(&buf, columns)
		table.WriteRow("P1.M1.E1.T001", "Lex input", "16")
		output := strings.TrimRight(buf.String(), "\n")
		assert.Contains(t, output, "P1.M1.E1.T001")
		// Right-aligned score column ends the line
		assert.True(t, strings.HasSuffix(output, "16"), "got %q", output)
	})

	t.Run("WriteRow truncates long values", func(t *testing.T) {
		var buf bytes.Buffer
		table := NewTable(&buf, columns)
		table.WriteRow("P1.M1.E1.T001", "a very long title that does not fit", "4")
		output := buf.String()
		assert.Contains(t, output, "…")
		assert.NotContains(t, output, "does not fit")
	})

	t.Run("WriteRow handles missing values", func(t *testing.T) {
		var buf bytes.Buffer
		table := NewTable(&buf, columns)
		table.WriteRow("B001")
		require.Contains(t, buf.String(), "B001")
	})

	t.Run("WriteStyledRow preserves column width", func(t *testing.T) {
		var buf bytes.Buffer
		table := NewTable(&buf, columns)
		styled := "\x1b[32mdone\x1b[0m"
		table.WriteStyledRow([]string{"B001", "", "4"}, 1, styled, "done")
		output := strings.TrimRight(buf.String(), "\n")
		assert.Contains(t, output, styled)
		assert.True(t, strings.HasSuffix(output, "4"), "got %q", output)
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	// Width 1 or less leaves the value alone
	assert.Equal(t, "abcdef", truncate("abcdef", 1))
}
