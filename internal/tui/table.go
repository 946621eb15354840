package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TableColumn defines a column in a table.
type TableColumn struct {
	Name  string
	Width int
	Align Alignment
}

// Alignment defines text alignment in a column.
type Alignment int

// Alignment constants.
const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table provides styled table rendering for list and status output.
type Table struct {
	w       io.Writer
	styles  *TableStyles
	columns []TableColumn
}

// NewTable creates a new table with the given columns.
func NewTable(w io.Writer, columns []TableColumn) *Table {
	return &Table{
		w:       w,
		styles:  NewTableStyles(),
		columns: columns,
	}
}

// WriteHeader writes the table header row.
func (t *Table) WriteHeader() {
	header := ""
	for i, col := range t.columns {
		if i > 0 {
			header += "  "
		}
		header += pad(col.Name, col.Width, col.Align)
	}
	_, _ = fmt.Fprintln(t.w, t.styles.Header.Render(header))
}

// WriteRow writes a data row to the table. Values longer than the column
// width are truncated with an ellipsis.
func (t *Table) WriteRow(values ...string) {
	row := ""
	for i, col := range t.columns {
		if i > 0 {
			row += "  "
		}
		value := ""
		if i < len(values) {
			value = values[i]
		}
		row += pad(truncate(value, col.Width), col.Width, col.Align)
	}
	_, _ = fmt.Fprintln(t.w, row)
}

// WriteStyledRow writes a data row with one cell replaced by a styled
// rendering. plainValue is the unstyled text used for width accounting.
func (t *Table) WriteStyledRow(values []string, styledIndex int, styledValue, plainValue string) {
	row := ""
	for i, col := range t.columns {
		if i > 0 {
			row += "  "
		}
		if i == styledIndex {
			// Pad by display width of the plain text so ANSI escapes in
			// the styled text don't skew the column.
			fill := col.Width - runewidth.StringWidth(plainValue)
			if fill < 0 {
				fill = 0
			}
			spaces := strings.Repeat(" ", fill)
			if col.Align == AlignRight {
				row += spaces + styledValue
			} else {
				row += styledValue + spaces
			}
			continue
		}
		value := ""
		if i < len(values) {
			value = values[i]
		}
		row += pad(truncate(value, col.Width), col.Width, col.Align)
	}
	_, _ = fmt.Fprintln(t.w, row)
}

// truncate shortens s to fit width display cells, appending an ellipsis.
// Width is measured in terminal cells so wide runes count as two.
func truncate(s string, width int) string {
	if width <= 1 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// pad aligns s within width display cells.
func pad(s string, width int, align Alignment) string {
	if align == AlignRight {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}
