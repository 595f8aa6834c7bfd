package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Table is a plain aligned table with a header separator and an optional
// footer below a second separator. Widths are measured on visible text, so
// styled cells line up.
type Table struct {
	Headers []string
	Rows    [][]string
	Footer  [][]string
	// Align holds per-column alignment; missing entries are left aligned.
	Align []Align
}

const colGap = 2

func (t Table) Render() string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}
	for _, row := range t.Footer {
		measure(row)
	}

	var b strings.Builder
	styled := make([]string, cols)
	for i, h := range t.Headers {
		styled[i] = StyleHeader.Render(h)
	}
	t.writeRow(&b, styled, widths)
	writeSeparator(&b, widths)
	for _, row := range t.Rows {
		t.writeRow(&b, row, widths)
	}
	if len(t.Footer) > 0 {
		writeSeparator(&b, widths)
		for _, row := range t.Footer {
			t.writeRow(&b, row, widths)
		}
	}
	return b.String()
}

func (t Table) writeRow(b *strings.Builder, row []string, widths []int) {
	var line strings.Builder
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		pad := max(widths[i]-lipgloss.Width(cell), 0)
		if i < len(t.Align) && t.Align[i] == AlignRight {
			line.WriteString(strings.Repeat(" ", pad))
			line.WriteString(cell)
		} else {
			line.WriteString(cell)
			line.WriteString(strings.Repeat(" ", pad))
		}
		if i < len(widths)-1 {
			line.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString(strings.TrimRight(line.String(), " "))
	b.WriteString("\n")
}

func writeSeparator(b *strings.Builder, widths []int) {
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}

// RenderTable renders headers and rows left aligned.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows}.Render()
}
