package tabular

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// displayText converts a cell value to its display string. Nil renders as
// empty, fmt.Stringer is honored, everything else goes through %v.
func displayText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// displayWidth is a plain rune count. Layout deliberately ignores terminal
// cell width of wide characters and ANSI sequences; padding, divider sizing,
// and width measurement all share this one definition.
func displayWidth(s string) int { return utf8.RuneCountInString(s) }

// columnWidths returns, per column, the maximum display width across the
// header value and every row cell. Nil cells contribute zero.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		widths[i] = displayWidth(displayText(c.Value))
	}
	for _, row := range t.rows {
		for i, v := range row.Values {
			if w := displayWidth(displayText(v)); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// columnAlignments returns the per-column alignment for this render. A
// column aligns right only when the options ask for right number alignment
// AND the table carries a type tag marking that column numeric. Tables
// built with AddColumns/AddRow never have type tags and always align left;
// only the record-extraction path populates them.
func (t *Table) columnAlignments() []Alignment {
	aligns := make([]Alignment, len(t.columns))
	if t.opts.NumberAlignment != AlignRight || len(t.types) == 0 {
		return aligns
	}
	for i := range aligns {
		if i < len(t.types) && t.types[i] == TypeNumeric {
			aligns[i] = AlignRight
		}
	}
	return aligns
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - displayWidth(s)
	if pad <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}

// cellTexts converts a row's values to display strings.
func cellTexts(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = displayText(v)
	}
	return out
}

func (t *Table) headerTexts() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = displayText(c.Value)
	}
	return out
}

// formatLine renders one row of cells against the shared column template:
// each cell padded to its column width, joined by the delimiter. A non-empty
// delimiter brackets the line ("| a | b |"); the empty sentinel means no
// delimiter at all, with cells joined by a double space and no bracketing.
// Every line of a table formats to the same width either way.
func formatLine(cells []string, widths []int, aligns []Alignment, delim string) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = alignCell(cell, width, aligns[i])
	}
	if delim == "" {
		return strings.Join(parts, "  ")
	}
	return delim + " " + strings.Join(parts, " "+delim+" ") + " " + delim
}
