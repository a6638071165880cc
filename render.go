package tabular

import (
	"fmt"
	"strings"
)

// ToString renders the table in the requested format. Every line of the
// result is newline-terminated.
func (t *Table) ToString(f Format) (string, error) {
	switch f {
	case Default:
		return t.renderDefault(), nil
	case Markdown:
		return t.renderMarkdown(), nil
	case Alternative:
		return t.renderAlternative(), nil
	case Minimal:
		return t.renderMinimal(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, f)
	}
}

// String renders the Default format, implementing fmt.Stringer.
func (t *Table) String() string { return t.renderDefault() }

// MarkdownString renders the Markdown format.
func (t *Table) MarkdownString() string { return t.renderMarkdown() }

// AlternativeString renders the Alternative format.
func (t *Table) AlternativeString() string { return t.renderAlternative() }

// MinimalString renders the Minimal format.
func (t *Table) MinimalString() string { return t.renderMinimal() }

// formatted renders the header line and every row line against the shared
// column template with the given delimiter.
func (t *Table) formatted(delim string) (header string, rows []string) {
	widths := t.columnWidths()
	aligns := t.columnAlignments()
	header = formatLine(t.headerTexts(), widths, aligns, delim)
	rows = make([]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = formatLine(cellTexts(row.Values), widths, aligns, delim)
	}
	return header, rows
}

// longestLine sizes the divider from the actually-formatted lines rather
// than from the column widths, so a formatted cell that comes out longer
// than its measured width can never outgrow the rule.
func longestLine(header string, rows []string) int {
	longest := displayWidth(header)
	for _, r := range rows {
		if w := displayWidth(r); w > longest {
			longest = w
		}
	}
	return longest
}

func (t *Table) renderDefault() string {
	header, rows := t.formatted("|")
	header = " " + header
	for i := range rows {
		rows[i] = " " + rows[i]
	}
	divider := " " + strings.Repeat("-", longestLine(header, rows)-1)

	var sb strings.Builder
	sb.WriteString(divider + "\n")
	sb.WriteString(header + "\n")
	for _, row := range rows {
		sb.WriteString(divider + "\n")
		sb.WriteString(row + "\n")
	}
	sb.WriteString(divider + "\n")
	if t.opts.EnableCount {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, " Count: %d\n", len(t.rows))
	}
	return sb.String()
}

func (t *Table) renderMarkdown() string {
	header, rows := t.formatted("|")
	var sb strings.Builder
	sb.WriteString(header + "\n")
	sb.WriteString(markdownRule(header) + "\n")
	for _, row := range rows {
		sb.WriteString(row + "\n")
	}
	return sb.String()
}

func (t *Table) renderAlternative() string {
	header, rows := t.formatted("|")
	rule := strings.ReplaceAll(markdownRule(header), "|", "+")
	var sb strings.Builder
	sb.WriteString(rule + "\n")
	sb.WriteString(header + "\n")
	for _, row := range rows {
		sb.WriteString(rule + "\n")
		sb.WriteString(row + "\n")
	}
	sb.WriteString(rule + "\n")
	return sb.String()
}

func (t *Table) renderMinimal() string {
	header, rows := t.formatted("")
	divider := strings.Repeat("-", longestLine(header, rows))
	var sb strings.Builder
	sb.WriteString(header + "\n")
	sb.WriteString(divider + "\n")
	for _, row := range rows {
		sb.WriteString(row + "\n")
	}
	return sb.String()
}

// markdownRule turns a rendered header line into its dash rule: every
// character that is not a pipe becomes a dash, so column boundaries stay
// visible and each dash run covers its header cell exactly.
func markdownRule(header string) string {
	var sb strings.Builder
	for _, r := range header {
		if r == '|' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('-')
		}
	}
	return sb.String()
}
