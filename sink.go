package tabular

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Sink is a color-capable output target. The package never assumes a
// specific terminal; anything implementing this capability set works.
// [ConsoleSink] is the terminal-backed implementation.
type Sink interface {
	Write(text string) error
	WriteLine(text string) error
	SetForeground(c Color)
	SetBackground(c Color)
	Foreground() Color
	Background() Color
}

// Write streams the Default format to sink with per-cell colors applied.
func (t *Table) Write(sink Sink) error {
	return t.WriteFormat(sink, Default)
}

// WriteFormat streams the table to sink in the given format. Only the
// Default format writes per-cell colors; the other formats stream their
// plain string rendering unchanged.
func (t *Table) WriteFormat(sink Sink, f Format) error {
	if sink == nil {
		return fmt.Errorf("%w: sink", ErrNilValue)
	}
	if f == Default {
		return t.writeDefault(sink)
	}
	s, err := t.ToString(f)
	if err != nil {
		return err
	}
	return sink.Write(s)
}

// withColors applies fg/bg around fn and restores the sink's previous
// colors, even when fn fails. ColorDefault leaves the current color alone.
func withColors(sink Sink, fg, bg Color, fn func() error) error {
	prevFG, prevBG := sink.Foreground(), sink.Background()
	defer func() {
		sink.SetForeground(prevFG)
		sink.SetBackground(prevBG)
	}()
	if fg != ColorDefault {
		sink.SetForeground(fg)
	}
	if bg != ColorDefault {
		sink.SetBackground(bg)
	}
	return fn()
}

// sinkWriter emits the Default format cell by cell, restoring the ambient
// colors captured at entry after the divider and after every cell so a
// failed write can never leave the sink recolored.
type sinkWriter struct {
	sink   Sink
	fg, bg Color
}

func (t *Table) writeDefault(sink Sink) error {
	widths := t.columnWidths()
	aligns := t.columnAlignments()

	header, rows := t.formatted("|")
	header = " " + header
	for i := range rows {
		rows[i] = " " + rows[i]
	}
	divider := " " + strings.Repeat("-", longestLine(header, rows)-1)

	w := &sinkWriter{sink: sink, fg: sink.Foreground(), bg: sink.Background()}

	if err := w.divider(divider); err != nil {
		return err
	}
	if err := w.headerRow(t.columns, widths, aligns); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := w.divider(divider); err != nil {
			return err
		}
		if err := w.bodyRow(t.columns, row, widths, aligns); err != nil {
			return err
		}
	}
	if err := w.divider(divider); err != nil {
		return err
	}
	if t.opts.EnableCount {
		if err := w.sink.WriteLine(""); err != nil {
			return err
		}
		return w.sink.WriteLine(fmt.Sprintf(" Count: %d", len(t.rows)))
	}
	return nil
}

func (w *sinkWriter) divider(line string) error {
	err := w.sink.WriteLine(line)
	w.sink.SetForeground(w.fg)
	w.sink.SetBackground(w.bg)
	return err
}

func (w *sinkWriter) headerRow(columns []Column, widths []int, aligns []Alignment) error {
	cells := make([]string, len(columns))
	fgs := make([]Color, len(columns))
	bgs := make([]Color, len(columns))
	for i, c := range columns {
		cells[i] = displayText(c.Value)
		fgs[i] = c.Foreground
		bgs[i] = c.Background
	}
	return w.row(cells, widths, aligns, fgs, bgs)
}

func (w *sinkWriter) bodyRow(columns []Column, row Row, widths []int, aligns []Alignment) error {
	cells := cellTexts(row.Values)
	fgs := make([]Color, len(columns))
	bgs := make([]Color, len(columns))
	for i, c := range columns {
		// Row colors override column colors.
		fgs[i] = c.Foreground
		bgs[i] = c.Background
		if row.Foreground != ColorDefault {
			fgs[i] = row.Foreground
		}
		if row.Background != ColorDefault {
			bgs[i] = row.Background
		}
	}
	return w.row(cells, widths, aligns, fgs, bgs)
}

func (w *sinkWriter) row(cells []string, widths []int, aligns []Alignment, fgs, bgs []Color) error {
	if err := w.sink.Write(" |"); err != nil {
		return err
	}
	for i, width := range widths {
		if err := w.sink.Write(" "); err != nil {
			return err
		}
		if err := w.cell(cells[i], width, aligns[i], fgs[i], bgs[i]); err != nil {
			return err
		}
		if err := w.sink.Write(" |"); err != nil {
			return err
		}
	}
	return w.sink.WriteLine("")
}

// cell writes one padded cell. Blank cells are written without any color
// change so an empty value never bleeds color into its separator.
func (w *sinkWriter) cell(text string, width int, align Alignment, fg, bg Color) error {
	if strings.TrimSpace(text) == "" {
		fg, bg = ColorDefault, ColorDefault
	}
	return withColors(w.sink, fg, bg, func() error {
		return w.sink.Write(alignCell(text, width, align))
	})
}

// ConsoleSink writes to a terminal through termenv, translating colors to
// ANSI escapes. It tracks the logical foreground/background so the Default
// writer can save and restore them around every cell.
type ConsoleSink struct {
	out    *termenv.Output
	fg, bg Color
}

// NewConsoleSink wraps w with the detected terminal color profile. The
// NO_COLOR environment variable disables color entirely.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	profile := termenv.ColorProfile()
	if os.Getenv("NO_COLOR") != "" {
		profile = termenv.Ascii
	}
	return NewConsoleSinkWithProfile(w, profile)
}

// NewConsoleSinkWithProfile wraps w with an explicit termenv profile. Use
// termenv.Ascii for plain output or termenv.ANSI to force color.
func NewConsoleSinkWithProfile(w io.Writer, profile termenv.Profile) *ConsoleSink {
	return &ConsoleSink{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

func (s *ConsoleSink) Write(text string) error {
	styled := s.out.String(text)
	if c, ok := ansiColor(s.fg); ok {
		styled = styled.Foreground(c)
	}
	if c, ok := ansiColor(s.bg); ok {
		styled = styled.Background(c)
	}
	_, err := fmt.Fprint(s.out, styled.String())
	return err
}

func (s *ConsoleSink) WriteLine(text string) error {
	if err := s.Write(text); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.out)
	return err
}

func (s *ConsoleSink) SetForeground(c Color) { s.fg = c }
func (s *ConsoleSink) SetBackground(c Color) { s.bg = c }
func (s *ConsoleSink) Foreground() Color     { return s.fg }
func (s *ConsoleSink) Background() Color     { return s.bg }

func ansiColor(c Color) (termenv.Color, bool) {
	if c < ColorBlack || c > ColorBrightWhite {
		return nil, false
	}
	return termenv.ANSIColor(c - ColorBlack), true
}
