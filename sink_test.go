package tabular_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabular"
)

var errSinkWrite = errors.New("sink write failed")

// stubSink records written text and every color change.
type stubSink struct {
	sb        strings.Builder
	ops       []string
	fg, bg    tabular.Color
	failAfter int // fail the nth and later writes when > 0
	writes    int
}

func (s *stubSink) Write(text string) error {
	s.writes++
	if s.failAfter > 0 && s.writes >= s.failAfter {
		return errSinkWrite
	}
	s.sb.WriteString(text)
	return nil
}

func (s *stubSink) WriteLine(text string) error {
	if err := s.Write(text); err != nil {
		return err
	}
	s.sb.WriteString("\n")
	return nil
}

func (s *stubSink) SetForeground(c tabular.Color) {
	s.fg = c
	s.ops = append(s.ops, fmt.Sprintf("fg=%d", c))
}

func (s *stubSink) SetBackground(c tabular.Color) {
	s.bg = c
	s.ops = append(s.ops, fmt.Sprintf("bg=%d", c))
}

func (s *stubSink) Foreground() tabular.Color { return s.fg }
func (s *stubSink) Background() tabular.Color { return s.bg }

func TestWriteMatchesString(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	sink := &stubSink{}
	require.NoError(t, tbl.Write(sink))
	assert.Equal(t, tbl.String(), sink.sb.String())
}

func TestWriteFormatStreamsPlainFormats(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	for _, f := range []tabular.Format{tabular.Markdown, tabular.Alternative, tabular.Minimal} {
		sink := &stubSink{}
		require.NoError(t, tbl.WriteFormat(sink, f))
		want, err := tbl.ToString(f)
		require.NoError(t, err)
		assert.Equal(t, want, sink.sb.String(), "format %s", f)
		// String formats never touch sink colors.
		assert.Empty(t, sink.ops, "format %s", f)
	}
}

func TestWriteFormatInvalid(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	err := tbl.WriteFormat(&stubSink{}, tabular.Format("bogus"))
	assert.ErrorIs(t, err, tabular.ErrInvalidFormat)
}

func TestWriteFormatNilSink(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	assert.ErrorIs(t, tbl.WriteFormat(nil, tabular.Default), tabular.ErrNilValue)
}

func TestWriteColumnColors(t *testing.T) {
	t.Parallel()
	tbl := tabular.New().AddColoredColumns(tabular.ColorRed, tabular.ColorDefault, "Name")
	require.NoError(t, tbl.AddRow("Alice"))

	sink := &stubSink{}
	require.NoError(t, tbl.Write(sink))

	// Header cell and body cell each set red and restore.
	reds := 0
	for _, op := range sink.ops {
		if op == fmt.Sprintf("fg=%d", tabular.ColorRed) {
			reds++
		}
	}
	assert.Equal(t, 2, reds)
	assert.Equal(t, tabular.ColorDefault, sink.Foreground())
	assert.Equal(t, tabular.ColorDefault, sink.Background())
}

func TestWriteRowColorOverridesColumn(t *testing.T) {
	t.Parallel()
	tbl := tabular.New().AddColoredColumns(tabular.ColorRed, tabular.ColorDefault, "Name")
	require.NoError(t, tbl.AddColoredRow(tabular.ColorGreen, tabular.ColorBlue, "Alice"))

	sink := &stubSink{}
	require.NoError(t, tbl.Write(sink))

	assert.Contains(t, sink.ops, fmt.Sprintf("fg=%d", tabular.ColorGreen))
	assert.Contains(t, sink.ops, fmt.Sprintf("bg=%d", tabular.ColorBlue))
	assert.Equal(t, tabular.ColorDefault, sink.Foreground())
	assert.Equal(t, tabular.ColorDefault, sink.Background())
}

func TestWriteBlankCellNotColored(t *testing.T) {
	t.Parallel()
	tbl := tabular.New().AddColoredColumns(tabular.ColorRed, tabular.ColorDefault, "Name")
	require.NoError(t, tbl.AddRow(""))

	sink := &stubSink{}
	require.NoError(t, tbl.Write(sink))

	// Only the header cell is non-blank, so red is set exactly once.
	reds := 0
	for _, op := range sink.ops {
		if op == fmt.Sprintf("fg=%d", tabular.ColorRed) {
			reds++
		}
	}
	assert.Equal(t, 1, reds)
}

func TestWriteRestoresColorsOnFailure(t *testing.T) {
	t.Parallel()
	tbl := tabular.New().AddColoredColumns(tabular.ColorRed, tabular.ColorDefault, "Name")
	require.NoError(t, tbl.AddRow("Alice"))

	// Fail every write from the header cell onward; whichever write dies,
	// the sink must come back in its entry colors.
	for failAt := 1; failAt <= 8; failAt++ {
		sink := &stubSink{failAfter: failAt}
		err := tbl.Write(sink)
		require.ErrorIs(t, err, errSinkWrite, "failAfter=%d", failAt)
		assert.Equal(t, tabular.ColorDefault, sink.Foreground(), "failAfter=%d", failAt)
		assert.Equal(t, tabular.ColorDefault, sink.Background(), "failAfter=%d", failAt)
	}
}

func TestWriteCountFooter(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	sink := &stubSink{}
	require.NoError(t, tbl.Write(sink))
	assert.True(t, strings.HasSuffix(sink.sb.String(), "\n Count: 2\n"))

	require.NoError(t, tbl.Configure(func(o *tabular.Options) { o.EnableCount = false }))
	sink = &stubSink{}
	require.NoError(t, tbl.Write(sink))
	assert.NotContains(t, sink.sb.String(), "Count:")
}

func TestConsoleSinkPlain(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	var buf bytes.Buffer
	sink := tabular.NewConsoleSinkWithProfile(&buf, termenv.Ascii)
	require.NoError(t, tbl.Write(sink))
	assert.Equal(t, tbl.String(), buf.String())
}

func TestConsoleSinkColors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	sink := tabular.NewConsoleSinkWithProfile(&buf, termenv.ANSI)
	sink.SetForeground(tabular.ColorRed)
	require.NoError(t, sink.Write("x"))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "x")

	// Restored colors mean plain output again.
	sink.SetForeground(tabular.ColorDefault)
	buf.Reset()
	require.NoError(t, sink.WriteLine("y"))
	assert.Equal(t, "y\n", buf.String())
}

func TestConsoleSinkTracksColors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	sink := tabular.NewConsoleSinkWithProfile(&buf, termenv.Ascii)
	sink.SetForeground(tabular.ColorGreen)
	sink.SetBackground(tabular.ColorBlue)
	assert.Equal(t, tabular.ColorGreen, sink.Foreground())
	assert.Equal(t, tabular.ColorBlue, sink.Background())
}
