package tabular

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrNoColumns     = errors.New("no columns configured")
	ErrShapeMismatch = errors.New("row shape mismatch")
	ErrNilValue      = errors.New("nil value")
	ErrInvalidRecord = errors.New("invalid record type")
)

// Format selects an output grammar.
type Format string

const (
	// Default is a boxed table with a divider between every row and an
	// optional " Count: n" footer.
	Default Format = "default"
	// Markdown is a GitHub-flavored pipe table.
	Markdown Format = "markdown"
	// Alternative is the pipe table with "+---+" rules around every row.
	Alternative Format = "alternative"
	// Minimal has no column delimiter, just a dash rule under the header.
	Minimal Format = "minimal"
)

var formats = []Format{Default, Markdown, Alternative, Minimal}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string. The empty string parses as Default.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return Default, nil
	}
	for _, f := range formats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// Alignment controls cell padding direction.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// ColumnType tags a column's semantic kind. Only numeric columns are ever
// right-aligned, and only when [Options.NumberAlignment] asks for it.
type ColumnType int

const (
	TypeText ColumnType = iota
	TypeNumeric
)

// Color identifies one of the 16 ANSI terminal colors. The zero value
// ColorDefault means "no color": cells with it are written in whatever
// color the sink already has.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)
