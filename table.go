package tabular

import (
	"fmt"
	"slices"
)

// Column is one table column: a header value plus optional display colors.
type Column struct {
	Value      any
	Foreground Color
	Background Color
}

// Row is one table row. Its value count always matches the column count of
// the table that owns it; AddRow enforces this at append time.
type Row struct {
	Values     []any
	Foreground Color
	Background Color
}

// Options control rendering behavior. Configure applies edits without
// validation, so later renders may behave unexpectedly on inconsistent
// combinations.
type Options struct {
	// EnableCount appends a " Count: n" footer to the Default format.
	EnableCount bool
	// NumberAlignment right-aligns columns tagged TypeNumeric when set to
	// AlignRight. Columns without a type tag always align left.
	NumberAlignment Alignment
}

// Table holds ordered columns and rows and renders them in several text
// formats. The zero value is not usable; construct with New, NewWithOptions,
// FromRecordSet, or FromStructs.
type Table struct {
	columns []Column
	rows    []Row
	types   []ColumnType
	opts    Options
}

// New returns a Table with one column per name and default options
// (count footer enabled, left alignment).
func New(names ...string) *Table {
	t := &Table{opts: Options{EnableCount: true}}
	return t.AddColumns(names...)
}

// NewWithOptions returns a Table with the given options and columns.
func NewWithOptions(opts Options, columns ...Column) *Table {
	t := &Table{opts: opts}
	t.columns = append(t.columns, columns...)
	return t
}

// AddColumn appends a single uncolored column.
func (t *Table) AddColumn(name string) *Table {
	t.columns = append(t.columns, Column{Value: name})
	return t
}

// AddColumns appends one uncolored column per name, in order.
func (t *Table) AddColumns(names ...string) *Table {
	for _, name := range names {
		t.AddColumn(name)
	}
	return t
}

// AddColoredColumns appends one column per name, all sharing the given
// foreground and background.
func (t *Table) AddColoredColumns(fg, bg Color, names ...string) *Table {
	for _, name := range names {
		t.columns = append(t.columns, Column{Value: name, Foreground: fg, Background: bg})
	}
	return t
}

// AddRow appends one row of cell values. It fails if no columns have been
// added yet, or if the value count differs from the column count.
func (t *Table) AddRow(values ...any) error {
	return t.AddColoredRow(ColorDefault, ColorDefault, values...)
}

// AddColoredRow appends one row of cell values with row-level colors. Row
// colors override column colors when the table is written to a sink.
func (t *Table) AddColoredRow(fg, bg Color, values ...any) error {
	if len(t.columns) == 0 {
		return fmt.Errorf("%w: add columns before rows", ErrNoColumns)
	}
	if len(values) != len(t.columns) {
		return fmt.Errorf("%w: table has %d columns, row has %d values", ErrShapeMismatch, len(t.columns), len(values))
	}
	t.rows = append(t.rows, Row{Values: slices.Clone(values), Foreground: fg, Background: bg})
	return nil
}

// Configure applies an in-place edit to the table's options.
func (t *Table) Configure(fn func(*Options)) error {
	if fn == nil {
		return fmt.Errorf("%w: options mutator", ErrNilValue)
	}
	fn(&t.opts)
	return nil
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.rows) }

// FromRecordSet builds a Table from an extracted record triple: column
// names, per-column type tags, and row values. types may be nil, in which
// case every column is TypeText; when present it must align 1:1 with names.
// This is the bridge consumed by [FromStructs], and the only way a table
// acquires the type tags that enable right alignment of numeric columns.
func FromRecordSet(names []string, types []ColumnType, values [][]any) (*Table, error) {
	if names == nil {
		return nil, fmt.Errorf("%w: column names", ErrNilValue)
	}
	if values == nil {
		return nil, fmt.Errorf("%w: row values", ErrNilValue)
	}
	if types != nil && len(types) != len(names) {
		return nil, fmt.Errorf("%w: %d columns, %d type tags", ErrShapeMismatch, len(names), len(types))
	}
	t := New(names...)
	t.types = slices.Clone(types)
	for _, row := range values {
		if err := t.AddRow(row...); err != nil {
			return nil, err
		}
	}
	return t, nil
}
