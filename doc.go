// Package tabular renders in-memory tabular data as formatted text.
//
// A [Table] holds ordered columns and rows of heterogeneous cell values.
// One layout engine computes per-column widths and alignment, and four
// output grammars share it: Default (boxed, with an optional count footer),
// Markdown, Alternative (+---+ rules), and Minimal (no delimiter).
//
// # Building a table
//
//	t := tabular.New("Name", "Age")
//	if err := t.AddRow("Alice", 30); err != nil { ... }
//	fmt.Print(t.String())
//
// A row must carry exactly one value per column; [Table.AddRow] fails with
// [ErrShapeMismatch] otherwise, and with [ErrNoColumns] when no columns
// exist yet. Cell values are opaque: nil renders as empty, [fmt.Stringer]
// is honored, and everything else goes through %v.
//
// Struct slices can be mapped automatically:
//
//	t, err := tabular.FromStructs(people)
//
// [FromStructs] tags each column with its semantic type, which is the only
// way numeric columns right-align (set Options.NumberAlignment to
// [AlignRight] via [Table.Configure]). Tables built with AddColumns and
// AddRow have no type tags and always align left; this mirrors the
// behavior of the record-extraction path being the sole source of type
// information.
//
// # Formats
//
// [Table.ToString] dispatches on a [Format]; unknown values fail with
// [ErrInvalidFormat]. [ParseFormat] converts a CLI flag string.
//
// # Terminal output
//
// [Table.Write] streams the Default format to a [Sink] with per-column and
// per-row colors applied cell by cell; row colors override column colors,
// blank cells are never colored, and the sink's ambient colors are restored
// after every cell and divider. [ConsoleSink] adapts any io.Writer into a
// Sink using ANSI escapes, honoring the terminal color profile and the
// NO_COLOR convention.
package tabular
