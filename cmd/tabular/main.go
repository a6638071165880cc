// Command tabular renders a table description as formatted text.
//
// The input is a YAML (or JSON) document with ordered columns, optional
// per-column type tags, and rows of cell values:
//
//	columns: [Name, Age]
//	types: [text, number]
//	rows:
//	  - [Alice, 30]
//	  - [Bob, 7]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/tabular"
)

var version = "dev"

type document struct {
	Columns []string `yaml:"columns"`
	Types   []string `yaml:"types"`
	Rows    [][]any  `yaml:"rows"`
}

var (
	format       = tabular.Default
	showCount    bool
	rightNumbers bool
	colorMode    string
)

// formatFlag adapts tabular.Format to the pflag.Value interface.
type formatFlag struct {
	f *tabular.Format
}

var _ pflag.Value = (*formatFlag)(nil)

func (v *formatFlag) String() string { return v.f.String() }
func (v *formatFlag) Type() string   { return "format" }

func (v *formatFlag) Set(s string) error {
	f, err := tabular.ParseFormat(s)
	if err != nil {
		return err
	}
	*v.f = f
	return nil
}

var rootCmd = &cobra.Command{
	Use:           "tabular [file]",
	Short:         "Render tabular data as text",
	Long:          "tabular reads a YAML or JSON table description and renders it as a boxed,\nmarkdown, alternative, or minimal text table.",
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.VarP(&formatFlag{f: &format}, "format", "f",
		fmt.Sprintf("output format: %v", tabular.Formats()))
	flags.BoolVar(&showCount, "count", true, "append a row count footer (default format only)")
	flags.BoolVar(&rightNumbers, "right-numbers", false, "right-align columns tagged as numeric")
	flags.StringVar(&colorMode, "color", "auto", "colorize output: auto, always, never")
}

func run(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	doc, err := decode(in)
	if err != nil {
		return err
	}
	t, err := build(doc)
	if err != nil {
		return err
	}

	if format == tabular.Default && colorEnabled(colorMode) {
		return t.WriteFormat(sink(cmd.OutOrStdout()), format)
	}
	s, err := t.ToString(format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), s)
	return err
}

func decode(r io.Reader) (document, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return document{}, fmt.Errorf("decode input: %w", err)
	}
	if len(doc.Columns) == 0 {
		return document{}, fmt.Errorf("decode input: %w", tabular.ErrNoColumns)
	}
	return doc, nil
}

func build(doc document) (*tabular.Table, error) {
	var types []tabular.ColumnType
	if len(doc.Types) > 0 {
		types = make([]tabular.ColumnType, len(doc.Types))
		for i, s := range doc.Types {
			types[i] = parseType(s)
		}
	}
	rows := doc.Rows
	if rows == nil {
		rows = [][]any{}
	}
	t, err := tabular.FromRecordSet(doc.Columns, types, rows)
	if err != nil {
		return nil, err
	}
	err = t.Configure(func(o *tabular.Options) {
		o.EnableCount = showCount
		if rightNumbers {
			o.NumberAlignment = tabular.AlignRight
		}
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func parseType(s string) tabular.ColumnType {
	switch s {
	case "number", "numeric", "int", "float":
		return tabular.TypeNumeric
	default:
		return tabular.TypeText
	}
}

func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && termenv.ColorProfile() != termenv.Ascii
	}
}

func sink(w io.Writer) tabular.Sink {
	if colorMode == "always" {
		return tabular.NewConsoleSinkWithProfile(w, termenv.ANSI)
	}
	return tabular.NewConsoleSink(w)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
