package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabular"
)

type person struct {
	Name  string
	Age   int
	Email string `tabular:"E-mail"`
	Token string `tabular:"-"`
	notes string
}

func TestExtract(t *testing.T) {
	t.Parallel()
	names, types, values, err := tabular.Extract([]person{
		{Name: "Alice", Age: 30, Email: "alice@example.com", Token: "x", notes: "hidden"},
		{Name: "Bob", Age: 7, Email: "bob@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age", "E-mail"}, names)
	assert.Equal(t, []tabular.ColumnType{tabular.TypeText, tabular.TypeNumeric, tabular.TypeText}, types)
	require.Len(t, values, 2)
	assert.Equal(t, []any{"Alice", 30, "alice@example.com"}, values[0])
	assert.Equal(t, []any{"Bob", 7, "bob@example.com"}, values[1])
}

func TestExtractEmptySlice(t *testing.T) {
	t.Parallel()
	names, types, values, err := tabular.Extract([]person{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age", "E-mail"}, names)
	assert.Len(t, types, 3)
	assert.Empty(t, values)
}

func TestExtractPointerRecords(t *testing.T) {
	t.Parallel()
	names, _, values, err := tabular.Extract([]*person{{Name: "Alice", Age: 30}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age", "E-mail"}, names)
	require.Len(t, values, 1)
	assert.Equal(t, "Alice", values[0][0])

	_, _, _, err = tabular.Extract([]*person{nil})
	assert.ErrorIs(t, err, tabular.ErrNilValue)
}

func TestExtractNonStruct(t *testing.T) {
	t.Parallel()
	_, _, _, err := tabular.Extract([]int{1, 2})
	assert.ErrorIs(t, err, tabular.ErrInvalidRecord)
}

type opaque struct {
	hidden string
}

func TestExtractNoUsableFields(t *testing.T) {
	t.Parallel()
	_, _, _, err := tabular.Extract([]opaque{{hidden: "x"}})
	assert.ErrorIs(t, err, tabular.ErrInvalidRecord)
}

func TestFromStructs(t *testing.T) {
	t.Parallel()
	tbl, err := tabular.FromStructs([]person{
		{Name: "Alice", Age: 30, Email: "a@b.c"},
		{Name: "Bob", Age: 7, Email: "b@b.c"},
	})
	require.NoError(t, err)
	require.NoError(t, tbl.Configure(func(o *tabular.Options) { o.NumberAlignment = tabular.AlignRight }))

	got, err := tbl.ToString(tabular.Markdown)
	require.NoError(t, err)
	want := lines(
		"| Name  | Age | E-mail |",
		"|-------|-----|--------|",
		"| Alice |  30 | a@b.c  |",
		"| Bob   |   7 | b@b.c  |",
	)
	assert.Equal(t, want, got)
}
