package tabular

import (
	"fmt"
	"reflect"
)

// Extract derives column names, semantic type tags, and row values from a
// homogeneous slice of records using reflection. T must be a struct or a
// pointer to one; exported fields become columns in declaration order. A
// `tabular:"name"` tag renames a column and `tabular:"-"` skips the field.
//
// The layout engine itself never reflects: Extract is the collaborator that
// feeds [FromRecordSet], and callers are free to build the same triple by
// hand.
func Extract[T any](records []T) (names []string, types []ColumnType, values [][]any, err error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, nil, nil, fmt.Errorf("%w: %s is not a struct", ErrInvalidRecord, rt)
	}

	var fields []int
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("tabular"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, i)
		names = append(names, name)
		types = append(types, columnTypeOf(f.Type))
	}
	if len(fields) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: %s has no usable fields", ErrInvalidRecord, rt)
	}

	values = make([][]any, 0, len(records))
	for _, rec := range records {
		rv := reflect.ValueOf(rec)
		if rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return nil, nil, nil, fmt.Errorf("%w: nil record", ErrNilValue)
			}
			rv = rv.Elem()
		}
		row := make([]any, len(fields))
		for j, i := range fields {
			row[j] = rv.Field(i).Interface()
		}
		values = append(values, row)
	}
	return names, types, values, nil
}

// FromStructs builds a Table straight from a record slice. The resulting
// table carries one type tag per column, so numeric fields right-align when
// NumberAlignment is set to AlignRight.
func FromStructs[T any](records []T) (*Table, error) {
	names, types, values, err := Extract(records)
	if err != nil {
		return nil, err
	}
	return FromRecordSet(names, types, values)
}

func columnTypeOf(t reflect.Type) ColumnType {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return TypeNumeric
	default:
		return TypeText
	}
}
