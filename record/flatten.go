package record

import "fmt"

// Normalize flattens a decoded JSON value into a Set.
//
// A single object becomes a one-row set. An array of objects becomes one row
// per element, with the column set being the union of keys observed across
// all elements; keys absent from a row are represented by Missing, never an
// error. In both cases nested objects contribute dot-joined column names
// (e.g. "margin.fed_call"), arrays are kept as a single opaque value, and
// scalars map directly. Numeric-looking strings are not coerced.
func Normalize(v any) (*Set, error) {
	switch val := v.(type) {
	case *Object:
		s := newSet()
		s.appendRow(val)
		return s, nil
	case []any:
		s := newSet()
		for i, el := range val {
			obj, ok := el.(*Object)
			if !ok {
				return nil, fmt.Errorf("array element %d is %T, not an object", i, el)
			}
			s.appendRow(obj)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("cannot normalize %T into a record set", v)
	}
}

func (s *Set) appendRow(obj *Object) {
	row := make(map[string]any)
	flattenInto("", obj, func(column string, v any) {
		s.addColumn(column)
		row[column] = v
	})
	s.rows = append(s.rows, row)
}

func flattenInto(prefix string, obj *Object, emit func(column string, v any)) {
	for _, key := range obj.keys {
		column := key
		if prefix != "" {
			column = prefix + "." + key
		}
		switch v := obj.values[key].(type) {
		case *Object:
			flattenInto(column, v, emit)
		default:
			// Arrays stay opaque; scalars and nulls map directly.
			emit(column, v)
		}
	}
}
