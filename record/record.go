package record

// Missing marks a column that has no value in a given row. It is distinct
// from JSON null, which is a value the broker actually sent.
var Missing = missingValue{}

type missingValue struct{}

func (missingValue) String() string {
	return "<missing>"
}

// Set is a flat, rectangular record set: ordered column names plus rows of
// column -> value. Columns appear in first-seen order across the traversal
// that produced the set, which for identical response shapes is stable
// between calls.
type Set struct {
	columns []string
	seen    map[string]struct{}
	rows    []map[string]any
}

func newSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Columns returns the column names in first-seen order.
func (s *Set) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len returns the number of rows.
func (s *Set) Len() int {
	return len(s.rows)
}

// Value returns the value at row i for the named column, or Missing if the
// row has no value for it.
func (s *Set) Value(i int, column string) any {
	v, ok := s.rows[i][column]
	if !ok {
		return Missing
	}
	return v
}

// Row returns a copy of row i keyed by column name, with Missing filled in
// for columns the row has no value for.
func (s *Set) Row(i int) map[string]any {
	out := make(map[string]any, len(s.columns))
	for _, col := range s.columns {
		out[col] = s.Value(i, col)
	}
	return out
}

// Filter returns a new Set containing the rows for which keep returns true.
// The column set is preserved even when every row is dropped.
func (s *Set) Filter(keep func(row map[string]any) bool) *Set {
	out := newSet()
	out.columns = append(out.columns, s.columns...)
	for col := range s.seen {
		out.seen[col] = struct{}{}
	}
	for i := range s.rows {
		if keep(s.Row(i)) {
			out.rows = append(out.rows, s.rows[i])
		}
	}
	return out
}

func (s *Set) addColumn(name string) {
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.columns = append(s.columns, name)
}
