package dataset

import (
	"strconv"
	"strings"
	"time"
)

// Row is a single record keyed by column name. Cell values are one of
// string, float64, time.Time or nil (missing).
type Row map[string]any

// Table is an in-memory tabular dataset with an ordered column list.
type Table struct {
	cols []string
	rows []Row
}

// New creates an empty table with the given column order.
func New(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{cols: cols}
}

// Columns returns a copy of the ordered column names.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns the live row slice for iteration.
func (t *Table) Rows() []Row { return t.rows }

// Row returns the i-th row.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Append adds a row to the table.
func (t *Table) Append(r Row) { t.rows = append(t.rows, r) }

// HasColumn reports whether the column exists in the header.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.cols {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the header if it is not already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.cols = append(t.cols, name)
	}
}

// Column returns all cell values of a column in row order.
func (t *Table) Column(name string) []any {
	out := make([]any, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[name]
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	nt := New(t.cols)
	nt.rows = make([]Row, len(t.rows))
	for i, r := range t.rows {
		nr := make(Row, len(r))
		for k, v := range r {
			nr[k] = v
		}
		nt.rows[i] = nr
	}
	return nt
}

// Filter returns a new table containing the rows for which keep is true.
// Rows are shared with the receiver, the header is copied.
func (t *Table) Filter(keep func(Row) bool) *Table {
	nt := New(t.cols)
	for _, r := range t.rows {
		if keep(r) {
			nt.rows = append(nt.rows, r)
		}
	}
	return nt
}

// TrimColumnNames strips surrounding whitespace from every column name,
// rewriting row keys where the name changes.
func (t *Table) TrimColumnNames() {
	for i, c := range t.cols {
		trimmed := strings.TrimSpace(c)
		if trimmed == c {
			continue
		}
		t.cols[i] = trimmed
		for _, r := range t.rows {
			if v, ok := r[c]; ok {
				delete(r, c)
				r[trimmed] = v
			}
		}
	}
}

// Float coerces a cell value to float64. Numeric strings are parsed,
// time values and nil are not coercible.
func Float(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Text renders a cell value as a string for display. Dates use
// YYYY-MM-DD, missing cells render empty.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format("2006-01-02")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}
