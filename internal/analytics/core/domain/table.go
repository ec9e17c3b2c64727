package domain

// Table is one tabular dataset as read from its source. Columns keeps the
// header order of the source; rows may be shorter than the header.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *Table) Row(i int) Row {
	return Row{columns: t.Columns, values: t.Rows[i]}
}

// Row is a raw, untyped view of one table row.
type Row struct {
	columns []string
	values  []string
}

func NewRow(columns, values []string) Row {
	return Row{columns: columns, values: values}
}

// Value returns the cell at column index i, or "" when the row is short.
func (r Row) Value(i int) string {
	if i < 0 || i >= len(r.values) {
		return ""
	}
	return r.values[i]
}

// Get returns the cell under the exact column name.
func (r Row) Get(column string) string {
	for i, c := range r.columns {
		if c == column {
			return r.Value(i)
		}
	}
	return ""
}

func (r Row) Columns() []string { return r.columns }

// Blank reports whether every cell of the row is empty.
func (r Row) Blank() bool {
	for _, v := range r.values {
		for _, ch := range v {
			if ch != ' ' && ch != '\t' && ch != '\r' && ch != '\n' {
				return false
			}
		}
	}
	return true
}
