package tabular

// Table is an in-memory worksheet: a header row plus data rows of typed
// cells. Column lookups go through the header index, where the first
// occurrence of a duplicated column name wins.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]Cell
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Header() []string {
	return t.header
}

func (t *Table) Row(i int) Row {
	return Row{table: t, cells: t.rows[i]}
}

// Promote replaces the header with the first data row and drops that row
// from the table. Exports that stack a banner line above the real column
// names need one Promote after reading.
func (t *Table) Promote() {
	if len(t.rows) == 0 {
		return
	}

	header := make([]string, len(t.rows[0]))
	for i, c := range t.rows[0] {
		header[i] = c.String()
	}

	t.header = header
	t.index = buildIndex(header)
	t.rows = t.rows[1:]
}

// Row is a single data row with column access by header name.
type Row struct {
	table *Table
	cells []Cell
}

// Get returns the cell under the named column. Unknown columns and
// columns past the end of a short row read as Missing.
func (r Row) Get(name string) Cell {
	col, ok := r.table.index[name]
	if !ok || col >= len(r.cells) {
		return Missing
	}
	return r.cells[col]
}

func buildIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	return index
}
