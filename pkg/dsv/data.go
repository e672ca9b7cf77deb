package dsv

// ParsedData is the normalized result of a parse: an ordered header row plus
// a rectangular grid of string cells.
//
// Every row holds exactly ColumnCount cells, where ColumnCount is the widest
// field count seen during the scan (the header row included, even though it
// is reported separately). ParsedData is immutable: re-parsing produces a
// fresh value, and all accessors return copies so callers cannot mutate a
// held result.
//
// The zero value is the canonical empty result (no headers, no rows) and is
// what Parse returns for blank or whitespace-only input.
type ParsedData struct {
	headers     []string
	rows        [][]string
	columnCount int
}

// Headers returns the column headers.
// These are either the first parsed row (header mode) or synthesized names
// "Column 1" through "Column N". Returns a copy.
func (d ParsedData) Headers() []string {
	headers := make([]string, len(d.headers))
	copy(headers, d.headers)
	return headers
}

// Rows returns all data rows. The header row is not included.
// Returns a copy; mutating it does not affect the ParsedData.
func (d ParsedData) Rows() [][]string {
	rows := make([][]string, len(d.rows))
	for i, row := range d.rows {
		rows[i] = make([]string, len(row))
		copy(rows[i], row)
	}
	return rows
}

// ColumnCount returns the number of columns in the grid.
func (d ParsedData) ColumnCount() int {
	return d.columnCount
}

// RowCount returns the number of data rows, excluding the header row.
func (d ParsedData) RowCount() int {
	return len(d.rows)
}

// Row returns a copy of the data row at the given index.
// Returns (nil, false) if the index is out of bounds.
func (d ParsedData) Row(index int) ([]string, bool) {
	if index < 0 || index >= len(d.rows) {
		return nil, false
	}
	row := make([]string, len(d.rows[index]))
	copy(row, d.rows[index])
	return row, true
}

// Cell returns the cell value at the given row and column.
// Returns ("", false) if either index is out of bounds.
func (d ParsedData) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(d.rows) {
		return "", false
	}
	if col < 0 || col >= len(d.rows[row]) {
		return "", false
	}
	return d.rows[row][col], true
}

// HeaderIndex returns the index of the named column, or -1 if no header
// matches.
func (d ParsedData) HeaderIndex(name string) int {
	for i, h := range d.headers {
		if h == name {
			return i
		}
	}
	return -1
}
