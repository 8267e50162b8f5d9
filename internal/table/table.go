// Package table holds the column-ordered tabular model the checks run over,
// plus the workbook reader that produces it.
//
// Cells are plain strings: the checks define their own missing/blank and
// numeric-conversion semantics, so the model stays free of type guessing.
// An empty string is an empty or absent cell.
package table

// Table is one rectangular dataset: a header row and zero or more data rows.
//
// Invariants:
//   - Every row has exactly len(Header) cells (readers pad short rows).
//   - Row identity is its index; rows are never reordered or deduplicated.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the 0-based index of the first header cell equal to
// name. The second return is false when the column does not exist.
// First match wins; the source schema may carry duplicate headers, which is
// why positional checks do not go through this lookup.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, h := range t.Header {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the cell at the given row index and 0-based column index.
// Out-of-range lookups return an empty cell.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// normalizeWidth pads header and rows so the table is rectangular. The width
// is the widest of header and all rows: a data row longer than the header
// means unnamed trailing columns, which still count toward positional
// ordinals.
func normalizeWidth(header []string, rows [][]string) ([]string, [][]string) {
	width := len(header)
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	header = padRow(header, width)
	for i, r := range rows {
		rows[i] = padRow(r, width)
	}
	return header, rows
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
