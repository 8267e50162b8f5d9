package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// bannerRows is the number of non-data banner rows preceding the header row
// in the source workbook. The header row follows immediately; data records
// start after it.
const bannerRows = 2

// ReadWorkbook reads the first sheet of the workbook at path into a Table.
//
// Layout contract:
//   - Rows 1..bannerRows are skipped.
//   - The next row is the column header row.
//   - Every following row is one data record.
//
// Cell values come back as their formatted string form; empty cells and
// cells beyond a row's last populated column are empty strings. A workbook
// whose first sheet lacks a header row is unusable and returns an error.
func ReadWorkbook(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) <= bannerRows {
		return nil, fmt.Errorf("sheet %q has no header row (found %d rows, need a header at row %d)",
			sheets[0], len(rows), bannerRows+1)
	}

	header := rows[bannerRows]
	data := rows[bannerRows+1:]
	header, data = normalizeWidth(header, data)

	return &Table{Header: header, Rows: data}, nil
}
