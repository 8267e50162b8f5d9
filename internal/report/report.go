// Package report renders the assessment workbook: one sheet per partition
// half plus the quality summary. The renderer carries no decision logic;
// flags and counts arrive computed and are written exactly as received. This
// package owns layout and styling only.
package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"clickbotcheck/internal/eval"
	"clickbotcheck/internal/table"
)

// Sheet names of the rendered workbook, in workbook order.
const (
	SheetValid   = "Without_Errors"
	SheetInvalid = "With_Errors"
	SheetSummary = "Quality_Check"
)

// Fill colors: failing flag cells on the partition sheets, and the summary
// header row.
const (
	flagFillColor   = "FFCCCC"
	headerFillColor = "FFFF99"
)

// Summary sheet column widths, columns A through C.
var summaryWidths = []float64{35, 14, 14}

// Render encodes the report workbook and returns its bytes, leaving the
// write-to-disk policy to the caller.
//
// Layout:
//   - SheetValid and SheetInvalid each hold the partition header plus its
//     rows; every cell in a flag column holding "1" gets the highlight fill.
//   - SheetSummary holds the fixed header, one row per summary entry and one
//     blank spacer row, center-aligned with fixed column widths.
func Render(p eval.Partition, summary []eval.SummaryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetValid); err != nil {
		return nil, fmt.Errorf("name sheet %s: %w", SheetValid, err)
	}
	if _, err := f.NewSheet(SheetInvalid); err != nil {
		return nil, fmt.Errorf("add sheet %s: %w", SheetInvalid, err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return nil, fmt.Errorf("add sheet %s: %w", SheetSummary, err)
	}

	flagFill, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{flagFillColor}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("flag fill style: %w", err)
	}

	if err := writePartitionSheet(f, SheetValid, p.Valid, flagFill); err != nil {
		return nil, err
	}
	if err := writePartitionSheet(f, SheetInvalid, p.Invalid, flagFill); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, summary); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writePartitionSheet writes the header row and the partition's data rows,
// then highlights failed flag cells. Flag columns are located by name in the
// header being written, never by remembered position, so a reordered header
// still highlights the right cells.
func writePartitionSheet(f *excelize.File, sheet string, t *table.Table, flagFill int) error {
	if t == nil {
		return fmt.Errorf("sheet %s: nil partition half", sheet)
	}
	if err := setRow(f, sheet, 1, t.Header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	for _, name := range eval.FlagColumns() {
		col, ok := t.ColumnIndex(name)
		if !ok {
			return fmt.Errorf("sheet %s: flag column %q missing from header", sheet, name)
		}
		for i := range t.Rows {
			if strings.TrimSpace(t.Cell(i, col)) != "1" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("sheet %s: %w", sheet, err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, flagFill); err != nil {
				return fmt.Errorf("sheet %s: highlight %s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

// writeSummarySheet lays out the fixed quality table: a styled header, one
// row per summary entry, a blank spacer row.
func writeSummarySheet(f *excelize.File, summary []eval.SummaryRow) error {
	header := []any{"", "Error Count", "Error Rate"}
	if err := f.SetSheetRow(SheetSummary, "A1", &header); err != nil {
		return fmt.Errorf("summary header: %w", err)
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{row.Label, row.Count, row.Rate}
		if err := f.SetSheetRow(SheetSummary, cell, &values); err != nil {
			return fmt.Errorf("summary row %d: %w", i+2, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("summary header style: %w", err)
	}
	if err := f.SetCellStyle(SheetSummary, "A1", "C1", headerStyle); err != nil {
		return fmt.Errorf("summary header style: %w", err)
	}

	centered, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("summary body style: %w", err)
	}
	// Body rows plus the spacer row below them.
	bottomRight, err := excelize.CoordinatesToCellName(3, len(summary)+2)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A2", bottomRight, centered); err != nil {
		return fmt.Errorf("summary body style: %w", err)
	}

	for i, width := range summaryWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetSummary, col, col, width); err != nil {
			return fmt.Errorf("summary column width %s: %w", col, err)
		}
	}
	return nil
}

// setRow writes one sheet row starting at column A. Cell values are written
// verbatim as strings; the checks upstream already decided how every value
// is interpreted.
func setRow(f *excelize.File, sheet string, row int, cells []string) error {
	if len(cells) == 0 {
		return nil
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, row, err)
	}
	return nil
}
