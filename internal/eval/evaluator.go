// Package eval runs the row checks over a whole dataset and derives the
// dataset-level outcomes: the annotated table, the valid/invalid partition
// and the quality summary.
//
// It is intentionally split into:
//   - Evaluation (this file): per-row flags, computed independently per row,
//     then attached as flag columns
//   - Partition: the stable split on the aggregate flag, plus the explicit
//     invariant check on the valid half
//   - Summary: failure counts and rates over the full annotated dataset
//
// Evaluation order never matters; the partition and summary read only the
// completed flag set.
package eval

import (
	"fmt"
	"strconv"
	"sync"

	"clickbotcheck/internal/config"
	"clickbotcheck/internal/rules"
	"clickbotcheck/internal/table"
)

// Flag column names appended to the annotated dataset, in this order. The
// canonical definitions live in config, whose ValidateHeader rejects source
// headers already carrying one of them.
const (
	ColNoteFlag      = config.ColNoteFlag
	ColMandatoryFlag = config.ColMandatoryFlag
	ColDimensionFlag = config.ColDimensionFlag
	ColAggregateFlag = config.ColAggregateFlag
)

// FlagColumns returns the four flag column names in append order.
func FlagColumns() []string {
	return config.FlagColumns()
}

// RowFlags holds the check outcomes for one row.
type RowFlags struct {
	Note      rules.Flag
	Mandatory rules.Flag
	Dimension rules.Flag
	Aggregate rules.Flag
}

// Result is the outcome of evaluating one dataset.
type Result struct {
	// Annotated is the source table plus the four flag columns. It is
	// computed once and never mutated afterwards.
	Annotated *table.Table
	// Flags holds one entry per source row, same order.
	Flags []RowFlags
}

// Evaluator applies the configured rules to a dataset.
//
// Workers bounds the number of goroutines evaluating rows; values below 2
// evaluate serially. Rows are independent, so any worker count produces the
// same flags in the same slots.
type Evaluator struct {
	Config  config.Config
	Workers int
}

// namedColumns holds the resolved 0-based indexes of the by-name columns.
type namedColumns struct {
	note         int
	length       int
	width        int
	height       int
	materialText int
}

// Evaluate checks every row and returns the annotated dataset.
//
// The flow:
//  1. Validate the configuration against the actual header row (fails with
//     a configuration error when the schema shifted).
//  2. Compute the three rule flags plus the aggregate for every row.
//  3. Append the flag columns to header and rows.
func (e *Evaluator) Evaluate(src *table.Table) (*Result, error) {
	if src == nil {
		return nil, fmt.Errorf("nil table")
	}
	if err := e.Config.ValidateHeader(src.Header); err != nil {
		return nil, err
	}
	cols, err := resolveNamedColumns(e.Config, src)
	if err != nil {
		return nil, err
	}
	positions := e.Config.MandatoryPositions()

	flags := make([]RowFlags, len(src.Rows))
	e.evaluateRows(src.Rows, cols, positions, flags)

	return &Result{
		Annotated: annotate(src, flags),
		Flags:     flags,
	}, nil
}

// evaluateRows fills flags[i] from rows[i]. With more than one worker the
// index space is split into contiguous chunks; every goroutine writes only
// its own slots, so no synchronization beyond the final wait is needed.
func (e *Evaluator) evaluateRows(rows [][]string, cols namedColumns, positions []int, flags []RowFlags) {
	workers := e.Workers
	if workers > len(rows) {
		workers = len(rows)
	}
	if workers < 2 {
		for i, row := range rows {
			flags[i] = e.evaluateRow(row, cols, positions)
		}
		return
	}

	chunk := (len(rows) + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(rows); lo += chunk {
		hi := lo + chunk
		if hi > len(rows) {
			hi = len(rows)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				flags[i] = e.evaluateRow(rows[i], cols, positions)
			}
		}(lo, hi)
	}
	wg.Wait()
}

func (e *Evaluator) evaluateRow(row []string, cols namedColumns, positions []int) RowFlags {
	note := rules.CheckNote(cell(row, cols.note), e.Config.NoteDomains)
	mandatory := rules.CheckMandatory(row, positions)
	dimension := rules.CheckDimensions(
		cell(row, cols.length),
		cell(row, cols.width),
		cell(row, cols.height),
		cell(row, cols.materialText),
	)
	return RowFlags{
		Note:      note,
		Mandatory: mandatory,
		Dimension: dimension,
		Aggregate: rules.Aggregate(note, mandatory, dimension),
	}
}

func resolveNamedColumns(cfg config.Config, src *table.Table) (namedColumns, error) {
	var cols namedColumns
	lookups := []struct {
		name string
		dst  *int
	}{
		{cfg.NoteColumn, &cols.note},
		{cfg.LengthColumn, &cols.length},
		{cfg.WidthColumn, &cols.width},
		{cfg.HeightColumn, &cols.height},
		{cfg.MaterialTextColumn, &cols.materialText},
	}
	for _, l := range lookups {
		idx, ok := src.ColumnIndex(l.name)
		if !ok {
			// ValidateHeader ran first, so this indicates a broken caller.
			return namedColumns{}, fmt.Errorf("column %q missing from header", l.name)
		}
		*l.dst = idx
	}
	return cols, nil
}

// cell is a bounds-safe row access; rows are padded to header width, so a
// miss only happens for hand-built tables.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// annotate appends the four flag columns to a copy of the dataset. Source
// rows are not mutated.
func annotate(src *table.Table, flags []RowFlags) *table.Table {
	header := make([]string, 0, len(src.Header)+4)
	header = append(header, src.Header...)
	header = append(header, FlagColumns()...)

	rows := make([][]string, len(src.Rows))
	for i, row := range src.Rows {
		annotated := make([]string, 0, len(row)+4)
		annotated = append(annotated, row...)
		f := flags[i]
		annotated = append(annotated,
			flagCell(f.Note),
			flagCell(f.Mandatory),
			flagCell(f.Dimension),
			flagCell(f.Aggregate),
		)
		rows[i] = annotated
	}
	return &table.Table{Header: header, Rows: rows}
}

func flagCell(f rules.Flag) string { return strconv.Itoa(int(f)) }
