package eval

import (
	"fmt"
	"strings"

	"clickbotcheck/internal/table"
)

// Partition is the stable bipartition of the annotated dataset on the
// aggregate flag: every source row lands in exactly one half, in source
// order. Both halves share the annotated header; an empty half still
// carries it.
type Partition struct {
	Valid   *table.Table
	Invalid *table.Table
}

// Split partitions the annotated rows on the aggregate flag. Rows are not
// copied; the halves alias the annotated table, which is never mutated after
// evaluation.
func Split(res *Result) Partition {
	valid := &table.Table{Header: res.Annotated.Header, Rows: [][]string{}}
	invalid := &table.Table{Header: res.Annotated.Header, Rows: [][]string{}}
	for i, row := range res.Annotated.Rows {
		if res.Flags[i].Aggregate.Failed() {
			invalid.Rows = append(invalid.Rows, row)
		} else {
			valid.Rows = append(valid.Rows, row)
		}
	}
	return Partition{Valid: valid, Invalid: invalid}
}

// VerifyValidPartition checks the construction invariant that no row of the
// valid half carries a failing flag cell. The split predicate makes a
// violation impossible for datasets annotated by Evaluate; the check exists
// to catch corruption between annotation and rendering instead of silently
// trusting the split.
//
// Flag columns are located by name in the partition header, the same way the
// renderer locates them.
func VerifyValidPartition(p Partition) error {
	if p.Valid == nil {
		return fmt.Errorf("valid partition is nil")
	}
	for _, name := range FlagColumns() {
		col, ok := p.Valid.ColumnIndex(name)
		if !ok {
			return fmt.Errorf("valid partition: flag column %q missing from header", name)
		}
		for i := range p.Valid.Rows {
			if strings.TrimSpace(p.Valid.Cell(i, col)) == "1" {
				return fmt.Errorf("valid partition: row %d carries failing flag %q", i+1, name)
			}
		}
	}
	return nil
}
