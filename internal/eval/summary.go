package eval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"clickbotcheck/internal/table"
)

// SummaryRow is one line of the quality summary: a label, how many rows fail
// the rule, and the failure rate as a percentage string.
type SummaryRow struct {
	Label string
	Count int
	Rate  string
}

// Summarize computes the four summary rows over the full annotated dataset,
// in report order: the aggregate first, labeled with the total row count,
// then mandatory completeness, note completeness and dimension validity.
//
// Counts sum the flag cells leniently: an unparsable cell counts as 0, so a
// damaged cell can never abort the summary. Rates are percentages of the
// total row count; an empty dataset yields 0 rates rather than an error.
func Summarize(annotated *table.Table) ([]SummaryRow, error) {
	if annotated == nil {
		return nil, fmt.Errorf("nil table")
	}
	total := len(annotated.Rows)
	entries := []struct {
		label  string
		column string
	}{
		{fmt.Sprintf("Total(%d)", total), ColAggregateFlag},
		{"Mandatory-field completeness", ColMandatoryFlag},
		{"Note-field completeness", ColNoteFlag},
		{"Dimension validity", ColDimensionFlag},
	}

	rows := make([]SummaryRow, 0, len(entries))
	for _, e := range entries {
		col, ok := annotated.ColumnIndex(e.column)
		if !ok {
			return nil, fmt.Errorf("flag column %q missing from annotated header", e.column)
		}
		count := 0
		for i := range annotated.Rows {
			count += flagValue(annotated.Cell(i, col))
		}
		rows = append(rows, SummaryRow{Label: e.label, Count: count, Rate: FormatRate(count, total)})
	}
	return rows, nil
}

// flagValue coerces one flag cell to its numeric value, treating anything
// unparsable as 0.
func flagValue(raw string) int {
	v, err := cast.ToIntE(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}

// FormatRate renders count/total as a percentage rounded to two decimals,
// using the minimal decimal representation with at least one decimal digit:
// 3 of 10 is "30.0%", 1 of 3 is "33.33%", 0 of 0 is "0.0%". Exact ties at
// the second decimal round to even, so 1 of 32 is "3.12%".
func FormatRate(count, total int) string {
	rate := 0.0
	if total > 0 {
		rate = math.RoundToEven(float64(count)/float64(total)*100*100) / 100
	}
	s := strconv.FormatFloat(rate, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "%"
}
