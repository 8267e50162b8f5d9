package rules

// Flag is the outcome of one check for one row: 0 passes, 1 fails.
// The numeric form is part of the report contract; flag cells in the
// rendered workbook hold exactly these values.
type Flag int

const (
	Pass Flag = 0
	Fail Flag = 1
)

// Failed reports whether the flag marks a rule violation.
func (f Flag) Failed() bool { return f != Pass }

// Aggregate folds per-rule flags into the overall row verdict: the numeric
// maximum, so a single failing rule fails the row.
func Aggregate(flags ...Flag) Flag {
	agg := Pass
	for _, f := range flags {
		if f > agg {
			agg = f
		}
	}
	return agg
}
