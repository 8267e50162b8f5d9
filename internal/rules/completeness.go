package rules

import "strings"

// CheckMandatory verifies that every mandatory column of the row is
// populated. Positions are 1-indexed column ordinals in the source schema's
// original column order; name lookup is deliberately not used here because
// the source sheet may carry duplicate or renamed headers.
//
// A position beyond the row's width counts as missing. Whitespace-only
// values count as empty.
func CheckMandatory(row []string, positions []int) Flag {
	for _, pos := range positions {
		if pos < 1 || pos > len(row) {
			return Fail
		}
		if strings.TrimSpace(row[pos-1]) == "" {
			return Fail
		}
	}
	return Pass
}
