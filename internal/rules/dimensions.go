package rules

import (
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// measurementPattern recognizes textual measurements in free text, e.g.
// "12×34", "12x34", "12 X 34", "12*34", "12/34".
var measurementPattern = regexp.MustCompile(`\d{1,4}[\s×xX*/]{1,3}\d{1,4}`)

// CheckDimensions validates the plausibility of the three dimension fields.
//
// Contract:
//   - An empty dimension cell counts as 0.
//   - A non-empty cell that does not parse as a number fails the whole check
//     for this row (conversion failure, recovered locally as a flag).
//   - If all three dimensions are 0, the material text must carry a textual
//     measurement; otherwise the row passes with no range validation.
func CheckDimensions(length, width, height, materialText string) Flag {
	l, ok := dimensionValue(length)
	if !ok {
		return Fail
	}
	w, ok := dimensionValue(width)
	if !ok {
		return Fail
	}
	h, ok := dimensionValue(height)
	if !ok {
		return Fail
	}
	if l == 0 && w == 0 && h == 0 {
		if measurementPattern.MatchString(materialText) {
			return Pass
		}
		return Fail
	}
	return Pass
}

// dimensionValue converts a raw dimension cell to a number. Missing cells
// are 0; whitespace-only or non-numeric content is a conversion failure.
func dimensionValue(raw string) (float64, bool) {
	if raw == "" {
		return 0, true
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		// cast converts the empty string to 0; whitespace-only cells must
		// fail instead of passing as a missing value.
		return 0, false
	}
	v, err := cast.ToFloat64E(trimmed)
	if err != nil {
		return 0, false
	}
	return v, true
}
