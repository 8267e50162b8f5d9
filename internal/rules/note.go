package rules

import "strings"

// NoteDomains holds the five enumerated domains of the composite
// production/inspection note, one per slash-separated segment position.
// Membership is exact and case-sensitive.
type NoteDomains struct {
	Pos1 []string `yaml:"pos1"`
	Pos2 []string `yaml:"pos2"`
	Pos3 []string `yaml:"pos3"`
	Pos4 []string `yaml:"pos4"`
	Pos5 []string `yaml:"pos5"`
}

// DefaultNoteDomains returns the fixed domains of the source schema.
func DefaultNoteDomains() NoteDomains {
	return NoteDomains{
		Pos1: []string{"OHNE", "1", "2", "3"},
		Pos2: []string{"N", "3.2", "3.1", "2.2", "2.1"},
		Pos3: []string{"N", "CL1", "CL2", "CL3"},
		Pos4: []string{"N", "J"},
		Pos5: []string{"N", "A1", "A2", "A3", "A5", "A+"},
	}
}

// Segments returns the domains in positional order.
func (d NoteDomains) Segments() [][]string {
	return [][]string{d.Pos1, d.Pos2, d.Pos3, d.Pos4, d.Pos5}
}

// CheckNote validates the composite note field against the five domains.
//
// Contract:
//   - Empty value (missing cell) fails.
//   - The value must split on "/" into exactly 5 segments; each segment is
//     trimmed of surrounding whitespace before comparison.
//   - Segment i must be a member of domain i.
func CheckNote(value string, domains NoteDomains) Flag {
	if value == "" {
		return Fail
	}
	segments := strings.Split(value, "/")
	if len(segments) != 5 {
		return Fail
	}
	for i, domain := range domains.Segments() {
		if !containsValue(domain, strings.TrimSpace(segments[i])) {
			return Fail
		}
	}
	return Pass
}

func containsValue(domain []string, v string) bool {
	for _, d := range domain {
		if d == v {
			return true
		}
	}
	return false
}
