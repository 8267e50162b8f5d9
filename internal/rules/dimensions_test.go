package rules

import "testing"

// TestCheckDimensions_NonZeroDimensionPasses verifies any non-zero dimension
// passes regardless of the material text.
func TestCheckDimensions_NonZeroDimensionPasses(t *testing.T) {
	testCases := []struct {
		length, width, height string
	}{
		{"5", "0", "0"},
		{"0", "12.5", "0"},
		{"0", "0", "7"},
		{"120", "80", "60"},
		{"-5", "0", "0"}, // no range validation beyond zero
	}

	for _, tc := range testCases {
		got := CheckDimensions(tc.length, tc.width, tc.height, "no dims here")
		if got != Pass {
			t.Errorf("CheckDimensions(%q, %q, %q) = %d, expected pass", tc.length, tc.width, tc.height, got)
		}
	}
}

// TestCheckDimensions_AllZeroNeedsTextualMeasurement verifies the free-text
// fallback when every dimension is zero or missing.
func TestCheckDimensions_AllZeroNeedsTextualMeasurement(t *testing.T) {
	testCases := []struct {
		text     string
		expected Flag
	}{
		{"Box 12x34cm", Pass},
		{"Blech 12×34", Pass},
		{"Profil 12 X 34", Pass},
		{"Platte 12*34", Pass},
		{"Rohr 12/34", Pass},
		{"1234x5678 Träger", Pass},
		{"12345x2", Pass}, // matches on the trailing digits of the run
		{"no dims here", Fail},
		{"", Fail},
		{"x12", Fail},
		{"12 bis 34", Fail}, // letters are not separator characters
	}

	for _, tc := range testCases {
		got := CheckDimensions("0", "", "0", tc.text)
		if got != tc.expected {
			t.Errorf("CheckDimensions(all zero, %q) = %d, expected %d", tc.text, got, tc.expected)
		}
	}
}

// TestCheckDimensions_MissingTreatedAsZero verifies empty dimension cells
// count as zero, triggering the textual fallback.
func TestCheckDimensions_MissingTreatedAsZero(t *testing.T) {
	if got := CheckDimensions("", "", "", "Kiste 10x20"); got != Pass {
		t.Errorf("CheckDimensions(all missing, with text measurement) = %d, expected pass", got)
	}
	if got := CheckDimensions("", "", "", "kein Maß"); got != Fail {
		t.Errorf("CheckDimensions(all missing, no text measurement) = %d, expected fail", got)
	}
}

// TestCheckDimensions_ConversionFailure verifies non-numeric dimension cells
// fail the whole check even when other fields look fine.
func TestCheckDimensions_ConversionFailure(t *testing.T) {
	testCases := []struct {
		length, width, height string
	}{
		{"abc", "0", "0"},
		{"12,5", "0", "0"}, // decimal comma does not parse
		{"5", "n/a", "0"},
		{"5", "0", " "}, // whitespace-only is not a number
		{" ", "5", "0"},
		{" ", "\t", "  "}, // all unparsable; the measurement text is no rescue
	}

	for _, tc := range testCases {
		got := CheckDimensions(tc.length, tc.width, tc.height, "Box 12x34cm")
		if got != Fail {
			t.Errorf("CheckDimensions(%q, %q, %q) = %d, expected fail on conversion", tc.length, tc.width, tc.height, got)
		}
	}
}

// TestCheckDimensions_ParsesSurroundingWhitespace verifies padded numeric
// cells still convert.
func TestCheckDimensions_ParsesSurroundingWhitespace(t *testing.T) {
	if got := CheckDimensions(" 12 ", "0", "0", ""); got != Pass {
		t.Errorf("CheckDimensions(%q) = %d, expected pass", " 12 ", got)
	}
}
