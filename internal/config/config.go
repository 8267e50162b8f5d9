// Package config defines the rule configuration for the workbook assessment:
// file names, the named columns the checks read, the enumerated note domains
// and the positional mandatory-column mapping.
//
// Everything has a compiled-in default mirroring the source schema; an
// optional YAML file beside the executable overrides individual fields. The
// positional mapping exists to make the completeness check's fragility
// explicit: it is validated against the workbook's actual header row before
// any row is evaluated, so a shifted schema fails fast with a configuration
// error instead of silently checking the wrong columns.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"clickbotcheck/internal/rules"
)

// MandatoryColumn pins one mandatory column by position.
//
// Label names the entry in configuration errors (the defaults use the
// spreadsheet column letters). Header optionally pins the expected header-row
// text at that position; when set, a mismatch is a configuration error.
type MandatoryColumn struct {
	Label    string `yaml:"label"`
	Position int    `yaml:"position"`
	Header   string `yaml:"header,omitempty"`
}

// Config is the full rule configuration for one run.
type Config struct {
	// InputFile and OutputFile are workbook file names, resolved relative to
	// the directory containing the running executable.
	InputFile  string `yaml:"input_file"`
	OutputFile string `yaml:"output_file"`

	// Named columns, looked up in the header row by exact match.
	NoteColumn         string `yaml:"note_column"`
	LengthColumn       string `yaml:"length_column"`
	WidthColumn        string `yaml:"width_column"`
	HeightColumn       string `yaml:"height_column"`
	MaterialTextColumn string `yaml:"material_text_column"`

	// NoteDomains are the five enumerated segment domains of the composite
	// note field, passed into the field validator.
	NoteDomains rules.NoteDomains `yaml:"note_domains"`

	// MandatoryColumns is the positional mandatory set for the completeness
	// check.
	MandatoryColumns []MandatoryColumn `yaml:"mandatory_columns"`
}

// Default returns the configuration matching the source schema: two banner
// rows, header names in the source language, mandatory columns B-J, N, R-W.
func Default() Config {
	mandatory := make([]MandatoryColumn, 0, 16)
	for pos := 2; pos <= 10; pos++ { // B-J
		mandatory = append(mandatory, MandatoryColumn{Label: columnLetter(pos), Position: pos})
	}
	mandatory = append(mandatory, MandatoryColumn{Label: "N", Position: 14})
	for pos := 18; pos <= 23; pos++ { // R-W
		mandatory = append(mandatory, MandatoryColumn{Label: columnLetter(pos), Position: pos})
	}

	return Config{
		InputFile:          "Herstellerdaten für Clickbot-20-05-2025.xlsx",
		OutputFile:         "Clickbot_Bewertung_Ergebnis.xlsx",
		NoteColumn:         "Fert./Prüfhinweis",
		LengthColumn:       "Länge",
		WidthColumn:        "Breite",
		HeightColumn:       "Höhe",
		MaterialTextColumn: "Materialkurztext",
		NoteDomains:        rules.DefaultNoteDomains(),
		MandatoryColumns:   mandatory,
	}
}

// Load reads a YAML override file on top of the defaults.
//
// The loader is deterministic:
//   - Unknown fields are rejected (to avoid silent divergence).
//   - Trailing documents are rejected.
//   - Fields absent from the file keep their default values.
//
// The returned configuration has passed static validation.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	switch err := dec.Decode(&cfg); {
	case err == io.EOF:
		// An empty file overrides nothing.
	case err != nil:
		return Config{}, invalidf("parse %s: %v", path, err)
	default:
		// Ensure there is no second YAML document.
		var trailing any
		if err := dec.Decode(&trailing); err != io.EOF {
			if err == nil {
				return Config{}, invalidf("parse %s: trailing document", path)
			}
			return Config{}, invalidf("parse %s: %v", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load when path exists and returns the validated
// defaults when it does not.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := cfg.Validate(); err != nil {
				return Config{}, err
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("stat config: %w", err)
	}
	return Load(path)
}

// Validate checks the configuration on its face, before any workbook is read.
func (c Config) Validate() error {
	if c.InputFile == "" {
		return invalidf("input_file must not be empty")
	}
	if c.OutputFile == "" {
		return invalidf("output_file must not be empty")
	}
	named := []struct {
		field string
		value string
	}{
		{"note_column", c.NoteColumn},
		{"length_column", c.LengthColumn},
		{"width_column", c.WidthColumn},
		{"height_column", c.HeightColumn},
		{"material_text_column", c.MaterialTextColumn},
	}
	for _, n := range named {
		if n.value == "" {
			return invalidf("%s must not be empty", n.field)
		}
	}
	for i, domain := range c.NoteDomains.Segments() {
		if len(domain) == 0 {
			return invalidf("note domain pos%d must not be empty", i+1)
		}
	}
	if len(c.MandatoryColumns) == 0 {
		return invalidf("mandatory_columns must not be empty")
	}
	seen := make(map[int]string, len(c.MandatoryColumns))
	for _, mc := range c.MandatoryColumns {
		if mc.Label == "" {
			return invalidf("mandatory column at position %d has no label", mc.Position)
		}
		if mc.Position < 1 {
			return invalidf("mandatory column %q: position %d is not a valid column ordinal", mc.Label, mc.Position)
		}
		if prev, dup := seen[mc.Position]; dup {
			return invalidf("mandatory columns %q and %q share position %d", prev, mc.Label, mc.Position)
		}
		seen[mc.Position] = mc.Label
	}
	return nil
}

// Flag column names the assessment appends after the source columns, in
// append order. They are not configurable.
const (
	ColNoteFlag      = "Fehler_Vollständigkeit_Fert./Prüfhinweis"
	ColMandatoryFlag = "Fehler_Vollständigkeit_B-J+N+R-W"
	ColDimensionFlag = "Fehler_Maßprüfung"
	ColAggregateFlag = "Fehler"
)

// FlagColumns returns the four flag column names in append order.
func FlagColumns() []string {
	return []string{ColNoteFlag, ColMandatoryFlag, ColDimensionFlag, ColAggregateFlag}
}

// ValidateHeader checks the configuration against the workbook's actual
// header row. It fails fast with a descriptive error when the schema the
// configuration describes and the schema the workbook carries diverge.
//
// Headers already carrying one of the reserved flag column names are
// rejected: the annotated header would hold the name twice, and every
// by-name lookup resolves to the first match, the source column.
func (c Config) ValidateHeader(header []string) error {
	for i, h := range header {
		for _, reserved := range FlagColumns() {
			if h == reserved {
				return invalidf("header column %d %q is a reserved flag column name", i+1, h)
			}
		}
	}
	named := []struct {
		field string
		value string
	}{
		{"note_column", c.NoteColumn},
		{"length_column", c.LengthColumn},
		{"width_column", c.WidthColumn},
		{"height_column", c.HeightColumn},
		{"material_text_column", c.MaterialTextColumn},
	}
	for _, n := range named {
		if columnIndex(header, n.value) < 0 {
			return invalidf("%s %q not found in header row", n.field, n.value)
		}
	}
	for _, mc := range c.MandatoryColumns {
		if mc.Position > len(header) {
			return invalidf("mandatory column %q: position %d exceeds header width %d", mc.Label, mc.Position, len(header))
		}
		if mc.Header != "" && header[mc.Position-1] != mc.Header {
			return invalidf("mandatory column %q: expected header %q at position %d, found %q",
				mc.Label, mc.Header, mc.Position, header[mc.Position-1])
		}
	}
	return nil
}

// MandatoryPositions returns the mandatory column ordinals in ascending
// order, independent of configuration file ordering.
func (c Config) MandatoryPositions() []int {
	positions := make([]int, 0, len(c.MandatoryColumns))
	for _, mc := range c.MandatoryColumns {
		positions = append(positions, mc.Position)
	}
	sort.Ints(positions)
	return positions
}

// columnIndex returns the 0-based index of the first header cell equal to
// name, or -1.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// columnLetter renders a 1-indexed column ordinal as its spreadsheet letter.
// Only single letters occur in the default schema.
func columnLetter(pos int) string {
	letters := ""
	for pos > 0 {
		pos--
		letters = string(rune('A'+pos%26)) + letters
		pos /= 26
	}
	return letters
}
