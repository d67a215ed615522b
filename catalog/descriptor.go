package catalog

import (
	"fmt"
	"strings"

	"github.com/iayr1/algovista-sub001/widget"
)

// Difficulty is the audience level of an algorithm.
type Difficulty uint8

const (
	DifficultyUnknown Difficulty = iota
	Beginner
	Intermediate
	Advanced
)

var difficultyNames = [...]string{
	DifficultyUnknown: "Unknown",
	Beginner:          "Beginner",
	Intermediate:      "Intermediate",
	Advanced:          "Advanced",
}

// String returns the display name of the difficulty.
func (d Difficulty) String() string {
	if int(d) < len(difficultyNames) {
		return difficultyNames[d]
	}
	return fmt.Sprintf("Difficulty(%d)", uint8(d))
}

// Valid reports whether d is one of Beginner, Intermediate or Advanced.
func (d Difficulty) Valid() bool {
	return d >= Beginner && d <= Advanced
}

// Badge returns the CSS class used for the difficulty label.
func (d Difficulty) Badge() string {
	switch d {
	case Beginner:
		return "badge-beginner"
	case Intermediate:
		return "badge-intermediate"
	case Advanced:
		return "badge-advanced"
	default:
		return "badge-unknown"
	}
}

// ParseDifficulty parses a difficulty name, ignoring case.
func ParseDifficulty(s string) (Difficulty, error) {
	for d := Beginner; d <= Advanced; d++ {
		if strings.EqualFold(s, difficultyNames[d]) {
			return d, nil
		}
	}
	return DifficultyUnknown, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// MarshalText encodes the difficulty as its name.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a difficulty name.
func (d *Difficulty) UnmarshalText(text []byte) error {
	v, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Formula is a labeled formula, displayed verbatim and never evaluated.
type Formula struct {
	Label string `json:"label"`
	Expr  string `json:"expr"`
}

// CodeSample is literal source text, displayed verbatim and never executed.
type CodeSample struct {
	Language string `json:"language"`
	Source   string `json:"source"`
}

// Descriptor is the static record describing one algorithm.
type Descriptor struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Category        string      `json:"category"`
	Type            string      `json:"type"`
	Difficulty      Difficulty  `json:"difficulty"`
	Summary         string      `json:"summary"`
	Definition      string      `json:"definition"`
	Characteristics []string    `json:"characteristics"`
	UseCases        []string    `json:"use_cases"`
	Formulas        []Formula   `json:"formulas"`
	Code            CodeSample  `json:"code"`
	Widget          widget.Kind `json:"widget"`
}

// Formula returns the formula with the given label.
func (d Descriptor) Formula(label string) (string, bool) {
	for _, f := range d.Formulas {
		if f.Label == label {
			return f.Expr, true
		}
	}
	return "", false
}

// clone returns a deep copy so callers cannot mutate the table.
func (d Descriptor) clone() Descriptor {
	d.Characteristics = append([]string(nil), d.Characteristics...)
	d.UseCases = append([]string(nil), d.UseCases...)
	d.Formulas = append([]Formula(nil), d.Formulas...)
	return d
}

// validate checks that every field is populated.
func (d Descriptor) validate() error {
	missing := func(field string) error {
		return &IncompleteError{ID: d.ID, Field: field}
	}

	if strings.TrimSpace(d.ID) == "" {
		return missing("id")
	}
	texts := []struct {
		field, value string
	}{
		{"name", d.Name},
		{"category", d.Category},
		{"type", d.Type},
		{"summary", d.Summary},
		{"definition", d.Definition},
		{"code.language", d.Code.Language},
		{"code.source", d.Code.Source},
	}
	for _, t := range texts {
		if strings.TrimSpace(t.value) == "" {
			return missing(t.field)
		}
	}
	if !d.Difficulty.Valid() {
		return fmt.Errorf("%w: %s has %d", ErrInvalidDifficulty, d.ID, uint8(d.Difficulty))
	}
	if len(d.Characteristics) == 0 {
		return missing("characteristics")
	}
	if len(d.UseCases) == 0 {
		return missing("use_cases")
	}
	if len(d.Formulas) == 0 {
		return missing("formulas")
	}
	seen := make(map[string]struct{}, len(d.Formulas))
	for _, f := range d.Formulas {
		if f.Label == "" || f.Expr == "" {
			return missing("formulas")
		}
		if _, dup := seen[f.Label]; dup {
			return fmt.Errorf("%w: %s formula %q", ErrDuplicateFormula, d.ID, f.Label)
		}
		seen[f.Label] = struct{}{}
	}
	if !d.Widget.Valid() {
		return missing("widget")
	}
	return nil
}
