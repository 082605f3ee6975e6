// Package inspect models inspection entries as they arrive from form
// intake: one photographed paper form per entry, with the rating and notes
// already transcribed and the coordinates possibly still unknown.
package inspect

import (
	"fmt"
	"strings"
)

// Condition is the three-value rating from the paper form.
type Condition string

const (
	ConditionGood   Condition = "baik"
	ConditionMedium Condition = "sedang"
	ConditionBad    Condition = "buruk"
)

// Valid reports whether c is one of the three known ratings.
func (c Condition) Valid() bool {
	switch c {
	case ConditionGood, ConditionMedium, ConditionBad:
		return true
	}
	return false
}

// ParseCondition normalizes and validates a rating string.
func ParseCondition(s string) (Condition, error) {
	c := Condition(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown condition %q (want baik, sedang or buruk)", s)
	}
	return c, nil
}

// Entry is one digitized inspection form. The coordinate fields hold
// decimal-degree strings when already known; empty strings ask the
// assembler to run extraction on the photo.
type Entry struct {
	No        int       `json:"no"                  yaml:"no"`
	Route     string    `json:"jalur"               yaml:"jalur"`
	Condition Condition `json:"kondisi"             yaml:"kondisi"`
	Notes     string    `json:"keterangan"          yaml:"keterangan"`
	PhotoPath string    `json:"foto_path"           yaml:"foto_path"`
	Latitude  string    `json:"latitude,omitempty"  yaml:"latitude,omitempty"`
	Longitude string    `json:"longitude,omitempty" yaml:"longitude,omitempty"`
}

// HasCoordinates reports whether both coordinate fields are populated, in
// which case extraction is skipped for this entry.
func (e Entry) HasCoordinates() bool {
	return strings.TrimSpace(e.Latitude) != "" && strings.TrimSpace(e.Longitude) != ""
}

// Validate checks the fields intake is responsible for.
func (e Entry) Validate() error {
	if !e.Condition.Valid() {
		return fmt.Errorf("entry %d: unknown condition %q", e.No, e.Condition)
	}
	return nil
}
