// Package importer loads activity batches from YAML files and converts them
// into domain activities for transactional bulk creation.
package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level YAML structure for a batch import.
type ImportSchema struct {
	Activities []ActivityImport `yaml:"activities"`
}

// ActivityImport defines one activity in the import file. Which fields are
// required depends on the policy.
type ActivityImport struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Policy      string `yaml:"policy"`

	// strict
	Start string `yaml:"start,omitempty"` // YYYY-MM-DD HH:MM
	End   string `yaml:"end,omitempty"`

	// flexible
	Every *int `yaml:"every,omitempty"` // cadence in days

	// deadline
	Due string `yaml:"due,omitempty"` // YYYY-MM-DD HH:MM

	// recurring_strict
	Recurrence  *RecurrenceImport `yaml:"recurrence,omitempty"`
	WindowStart string            `yaml:"window_start,omitempty"` // HH:MM
	WindowEnd   string            `yaml:"window_end,omitempty"`
}

// RecurrenceImport defines the recurrence rule for recurring activities.
type RecurrenceImport struct {
	Freq      string `yaml:"freq"`
	Interval  int    `yaml:"interval,omitempty"`
	Weekdays  string `yaml:"weekdays,omitempty"` // e.g. "MO,WE,FR"
	MonthDays []int  `yaml:"month_days,omitempty"`
	SetPos    []int  `yaml:"set_pos,omitempty"`
	Start     string `yaml:"start"` // YYYY-MM-DD
	End       string `yaml:"end,omitempty"`
}

// LoadImportSchema reads and parses the YAML import file at path.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var schema ImportSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &schema, nil
}
