package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// LoadScenarioDir loads every *.yaml scenario under dir, sorted by file
// name for deterministic test order.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	var scenarios []*Scenario
	for _, path := range matches {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validate checks the structural requirements of a scenario definition.
func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario has no steps")
	}
	for i, step := range s.Steps {
		if step.Construct == "" {
			return fmt.Errorf("step %d has no construct type", i)
		}
		if err := step.Expect.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// validate checks that an expect clause is exactly one of success or a
// known error kind.
func (e *Expect) validate() error {
	if e.OK && e.Error != "" {
		return fmt.Errorf("expect cannot be both ok and error %q", e.Error)
	}
	if !e.OK && e.Error == "" {
		return fmt.Errorf("expect must set ok or an error kind")
	}
	switch e.Error {
	case "", "missing_properties", "extra_properties", "invalid_value",
		"multiple_values", "unknown_type":
		return nil
	default:
		return fmt.Errorf("unknown expect error kind %q", e.Error)
	}
}
