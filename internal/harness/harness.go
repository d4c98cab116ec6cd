package harness

import (
	"errors"
	"fmt"
	"time"

	"github.com/roach88/stixcore/cuedef"
	"github.com/roach88/stixcore/internal/testutil"
	"github.com/roach88/stixcore/object"
	"github.com/roach88/stixcore/schema"
	"github.com/roach88/stixcore/sdo"
)

// frozenTime is the fixed construction instant every scenario runs at.
var frozenTime = time.Date(2017, 1, 1, 12, 34, 56, 0, time.UTC)

// Run executes a scenario against the built-in registry (plus any
// CUE-declared types) with a frozen clock and sequential ids, and checks
// every step's outcome against its expect clause.
func Run(s *Scenario) (*Result, error) {
	reg, err := buildRegistry(s)
	if err != nil {
		return nil, err
	}

	opts := []object.Option{
		object.WithClock(testutil.NewFrozenClock(frozenTime)),
		object.WithIDGenerator(testutil.SequentialIDs()),
	}

	result := &Result{Pass: true}
	for i, step := range s.Steps {
		record, stepErr := runStep(reg, step, opts)
		result.Trace = append(result.Trace, record)

		if failure := checkExpect(i, step, record, stepErr); failure != "" {
			result.Pass = false
			result.Failures = append(result.Failures, failure)
		}
	}
	return result, nil
}

// buildRegistry assembles the scenario's registry: every built-in type
// plus any inline CUE-declared types, frozen before the first step runs.
func buildRegistry(s *Scenario) (*schema.Registry, error) {
	b := schema.NewRegistryBuilder()
	builtins := sdo.Registry()
	for _, name := range builtins.TypeNames() {
		typ, _ := builtins.Lookup(name)
		if err := b.Register(typ); err != nil {
			return nil, err
		}
	}

	if s.CUETypes != "" {
		types, err := cuedef.LoadString(s.CUETypes)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: compile cue_types: %w", s.Name, err)
		}
		for _, typ := range types {
			if err := b.Register(typ); err != nil {
				return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
			}
		}
	}

	return b.Freeze(), nil
}

// runStep performs one construction attempt. The record carries what the
// trace needs; the typed error goes back to the expect check.
func runStep(reg *schema.Registry, step Step, opts []object.Option) (StepRecord, error) {
	record := StepRecord{Construct: step.Construct}

	typ, ok := reg.Lookup(step.Construct)
	if !ok {
		err := &object.UnknownTypeError{TypeName: step.Construct}
		record.Err = err.Error()
		return record, err
	}

	o, err := object.Construct(typ, step.Positional, step.Props, opts...)
	if err != nil {
		record.Err = err.Error()
		return record, err
	}

	record.OK = true
	record.Canonical = o.String()
	return record, nil
}

// checkExpect compares a step's actual outcome to its expect clause and
// returns a failure description, or "" when the expectation holds.
func checkExpect(index int, step Step, record StepRecord, err error) string {
	e := step.Expect

	if e.OK {
		if !record.OK {
			return fmt.Sprintf("step %d (%s): expected success, got: %s",
				index, step.Construct, record.Err)
		}
		return ""
	}

	if record.OK {
		return fmt.Sprintf("step %d (%s): expected %s error, construction succeeded",
			index, step.Construct, e.Error)
	}

	switch e.Error {
	case "missing_properties":
		var missing *object.MissingPropertiesError
		if !errors.As(err, &missing) {
			return kindMismatch(index, step, err)
		}
		if e.Properties != nil && !equalStrings(missing.Properties, e.Properties) {
			return fmt.Sprintf("step %d (%s): missing properties %v, expected %v",
				index, step.Construct, missing.Properties, e.Properties)
		}
	case "extra_properties":
		var extra *object.ExtraPropertiesError
		if !errors.As(err, &extra) {
			return kindMismatch(index, step, err)
		}
		if e.Properties != nil && !equalStrings(extra.Properties, e.Properties) {
			return fmt.Sprintf("step %d (%s): extra properties %v, expected %v",
				index, step.Construct, extra.Properties, e.Properties)
		}
	case "invalid_value":
		var invalid *object.InvalidValueError
		if !errors.As(err, &invalid) {
			return kindMismatch(index, step, err)
		}
		if e.Property != "" && invalid.Property != e.Property {
			return fmt.Sprintf("step %d (%s): invalid property %q, expected %q",
				index, step.Construct, invalid.Property, e.Property)
		}
		if e.Reason != "" && invalid.Reason != e.Reason {
			return fmt.Sprintf("step %d (%s): reason %q, expected %q",
				index, step.Construct, invalid.Reason, e.Reason)
		}
	case "multiple_values":
		var multiple *object.MultipleValuesError
		if !errors.As(err, &multiple) {
			return kindMismatch(index, step, err)
		}
		if e.Property != "" && multiple.Property != e.Property {
			return fmt.Sprintf("step %d (%s): conflicting property %q, expected %q",
				index, step.Construct, multiple.Property, e.Property)
		}
	case "unknown_type":
		var unknown *object.UnknownTypeError
		if !errors.As(err, &unknown) {
			return kindMismatch(index, step, err)
		}
	}
	return ""
}

func kindMismatch(index int, step Step, err error) string {
	return fmt.Sprintf("step %d (%s): expected %s error, got: %v",
		index, step.Construct, step.Expect.Error, err)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
