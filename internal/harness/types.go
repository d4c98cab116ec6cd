package harness

// Scenario defines a conformance test scenario: a sequence of
// construction attempts with expected outcomes.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// CUETypes optionally declares extra object types as inline CUE
	// source, compiled and registered alongside the built-ins.
	CUETypes string `yaml:"cue_types,omitempty"`

	// Steps is the ordered list of construction attempts.
	Steps []Step `yaml:"steps"`
}

// Step is one construction attempt.
type Step struct {
	// Construct names the object type to construct.
	Construct string `yaml:"construct"`

	// Positional supplies positional arguments, mapped onto the type's
	// positional property names in order.
	Positional []any `yaml:"positional,omitempty"`

	// Props supplies keyword properties.
	Props map[string]any `yaml:"props,omitempty"`

	// Expect states the required outcome.
	Expect Expect `yaml:"expect"`
}

// Expect is the required outcome of a step: success, or a specific error
// kind with optional detail assertions.
type Expect struct {
	// OK expects construction to succeed.
	OK bool `yaml:"ok,omitempty"`

	// Error names the expected error kind: missing_properties,
	// extra_properties, invalid_value, multiple_values, or unknown_type.
	Error string `yaml:"error,omitempty"`

	// Properties lists the expected property names for
	// missing_properties and extra_properties.
	Properties []string `yaml:"properties,omitempty"`

	// Property names the expected property for invalid_value and
	// multiple_values.
	Property string `yaml:"property,omitempty"`

	// Reason is the expected failure reason for invalid_value.
	Reason string `yaml:"reason,omitempty"`
}

// StepRecord captures one step's actual outcome for the trace.
type StepRecord struct {
	// Construct echoes the step's type name.
	Construct string

	// OK reports whether construction succeeded.
	OK bool

	// Canonical is the object's canonical text when OK.
	Canonical string

	// Err is the error message when construction failed.
	Err string
}

// Result is the outcome of running a scenario.
type Result struct {
	// Pass is true when every step met its expect clause.
	Pass bool

	// Failures describes each unmet expectation.
	Failures []string

	// Trace records every step's actual outcome in order.
	Trace []StepRecord
}
