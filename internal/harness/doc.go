// Package harness provides conformance testing for the object engine.
//
// The harness loads YAML scenarios describing construction attempts and
// their expected outcomes, runs them against the built-in type registry
// (optionally extended with CUE-declared types), and compares the
// resulting trace against golden files.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	cue_types: |
//	  types: campaign: { ... }       # optional extra types
//	steps:
//	  - construct: relationship
//	    positional: [indicator--..., indicates, malware--...]
//	    props: { key: value }
//	    expect:
//	      ok: true
//	  - construct: relationship
//	    expect:
//	      error: missing_properties
//	      properties: [relationship_type, source_ref, target_ref]
//
// # Expectation Types
//
// An expect clause is either ok: true, or an error kind with optional
// detail assertions:
//
//   - missing_properties: properties lists the expected missing names
//   - extra_properties: properties lists the expected undeclared names
//   - invalid_value: property and reason name the expected failure
//   - multiple_values: property names the doubly-supplied property
//   - unknown_type: the discriminator has no registered schema
//
// # Deterministic Testing
//
// Every scenario runs with a frozen clock (2017-01-01T12:34:56Z) and a
// sequential id generator shared across its steps, so generated ids and
// timestamps are identical on every run and golden comparison is exact.
package harness
