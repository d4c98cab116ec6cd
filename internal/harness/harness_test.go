package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenariosAgainstGolden(t *testing.T) {
	scenarios, err := LoadScenarioDir("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			require.NoError(t, RunWithGolden(t, s))
		})
	}
}

func TestRunChecksExpectations(t *testing.T) {
	s := &Scenario{
		Name: "expect-mismatch",
		Steps: []Step{
			{
				Construct: "malware",
				Props:     map[string]any{"labels": []any{"ransomware"}, "name": "Cryptolocker"},
				Expect:    Expect{Error: "missing_properties"},
			},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "construction succeeded")
}

func TestRunIsDeterministic(t *testing.T) {
	s := &Scenario{
		Name: "deterministic",
		Steps: []Step{
			{
				Construct: "identity",
				Props:     map[string]any{"name": "ACME", "identity_class": "organization"},
				Expect:    Expect{OK: true},
			},
		},
	}

	first, err := Run(s)
	require.NoError(t, err)
	second, err := Run(s)
	require.NoError(t, err)

	assert.True(t, first.Pass)
	assert.True(t, second.Pass)
	// Frozen clock and per-run id sequence: identical traces every run.
	assert.Equal(t, first.Trace, second.Trace)
}

func TestRunRejectsBadCUETypes(t *testing.T) {
	s := &Scenario{
		Name:     "bad-cue",
		CUETypes: `types: broken: {properties: {name: {required: true}}}`,
		Steps: []Step{
			{Construct: "broken", Expect: Expect{OK: true}},
		},
	}

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile cue_types")
}

func TestRunUnknownTypeStep(t *testing.T) {
	s := &Scenario{
		Name: "unknown",
		Steps: []Step{
			{Construct: "observed-data", Expect: Expect{Error: "unknown_type"}},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	require.Len(t, result.Trace, 1)
	assert.Equal(t, "Unknown object type 'observed-data'.", result.Trace[0].Err)
}
