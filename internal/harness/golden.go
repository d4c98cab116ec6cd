package harness

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares its trace against a
// golden file in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files are the source of truth for expected canonical output:
// any change to serialization order, timestamp formatting, or error
// phrasing shows up as a golden diff.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	for _, failure := range result.Failures {
		t.Errorf("%s: %s", scenario.Name, failure)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, renderTrace(scenario, result))

	return nil
}

// renderTrace produces the deterministic textual trace compared against
// the golden file: one block per step, canonical text for successes and
// the full error message for failures.
func renderTrace(scenario *Scenario, result *Result) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "scenario: %s\n", scenario.Name)
	for i, record := range result.Trace {
		if record.OK {
			fmt.Fprintf(&buf, "--- step %d: %s: ok\n", i, record.Construct)
			buf.WriteString(record.Canonical)
			buf.WriteByte('\n')
		} else {
			fmt.Fprintf(&buf, "--- step %d: %s: error\n", i, record.Construct)
			buf.WriteString(record.Err)
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}
