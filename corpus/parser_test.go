package corpus_test

import (
	"os"
	"strings"
	"testing"

	"github.com/awahed/dtcref"
	"github.com/awahed/dtcref/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses a single block", func(t *testing.T) {
		t.Parallel()

		input := `Error Code: P0300
Description: Random/Multiple Cylinder Misfire Detected
Severity: High
System: Engine
Possible Causes:
- Spark plug issues
- Fuel injector problems
Recommended Actions:
- Inspect spark plugs and wires
`

		records, err := corpus.Parse(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "P0300", records[0].Code)
		assert.Equal(t, "Random/Multiple Cylinder Misfire Detected", records[0].Description)
		assert.Equal(t, dtcref.SeverityHigh, records[0].Severity)
		assert.Equal(t, "Engine", records[0].System)
		assert.Equal(t, []string{"Spark plug issues", "Fuel injector problems"}, records[0].Causes)
		assert.Equal(t, []string{"Inspect spark plugs and wires"}, records[0].Actions)
	})

	t.Run("parses the testdata corpus", func(t *testing.T) {
		t.Parallel()

		f, err := os.Open("testdata/codes.txt")
		require.NoError(t, err)
		defer f.Close()

		records, err := corpus.Parse(f)

		require.NoError(t, err)
		require.Len(t, records, 4)

		// Records appear in corpus order.
		assert.Equal(t, "P0300", records[0].Code)
		assert.Len(t, records[0].Causes, 5)
		assert.Equal(t, "Spark plug issues", records[0].Causes[0])
		assert.Equal(t, "U0100", records[3].Code)
		assert.Equal(t, dtcref.SeverityCritical, records[3].Severity)
	})

	t.Run("normalizes lowercase codes", func(t *testing.T) {
		t.Parallel()

		input := "Error Code: p0300\nDescription: Misfire\nSeverity: High\nSystem: Engine\n"

		records, err := corpus.Parse(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, "P0300", records[0].Code)
	})

	t.Run("rejects duplicate codes with the offending line", func(t *testing.T) {
		t.Parallel()

		input := `Error Code: P0300
Description: Misfire
Severity: High
System: Engine

Error Code: P0300
Description: Misfire again
Severity: Low
System: Engine
`

		records, err := corpus.Parse(strings.NewReader(input))

		assert.Nil(t, records)
		var loadErr *dtcref.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, 6, loadErr.Line)
		assert.Contains(t, loadErr.Reason, "duplicate code P0300")
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		t.Parallel()

		input := "Error Code: X9999\nDescription: Bogus\nSeverity: Low\nSystem: Engine\n"

		_, err := corpus.Parse(strings.NewReader(input))

		var loadErr *dtcref.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, 1, loadErr.Line)
		assert.Contains(t, loadErr.Reason, "malformed code")
	})

	t.Run("rejects empty descriptions", func(t *testing.T) {
		t.Parallel()

		input := "Error Code: P0300\nDescription:\nSeverity: High\nSystem: Engine\n"

		_, err := corpus.Parse(strings.NewReader(input))

		var loadErr *dtcref.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Contains(t, loadErr.Reason, "description required")
	})

	t.Run("rejects unrecognized severity tokens", func(t *testing.T) {
		t.Parallel()

		input := "Error Code: P0300\nDescription: Misfire\nSeverity: Severe\nSystem: Engine\n"

		_, err := corpus.Parse(strings.NewReader(input))

		var loadErr *dtcref.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, 3, loadErr.Line)
		assert.Contains(t, loadErr.Reason, `unrecognized severity "Severe"`)
	})

	t.Run("rejects bullets outside a list section", func(t *testing.T) {
		t.Parallel()

		input := "Error Code: P0300\n- stray bullet\n"

		_, err := corpus.Parse(strings.NewReader(input))

		var loadErr *dtcref.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, 2, loadErr.Line)
	})

	t.Run("rejects fields before Error Code", func(t *testing.T) {
		t.Parallel()

		input := "Description: orphaned\n"

		_, err := corpus.Parse(strings.NewReader(input))

		var loadErr *dtcref.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, 1, loadErr.Line)
	})

	t.Run("returns no records for empty input", func(t *testing.T) {
		t.Parallel()

		records, err := corpus.Parse(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
