package corpus_test

import (
	"strings"
	"testing"

	"github.com/awahed/dtcref"
	"github.com/awahed/dtcref/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	t.Parallel()

	header := "code,description,severity,system,possible_causes,recommended_actions\n"

	t.Run("parses rows with pipe-separated lists", func(t *testing.T) {
		t.Parallel()

		input := header +
			`P0300,Random/Multiple Cylinder Misfire Detected,High,Engine,Spark plug issues | Fuel injector problems,Inspect spark plugs | Check fuel injectors` + "\n"

		records, err := corpus.ParseCSV(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "P0300", records[0].Code)
		assert.Equal(t, dtcref.SeverityHigh, records[0].Severity)
		assert.Equal(t, []string{"Spark plug issues", "Fuel injector problems"}, records[0].Causes)
		assert.Equal(t, []string{"Inspect spark plugs", "Check fuel injectors"}, records[0].Actions)
	})

	t.Run("requires a header row", func(t *testing.T) {
		t.Parallel()

		input := "P0300,Misfire,High,Engine,,\n"

		_, err := corpus.ParseCSV(strings.NewReader(input))

		var loadErr *dtcref.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, 1, loadErr.Line)
	})

	t.Run("rejects duplicate codes", func(t *testing.T) {
		t.Parallel()

		input := header +
			"P0300,Misfire,High,Engine,cause,action\n" +
			"p0300,Misfire again,Low,Engine,cause,action\n"

		_, err := corpus.ParseCSV(strings.NewReader(input))

		var loadErr *dtcref.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, 3, loadErr.Line)
		assert.Contains(t, loadErr.Reason, "duplicate code P0300")
	})

	t.Run("rejects rows with the wrong column count", func(t *testing.T) {
		t.Parallel()

		input := header + "P0300,Misfire,High\n"

		_, err := corpus.ParseCSV(strings.NewReader(input))

		var loadErr *dtcref.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, 2, loadErr.Line)
	})

	t.Run("rejects unrecognized severities", func(t *testing.T) {
		t.Parallel()

		input := header + "P0300,Misfire,Severe,Engine,cause,action\n"

		_, err := corpus.ParseCSV(strings.NewReader(input))

		var loadErr *dtcref.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Contains(t, loadErr.Reason, `unrecognized severity "Severe"`)
	})
}
