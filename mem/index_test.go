package mem_test

import (
	"testing"

	"github.com/awahed/dtcref"
	"github.com/awahed/dtcref/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexFixture(t *testing.T) dtcref.RecordStore {
	t.Helper()

	store, err := mem.NewStore([]*dtcref.CodeRecord{
		{
			Code:        "P0300",
			Description: "Random/Multiple Cylinder Misfire Detected",
			Severity:    dtcref.SeverityHigh,
			System:      "Engine",
			Causes:      []string{"Spark plug issues"},
			Actions:     []string{"Inspect spark plugs"},
		},
		{
			Code:        "P0171",
			Description: "System Too Lean (Bank 1)",
			Severity:    dtcref.SeverityMedium,
			System:      "Engine",
		},
		{
			Code:        "C1234",
			Description: "Wheel Speed Sensor Fault",
			Severity:    dtcref.SeverityHigh,
			System:      "ABS",
		},
	})
	require.NoError(t, err)
	return store
}

func TestBuildIndices(t *testing.T) {
	t.Parallel()

	t.Run("buckets codes by normalized system", func(t *testing.T) {
		t.Parallel()

		idx := mem.BuildIndices(indexFixture(t))

		assert.Equal(t, []string{"P0171", "P0300"}, idx.BySystem["engine"])
		assert.Equal(t, []string{"C1234"}, idx.BySystem["abs"])
	})

	t.Run("buckets codes by severity", func(t *testing.T) {
		t.Parallel()

		idx := mem.BuildIndices(indexFixture(t))

		assert.Equal(t, []string{"C1234", "P0300"}, idx.BySeverity[dtcref.SeverityHigh])
		assert.Equal(t, []string{"P0171"}, idx.BySeverity[dtcref.SeverityMedium])
	})

	t.Run("every code appears in exactly one system and one severity bucket", func(t *testing.T) {
		t.Parallel()

		store := indexFixture(t)
		idx := mem.BuildIndices(store)

		systemSeen := make(map[string]int)
		for _, codes := range idx.BySystem {
			for _, code := range codes {
				systemSeen[code]++
			}
		}
		severitySeen := make(map[string]int)
		for _, codes := range idx.BySeverity {
			for _, code := range codes {
				severitySeen[code]++
			}
		}

		for _, record := range store.All() {
			assert.Equal(t, 1, systemSeen[record.Code], record.Code)
			assert.Equal(t, 1, severitySeen[record.Code], record.Code)
		}
	})

	t.Run("records field and position for each token occurrence", func(t *testing.T) {
		t.Parallel()

		idx := mem.BuildIndices(indexFixture(t))

		postings := idx.Tokens["misfire"]
		require.Len(t, postings, 1)
		assert.Equal(t, "P0300", postings[0].Code)
		assert.Equal(t, dtcref.FieldDescription, postings[0].Field)
		assert.Equal(t, 4, postings[0].Position)

		// "spark" appears in both a cause and an action of P0300.
		sparkFields := make(map[dtcref.Field]bool)
		for _, p := range idx.Tokens["spark"] {
			assert.Equal(t, "P0300", p.Code)
			sparkFields[p.Field] = true
		}
		assert.True(t, sparkFields[dtcref.FieldCause])
		assert.True(t, sparkFields[dtcref.FieldAction])
	})

	t.Run("is deterministic for the same corpus", func(t *testing.T) {
		t.Parallel()

		store := indexFixture(t)

		a := mem.BuildIndices(store)
		b := mem.BuildIndices(store)

		assert.Equal(t, a.BySystem, b.BySystem)
		assert.Equal(t, a.BySeverity, b.BySeverity)
		assert.Equal(t, a.Tokens, b.Tokens)
	})

	t.Run("prefilter never reports indexed tokens absent", func(t *testing.T) {
		t.Parallel()

		idx := mem.BuildIndices(indexFixture(t))

		for token := range idx.Tokens {
			assert.True(t, idx.MightContainToken(token), token)
		}
	})
}
