package mem_test

import (
	"testing"

	"github.com/awahed/dtcref"
	"github.com/awahed/dtcref/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(code, description string, severity dtcref.Severity, system string) *dtcref.CodeRecord {
	return &dtcref.CodeRecord{
		Code:        code,
		Description: description,
		Severity:    severity,
		System:      system,
	}
}

func TestNewStore(t *testing.T) {
	t.Parallel()

	t.Run("orders records by code ascending", func(t *testing.T) {
		t.Parallel()

		store, err := mem.NewStore([]*dtcref.CodeRecord{
			record("U0100", "Lost Communication With ECM", dtcref.SeverityCritical, "Network"),
			record("P0300", "Misfire Detected", dtcref.SeverityHigh, "Engine"),
			record("C1234", "Wheel Speed Sensor Fault", dtcref.SeverityHigh, "ABS"),
		})
		require.NoError(t, err)

		all := store.All()
		require.Len(t, all, 3)
		assert.Equal(t, "C1234", all[0].Code)
		assert.Equal(t, "P0300", all[1].Code)
		assert.Equal(t, "U0100", all[2].Code)
	})

	t.Run("normalizes codes to uppercase", func(t *testing.T) {
		t.Parallel()

		store, err := mem.NewStore([]*dtcref.CodeRecord{
			record("p0300", "Misfire Detected", dtcref.SeverityHigh, "Engine"),
		})
		require.NoError(t, err)

		got, err := store.Get("P0300")
		require.NoError(t, err)
		assert.Equal(t, "P0300", got.Code)
	})

	t.Run("rejects duplicate codes regardless of case", func(t *testing.T) {
		t.Parallel()

		store, err := mem.NewStore([]*dtcref.CodeRecord{
			record("P0300", "Misfire Detected", dtcref.SeverityHigh, "Engine"),
			record("p0300", "Misfire again", dtcref.SeverityLow, "Engine"),
		})

		assert.Nil(t, store)
		assert.Equal(t, dtcref.ECONFLICT, dtcref.ErrorCode(err))
	})

	t.Run("rejects invalid records", func(t *testing.T) {
		t.Parallel()

		store, err := mem.NewStore([]*dtcref.CodeRecord{
			record("P0300", "", dtcref.SeverityHigh, "Engine"),
		})

		assert.Nil(t, store)
		assert.Equal(t, dtcref.EINVALID, dtcref.ErrorCode(err))
	})

	t.Run("is isolated from the caller's records", func(t *testing.T) {
		t.Parallel()

		input := record("P0300", "Misfire Detected", dtcref.SeverityHigh, "Engine")
		store, err := mem.NewStore([]*dtcref.CodeRecord{input})
		require.NoError(t, err)

		input.Description = "mutated"

		got, err := store.Get("P0300")
		require.NoError(t, err)
		assert.Equal(t, "Misfire Detected", got.Description)
	})
}

func TestStore_Get(t *testing.T) {
	t.Parallel()

	store, err := mem.NewStore([]*dtcref.CodeRecord{
		record("P0300", "Misfire Detected", dtcref.SeverityHigh, "Engine"),
	})
	require.NoError(t, err)

	t.Run("is case-insensitive", func(t *testing.T) {
		t.Parallel()

		upper, err := store.Get("P0300")
		require.NoError(t, err)
		lower, err := store.Get("p0300")
		require.NoError(t, err)

		assert.Equal(t, upper, lower)
	})

	t.Run("returns ENOTFOUND for unknown codes", func(t *testing.T) {
		t.Parallel()

		_, err := store.Get("P9999")

		assert.Equal(t, dtcref.ENOTFOUND, dtcref.ErrorCode(err))
	})
}

func TestStore_All_Restartable(t *testing.T) {
	t.Parallel()

	store, err := mem.NewStore([]*dtcref.CodeRecord{
		record("P0300", "Misfire Detected", dtcref.SeverityHigh, "Engine"),
		record("P0420", "Catalyst Efficiency Low", dtcref.SeverityMedium, "Exhaust"),
	})
	require.NoError(t, err)

	first := store.All()
	first[0], first[1] = first[1], first[0]

	// A fresh iteration is unaffected by what callers do with their
	// copy.
	second := store.All()
	assert.Equal(t, "P0300", second[0].Code)
	assert.Equal(t, "P0420", second[1].Code)
}

func TestStore_Contains(t *testing.T) {
	t.Parallel()

	store, err := mem.NewStore([]*dtcref.CodeRecord{
		record("P0300", "Misfire Detected", dtcref.SeverityHigh, "Engine"),
	})
	require.NoError(t, err)

	assert.True(t, store.Contains("p0300"))
	assert.False(t, store.Contains("P9999"))
	assert.Equal(t, 1, store.Len())
}
