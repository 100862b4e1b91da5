package datastore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/errors"
)

// seedEntry inserts a row with an explicit date, bypassing the save path so
// tests can build multi-day histories.
func seedEntry(t *testing.T, store Interface, date, entryType, content string) {
	t.Helper()
	ds := store.(*SQLiteStore)
	created, err := time.ParseInLocation(DateLayout, date, time.Local)
	require.NoError(t, err)
	entry := Entry{Date: date, Type: entryType, Content: content, CreatedAt: created}
	require.NoError(t, ds.DB.Create(&entry).Error)
}

func TestCountsByDateRange(t *testing.T) {
	settings := &conf.Settings{}
	store := createDatabase(t, settings)

	seedEntry(t, store, "2026-08-01", TypeText, "day one")
	seedEntry(t, store, "2026-08-01", TypeAudio, "/clips/01_audio_1.wav")
	seedEntry(t, store, "2026-08-03", TypeText, "day three")

	counts, err := store.CountsByDateRange("2026-08-01", "2026-08-05")
	require.NoError(t, err)

	// Every day of the inclusive range is present, quiet days at zero.
	require.Len(t, counts, 5)
	assert.Equal(t, 2, counts["2026-08-01"])
	assert.Equal(t, 0, counts["2026-08-02"])
	assert.Equal(t, 1, counts["2026-08-03"])
	assert.Equal(t, 0, counts["2026-08-04"])
	assert.Equal(t, 0, counts["2026-08-05"])
}

func TestCountsByDateRangeSingleDay(t *testing.T) {
	settings := &conf.Settings{}
	store := createDatabase(t, settings)

	seedEntry(t, store, "2026-08-10", TypeText, "only day")

	counts, err := store.CountsByDateRange("2026-08-10", "2026-08-10")
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, 1, counts["2026-08-10"])
}

func TestCountsByDateRangeValidation(t *testing.T) {
	settings := &conf.Settings{}
	store := createDatabase(t, settings)

	tests := []struct {
		name       string
		start, end string
	}{
		{"malformed start", "08/01/2026", "2026-08-05"},
		{"malformed end", "2026-08-01", "yesterday"},
		{"inverted range", "2026-08-05", "2026-08-01"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.CountsByDateRange(tc.start, tc.end)
			assert.True(t, errors.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestGetEntriesForPeriod(t *testing.T) {
	settings := &conf.Settings{}
	store := createDatabase(t, settings)

	seedEntry(t, store, "2026-07-31", TypeText, "july entry")
	seedEntry(t, store, "2026-08-02", TypeText, "early august")
	seedEntry(t, store, "2026-08-15", TypeAudio, "/clips/15_audio_1.wav")
	seedEntry(t, store, "2025-08-15", TypeText, "last year")

	august, err := store.GetEntriesForPeriod(2026, time.August)
	require.NoError(t, err)
	require.Len(t, august, 2)
	assert.Equal(t, "early august", august[0].Content, "oldest first")
	assert.Equal(t, TypeAudio, august[1].Type)

	wholeYear, err := store.GetEntriesForPeriod(2026, 0)
	require.NoError(t, err)
	assert.Len(t, wholeYear, 3)

	empty, err := store.GetEntriesForPeriod(2026, time.December)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
