package datastore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/errors"
)

// createDatabase initializes a temporary database for testing purposes.
// It ensures the database connection is opened and handles potential errors.
func createDatabase(t *testing.T, settings *conf.Settings) Interface {
	t.Helper()
	tempDir := t.TempDir()
	if settings.Storage.EntriesDir == "" {
		settings.Storage.EntriesDir = filepath.Join(tempDir, "entries")
	}
	settings.Storage.SQLite.Path = filepath.Join(tempDir, "test.db")

	dataStore := New(settings)

	require.NoError(t, dataStore.Open(), "Failed to open database")

	t.Cleanup(func() {
		assert.NoError(t, dataStore.Close(), "Failed to close datastore")
	})

	return dataStore
}

func TestSaveTextEntryRoundTrip(t *testing.T) {
	settings := &conf.Settings{}
	store := createDatabase(t, settings)

	id, err := store.SaveTextEntry("Today I learned patience.", "lesson, family")
	require.NoError(t, err)
	require.NotZero(t, id)

	entry, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, TypeText, entry.Type)
	assert.Equal(t, "Today I learned patience.", entry.Content)
	assert.Equal(t, "lesson, family", entry.Tags)
	assert.Equal(t, time.Now().Format(DateLayout), entry.Date)
}

func TestSaveTextEntryRejectsEmptyContent(t *testing.T) {
	settings := &conf.Settings{}
	store := createDatabase(t, settings)

	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t  "},
		{"untouched placeholder", "Dear Future Generation,\n\nToday I want to share with you..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := store.SaveTextEntry(tc.content, "")
			assert.Zero(t, id)
			assert.True(t, errors.IsValidation(err), "expected validation error, got %v", err)
		})
	}

	count, err := store.CountByType(TypeText)
	require.NoError(t, err)
	assert.Zero(t, count, "rejected entries must not be persisted")
}

func TestSaveTextEntryWritesBackupFile(t *testing.T) {
	settings := &conf.Settings{}
	store := createDatabase(t, settings)

	_, err := store.SaveTextEntry("First draft of the day.", "")
	require.NoError(t, err)

	now := time.Now()
	backupPath := filepath.Join(
		MonthDir(settings.Storage.EntriesDir, now),
		fmt.Sprintf("%02d_written.txt", now.Day()),
	)

	data, err := os.ReadFile(backupPath)
	require.NoError(t, err, "backup mirror should exist")
	content := string(data)
	assert.Contains(t, content, "Date: "+now.Format(DateLayout))
	assert.Contains(t, content, "Type: Text Entry")
	assert.Contains(t, content, "First draft of the day.")

	// A second entry on the same day replaces the mirror file whole.
	_, err = store.SaveTextEntry("Second thoughts, written later.", "")
	require.NoError(t, err)

	data, err = os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Second thoughts, written later.")
	assert.NotContains(t, string(data), "First draft of the day.")

	// Both entries remain in the database.
	count, err := store.CountByType(TypeText)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestSaveTextEntrySurvivesBackupFailure(t *testing.T) {
	settings := &conf.Settings{}

	// Point the entries root at a regular file so the mirror write fails.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	settings.Storage.EntriesDir = blocker

	store := createDatabase(t, settings)

	id, err := store.SaveTextEntry("This one lands in the database only.", "")
	require.Error(t, err, "backup failure must be surfaced")
	require.NotZero(t, id, "entry ID must be returned despite the backup failure")
	assert.True(t, errors.IsCategory(err, errors.CategoryFileIO))

	entry, getErr := store.Get(id)
	require.NoError(t, getErr, "the database record must stand")
	assert.Equal(t, "This one lands in the database only.", entry.Content)
}

func TestSaveAudioEntry(t *testing.T) {
	settings := &conf.Settings{}
	store := createDatabase(t, settings)

	id, err := store.SaveAudioEntry("/tmp/entries/2026/August/28_audio_1756368000.wav", "reflection")
	require.NoError(t, err)

	entry, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, TypeAudio, entry.Type)
	assert.Equal(t, "/tmp/entries/2026/August/28_audio_1756368000.wav", entry.Content)

	id, err = store.SaveAudioEntry("", "")
	assert.Zero(t, id)
	assert.True(t, errors.IsValidation(err))
}

func TestGetUnknownEntry(t *testing.T) {
	settings := &conf.Settings{}
	store := createDatabase(t, settings)

	_, err := store.Get(42)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestGetLastEntriesOrderAndLimit(t *testing.T) {
	settings := &conf.Settings{}
	store := createDatabase(t, settings)

	var ids []uint
	for i := 1; i <= 5; i++ {
		id, err := store.SaveTextEntry(fmt.Sprintf("entry number %d", i), "")
		require.NoError(t, err)
		ids = append(ids, id)
	}

	entries, err := store.GetLastEntries(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first, with same-tick inserts broken by descending ID.
	assert.Equal(t, ids[4], entries[0].ID)
	assert.Equal(t, ids[3], entries[1].ID)
	assert.Equal(t, ids[2], entries[2].ID)
}

func TestSearchEntries(t *testing.T) {
	settings := &conf.Settings{}
	store := createDatabase(t, settings)

	_, err := store.SaveTextEntry("Walked by the river at dawn.", "nature")
	require.NoError(t, err)
	_, err = store.SaveTextEntry("Long call with grandmother.", "family, phone")
	require.NoError(t, err)
	_, err = store.SaveAudioEntry("/clips/28_audio_1.wav", "river sounds")
	require.NoError(t, err)

	byContent, err := store.SearchEntries("RIVER")
	require.NoError(t, err)
	require.Len(t, byContent, 2, "matches content and tags, case-insensitively")

	byTag, err := store.SearchEntries("family")
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.True(t, strings.Contains(byTag[0].Content, "grandmother"))

	none, err := store.SearchEntries("no such thing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCountByType(t *testing.T) {
	settings := &conf.Settings{}
	store := createDatabase(t, settings)

	for i := 0; i < 3; i++ {
		_, err := store.SaveTextEntry(fmt.Sprintf("text %d", i), "")
		require.NoError(t, err)
	}
	_, err := store.SaveAudioEntry("/clips/a.wav", "")
	require.NoError(t, err)

	texts, err := store.CountByType(TypeText)
	require.NoError(t, err)
	assert.EqualValues(t, 3, texts)

	audios, err := store.CountByType(TypeAudio)
	require.NoError(t, err)
	assert.EqualValues(t, 1, audios)
}

func TestLastEntryDate(t *testing.T) {
	settings := &conf.Settings{}
	store := createDatabase(t, settings)

	date, err := store.LastEntryDate()
	require.NoError(t, err)
	assert.Empty(t, date, "empty store reports no date")

	_, err = store.SaveTextEntry("something for today", "")
	require.NoError(t, err)

	date, err = store.LastEntryDate()
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(DateLayout), date)
}
