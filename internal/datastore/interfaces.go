// interfaces.go: this code defines the interface for the database operations
package datastore

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/errors"
)

// Interface abstracts the underlying database implementation and defines the
// operations available on the entry store.
type Interface interface {
	Open() error
	Close() error
	SaveTextEntry(content, tags string) (uint, error)
	SaveAudioEntry(filePath, tags string) (uint, error)
	Get(id uint) (Entry, error)
	GetLastEntries(limit int) ([]Entry, error)
	SearchEntries(query string) ([]Entry, error)
	CountByType(entryType string) (int64, error)
	LastEntryDate() (string, error)
	CountsByDateRange(startDate, endDate string) (map[string]int, error)
	GetEntriesForPeriod(year int, month time.Month) ([]Entry, error)
}

// DataStore implements Interface using a GORM database.
type DataStore struct {
	DB       *gorm.DB
	Settings *conf.Settings
}

// New creates a new store instance based on the provided settings.
func New(settings *conf.Settings) Interface {
	return &SQLiteStore{
		DataStore: DataStore{Settings: settings},
	}
}

// placeholderContent is the editor seed text; an entry that still equals it
// has never been written to by the user.
const placeholderContent = "Dear Future Generation,\n\nToday I want to share with you..."

// SaveTextEntry validates and inserts a text entry, then mirrors it to the
// per-day backup file. The database insert and the backup write are not one
// transaction: if the backup write fails after the insert has committed, the
// record stands and the error is returned alongside the new entry ID so the
// caller can surface the inconsistency.
func (ds *DataStore) SaveTextEntry(content, tags string) (uint, error) {
	if strings.TrimSpace(content) == "" || content == placeholderContent {
		return 0, validationError("entry content is empty", "content")
	}

	now := time.Now()
	entry := Entry{
		Date:    now.Format(DateLayout),
		Type:    TypeText,
		Content: content,
		Tags:    tags,
	}

	if err := ds.DB.Create(&entry).Error; err != nil {
		return 0, dbError(err, "save_text_entry")
	}

	if err := writeTextBackup(ds.Settings.Storage.EntriesDir, now, entry.Date, content); err != nil {
		getLogger().Warn("text entry saved but backup mirror failed",
			"entry_id", entry.ID, "error", err)
		return entry.ID, err
	}

	getLogger().Info("text entry saved", "entry_id", entry.ID, "date", entry.Date)
	return entry.ID, nil
}

// SaveAudioEntry inserts an audio entry referencing an already written clip
// file. The caller guarantees the file exists at filePath.
func (ds *DataStore) SaveAudioEntry(filePath, tags string) (uint, error) {
	if filePath == "" {
		return 0, validationError("audio file path is empty", "filePath")
	}

	entry := Entry{
		Date:    time.Now().Format(DateLayout),
		Type:    TypeAudio,
		Content: filePath,
		Tags:    tags,
	}

	if err := ds.DB.Create(&entry).Error; err != nil {
		return 0, dbError(err, "save_audio_entry")
	}

	getLogger().Info("audio entry saved", "entry_id", entry.ID, "clip", filePath)
	return entry.ID, nil
}

// Get retrieves an entry by its ID.
func (ds *DataStore) Get(id uint) (Entry, error) {
	var entry Entry
	if err := ds.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Entry{}, notFoundError("entry", id)
		}
		return Entry{}, dbError(err, "get_entry")
	}
	return entry, nil
}

// GetLastEntries returns up to limit entries, newest first. Entries created
// in the same clock tick are ordered by descending ID.
func (ds *DataStore) GetLastEntries(limit int) ([]Entry, error) {
	var entries []Entry
	err := ds.DB.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, dbError(err, "get_last_entries")
	}
	return entries, nil
}

// SearchEntries performs a case-insensitive substring search over entry
// content and tags, newest first.
func (ds *DataStore) SearchEntries(query string) ([]Entry, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var entries []Entry
	err := ds.DB.
		Where("LOWER(content) LIKE ? OR LOWER(tags) LIKE ?", pattern, pattern).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, dbError(err, "search_entries")
	}
	return entries, nil
}

// CountByType returns the number of entries of the given type.
func (ds *DataStore) CountByType(entryType string) (int64, error) {
	var count int64
	err := ds.DB.Model(&Entry{}).
		Where("type = ?", entryType).
		Count(&count).Error
	if err != nil {
		return 0, dbError(err, "count_by_type")
	}
	return count, nil
}

// LastEntryDate returns the calendar date of the most recent entry, or an
// empty string when the store holds no entries.
func (ds *DataStore) LastEntryDate() (string, error) {
	var entry Entry
	err := ds.DB.
		Order("created_at DESC, id DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", dbError(err, "last_entry_date")
	}
	return entry.Date, nil
}
