// model.go this code defines the data model for the application
package datastore

import "time"

// Entry types stored in the Type column.
const (
	TypeText  = "text"
	TypeAudio = "audio"
)

// DateLayout is the calendar date format used in the Date column and in all
// date range queries.
const DateLayout = "2006-01-02"

// Entry represents a single journal record, written once and never edited.
// For text entries Content holds the body; for audio entries it holds the
// absolute path of the backing clip file.
type Entry struct {
	ID        uint   `gorm:"primaryKey"`
	Date      string `gorm:"index:idx_entries_date;not null"`
	Type      string `gorm:"type:varchar(10);not null"`
	Content   string `gorm:"type:text;not null"`
	Tags      string
	CreatedAt time.Time `gorm:"index"`
}

// DailyCount is one day bucket of entry counts, used by date range queries.
type DailyCount struct {
	Date  string
	Count int
}
