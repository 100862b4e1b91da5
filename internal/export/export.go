// Package export renders journal entries as a plain-text report.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/datastore"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/errors"
)

const separator = "=================================================="
const entryDivider = "------------------------------"

// WriteText writes all entries of the given year, optionally narrowed to one
// month (month == 0 exports the whole year), as a plain-text report. Audio
// entries are referenced by clip file name. It reports the number of entries
// written.
func WriteText(w io.Writer, store datastore.Interface, year int, month time.Month) (int, error) {
	entries, err := store.GetEntriesForPeriod(year, month)
	if err != nil {
		return 0, err
	}

	period := fmt.Sprintf("%d", year)
	if month != 0 {
		period = fmt.Sprintf("%s %d", month, year)
	}

	header := fmt.Sprintf("Legacy Recorder Export\nPeriod: %s\nGenerated: %s\n%s\n\n",
		period, time.Now().Format("2006-01-02 15:04:05"), separator)
	if _, err := io.WriteString(w, header); err != nil {
		return 0, writeError(err)
	}

	for i := range entries {
		if err := writeEntry(w, &entries[i]); err != nil {
			return i, err
		}
	}

	return len(entries), nil
}

func writeEntry(w io.Writer, entry *datastore.Entry) error {
	kind := "Text Entry"
	if entry.Type == datastore.TypeAudio {
		kind = "Audio Entry"
	}

	if _, err := fmt.Fprintf(w, "Date: %s\nType: %s\n",
		entry.CreatedAt.Format("January 02, 2006 at 3:04 PM"), kind); err != nil {
		return writeError(err)
	}
	if entry.Tags != "" {
		if _, err := fmt.Fprintf(w, "Tags: %s\n", entry.Tags); err != nil {
			return writeError(err)
		}
	}
	if _, err := fmt.Fprintln(w, entryDivider); err != nil {
		return writeError(err)
	}

	body := entry.Content
	if entry.Type == datastore.TypeAudio {
		body = fmt.Sprintf("Audio file: %s", filepath.Base(entry.Content))
	}
	if _, err := fmt.Fprintf(w, "%s\n\n%s\n\n", body, separator); err != nil {
		return writeError(err)
	}
	return nil
}

func writeError(err error) error {
	return errors.New(err).
		Component("export").
		Category(errors.CategoryFileIO).
		Context("operation", "write_report").
		Build()
}
