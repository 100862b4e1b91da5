// backup.go: flat-file mirror of text entries, one file per calendar day
package datastore

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/errors"
)

// MonthDir returns the <root>/<year>/<MonthName> directory the given moment's
// entry files belong to. The audio package uses the same layout for clips.
func MonthDir(root string, t time.Time) string {
	return filepath.Join(root, strconv.Itoa(t.Year()), t.Month().String())
}

// writeTextBackup mirrors a text entry to <entries>/<year>/<MonthName>/<DD>_written.txt.
// The file is overwritten whole: a second text entry on the same day replaces
// the previous mirror while the record store keeps both entries.
func writeTextBackup(entriesDir string, t time.Time, date, content string) error {
	dir := MonthDir(entriesDir, t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return backupError(err, "create_backup_dir", dir)
	}

	path := filepath.Join(dir, fmt.Sprintf("%02d_written.txt", t.Day()))

	body := fmt.Sprintf("Date: %s\nType: Text Entry\n%s\n%s", date,
		"--------------------------------------------------", content)

	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return backupError(err, "write_backup_file", path)
	}
	return nil
}

func backupError(err error, operation, path string) error {
	return errors.New(err).
		Component("datastore").
		Category(errors.CategoryFileIO).
		Context("operation", operation).
		Context("path", path).
		Build()
}
