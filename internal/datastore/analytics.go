// analytics.go: date bucketed entry counts for the dashboard and timeline views
package datastore

import (
	"time"
)

// CountsByDateRange returns entry counts for every calendar day in the
// inclusive range, zero-filled so each day in the range has a key even when
// no entries exist for it.
func (ds *DataStore) CountsByDateRange(startDate, endDate string) (map[string]int, error) {
	start, err := time.ParseInLocation(DateLayout, startDate, time.Local)
	if err != nil {
		return nil, validationError("invalid start date", "startDate")
	}
	end, err := time.ParseInLocation(DateLayout, endDate, time.Local)
	if err != nil {
		return nil, validationError("invalid end date", "endDate")
	}
	if end.Before(start) {
		return nil, validationError("end date precedes start date", "endDate")
	}

	var buckets []DailyCount
	err = ds.DB.Model(&Entry{}).
		Select("date, COUNT(*) as count").
		Where("date >= ? AND date <= ?", startDate, endDate).
		Group("date").
		Scan(&buckets).Error
	if err != nil {
		return nil, dbError(err, "counts_by_date_range")
	}

	counts := make(map[string]int)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		counts[d.Format(DateLayout)] = 0
	}
	for _, b := range buckets {
		counts[b.Date] = b.Count
	}
	return counts, nil
}

// GetEntriesForPeriod returns all entries of a given year, optionally
// narrowed to one month, oldest first. Used by the export writer.
func (ds *DataStore) GetEntriesForPeriod(year int, month time.Month) ([]Entry, error) {
	prefix := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local).Format("2006")
	if month != 0 {
		prefix = time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Format("2006-01")
	}

	var entries []Entry
	err := ds.DB.
		Where("date LIKE ?", prefix+"%").
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, dbError(err, "get_entries_for_period")
	}
	return entries, nil
}
