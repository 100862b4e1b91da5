// Package analytics derives day-bucketed entry activity from the entry store.
package analytics

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/datastore"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/errors"
)

// DailyActivity is one day of the activity window.
type DailyActivity struct {
	Date  string
	Count int
}

// Aggregator answers trailing-window activity queries for the dashboard
// (7 days) and the timeline (30 days). Results are cached briefly; callers
// that just wrote an entry invalidate before re-querying.
type Aggregator struct {
	store datastore.Interface
	cache *gocache.Cache
}

// NewAggregator creates an aggregator over the given store.
func NewAggregator(store datastore.Interface) *Aggregator {
	return &Aggregator{
		store: store,
		cache: gocache.New(time.Minute, 5*time.Minute),
	}
}

// ActivityOverWindow returns one element per calendar day for the trailing
// window of the given length ending today, ascending by date and zero-filled
// for days without entries.
func (a *Aggregator) ActivityOverWindow(days int) ([]DailyActivity, error) {
	if days < 1 {
		return nil, errors.Newf("window must be at least one day, got %d", days).
			Component("analytics").
			Category(errors.CategoryValidation).
			Build()
	}

	cacheKey := fmt.Sprintf("window:%d", days)
	if cached, found := a.cache.Get(cacheKey); found {
		return cached.([]DailyActivity), nil
	}

	end := time.Now()
	start := end.AddDate(0, 0, -(days - 1))
	startDate := start.Format(datastore.DateLayout)
	endDate := end.Format(datastore.DateLayout)

	counts, err := a.store.CountsByDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	activity := make([]DailyActivity, 0, days)
	for d := start; len(activity) < days; d = d.AddDate(0, 0, 1) {
		date := d.Format(datastore.DateLayout)
		activity = append(activity, DailyActivity{Date: date, Count: counts[date]})
	}

	a.cache.Set(cacheKey, activity, gocache.DefaultExpiration)
	return activity, nil
}

// Invalidate drops cached windows; called after a new entry is saved so the
// next query reflects it.
func (a *Aggregator) Invalidate() {
	a.cache.Flush()
}
