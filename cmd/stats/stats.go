// Package stats implements the journaling activity statistics command.
package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/analytics"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/datastore"
)

// Command creates the stats command.
func Command(settings *conf.Settings) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show journaling activity over recent days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(settings, days)
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of days in the activity window")
	return cmd
}

func runStats(settings *conf.Settings, days int) error {
	store := datastore.New(settings)
	if err := store.Open(); err != nil {
		return err
	}
	defer store.Close()

	agg := analytics.NewAggregator(store)
	activity, err := agg.ActivityOverWindow(days)
	if err != nil {
		return err
	}

	total := 0
	peak := 0
	for _, day := range activity {
		total += day.Count
		if day.Count > peak {
			peak = day.Count
		}
	}

	fmt.Printf("Activity over the last %d days (%d entries):\n\n", days, total)
	for _, day := range activity {
		bar := ""
		if peak > 0 {
			bar = strings.Repeat("#", day.Count*20/peak)
		}
		fmt.Printf("  %s  %3d  %s\n", day.Date, day.Count, bar)
	}

	texts, err := store.CountByType(datastore.TypeText)
	if err != nil {
		return err
	}
	audios, err := store.CountByType(datastore.TypeAudio)
	if err != nil {
		return err
	}
	fmt.Printf("\nAll time: %d text entries, %d audio entries.\n", texts, audios)

	last, err := store.LastEntryDate()
	if err != nil {
		return err
	}
	if last == "" {
		fmt.Println("No entries recorded yet.")
	} else if t, perr := time.Parse(datastore.DateLayout, last); perr == nil {
		fmt.Printf("Last entry: %s.\n", t.Format("January 2, 2006"))
	}
	return nil
}
