// Package export implements the journal export command.
package export

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/datastore"
	textexport "github.com/IsaacGridGainsDev/Legacy-Recorder/internal/export"
)

// Command creates the export command.
func Command(settings *conf.Settings) *cobra.Command {
	var (
		year   int
		month  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export journal entries to a text file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(settings, year, month, output)
		},
	}

	now := time.Now()
	cmd.Flags().IntVar(&year, "year", now.Year(), "Year to export")
	cmd.Flags().IntVar(&month, "month", 0, "Month to export (1-12, 0 for the whole year)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func runExport(settings *conf.Settings, year, month int, output string) error {
	store := datastore.New(settings)
	if err := store.Open(); err != nil {
		return err
	}
	defer store.Close()

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	count, err := textexport.WriteText(out, store, year, time.Month(month))
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Printf("Exported %d entries to %s.\n", count, output)
	}
	return nil
}
