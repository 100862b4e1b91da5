package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/cmd/entry"
	exportcmd "github.com/IsaacGridGainsDev/Legacy-Recorder/cmd/export"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/cmd/play"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/cmd/record"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/cmd/remind"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/cmd/stats"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "legacyrecorder",
		Short: "Legacy Recorder CLI",
		Long:  "Capture, browse, and export daily journal entries as text or audio.",
	}

	if err := setupFlags(rootCmd, settings); err != nil {
		cobra.CheckErr(err)
	}

	subcommands := []*cobra.Command{
		entry.Command(settings),
		record.Command(settings),
		play.Command(settings),
		stats.Command(settings),
		exportcmd.Command(settings),
		remind.Command(settings),
	}
	rootCmd.AddCommand(subcommands...)

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) error {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.Storage.EntriesDir, "entriesdir", viper.GetString("storage.entriesdir"), "Root directory for entry files")
	rootCmd.PersistentFlags().StringVar(&settings.Storage.SQLite.Path, "db", viper.GetString("storage.sqlite.path"), "Path to the SQLite database")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	return nil
}
