// Package entry implements the text entry subcommands.
package entry

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/datastore"
)

// Command creates the entry command with its add, list, and search subcommands.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage journal entries",
	}
	cmd.AddCommand(addCommand(settings), listCommand(settings), searchCommand(settings))
	return cmd
}

func addCommand(settings *conf.Settings) *cobra.Command {
	var tags string

	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Save a new text entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := datastore.New(settings)
			if err := store.Open(); err != nil {
				return err
			}
			defer store.Close()

			id, err := store.SaveTextEntry(strings.Join(args, " "), tags)
			if err != nil && id == 0 {
				return err
			}
			if err != nil {
				// Entry committed but the backup mirror failed.
				fmt.Printf("Entry %d saved, but the backup file could not be written: %v\n", id, err)
				return nil
			}
			fmt.Printf("Entry %d saved.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&tags, "tags", "", "Comma separated tags, e.g. \"prayer, wisdom, family\"")
	return cmd
}

func listCommand(settings *conf.Settings) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := datastore.New(settings)
			if err := store.Open(); err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.GetLastEntries(limit)
			if err != nil {
				return err
			}
			printEntries(entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show")
	return cmd
}

func searchCommand(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search entries by content or tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := datastore.New(settings)
			if err := store.Open(); err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.SearchEntries(args[0])
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No matching entries found.")
				return nil
			}
			printEntries(entries)
			return nil
		},
	}
}

func printEntries(entries []datastore.Entry) {
	for i := range entries {
		e := &entries[i]
		preview := e.Content
		if e.Type == datastore.TypeAudio {
			preview = "[audio] " + e.Content
		} else if len(preview) > 80 {
			preview = preview[:80] + "..."
		}
		fmt.Printf("%6d  %s  %-5s  %s\n", e.ID, e.Date, e.Type, preview)
		if e.Tags != "" {
			fmt.Printf("        tags: %s\n", e.Tags)
		}
	}
}
