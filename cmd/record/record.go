// Package record implements the interactive audio recording command.
package record

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/audio"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/datastore"
)

// Command creates the record command.
func Command(settings *conf.Settings) *cobra.Command {
	var tags string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record an audio entry from the default input device",
		Long: "Starts recording immediately and saves the clip as a journal entry " +
			"when you press Enter or send an interrupt.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(settings, tags)
		},
	}

	cmd.Flags().StringVar(&tags, "tags", "", "Comma separated tags for the saved clip")
	return cmd
}

func runRecord(settings *conf.Settings, tags string) error {
	store := datastore.New(settings)
	if err := store.Open(); err != nil {
		return err
	}
	defer store.Close()

	session := audio.NewCaptureSession(store, settings)
	if err := session.Start(); err != nil {
		return err
	}

	fmt.Println("Recording... press Enter to stop.")

	// Enter on stdin or SIGINT/SIGTERM both end the recording.
	stop := make(chan struct{})
	go func() {
		bufio.NewReader(os.Stdin).ReadString('\n')
		close(stop)
	}()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	levels := session.Levels()
	errs := session.Errors()

	for {
		select {
		case lv := <-levels:
			printMeter(lv)
		case err := <-errs:
			// The session already reverted to idle.
			fmt.Println()
			return err
		case <-stop:
			return finish(session, tags)
		case <-sig:
			fmt.Println()
			return finish(session, tags)
		}
	}
}

func finish(session *audio.CaptureSession, tags string) error {
	result, err := session.Stop(tags)
	fmt.Println()
	if err != nil {
		return err
	}
	switch result.Status {
	case audio.StatusEmpty:
		fmt.Println("No audio captured; nothing was saved.")
	case audio.StatusSaved:
		fmt.Printf("Saved entry %d: %s\n", result.EntryID, result.Path)
	}
	return nil
}

// printMeter renders a single-line volume meter, overwriting in place.
func printMeter(lv audio.LevelData) {
	const width = 30
	filled := int(lv.Level * width)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	clip := "    "
	if lv.Clipping {
		clip = "CLIP"
	}
	fmt.Printf("\r[%s] %s", bar, clip)
}
