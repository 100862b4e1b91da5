// Package play implements the clip playback command.
package play

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/audio"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/datastore"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/errors"
)

// Command creates the play command. The argument is either a WAV file path or
// a numeric entry ID whose clip path is looked up in the store.
func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "play [path or entry ID]",
		Short: "Play back a recorded audio entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(settings, args[0])
		},
	}
}

func runPlay(settings *conf.Settings, target string) error {
	path, err := resolvePath(settings, target)
	if err != nil {
		return err
	}

	controller := audio.NewPlaybackController()
	defer controller.StopAll()

	if err := controller.Toggle(path); err != nil {
		return err
	}
	fmt.Printf("Playing %s ... press Ctrl-C to stop.\n", path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case ev := <-controller.Events():
		if ev.Err != nil {
			return ev.Err
		}
		fmt.Println("Playback finished.")
	case <-sig:
		fmt.Println("\nPlayback stopped.")
	}
	return nil
}

// resolvePath turns a numeric argument into the stored clip path; anything
// non-numeric is treated as a path directly.
func resolvePath(settings *conf.Settings, target string) (string, error) {
	id, convErr := strconv.ParseUint(target, 10, 32)
	if convErr != nil {
		return target, nil
	}

	store := datastore.New(settings)
	if err := store.Open(); err != nil {
		return "", err
	}
	defer store.Close()

	entry, err := store.Get(uint(id))
	if err != nil {
		return "", err
	}
	if entry.Type != datastore.TypeAudio {
		return "", errors.ValidationError(
			fmt.Sprintf("entry %d is a %s entry, not audio", entry.ID, entry.Type))
	}
	return entry.Content, nil
}
