// Package remind implements the foreground reminder daemon command.
package remind

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/scheduler"
)

// Command creates the remind command.
func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run the daily reminder scheduler in the foreground",
		Long: "Schedules the morning and evening reminders from the configuration " +
			"and prints each one as it fires, until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemind(settings)
		},
	}
}

func runRemind(settings *conf.Settings) error {
	sched := scheduler.New(nil)
	defer sched.Stop()

	r := settings.Reminders
	if err := sched.Configure(r.Enabled, r.Morning, r.Evening); err != nil {
		return err
	}

	jobs := sched.Jobs()
	if len(jobs) == 0 {
		fmt.Println("Reminders are disabled in the configuration.")
		return nil
	}
	for _, job := range jobs {
		fmt.Printf("%s scheduled, next at %s\n", job.Job, job.Next.Format(time.RFC1123))
	}
	fmt.Println("Waiting for reminders... press Ctrl-C to exit.")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	for {
		select {
		case ev := <-sched.Events():
			fmt.Printf("[%s] %s\n", ev.FiredAt.Format("15:04"), ev.Message)
		case <-sig:
			fmt.Println("\nScheduler stopped.")
			return nil
		}
	}
}
