// Package scheduler fires the two daily journaling reminders.
package scheduler

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/errors"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/logging"
)

// Fixed job identifiers and the messages delivered when they fire.
const (
	MorningJob = "morning_reminder"
	EveningJob = "evening_reminder"

	morningMessage = "Good morning! Time to record your thoughts and reflections."
	eveningMessage = "Good evening! Take a moment to reflect on your day."
)

// ReminderEvent is one fired reminder.
type ReminderEvent struct {
	Job     string
	Message string
	FiredAt time.Time
}

// JobInfo describes one scheduled job, for introspection and tests.
type JobInfo struct {
	Job  string
	Next time.Time
}

// ReminderScheduler schedules the morning and evening reminders on a
// background cron loop, independent of whether any UI is visible. It has no
// UI knowledge: fired jobs invoke the caller-supplied callback and are also
// queued on a bounded events channel the UI loop can drain on its own turn.
type ReminderScheduler struct {
	notify func(job, message string)

	mu   sync.Mutex
	cron *cron.Cron
	ids  map[cron.EntryID]string

	events chan ReminderEvent
	logger *slog.Logger
}

// New creates a scheduler with no jobs. notify may be nil when the caller
// consumes Events instead.
func New(notify func(job, message string)) *ReminderScheduler {
	logger := logging.ForService("scheduler")
	if logger == nil {
		logger = slog.Default().With("service", "scheduler")
	}
	return &ReminderScheduler{
		notify: notify,
		events: make(chan ReminderEvent, 8),
		logger: logger,
	}
}

// Events returns the fired-reminder channel. Events are dropped rather than
// blocking the cron goroutine when the consumer falls behind.
func (s *ReminderScheduler) Events() <-chan ReminderEvent {
	return s.events
}

// Configure idempotently replaces the scheduled jobs. The previous cron
// instance is stopped and awaited first, so reconfiguring always leaves
// exactly the newly specified set of jobs active. With enabled false all
// jobs are torn down.
func (s *ReminderScheduler) Configure(enabled bool, morningTime, eveningTime string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	if !enabled {
		s.logger.Info("reminders disabled")
		return nil
	}

	specs := []struct {
		job     string
		at      string
		message string
	}{
		{MorningJob, morningTime, morningMessage},
		{EveningJob, eveningTime, eveningMessage},
	}

	c := cron.New(cron.WithLocation(time.Local))
	ids := make(map[cron.EntryID]string, len(specs))
	for _, spec := range specs {
		hour, minute, err := conf.ParseClockTime(spec.at)
		if err != nil {
			return errors.New(err).
				Component("scheduler").
				Category(errors.CategoryScheduler).
				Context("job", spec.job).
				Build()
		}

		job, message := spec.job, spec.message
		id, err := c.AddFunc(fmt.Sprintf("%d %d * * *", minute, hour), func() {
			s.fire(job, message)
		})
		if err != nil {
			return errors.New(err).
				Component("scheduler").
				Category(errors.CategoryScheduler).
				Context("job", job).
				Build()
		}
		ids[id] = job
	}

	c.Start()
	s.cron = c
	s.ids = ids
	s.logger.Info("reminders scheduled", "morning", morningTime, "evening", eveningTime)
	return nil
}

// Jobs returns the currently scheduled jobs with their next fire times.
func (s *ReminderScheduler) Jobs() []JobInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return nil
	}
	entries := s.cron.Entries()
	jobs := make([]JobInfo, 0, len(entries))
	for _, e := range entries {
		jobs = append(jobs, JobInfo{Job: s.ids[e.ID], Next: e.Next})
	}
	return jobs
}

// Stop tears down all scheduled jobs and waits for any running callback.
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *ReminderScheduler) stopLocked() {
	if s.cron == nil {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron = nil
	s.ids = nil
}

func (s *ReminderScheduler) fire(job, message string) {
	s.logger.Info("reminder fired", "job", job)

	if s.notify != nil {
		s.notify(job, message)
	}

	select {
	case s.events <- ReminderEvent{Job: job, Message: message, FiredAt: time.Now()}:
	default:
		s.logger.Warn("reminder event dropped, channel full", "job", job)
	}
}
