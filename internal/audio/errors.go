package audio

import (
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/errors"
)

// State machine misuse sentinels. These are programming contract violations:
// the call is rejected and session state is left unchanged.
var (
	ErrAlreadyRecording = errors.NewStd("recording already in progress")
	ErrNotRecording     = errors.NewStd("no recording in progress")
)

// stateError wraps a state sentinel so callers can both errors.Is against
// the sentinel and inspect the category.
func stateError(sentinel error, operation string) error {
	return errors.New(sentinel).
		Component("audio").
		Category(errors.CategoryState).
		Context("operation", operation).
		Build()
}

// deviceError creates an audio device error for open or mid-stream failures.
func deviceError(err error, operation string) error {
	return errors.New(err).
		Component("audio").
		Category(errors.CategoryAudioDevice).
		Priority(errors.PriorityHigh).
		Context("operation", operation).
		Build()
}

// fileError creates a file I/O error for clip encode and decode failures.
func fileError(err error, operation, path string) error {
	return errors.New(err).
		Component("audio").
		Category(errors.CategoryFileIO).
		Context("operation", operation).
		Context("path", path).
		Build()
}

// clipNotFoundError reports a missing backing clip file at playback time.
func clipNotFoundError(path string) error {
	return errors.Newf("audio clip not found: %s", path).
		Component("audio").
		Category(errors.CategoryNotFound).
		Context("path", path).
		Build()
}
