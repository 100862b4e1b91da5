package audio

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/datastore"
)

// stopPollInterval bounds how long the capture goroutine keeps running after
// the stop flag is set.
const stopPollInterval = 100 * time.Millisecond

// RecordingStatus reports how a finished recording ended.
type RecordingStatus int

const (
	// StatusEmpty means the stream produced no samples; nothing was written.
	StatusEmpty RecordingStatus = iota
	// StatusSaved means the clip was encoded and an entry created.
	StatusSaved
	// StatusFailed means encoding or saving failed; no entry was created.
	StatusFailed
)

// RecordingResult is the outcome of a stopped recording.
type RecordingResult struct {
	Status  RecordingStatus
	Path    string
	EntryID uint
}

// CaptureSession manages one recording lifecycle: it owns the input stream,
// accumulates incoming sample blocks, reports live volume levels, and on
// completion encodes the clip and hands it to the entry store.
//
// Capture runs on a background goroutine. The UI only ever observes
// IsRecording plus the Levels and Errors channels; Start and Stop are the
// sole state transitions and serialize against each other.
type CaptureSession struct {
	store    datastore.Interface
	settings *conf.Settings

	// newStream builds the input stream; swapped for a fake in tests.
	newStream func() inputStream

	mu        sync.Mutex
	recording atomic.Bool
	quit      chan struct{}
	wg        sync.WaitGroup

	// samples is appended to by the device thread while the stream is live
	// and read by Stop only after the stream has been stopped and joined.
	bufMu   sync.Mutex
	samples []byte

	levelChan chan LevelData
	errChan   chan error
}

// NewCaptureSession creates an idle capture session backed by the default
// input device from settings.
func NewCaptureSession(store datastore.Interface, settings *conf.Settings) *CaptureSession {
	s := &CaptureSession{
		store:     store,
		settings:  settings,
		levelChan: make(chan LevelData, 10),
		errChan:   make(chan error, 4),
	}
	s.newStream = func() inputStream {
		return newMalgoInputStream(settings.Audio.Source)
	}
	return s
}

// IsRecording reports whether a recording is in progress.
func (s *CaptureSession) IsRecording() bool {
	return s.recording.Load()
}

// Levels returns the live volume level channel. Updates are dropped rather
// than blocking the capture thread when the consumer falls behind.
func (s *CaptureSession) Levels() <-chan LevelData {
	return s.levelChan
}

// Errors returns the channel on which asynchronous device failures are
// reported. After such a failure the session has already returned to idle.
func (s *CaptureSession) Errors() <-chan error {
	return s.errChan
}

// Start begins a new recording. It returns ErrAlreadyRecording when one is
// already in progress. Device-open failure is reported asynchronously on
// Errors once the capture goroutine detects it; Start itself never blocks
// on hardware.
func (s *CaptureSession) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recording.Load() {
		return stateError(ErrAlreadyRecording, "start")
	}

	s.bufMu.Lock()
	s.samples = nil
	s.bufMu.Unlock()

	s.recording.Store(true)
	s.quit = make(chan struct{})
	s.wg.Add(1)
	go s.run(s.quit)

	getLogger().Info("recording started")
	return nil
}

// run opens the input stream and keeps it alive until the quit channel
// closes, polling at a bounded interval so stopping completes promptly.
func (s *CaptureSession) run(quit chan struct{}) {
	defer s.wg.Done()

	stream := s.newStream()
	if err := stream.Start(s.onBlock); err != nil {
		// Auto-revert to idle and surface the failure to the UI loop.
		s.recording.Store(false)
		s.reportError(err)
		return
	}
	defer stream.Stop()

	ticker := time.NewTicker(stopPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
		}
	}
}

// onBlock is invoked from the device thread for every captured block.
func (s *CaptureSession) onBlock(block []byte) {
	s.bufMu.Lock()
	s.samples = append(s.samples, block...)
	s.bufMu.Unlock()

	// Send level to channel without blocking the capture thread. When the
	// channel is full the stale updates are drained first.
	level := calculateLevel(block)
	select {
	case s.levelChan <- level:
	default:
		for len(s.levelChan) > 0 {
			select {
			case <-s.levelChan:
			default:
			}
		}
		select {
		case s.levelChan <- level:
		default:
		}
	}
}

func (s *CaptureSession) reportError(err error) {
	select {
	case s.errChan <- err:
	default:
		getLogger().Error("capture error dropped, channel full", "error", err)
	}
}

// Stop ends the current recording and finalizes it. It returns
// ErrNotRecording when no recording is in progress. A recording with zero
// captured samples yields StatusEmpty with no file and no entry. Encoding or
// store failures yield StatusFailed along with the error; the session is
// back in idle state in every case.
func (s *CaptureSession) Stop(tags string) (RecordingResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.recording.Load() {
		return RecordingResult{}, stateError(ErrNotRecording, "stop")
	}

	close(s.quit)
	s.wg.Wait()
	s.recording.Store(false)

	// The stream is stopped and joined; the buffer has no writer anymore.
	s.bufMu.Lock()
	pcm := s.samples
	s.samples = nil
	s.bufMu.Unlock()

	if len(pcm) == 0 {
		getLogger().Info("recording stopped with no samples")
		return RecordingResult{Status: StatusEmpty}, nil
	}

	now := time.Now()
	clipPath := filepath.Join(
		datastore.MonthDir(s.settings.Storage.EntriesDir, now),
		fmt.Sprintf("%02d_audio_%d.wav", now.Day(), now.Unix()),
	)

	if err := SavePCMDataToWAV(clipPath, pcm); err != nil {
		getLogger().Error("failed to encode recording", "path", clipPath, "error", err)
		return RecordingResult{Status: StatusFailed}, err
	}

	entryID, err := s.store.SaveAudioEntry(clipPath, tags)
	if err != nil {
		getLogger().Error("failed to save audio entry", "path", clipPath, "error", err)
		return RecordingResult{Status: StatusFailed, Path: clipPath}, err
	}

	getLogger().Info("recording saved", "path", clipPath, "entry_id", entryID,
		"bytes", len(pcm))
	return RecordingResult{Status: StatusSaved, Path: clipPath, EntryID: entryID}, nil
}
