package audio

import (
	"os"
	"sync"
)

// PlaybackEvent notifies the UI that a playback finished on its own, so a
// play control can reset without polling. Err is set when the device failed
// mid-stream.
type PlaybackEvent struct {
	Path string
	Err  error
}

// PlaybackController manages at most one active playback of a stored clip.
// Toggling the path that is already playing stops it; toggling a different
// path stops the current playback first. At no point are two playback
// goroutines alive concurrently.
type PlaybackController struct {
	// newStream builds the output stream; swapped for a fake in tests.
	newStream func(sampleRate int) outputStream

	mu   sync.Mutex // serializes Toggle and StopAll
	quit chan struct{}
	wg   sync.WaitGroup

	curMu   sync.Mutex
	current string

	events chan PlaybackEvent
}

// NewPlaybackController creates an idle playback controller.
func NewPlaybackController() *PlaybackController {
	return &PlaybackController{
		newStream: newMalgoOutputStream,
		events:    make(chan PlaybackEvent, 4),
	}
}

// Events returns the channel on which natural-completion notifications and
// asynchronous device failures are delivered.
func (c *PlaybackController) Events() <-chan PlaybackEvent {
	return c.events
}

// PlayingPath returns the path currently playing, or "" when idle.
func (c *PlaybackController) PlayingPath() string {
	c.curMu.Lock()
	defer c.curMu.Unlock()
	return c.current
}

func (c *PlaybackController) setCurrent(path string) {
	c.curMu.Lock()
	c.current = path
	c.curMu.Unlock()
}

// clearCurrent resets the playing path if it still names p. The playback
// goroutine calls this on natural completion; it must not take c.mu, which
// StopAll holds while joining.
func (c *PlaybackController) clearCurrent(p string) {
	c.curMu.Lock()
	if c.current == p {
		c.current = ""
	}
	c.curMu.Unlock()
}

// Toggle plays the clip at path, or stops it if it is the one already
// playing. Starting a new clip always stops the previous one first. A
// missing file fails with a not-found error and leaves state unchanged.
func (c *PlaybackController) Toggle(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.PlayingPath() == path {
		c.stopLocked()
		getLogger().Info("playback toggled off", "path", path)
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		return clipNotFoundError(path)
	}
	pcm, sampleRate, err := ReadWAVFile(path)
	if err != nil {
		return err
	}

	c.stopLocked()
	c.quit = make(chan struct{})
	c.setCurrent(path)
	c.wg.Add(1)
	go c.play(path, pcm, sampleRate, c.quit)

	getLogger().Info("playback started", "path", path, "sample_rate", sampleRate)
	return nil
}

// StopAll unconditionally halts any active playback. Used on application
// shutdown and when switching views, so no playback goroutine outlives the
// session.
func (c *PlaybackController) StopAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

// stopLocked stops and joins the active playback goroutine. Callers hold c.mu.
func (c *PlaybackController) stopLocked() {
	if c.quit == nil {
		return
	}
	close(c.quit)
	c.wg.Wait()
	c.quit = nil
	c.setCurrent("")
}

// play feeds the decoded clip to the output device until the samples run out
// or the quit channel closes.
func (c *PlaybackController) play(path string, pcm []byte, sampleRate int, quit chan struct{}) {
	defer c.wg.Done()

	// pos is advanced only from the device thread inside fill.
	pos := 0
	done := make(chan struct{})
	var once sync.Once

	fill := func(out []byte) {
		n := copy(out, pcm[pos:])
		pos += n
		for i := n; i < len(out); i++ {
			out[i] = 0
		}
		if pos >= len(pcm) {
			once.Do(func() { close(done) })
		}
	}

	stream := c.newStream(sampleRate)
	if err := stream.Start(fill); err != nil {
		c.clearCurrent(path)
		c.emit(PlaybackEvent{Path: path, Err: err})
		return
	}
	defer stream.Stop()

	select {
	case <-quit:
		return
	case <-done:
		c.clearCurrent(path)
		c.emit(PlaybackEvent{Path: path})
		getLogger().Info("playback completed", "path", path)
	}
}

func (c *PlaybackController) emit(ev PlaybackEvent) {
	select {
	case c.events <- ev:
	default:
		getLogger().Warn("playback event dropped, channel full", "path", ev.Path)
	}
}
