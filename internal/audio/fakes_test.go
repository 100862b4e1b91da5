package audio

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/datastore"
)

// fakeInputStream delivers preset blocks to the capture callback without any
// audio hardware.
type fakeInputStream struct {
	blocks   [][]byte
	startErr error

	mu      sync.Mutex
	started bool
	stopped bool
}

func (f *fakeInputStream) Start(onData func(block []byte)) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.mu.Lock()
	f.started = true
	f.mu.Unlock()
	// Deliver synchronously, mimicking a burst from the device thread.
	for _, b := range f.blocks {
		onData(b)
	}
	return nil
}

func (f *fakeInputStream) Stop() {
	f.mu.Lock()
	f.stopped = true
	f.mu.Unlock()
}

func (f *fakeInputStream) wasStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

// fakeOutputStream pulls the whole clip through fill on a goroutine, as fast
// as the test allows.
type fakeOutputStream struct {
	blockSize int
	startErr  error

	mu      sync.Mutex
	stopped bool
	quit    chan struct{}
	wg      sync.WaitGroup
}

func (f *fakeOutputStream) Start(fill func(out []byte)) error {
	if f.startErr != nil {
		return f.startErr
	}
	size := f.blockSize
	if size == 0 {
		size = 512
	}
	f.quit = make(chan struct{})
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		buf := make([]byte, size)
		ticker := time.NewTicker(time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-f.quit:
				return
			case <-ticker.C:
				fill(buf)
			}
		}
	}()
	return nil
}

func (f *fakeOutputStream) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}
	f.stopped = true
	close(f.quit)
	f.wg.Wait()
}

// fakeStore records SaveAudioEntry calls without a database.
type fakeStore struct {
	datastore.Interface

	mu      sync.Mutex
	saveErr error
	saved   []savedClip
	nextID  uint
}

type savedClip struct {
	path string
	tags string
}

func (f *fakeStore) SaveAudioEntry(filePath, tags string) (uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.saved = append(f.saved, savedClip{path: filePath, tags: tags})
	f.nextID++
	return f.nextID, nil
}

// sineBlock builds a block of 16-bit LE samples with the given amplitude.
func sineBlock(samples int, amplitude int16) []byte {
	block := make([]byte, samples*2)
	for i := 0; i < samples; i++ {
		v := amplitude
		if i%2 == 1 {
			v = -amplitude
		}
		binary.LittleEndian.PutUint16(block[i*2:], uint16(v))
	}
	return block
}
