package audio

import (
	"runtime"
	"strings"

	"github.com/gen2brain/malgo"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
)

// inputStream delivers capture blocks from an audio input device. Blocks
// arrive on the device's own thread; the owner must not read its sample
// buffer until Stop has returned.
type inputStream interface {
	// Start opens the device and begins delivering 16-bit LE mono sample
	// blocks to onData. It returns once the device is running.
	Start(onData func(block []byte)) error
	// Stop halts delivery and releases the device.
	Stop()
}

// outputStream feeds sample blocks to an audio output device. fill is called
// from the device thread to populate each output block; it must zero-fill
// any remainder it cannot supply.
type outputStream interface {
	Start(fill func(out []byte)) error
	Stop()
}

// platformBackend picks the native audio backend the way the OS expects.
func platformBackend() malgo.Backend {
	switch runtime.GOOS {
	case "linux":
		return malgo.BackendAlsa
	case "windows":
		return malgo.BackendWasapi
	case "darwin":
		return malgo.BackendCoreaudio
	default:
		return malgo.BackendNull
	}
}

// malgoInputStream implements inputStream on a malgo capture device.
type malgoInputStream struct {
	source string
	ctx    *malgo.AllocatedContext
	device *malgo.Device
}

func newMalgoInputStream(source string) inputStream {
	return &malgoInputStream{source: source}
}

func (s *malgoInputStream) Start(onData func(block []byte)) error {
	ctx, err := malgo.InitContext([]malgo.Backend{platformBackend()}, malgo.ContextConfig{}, nil)
	if err != nil {
		return deviceError(err, "init_context")
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceConfig.Capture.Format = malgo.FormatS16
	deviceConfig.Capture.Channels = conf.NumChannels
	deviceConfig.SampleRate = conf.SampleRate
	deviceConfig.Alsa.NoMMap = 1

	// Honor a non-default source setting by matching on device name.
	if s.source != "" && s.source != "sysdefault" {
		infos, err := ctx.Devices(malgo.Capture)
		if err != nil {
			_ = ctx.Uninit()
			return deviceError(err, "list_devices")
		}
		for i := range infos {
			if strings.Contains(infos[i].Name(), s.source) {
				deviceConfig.Capture.DeviceID = infos[i].ID.Pointer()
				break
			}
		}
	}

	callbacks := malgo.DeviceCallbacks{
		Data: func(pOutput, pInput []byte, frameCount uint32) {
			onData(pInput)
		},
	}

	device, err := malgo.InitDevice(ctx.Context, deviceConfig, callbacks)
	if err != nil {
		_ = ctx.Uninit()
		return deviceError(err, "init_capture_device")
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		_ = ctx.Uninit()
		return deviceError(err, "start_capture_device")
	}

	s.ctx = ctx
	s.device = device
	return nil
}

func (s *malgoInputStream) Stop() {
	if s.device != nil {
		_ = s.device.Stop()
		s.device.Uninit()
		s.device = nil
	}
	if s.ctx != nil {
		_ = s.ctx.Uninit()
		s.ctx.Free()
		s.ctx = nil
	}
}

// malgoOutputStream implements outputStream on a malgo playback device.
type malgoOutputStream struct {
	sampleRate int
	ctx        *malgo.AllocatedContext
	device     *malgo.Device
}

func newMalgoOutputStream(sampleRate int) outputStream {
	return &malgoOutputStream{sampleRate: sampleRate}
}

func (s *malgoOutputStream) Start(fill func(out []byte)) error {
	ctx, err := malgo.InitContext([]malgo.Backend{platformBackend()}, malgo.ContextConfig{}, nil)
	if err != nil {
		return deviceError(err, "init_context")
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatS16
	deviceConfig.Playback.Channels = conf.NumChannels
	deviceConfig.SampleRate = uint32(s.sampleRate)
	deviceConfig.Alsa.NoMMap = 1

	callbacks := malgo.DeviceCallbacks{
		Data: func(pOutput, pInput []byte, frameCount uint32) {
			fill(pOutput)
		},
	}

	device, err := malgo.InitDevice(ctx.Context, deviceConfig, callbacks)
	if err != nil {
		_ = ctx.Uninit()
		return deviceError(err, "init_playback_device")
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		_ = ctx.Uninit()
		return deviceError(err, "start_playback_device")
	}

	s.ctx = ctx
	s.device = device
	return nil
}

func (s *malgoOutputStream) Stop() {
	if s.device != nil {
		_ = s.device.Stop()
		s.device.Uninit()
		s.device = nil
	}
	if s.ctx != nil {
		_ = s.ctx.Uninit()
		s.ctx.Free()
		s.ctx = nil
	}
}
