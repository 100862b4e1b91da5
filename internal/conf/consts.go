package conf

// Audio capture and encoding parameters. Recordings are uncompressed mono
// WAV; the sample width is fixed so that clips round-trip losslessly
// through save and playback.
const (
	SampleRate  = 44100
	NumChannels = 1
	BitDepth    = 16
)
