package audio

import (
	"encoding/binary"
	"math"
)

// LevelData is one live volume level update computed from a capture block.
// Level is the clamped, scaled RMS of the block in the range [0, 1].
type LevelData struct {
	Level    float64
	Clipping bool
}

// calculateLevel computes the RMS of a block of 16-bit little-endian mono
// samples, normalized to [-1, 1], scaled by 10 and clamped to 1.0.
func calculateLevel(samples []byte) LevelData {
	sampleCount := len(samples) / 2 // 2 bytes per sample for 16-bit audio
	if sampleCount == 0 {
		return LevelData{}
	}

	var sum float64
	isClipping := false

	for i := 0; i+1 < len(samples); i += 2 {
		sample := int16(binary.LittleEndian.Uint16(samples[i : i+2]))
		normalized := float64(sample) / 32768.0
		sum += normalized * normalized

		if sample == math.MaxInt16 || sample == math.MinInt16 {
			isClipping = true
		}
	}

	rms := math.Sqrt(sum / float64(sampleCount))
	level := math.Min(rms*10, 1.0)

	return LevelData{Level: level, Clipping: isClipping}
}
