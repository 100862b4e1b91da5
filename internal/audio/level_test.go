package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLevelSilence(t *testing.T) {
	lv := calculateLevel(make([]byte, 1024))
	assert.Zero(t, lv.Level)
	assert.False(t, lv.Clipping)
}

func TestCalculateLevelEmptyBlock(t *testing.T) {
	lv := calculateLevel(nil)
	assert.Zero(t, lv.Level)
	assert.False(t, lv.Clipping)
}

func TestCalculateLevelScalesAndClamps(t *testing.T) {
	// A constant-magnitude square wave has RMS equal to its amplitude.
	quiet := sineBlock(256, 1638) // ~0.05 full scale, level ~0.5 after x10
	lv := calculateLevel(quiet)
	assert.InDelta(t, 0.5, lv.Level, 0.01)
	assert.False(t, lv.Clipping)

	loud := sineBlock(256, 16384) // 0.5 full scale, x10 clamps to 1.0
	lv = calculateLevel(loud)
	assert.Equal(t, 1.0, lv.Level)
}

func TestCalculateLevelDetectsClipping(t *testing.T) {
	block := sineBlock(64, 1000)
	binary.LittleEndian.PutUint16(block[10:], uint16(int16(math.MaxInt16)))

	lv := calculateLevel(block)
	assert.True(t, lv.Clipping)

	minSample := int16(math.MinInt16)
	binary.LittleEndian.PutUint16(block[10:], uint16(minSample))
	lv = calculateLevel(block)
	assert.True(t, lv.Clipping)
}
