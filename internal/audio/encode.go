package audio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/conf"
	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/errors"
)

// SavePCMDataToWAV saves the given PCM data as a WAV file at the specified filePath.
func SavePCMDataToWAV(filePath string, pcmData []byte) error {
	// Create the directory structure if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fileError(err, "create_clip_dir", filePath)
	}

	outFile, err := os.Create(filePath)
	if err != nil {
		return fileError(err, "create_clip_file", filePath)
	}
	defer outFile.Close()

	enc := wav.NewEncoder(outFile, conf.SampleRate, conf.BitDepth, conf.NumChannels, 1)

	buf := &goaudio.IntBuffer{
		Data:   byteSliceToInts(pcmData),
		Format: &goaudio.Format{SampleRate: conf.SampleRate, NumChannels: conf.NumChannels},
	}
	if err := enc.Write(buf); err != nil {
		return fileError(err, "encode_wav", filePath)
	}

	// Close finalizes the WAV header.
	if err := enc.Close(); err != nil {
		return fileError(err, "finalize_wav", filePath)
	}
	return nil
}

// byteSliceToInts converts a byte slice to a slice of integers.
// Each pair of bytes is treated as a single 16-bit sample.
func byteSliceToInts(pcmData []byte) []int {
	samples := make([]int, 0, len(pcmData)/2)
	buf := bytes.NewBuffer(pcmData)

	for {
		var sample int16
		if err := binary.Read(buf, binary.LittleEndian, &sample); err != nil {
			break // end of buffer
		}
		samples = append(samples, int(sample))
	}

	return samples
}

// ReadWAVFile decodes a WAV clip into 16-bit little-endian mono PCM bytes
// and reports the clip's sample rate.
func ReadWAVFile(filePath string) (pcm []byte, sampleRate int, err error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, 0, fileError(err, "open_clip", filePath)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()
	if !decoder.IsValidFile() {
		return nil, 0, fileError(errInvalidWAV, "decode_wav", filePath)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fileError(err, "decode_wav", filePath)
	}

	pcm = make([]byte, 0, len(buf.Data)*2)
	raw := make([]byte, 2)
	for _, sample := range buf.Data {
		binary.LittleEndian.PutUint16(raw, uint16(int16(sample)))
		pcm = append(pcm, raw...)
	}

	return pcm, int(decoder.SampleRate), nil
}

var errInvalidWAV = errors.NewStd("invalid WAV file format")
