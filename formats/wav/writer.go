// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/tag404/swfmedia/audio"
)

// WriteWAV16 writes interleaved 16-bit PCM as a WAV file. channels must
// be 1 or 2; samples are consumed as-is, so decoded sound assets round
// through this without resampling or dithering.
func WriteWAV16(ws io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels != 1 && channels != 2 {
		return ErrBadChannelCount
	}

	enc := gowav.NewEncoder(ws, sampleRate, 16, channels, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// WriteSource drains src and writes everything it produces as a 16-bit
// PCM WAV at the source's own rate and channel count. bufferSize is the
// pull granularity in samples (4096 is a good default).
func WriteSource(ws io.WriteSeeker, src audio.Source, bufferSize int) error {
	var pcm16 []int16
	buf := make([]int16, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			pcm16 = append(pcm16, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return WriteWAV16(ws, src.SampleRate(), src.Channels(), pcm16)
}
