// SPDX-License-Identifier: EPL-2.0

package swfmedia

import (
	"fmt"
	"io"

	"github.com/tag404/swfmedia/audio"
)

// DefaultBufferSize is the pull granularity used when a caller passes a
// non-positive bufferSize.
const DefaultBufferSize = 4096

// ResampleToMono16 drains src through a mono mixer and a cubic resampler
// and collects the result as 16-bit PCM at targetRate. It is the
// convenience path for feeding decoded sound assets into pipelines that
// expect a single mono buffer (waveform previews, fingerprinting, test
// fixtures).
//
// The returned int is the number of samples collected. src is not closed.
func ResampleToMono16(src audio.Source, targetRate, bufferSize int) ([]int16, int, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	var out audio.Source = src
	if src.Channels() > 1 {
		out = audio.NewMonoMixer(src)
	}
	if src.SampleRate() != targetRate {
		out = audio.NewResampler(out, targetRate)
	}

	var pcm []int16
	buf := make([]int16, bufferSize)
	for {
		n, err := out.ReadSamples(buf)
		pcm = append(pcm, buf[:n]...)
		if err == io.EOF {
			return pcm, len(pcm), nil
		}
		if err != nil {
			return pcm, len(pcm), fmt.Errorf("%w", err)
		}
	}
}
