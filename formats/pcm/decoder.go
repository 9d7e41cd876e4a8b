// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tag404/swfmedia/audio"
)

// Decoder decodes raw uncompressed sound assets. Containers store these
// either as unsigned 8-bit samples or as signed 16-bit little-endian
// samples; the metadata tag says which.
type Decoder struct {
	Is16Bit    bool
	Channels   int // 1 or 2
	SampleRate int
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	if d.Channels != 1 && d.Channels != 2 {
		return nil, ErrBadChannelCount
	}
	return &source{
		r:          r,
		is16Bit:    d.Is16Bit,
		sampleRate: d.SampleRate,
		channels:   d.Channels,
		buf:        make([]byte, 4096),
	}, nil
}

type source struct {
	r          io.Reader
	is16Bit    bool
	sampleRate int
	channels   int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) }

func (s *source) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesPerSample := 1
	if s.is16Bit {
		bytesPerSample = 2
	}
	bytesNeeded := len(dst) * bytesPerSample
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	// A trailing partial 16-bit sample is dropped with the rest of the
	// truncated stream.
	samples := n / bytesPerSample
	if s.is16Bit {
		for i := range samples {
			dst[i] = int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
		}
	} else {
		for i := range samples {
			// Unsigned 8-bit centered at 128, widened to 16-bit.
			dst[i] = (int16(s.buf[i]) - 128) << 8
		}
	}

	if samples == 0 && (err == io.EOF || err == io.ErrUnexpectedEOF) {
		return 0, io.EOF
	}
	return samples, nil
}
