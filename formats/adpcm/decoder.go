// SPDX-License-Identifier: EPL-2.0

package adpcm

import (
	"fmt"
	"io"

	"github.com/tag404/swfmedia/audio"
	"github.com/tag404/swfmedia/internal/bits"
)

// samplesPerBlock is the number of sample instants per block; the
// per-channel header (initial sample + step index) repeats after each
// block.
const samplesPerBlock = 4095

// indexTables holds one step-index adjustment table per bits-per-sample
// value (2..5); each table is indexed by the magnitude part of a code
// word and sized 2^(bitsPerSample-1).
var indexTables = [4][]int16{
	{-1, 2},
	{-1, -1, 2, 4},
	{-1, -1, -1, -1, 2, 4, 6, 8},
	{-1, -1, -1, -1, -1, -1, -1, -1, 1, 2, 4, 6, 8, 10, 13, 16},
}

// stepTable maps a step index in [0,88] to a quantization step size.
var stepTable = [89]int32{
	7, 8, 9, 10, 11, 12, 13, 14, 16, 17, 19, 21, 23, 25, 28, 31, 34, 37, 41, 45, 50, 55, 60,
	66, 73, 80, 88, 97, 107, 118, 130, 143, 157, 173, 190, 209, 230, 253, 279, 307, 337, 371,
	408, 449, 494, 544, 598, 658, 724, 796, 876, 963, 1060, 1166, 1282, 1411, 1552, 1707, 1878,
	2066, 2272, 2499, 2749, 3024, 3327, 3660, 4026, 4428, 4871, 5358, 5894, 6484, 7132, 7845,
	8630, 9493, 10442, 11487, 12635, 13899, 15289, 16818, 18500, 20350, 22385, 24623, 27086,
	29794, 32767,
}

// Decoder decodes the container's adaptive differential (ADPCM) sound
// format. Stereo and SampleRate come from the container's sound metadata;
// the compressed stream itself only carries the 2-bit code size.
type Decoder struct {
	Stereo     bool
	SampleRate int
}

// Decode reads the 2-bit size code and returns a lazy Source over the
// remaining sample data. The Source is forward-only and not restartable;
// replaying requires a fresh Decode over the original bytes.
func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	br := bits.NewReader(r)

	code, err := br.ReadUint(2)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	channels := 1
	if d.Stereo {
		channels = 2
	}

	return &source{
		bits:          br,
		sampleRate:    d.SampleRate,
		channels:      channels,
		bitsPerSample: uint(code) + 2,
	}, nil
}

type channelState struct {
	sample    int32 // accumulator; may transiently hold +32768, see advance
	stepIndex int16 // clamped to [0, 88]
}

// advance applies one code word to the channel state.
// data is sign-magnitude, NOT two's complement: the high bit selects the
// delta direction and the remaining bits scale it.
func (st *channelState) advance(data int32, bitsPerSample uint) {
	step := stepTable[st.stepIndex]

	signMask := int32(1) << (bitsPerSample - 1)
	magnitude := data &^ signMask

	// delta = (magnitude + 0.5) * step / 2^(bitsPerSample-2)
	delta := (2*magnitude + 1) * step / signMask

	if data&signMask != 0 {
		st.sample -= delta
	} else {
		st.sample += delta
	}

	// Underflow historically set the accumulator to +32768, which narrows
	// to -32768 in the emitted int16. Legacy content depends on the
	// follow-on effect of the positive accumulator; keep it.
	if st.sample < -32768 {
		st.sample = 32768
	} else if st.sample > 32767 {
		st.sample = 32767
	}

	st.stepIndex += indexTables[bitsPerSample-2][magnitude]
	if st.stepIndex < 0 {
		st.stepIndex = 0
	} else if st.stepIndex > 88 {
		st.stepIndex = 88
	}
}

type source struct {
	bits          *bits.Reader
	sampleRate    int
	channels      int
	bitsPerSample uint
	sampleNum     int // instant counter within the current block
	chans         [2]channelState
	err           error // sticky; io.EOF once the bit stream runs out
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

// decodeInstant advances every channel by one sample instant, re-reading
// the per-channel headers at block boundaries.
func (s *source) decodeInstant() error {
	if s.sampleNum == 0 {
		// The initial sample values are NOT byte-aligned.
		for c := 0; c < s.channels; c++ {
			sample, err := s.bits.ReadInt(16)
			if err != nil {
				return err
			}
			idx, err := s.bits.ReadUint(6)
			if err != nil {
				return err
			}
			s.chans[c] = channelState{sample: sample, stepIndex: int16(idx)}
		}
	}
	s.sampleNum = (s.sampleNum + 1) % samplesPerBlock

	for c := 0; c < s.channels; c++ {
		data, err := s.bits.ReadUint(s.bitsPerSample)
		if err != nil {
			return err
		}
		s.chans[c].advance(int32(data), s.bitsPerSample)
	}

	return nil
}

// ReadSamples decodes whole sample instants into dst, left before right
// for stereo. Running out of bits is normal termination (io.EOF); any
// other fault from the byte source is reported once and is fatal.
func (s *source) ReadSamples(dst []int16) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if s.err != nil {
		return 0, s.err
	}

	frames := len(dst) / s.channels
	written := 0

	for f := 0; f < frames; f++ {
		if err := s.decodeInstant(); err != nil {
			s.err = err
			return written * s.channels, err
		}
		for c := 0; c < s.channels; c++ {
			dst[f*s.channels+c] = int16(s.chans[c].sample)
		}
		written++
	}

	return written * s.channels, nil
}
