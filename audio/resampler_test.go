// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"io"
	"testing"

	"github.com/tag404/swfmedia/audio"
	"github.com/tag404/swfmedia/internal/audiotest"
)

// drainResampler reads everything the resampler produces.
func drainResampler(t *testing.T, r *audio.Resampler, chunk int) []int16 {
	t.Helper()

	var out []int16
	buf := make([]int16, chunk)
	for {
		n, err := r.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 100)
	r := audio.NewResampler(src, 44100)

	if r.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", r.SampleRate())
	}
	if r.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", r.Channels())
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestResampler_UpsampleCount(t *testing.T) {
	t.Parallel()

	const srcFrames = 1000
	src := audiotest.NewSineSource(8000, 1, srcFrames, 440)
	r := audio.NewResampler(src, 16000)

	out := drainResampler(t, r, 512)

	// 8000 -> 16000 doubles the frame count, give or take edge frames.
	want := srcFrames * 2
	if len(out) < want-8 || len(out) > want+8 {
		t.Errorf("output frames = %d, want about %d", len(out), want)
	}
}

func TestResampler_DownsampleCount(t *testing.T) {
	t.Parallel()

	const srcFrames = 1000
	src := audiotest.NewSineSource(44100, 2, srcFrames, 440)
	r := audio.NewResampler(src, 22050)

	out := drainResampler(t, r, 512)

	want := srcFrames / 2 * 2 // frames halved, two samples per frame
	got := len(out)
	if got < want-16 || got > want+16 {
		t.Errorf("output samples = %d, want about %d", got, want)
	}
}

func TestResampler_SilenceStaysSilent(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(11025, 1, 200)
	r := audio.NewResampler(src, 44100)

	out := drainResampler(t, r, 256)
	for i, s := range out {
		if s != 0 {
			t.Fatalf("out[%d] = %d, want 0 for silent input", i, s)
		}
	}
}

func TestResampler_ConstantInput(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 100, 10000)
	r := audio.NewResampler(src, 16000)

	out := drainResampler(t, r, 128)
	if len(out) == 0 {
		t.Fatal("no output for constant input")
	}
	for i, s := range out {
		// Allow a couple of counts for the int16 round trip.
		if s < 9998 || s > 10002 {
			t.Errorf("out[%d] = %d, want about 10000", i, s)
		}
	}
}

func TestResampler_SameRate(t *testing.T) {
	t.Parallel()

	const srcFrames = 100
	src := audiotest.NewConstantSource(22050, 2, srcFrames, -5000)
	r := audio.NewResampler(src, 22050)

	out := drainResampler(t, r, 64)

	want := srcFrames * 2
	if len(out) < want-8 || len(out) > want+8 {
		t.Errorf("output samples = %d, want about %d", len(out), want)
	}
	for i, s := range out {
		if s < -5002 || s > -4998 {
			t.Errorf("out[%d] = %d, want about -5000", i, s)
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 10)
	r := audio.NewResampler(src, 16000)

	if _, err := r.ReadSamples(make([]int16, 3)); err != audio.ErrInvalidDstSize {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 0)
	r := audio.NewResampler(src, 16000)

	n, err := r.ReadSamples(make([]int16, 64))
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}
