// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio primitives shared by the
// sound asset decoders.
//
// This package contains the core building blocks:
//   - Source interface for decoded PCM streams
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []int16) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All sound decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines. Samples are
// interleaved 16-bit PCM, channel-major per sample instant: for stereo,
// the left sample of an instant always precedes the right one. Decoders
// preserve this order bit-exactly; a mixer that cares about channel
// placement can rely on it.
//
// # Resampling
//
// The Resampler changes the sample rate of audio using cubic
// interpolation:
//
//	resampler := audio.NewResampler(source, 44100)
//	buf := make([]int16, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// Resampling works for both upsampling and downsampling. Note that the
// resampler interpolates; it is for playback pipelines, not for
// bit-exact comparisons against reference output.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("adpcm", adpcm.Decoder{SampleRate: 22050})
//	decoder, _ := registry.Get("adpcm")
//
// This is useful for container demultiplexers that dispatch on the
// sound format code of a tag.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available; a truncated
// input stream also ends with io.EOF rather than an error, mirroring
// how legacy players treat short sound data. Other errors indicate
// problems with the underlying byte source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
