// SPDX-License-Identifier: EPL-2.0

// Package swfmedia decodes the embedded media assets of legacy SWF-style
// multimedia containers into raw sample and pixel buffers.
//
// The package does not parse containers. A collaborating demultiplexer is
// expected to extract per-asset byte slices (sound data, image data, shared
// JPEG tables, compressed alpha planes) together with the metadata the
// container declares for them (channel count, sample rate, dimensions,
// version, pixel format), and hand those slices to the decoders here. The
// decoders return interleaved 16-bit PCM or RGBA buffers; ownership of the
// results passes to the caller.
//
// # Sound Assets
//
// Sound decoders live under formats/ and implement the audio.Decoder
// interface:
//   - ADPCM (the container's adaptive differential codec) via formats/adpcm
//   - Raw uncompressed PCM (8-bit unsigned or 16-bit LE) via formats/pcm
//   - MP3 via formats/mp3
//
// All of them return an audio.Source, a lazy, forward-only stream of
// interleaved int16 samples:
//
//	dec := adpcm.Decoder{Stereo: false, SampleRate: 22050}
//	src, _ := dec.Decode(bytes.NewReader(soundData))
//
//	buf := make([]int16, 4096)
//	n, err := src.ReadSamples(buf)
//
// A Source is not restartable; replaying a sound means decoding the
// original bytes again with a fresh decoder. Distinct sources share no
// state and may be driven from separate goroutines.
//
// # Image Assets
//
// The bitmap package repairs and decodes image assets into RGBA:
//
//	bm, err := bitmap.DecodeJPEGAlpha(jpegData, alphaData)
//	bm, err := bitmap.DecodeLossless(&bitmap.DefineBitsLossless{...})
//
// Image decoders are one-shot and hold no state across calls. Decode
// errors are fatal per asset only; callers typically substitute a
// placeholder and keep decoding unrelated assets.
//
// # Mixer Pipelines
//
// The audio subpackage provides the processing blocks a mixer needs to
// bring decoded sounds to a common output rate:
//
//	resampler := audio.NewResampler(src, 44100)
//	mono := audio.NewMonoMixer(resampler)
//
// or, for the common collect-everything case:
//
//	pcm16, n, err := swfmedia.ResampleToMono16(src, 44100, 4096)
//
// # Exporting
//
// formats/wav writes decoded sounds as 16-bit PCM WAV files, which is
// handy for debugging asset dumps:
//
//	wav.WriteSource(outFile, src, 4096)
package swfmedia
