// SPDX-License-Identifier: EPL-2.0

// Package wav exports decoded sound assets as PCM WAV files.
//
// This package uses the github.com/go-audio libraries for the actual WAV
// encoding. It is the debugging counterpart to the sound decoders: the
// container never stores WAV data, but dumping a decoded sound to a WAV
// file is the easiest way to listen to (and diff) decoder output.
//
// Writing collected samples:
//
//	file, _ := os.Create("sound.wav")
//	err := wav.WriteWAV16(file, 22050, 1, samples)
//
// Writing straight from a decoder:
//
//	src, _ := adpcm.Decoder{SampleRate: 22050}.Decode(r)
//	err := wav.WriteSource(file, src, 4096)
//
// Both need an io.WriteSeeker because the RIFF header sizes are patched
// after the data chunk is written; os.File qualifies.
package wav
