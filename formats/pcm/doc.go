// SPDX-License-Identifier: EPL-2.0

// Package pcm decodes raw uncompressed sound assets.
//
// Legacy containers store uncompressed sound as either unsigned 8-bit
// samples or signed 16-bit little-endian samples, interleaved for stereo.
// Channel count, sample rate, and sample width all come from the sound
// metadata tag; the data itself is headerless.
//
//	dec := pcm.Decoder{Is16Bit: true, Channels: 2, SampleRate: 11025}
//	src, err := dec.Decode(bytes.NewReader(soundData))
package pcm
