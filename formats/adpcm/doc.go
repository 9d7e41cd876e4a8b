// SPDX-License-Identifier: EPL-2.0

// Package adpcm decodes the container's adaptive differential PCM sound
// format into 16-bit samples.
//
// The format is a sign-magnitude ADPCM variant:
//   - the stream opens with a 2-bit code giving bitsPerSample = code + 2
//     (2 to 5 bits per code word);
//   - every 4095 sample instants, each channel stores a raw 16-bit
//     initial sample and a 6-bit step index, packed without byte
//     alignment;
//   - between headers, each instant stores one code word per channel
//     (left first, then right), whose high bit is a sign and whose
//     remaining bits scale a step-table delta.
//
// The decoder reproduces the historical reference behavior bit-for-bit,
// including its quirks. In particular, an accumulator underflow below
// -32768 sets the accumulator to +32768 (emitting -32768 after
// narrowing), rather than saturating; existing content depends on the
// decoded output of that path.
//
// Usage:
//
//	dec := adpcm.Decoder{Stereo: true, SampleRate: 22050}
//	src, err := dec.Decode(bytes.NewReader(soundData))
//	if err != nil {
//	    // empty or unreadable stream
//	}
//
//	buf := make([]int16, 4096)
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // consume buf[:n]; err == io.EOF when the stream is done
//	}
//
// A truncated stream ends with io.EOF exactly like a complete one; legacy
// players treat short sound data as a shorter sound, not an error.
package adpcm
