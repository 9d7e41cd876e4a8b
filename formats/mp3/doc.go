// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 sound assets.
//
// This package uses github.com/hajimehoshi/go-mp3 for the actual MP3
// bitstream decoding and adapts its output to the audio.Source interface.
// The output is always stereo interleaved 16-bit PCM; mono MP3 data is
// emitted with both channels equal.
package mp3
