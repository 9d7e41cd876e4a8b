// SPDX-License-Identifier: EPL-2.0

// Package bitmap repairs and decodes the image assets of legacy SWF-style
// containers into RGBA pixel buffers.
//
// Two asset families are handled:
//
// JPEG tags, decoded with a baseline JPEG decoder after repairing the
// malformed streams old encoders produced (RemoveInvalidJPEGData), with
// optional merging of a shared tables stream (GlueTablesToJPEG) and of a
// separately compressed alpha plane (DecodeJPEGAlpha).
//
// Lossless tags, zlib-compressed direct-color or palettized pixel blocks
// with version-dependent channel ordering (DecodeLossless).
//
// All decoders are one-shot pure functions of their inputs: no state is
// kept across calls, identical inputs always produce identical output, and
// concurrent use on independent inputs needs no synchronization. Errors
// are fatal per asset only; a renderer typically substitutes a placeholder
// bitmap and carries on with unrelated assets.
package bitmap
