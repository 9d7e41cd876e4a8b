// SPDX-License-Identifier: EPL-2.0

package bitmap

import "errors"

var (
	// ErrInflate reports a corrupt DEFLATE/zlib-compressed payload.
	ErrInflate = errors.New("corrupt compressed pixel data")
	// ErrDecode reports a JPEG stream the baseline decoder rejected even
	// after erratum repair.
	ErrDecode = errors.New("jpeg decode failed")
	// ErrSizeMismatch reports a decoded payload shorter than the declared
	// dimensions require.
	ErrSizeMismatch = errors.New("payload shorter than declared dimensions")
	// ErrUnimplemented reports a recognized but unsupported legacy variant.
	ErrUnimplemented = errors.New("unsupported bitmap variant")
	// ErrMalformedHeader reports a format code outside the known range.
	ErrMalformedHeader = errors.New("unknown bitmap format code")
)
