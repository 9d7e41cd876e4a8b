// SPDX-License-Identifier: EPL-2.0

// Package bits provides a big-endian bit reader over a byte stream.
//
// Asset headers in the container are not byte-aligned: a 16-bit initial
// sample may start in the middle of a byte. The Reader therefore tracks an
// explicit (byte, bit) position and supports arbitrary-width reads that
// span byte boundaries.
package bits

import "io"

// Reader reads big-endian bits from an io.Reader, MSB first.
//
// Position within the stream is the count of whole bytes pulled from the
// underlying reader plus a bit offset in [0,8) into the current byte.
type Reader struct {
	r   io.Reader
	cur byte // current partially consumed byte
	n   uint // unread bits remaining in cur (0..8)
	one [1]byte
	err error // sticky fault from the underlying reader
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadUint returns the next n bits (1..32) as an unsigned value, advancing
// the position. It returns io.EOF when fewer than n bits remain in the
// stream; any other fault from the underlying reader is returned as-is.
// After an error the reader stays failed and keeps returning that error.
func (r *Reader) ReadUint(n uint) (uint32, error) {
	if r.err != nil {
		return 0, r.err
	}

	var v uint32
	for n > 0 {
		if r.n == 0 {
			if _, err := io.ReadFull(r.r, r.one[:]); err != nil {
				if err == io.ErrUnexpectedEOF {
					err = io.EOF
				}
				r.err = err
				return 0, err
			}
			r.cur = r.one[0]
			r.n = 8
		}

		take := n
		if take > r.n {
			take = r.n
		}
		shift := r.n - take
		v = v<<take | (uint32(r.cur)>>shift)&(1<<take-1)
		r.n -= take
		n -= take
	}

	return v, nil
}

// ReadInt returns the next n bits (1..32) as a two's-complement signed
// value. Error behavior matches ReadUint.
func (r *Reader) ReadInt(n uint) (int32, error) {
	v, err := r.ReadUint(n)
	if err != nil {
		return 0, err
	}

	// Sign-extend from bit n-1
	if n < 32 && v&(1<<(n-1)) != 0 {
		v |= ^uint32(0) << n
	}

	return int32(v), nil
}
