// SPDX-License-Identifier: EPL-2.0

package bitmap

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Bitmap is a decoded image asset: 8-bit RGBA quadruplets, row-major,
// top-to-bottom. len(Pix) is always Width*Height*4.
type Bitmap struct {
	Width  uint32
	Height uint32
	Pix    []byte
}

// inflate decompresses a zlib-wrapped DEFLATE payload.
func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInflate, err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInflate, err)
	}
	return out, nil
}
