// SPDX-License-Identifier: EPL-2.0

package bitmap_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/klauspost/compress/zlib"
	"github.com/tag404/swfmedia/bitmap"
)

// Example decodes a 2x1 palettized version-1 lossless bitmap.
func Example() {
	// Palette of one RGB entry, two index bytes, row padded to 4 bytes.
	payload := []byte{10, 20, 30, 0, 0, 0, 0}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(payload); err != nil {
		log.Fatal(err)
	}
	zw.Close()

	bm, err := bitmap.DecodeLossless(&bitmap.DefineBitsLossless{
		Version:   1,
		Format:    bitmap.ColorMap8,
		Width:     2,
		Height:    1,
		NumColors: 0,
		Data:      compressed.Bytes(),
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(bm.Width, bm.Height, bm.Pix)
	// Output: 2 1 [10 20 30 255 10 20 30 255]
}
