// SPDX-License-Identifier: EPL-2.0

package adpcm_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/tag404/swfmedia/formats/adpcm"
)

// Example decodes a tiny mono ADPCM sound: a zeroed header followed by
// four 4-bit code words.
func Example() {
	data := []byte{0x80, 0x00, 0x00, 0x19, 0x2F}

	dec := adpcm.Decoder{Stereo: false, SampleRate: 8000}
	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	buf := make([]int16, 8)
	n, _ := src.ReadSamples(buf)
	fmt.Println(buf[:n])
	// Output: [2 0 4 -9]
}
