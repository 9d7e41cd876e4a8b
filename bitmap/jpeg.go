// SPDX-License-Identifier: EPL-2.0

package bitmap

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	"github.com/gen2brain/jpegn"
)

// erroneousHeader is the invalid EOI+SOI marker pair some legacy encoders
// injected ahead of (and occasionally inside) JPEG image data.
var erroneousHeader = []byte{0xFF, 0xD9, 0xFF, 0xD8}

// RemoveInvalidJPEGData strips known-invalid byte sequences from legacy
// JPEG image tags.
//
// Before version 8 of the container format, files could carry an erroneous
// header of 0xFF 0xD9 0xFF 0xD8 ahead of the JPEG SOI marker, and the same
// four bytes could appear spliced between the encoder's table and scan
// segments. Both must be removed before a standard decoder accepts the
// stream. The function is pure and idempotent for a single occurrence.
func RemoveInvalidJPEGData(data []byte) []byte {
	if len(data) >= 4 && bytes.Equal(data[:4], erroneousHeader) {
		data = data[4:]
	}
	for n := 0; n+4 < len(data); n++ {
		if bytes.Equal(data[n:n+4], erroneousHeader) {
			out := make([]byte, 0, len(data)-4)
			out = append(out, data[:n]...)
			out = append(out, data[n+4:]...)
			return out
		}
	}
	return data
}

// GlueTablesToJPEG joins a shared JPEG tables stream with per-image scan
// data, dropping the trailing EOI marker of the tables and the leading SOI
// marker of the data so the result is a single well-formed stream.
func GlueTablesToJPEG(tables, data []byte) []byte {
	if len(tables) < 2 || len(data) < 2 {
		return append([]byte(nil), data...)
	}
	out := make([]byte, 0, len(tables)+len(data)-4)
	out = append(out, tables[:len(tables)-2]...)
	out = append(out, data[2:]...)
	return out
}

// decodeRGBA repairs and decodes a baseline JPEG stream into RGBA planes.
func decodeRGBA(data []byte) (*image.RGBA, error) {
	img, err := jpegn.Decode(bytes.NewReader(RemoveInvalidJPEGData(data)), &jpegn.Options{ToRGBA: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(b)
		draw.Draw(rgba, b, img, b.Min, draw.Src)
	}
	return rgba, nil
}

// fromRGBA copies an image.RGBA into a tightly packed Bitmap.
func fromRGBA(img *image.RGBA) *Bitmap {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	bm := &Bitmap{
		Width:  uint32(w),
		Height: uint32(h),
		Pix:    make([]byte, w*h*4),
	}
	for y := 0; y < h; y++ {
		copy(bm.Pix[y*w*4:(y+1)*w*4], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}
	return bm
}

// DecodeJPEG repairs and decodes a JPEG image tag without alpha data.
// The result is fully opaque.
func DecodeJPEG(jpegData []byte) (*Bitmap, error) {
	rgba, err := decodeRGBA(jpegData)
	if err != nil {
		return nil, err
	}

	bm := fromRGBA(rgba)
	for i := 3; i < len(bm.Pix); i += 4 {
		bm.Pix[i] = 0xFF
	}
	return bm, nil
}

// DecodeJPEGAlpha repairs and decodes a JPEG image tag with a separately
// stored, zlib-compressed 8-bit alpha plane. Pixel i of the JPEG is paired
// with alpha byte i.
//
// It fails with ErrDecode if the JPEG is rejected after repair, ErrInflate
// if the alpha plane does not decompress, and ErrSizeMismatch if the
// inflated alpha plane is shorter than width*height.
func DecodeJPEGAlpha(jpegData, alphaData []byte) (*Bitmap, error) {
	rgba, err := decodeRGBA(jpegData)
	if err != nil {
		return nil, err
	}

	alpha, err := inflate(alphaData)
	if err != nil {
		return nil, err
	}

	bm := fromRGBA(rgba)
	n := int(bm.Width) * int(bm.Height)
	if len(alpha) < n {
		return nil, fmt.Errorf("%w: %d alpha bytes for %dx%d image",
			ErrSizeMismatch, len(alpha), bm.Width, bm.Height)
	}
	for i := 0; i < n; i++ {
		bm.Pix[i*4+3] = alpha[i]
	}
	return bm, nil
}
