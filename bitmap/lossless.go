// SPDX-License-Identifier: EPL-2.0

package bitmap

import "fmt"

// Format identifies the pixel layout of a lossless bitmap tag. The values
// are the container's own format codes.
type Format uint8

const (
	ColorMap8 Format = 3 // 8-bit palette indices
	Rgb15     Format = 4 // 15-bit direct color
	Rgb32     Format = 5 // 32-bit direct color
)

func (f Format) String() string {
	switch f {
	case ColorMap8:
		return "ColorMap8"
	case Rgb15:
		return "Rgb15"
	case Rgb32:
		return "Rgb32"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// FormatFromCode maps a raw container format code to a Format.
// Codes outside the known range fail with ErrMalformedHeader.
func FormatFromCode(code uint8) (Format, error) {
	switch code {
	case 3, 4, 5:
		return Format(code), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrMalformedHeader, code)
}

// DefineBitsLossless carries a lossless bitmap tag as extracted by the
// container demultiplexer.
type DefineBitsLossless struct {
	Version   uint8  // 1 or 2; decides channel order and palette layout
	Format    Format //
	Width     uint16
	Height    uint16
	NumColors uint8  // palette length minus one; ColorMap8 only
	Data      []byte // zlib-compressed pixel block
}

// paletteEntry is consumed in stream order ahead of the index bytes.
type paletteEntry struct {
	r, g, b, a byte
}

// DecodeLossless inflates a lossless bitmap tag and converts it to RGBA.
//
// The transform depends on (version, format):
//
//	v1 Rgb32:     (reserved,R,G,B) -> (R,G,B,0xFF)
//	v2 Rgb32:     (A,R,G,B)        -> (R,G,B,A)
//	v1 ColorMap8: 3-byte RGB palette, implicit alpha 255
//	v2 ColorMap8: 4-byte RGBA palette
//	any Rgb15:    ErrUnimplemented
//
// ColorMap8 index rows are padded to a multiple of 4 bytes; the padding is
// skipped. An out-of-range palette index becomes opaque black in version 1
// and transparent black in version 2 — the two tag generations genuinely
// differ here, so the asymmetry is preserved.
func DecodeLossless(tag *DefineBitsLossless) (*Bitmap, error) {
	decoded, err := inflate(tag.Data)
	if err != nil {
		return nil, err
	}

	w := int(tag.Width)
	h := int(tag.Height)

	switch {
	case tag.Format == Rgb15:
		return nil, fmt.Errorf("%w: 15-bit pixel data", ErrUnimplemented)

	case tag.Format == Rgb32 && (tag.Version == 1 || tag.Version == 2):
		if len(decoded) < w*h*4 {
			return nil, fmt.Errorf("%w: %d bytes for %dx%d Rgb32", ErrSizeMismatch, len(decoded), w, h)
		}
		pix := decoded[:w*h*4]
		if tag.Version == 1 {
			// (reserved,R,G,B) -> (R,G,B,0xFF)
			for i := 0; i < len(pix); i += 4 {
				pix[i], pix[i+1], pix[i+2], pix[i+3] = pix[i+1], pix[i+2], pix[i+3], 0xFF
			}
		} else {
			// (A,R,G,B) -> (R,G,B,A)
			for i := 0; i < len(pix); i += 4 {
				alpha := pix[i]
				pix[i], pix[i+1], pix[i+2], pix[i+3] = pix[i+1], pix[i+2], pix[i+3], alpha
			}
		}
		return &Bitmap{Width: uint32(w), Height: uint32(h), Pix: pix}, nil

	case tag.Format == ColorMap8 && (tag.Version == 1 || tag.Version == 2):
		return depalettize(tag, decoded)

	default:
		return nil, fmt.Errorf("%w: version %d, format %s", ErrUnimplemented, tag.Version, tag.Format)
	}
}

// depalettize expands indexed pixel data through the palette stored ahead
// of it in the inflated block.
func depalettize(tag *DefineBitsLossless, decoded []byte) (*Bitmap, error) {
	w := int(tag.Width)
	h := int(tag.Height)
	count := int(tag.NumColors) + 1

	entrySize := 3
	fallback := paletteEntry{0, 0, 0, 255}
	if tag.Version == 2 {
		entrySize = 4
		fallback = paletteEntry{0, 0, 0, 0}
	}

	// Index rows are padded to the next multiple of 4 bytes. The padding
	// of the final row is never dereferenced, so it may be absent.
	paddedWidth := (w + 0b11) &^ 0b11
	need := count * entrySize
	if h > 0 {
		need += (h-1)*paddedWidth + w
	}
	if len(decoded) < need {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d ColorMap8 with %d colors",
			ErrSizeMismatch, len(decoded), w, h, count)
	}

	palette := make([]paletteEntry, 0, count)
	i := 0
	for range count {
		if tag.Version == 1 {
			palette = append(palette, paletteEntry{decoded[i], decoded[i+1], decoded[i+2], 255})
		} else {
			palette = append(palette, paletteEntry{decoded[i], decoded[i+1], decoded[i+2], decoded[i+3]})
		}
		i += entrySize
	}

	out := make([]byte, 0, w*h*4)
	for range h {
		for x := 0; x < w; x++ {
			entry := int(decoded[i])
			color := fallback
			if entry < len(palette) {
				color = palette[entry]
			}
			out = append(out, color.r, color.g, color.b, color.a)
			i++
		}
		i += paddedWidth - w
	}

	return &Bitmap{Width: uint32(w), Height: uint32(h), Pix: out}, nil
}
