/*
Package sprite decodes the compressed 64 by 64 pixel front sprites
stored in the cartridge ROM into GPU-ready pixel buffers.

A sprite is stored as an LZ77-compressed run of 4-bit indexed 8 by 8
tiles together with a 16-color RGB555 palette, located through pointer
tables in the active profile. Decoding produces a fixed buffer of 32-bit
pixels laid out in Morton order within each tile, which is the layout
the target texture unit consumes directly; composing the tiles row-major
instead displays corrupted.
*/
package sprite

import "image"

// Dim is the width and height in pixels of a decoded sprite.
const Dim = 64

const (
	tileWidth   = 8
	tilesPerRow = Dim / tileWidth
	tileBytes   = tileWidth * tileWidth >> 1 // two pixels per byte

	colorsPerPalette = 16
	paletteBytes     = colorsPerPalette * 2

	tileDataSize  = Dim * Dim >> 1
	decompBufSize = 4096 // headroom over tileDataSize

	pointerEntrySize = 8
	romPointerSpace  = 0x08
	romPointerMask   = 0x01ffffff
)

// pixel is one output pixel: A, B, G, R from low to high byte.
type pixel [4]byte

// Image is one decoded sprite. Pix holds Dim*Dim 32-bit pixels stored
// as A, B, G, R from low to high address, Morton-ordered within each
// 8 by 8 tile; palette index 0 always decodes to fully transparent.
// Each Image owns its buffer outright; decodes never share storage.
type Image struct {
	Pix [Dim * Dim * 4]byte
}

func (m *Image) set(x, y int, p pixel) {
	copy(m.Pix[offset(x, y)*4:], p[:])
}

// at returns the pixel at linear coordinates (x, y).
func (m *Image) at(x, y int) (p pixel) {
	copy(p[:], m.Pix[offset(x, y)*4:])
	return p
}

// RGBA converts the Morton-ordered buffer into a linear image.RGBA for
// export or inspection. The GPU path uses Pix directly.
func (m *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, Dim, Dim))
	for y := 0; y < Dim; y++ {
		for x := 0; x < Dim; x++ {
			p := m.at(x, y)
			o := out.PixOffset(x, y)
			out.Pix[o+0] = p[3]
			out.Pix[o+1] = p[2]
			out.Pix[o+2] = p[1]
			out.Pix[o+3] = p[0]
		}
	}
	return out
}
