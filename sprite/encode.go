package sprite

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/ericpauley/go-quantize/quantize"

	"gen3peek/lz"
)

// Encode writes m in the ROM sprite format: an LZ77-compressed block of
// 4bpp tiles followed by an LZ77-compressed 16-color RGB555 palette.
// Palette index 0 is reserved for transparency, leaving 15 usable
// colors; images with more are quantized down first.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() != Dim || b.Dy() != Dim {
		return errors.New("sprite: image is wrong size")
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > colorsPerPalette-1 {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colorsPerPalette-1), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	var tiles [tileDataSize]byte
	for ty := 0; ty < tilesPerRow; ty++ {
		for tx := 0; tx < tilesPerRow; tx++ {
			base := (ty*tilesPerRow + tx) * tileBytes
			for y := 0; y < tileWidth; y++ {
				for x := 0; x < tileWidth>>1; x++ {
					left := pixelIndex(pm, tx*tileWidth+x<<1, ty*tileWidth+y)
					right := pixelIndex(pm, tx*tileWidth+x<<1+1, ty*tileWidth+y)
					tiles[base+y*tileWidth>>1+x] = right<<4 | left
				}
			}
		}
	}

	var pal [paletteBytes]byte
	for i, c := range pm.Palette {
		if i >= colorsPerPalette-1 {
			break
		}
		r, g, b, _ := c.RGBA()
		v := uint16(r>>11) | uint16(g>>11)<<5 | uint16(b>>11)<<10
		binary.LittleEndian.PutUint16(pal[(i+1)*2:], v)
	}

	if _, err := w.Write(lz.Compress(tiles[:])); err != nil {
		return err
	}
	if _, err := w.Write(lz.Compress(pal[:])); err != nil {
		return err
	}
	return nil
}

// pixelIndex maps a source pixel to its 4-bit index, shifted up by one
// to keep index 0 for fully transparent pixels.
func pixelIndex(pm *image.Paletted, x, y int) byte {
	if _, _, _, a := pm.At(x, y).RGBA(); a == 0 {
		return 0
	}
	return pm.ColorIndexAt(x, y)&0x0f + 1
}

// DecodeStream reads an Encode-produced byte stream back into an Image,
// the same conversion Decode applies to sprite data found in a ROM.
func DecodeStream(b []byte, grayscale bool) (*Image, error) {
	var tiles [decompBufSize]byte
	if _, err := lz.Decompress(b, tiles[:]); err != nil {
		return nil, err
	}
	n, err := lz.CompressedSize(b)
	if err != nil {
		return nil, err
	}

	var palBuf [paletteBytes * 2]byte
	palSrc := b[n:]
	if pn, err := lz.Decompress(palSrc, palBuf[:]); err == nil && pn >= paletteBytes {
		palSrc = palBuf[:]
	}

	return detile(tiles[:], buildPalette(palSrc, grayscale)), nil
}
