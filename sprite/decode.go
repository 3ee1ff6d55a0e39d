package sprite

import (
	"encoding/binary"
	"errors"
	"fmt"

	"gen3peek/lz"
	"gen3peek/profile"
)

// ErrBadPointer is returned when a sprite or palette table entry does
// not point into the cartridge address space. The entry is unusable but
// other entries are unaffected.
var ErrBadPointer = errors.New("sprite: table entry outside ROM address space")

// tablePointer reads the 8-byte entry at index i of the pointer table
// at base and returns the ROM offset it refers to.
func tablePointer(rom []byte, base profile.ROMOffset, i uint16) (uint32, error) {
	off := uint32(base) + uint32(i)*pointerEntrySize
	if int64(off)+4 > int64(len(rom)) {
		return 0, ErrBadPointer
	}
	ptr := binary.LittleEndian.Uint32(rom[off:])
	if ptr>>24 != romPointerSpace {
		return 0, ErrBadPointer
	}
	target := ptr & romPointerMask
	if int64(target) >= int64(len(rom)) {
		return 0, ErrBadPointer
	}
	return target, nil
}

// Decode locates, decompresses and detiles the front sprite for
// species, returning a freshly allocated Image. With grayscale set the
// palette collapses to luma, the rendering used for fainted party
// members.
func Decode(rom []byte, p *profile.Profile, species uint16, grayscale bool) (*Image, error) {
	sprOff, err := tablePointer(rom, p.SpriteTable, species)
	if err != nil {
		return nil, err
	}
	palOff, err := tablePointer(rom, p.PaletteTable, species)
	if err != nil {
		return nil, err
	}

	var tiles [decompBufSize]byte
	if _, err := lz.Decompress(rom[sprOff:], tiles[:]); err != nil {
		return nil, fmt.Errorf("sprite: tile data: %w", err)
	}

	// Palettes are usually compressed too, but not always: anything
	// that fails to expand to at least one full 16-color palette
	// means the region holds raw RGB555 data instead.
	var palBuf [paletteBytes * 2]byte
	palSrc := rom[palOff:]
	if n, err := lz.Decompress(palSrc, palBuf[:]); err == nil && n >= paletteBytes {
		palSrc = palBuf[:]
	}
	if len(palSrc) < paletteBytes {
		return nil, ErrBadPointer
	}

	return detile(tiles[:], buildPalette(palSrc, grayscale)), nil
}

// detile converts 4bpp tile data into a palette-applied Image. Tiles
// are stored left to right, top to bottom, 32 bytes apiece; each byte
// holds two pixels with the low nibble on the left.
func detile(tiles []byte, pal [colorsPerPalette]pixel) *Image {
	img := new(Image)
	for ty := 0; ty < tilesPerRow; ty++ {
		for tx := 0; tx < tilesPerRow; tx++ {
			tile := tiles[(ty*tilesPerRow+tx)*tileBytes:]
			for py := 0; py < tileWidth; py++ {
				for px := 0; px < tileWidth; px += 2 {
					b := tile[py*tileWidth>>1+px>>1]
					x := tx*tileWidth + px
					y := ty*tileWidth + py
					img.set(x, y, pal[b&0x0f])
					img.set(x+1, y, pal[b>>4])
				}
			}
		}
	}
	return img
}

// buildPalette converts 16 RGB555 entries to the output pixel format.
// Entry 0 is the universal transparent index and decodes to zero no
// matter what color is stored there.
func buildPalette(src []byte, grayscale bool) [colorsPerPalette]pixel {
	var pal [colorsPerPalette]pixel
	for i := 1; i < colorsPerPalette; i++ {
		c := binary.LittleEndian.Uint16(src[i*2:])
		r := expand5(uint8(c & 0x1f))
		g := expand5(uint8(c >> 5 & 0x1f))
		b := expand5(uint8(c >> 10 & 0x1f))
		if grayscale {
			l := luma(r, g, b)
			r, g, b = l, l, l
		}
		pal[i] = pixel{0xff, b, g, r}
	}
	return pal
}

// expand5 widens a 5-bit channel to 8 bits, replicating the top three
// bits into the low three so full intensity maps to 255.
func expand5(v uint8) uint8 {
	return v<<3 | v>>2
}

// luma approximates perceived brightness from 8-bit channels.
func luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*77 + uint32(g)*150 + uint32(b)*29) >> 8)
}
