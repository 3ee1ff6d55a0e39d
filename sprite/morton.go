package sprite

// morton interleaves the low three bits of x and y as y2 x2 y1 x1 y0 x0,
// the pixel order the texture unit expects within an 8 by 8 tile.
func morton(x, y int) int {
	return (x & 1) | (y&1)<<1 |
		(x&2)<<1 | (y&2)<<2 |
		(x&4)<<2 | (y&4)<<3
}

// offset returns the buffer index of pixel (x, y): tiles are laid out
// row-major, 64 pixels apiece, with Morton addressing inside the tile.
func offset(x, y int) int {
	return ((y>>3)*tilesPerRow+(x>>3))*64 + morton(x&7, y&7)
}
