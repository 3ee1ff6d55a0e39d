package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMorton(t *testing.T) {
	tests := []struct {
		x, y, want int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 2},
		{1, 1, 3},
		{2, 0, 4},
		{0, 2, 8},
		{3, 5, 39}, // x=011 y=101 interleaves to 100111
		{7, 7, 63},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, morton(tt.x, tt.y), "morton(%d, %d)", tt.x, tt.y)
	}
}

func TestMortonIsBijective(t *testing.T) {
	var seen [64]bool
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			i := morton(x, y)
			assert.False(t, seen[i])
			seen[i] = true
		}
	}
}

func TestOffset(t *testing.T) {
	// Tile-local pixels stay within the tile's 64-pixel run.
	assert.Equal(t, 0, offset(0, 0))
	assert.Equal(t, 63, offset(7, 7))

	// The next tile to the right starts one run later; the next tile
	// row starts eight runs later.
	assert.Equal(t, 64, offset(8, 0))
	assert.Equal(t, 8*64, offset(0, 8))

	// Last pixel of the last tile.
	assert.Equal(t, Dim*Dim-1, offset(63, 63))
}
