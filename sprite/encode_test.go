package sprite

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// round-trippable colors: every channel survives the RGB555 conversion.
var testColors = color.Palette{
	color.RGBA{0, 0, 0, 0}, // transparent
	color.RGBA{255, 0, 0, 255},
	color.RGBA{0, 255, 0, 255},
	color.RGBA{0, 0, 255, 255},
	color.RGBA{132, 132, 132, 255}, // 16 in each 5-bit channel
	color.RGBA{255, 255, 255, 255},
}

func testPaletted() *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, Dim, Dim), testColors)
	for y := 0; y < Dim; y++ {
		for x := 0; x < Dim; x++ {
			m.SetColorIndex(x, y, uint8((x/8+y/8)%len(testColors)))
		}
	}
	return m
}

func TestEncodeRoundTrip(t *testing.T) {
	src := testPaletted()

	var b bytes.Buffer
	require.NoError(t, Encode(&b, src))

	img, err := DecodeStream(b.Bytes(), false)
	require.NoError(t, err)

	out := img.RGBA()
	for y := 0; y < Dim; y++ {
		for x := 0; x < Dim; x++ {
			want := src.At(x, y).(color.RGBA)
			if want.A == 0 {
				want = color.RGBA{}
			}
			require.Equal(t, want, out.RGBAAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestEncodeWrongSize(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 32, 32))
	assert.Error(t, Encode(&bytes.Buffer{}, m))
}

func TestEncodeQuantizesWidePalettes(t *testing.T) {
	// A gradient with far more than 15 colors must still encode; the
	// decoded image then uses at most 15 opaque colors.
	m := image.NewRGBA(image.Rect(0, 0, Dim, Dim))
	for y := 0; y < Dim; y++ {
		for x := 0; x < Dim; x++ {
			m.SetRGBA(x, y, color.RGBA{uint8(x * 4), uint8(y * 4), 128, 255})
		}
	}

	var b bytes.Buffer
	require.NoError(t, Encode(&b, m))

	img, err := DecodeStream(b.Bytes(), false)
	require.NoError(t, err)

	colors := make(map[color.RGBA]struct{})
	out := img.RGBA()
	for y := 0; y < Dim; y++ {
		for x := 0; x < Dim; x++ {
			c := out.RGBAAt(x, y)
			if c.A != 0 {
				colors[c] = struct{}{}
			}
		}
	}
	assert.LessOrEqual(t, len(colors), colorsPerPalette-1)
}
