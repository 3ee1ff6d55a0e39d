package lz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(size int) []byte {
	return []byte{Tag, byte(size), byte(size >> 8), byte(size >> 16)}
}

func TestSize(t *testing.T) {
	n, err := Size(header(0x012345))
	require.NoError(t, err)
	assert.Equal(t, 0x012345, n)

	_, err = Size([]byte{0x11, 0, 0, 0})
	assert.Equal(t, ErrBadTag, err)

	_, err = Size([]byte{Tag, 0})
	assert.Error(t, err)
}

func TestDecompressLiterals(t *testing.T) {
	src := append(header(8), 0x00)
	src = append(src, []byte("literals")...)

	dst := make([]byte, 16)
	n, err := Decompress(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte("literals"), dst[:n])
}

func TestDecompressBackReference(t *testing.T) {
	// Three literals followed by a length 3, offset 3 reference.
	src := append(header(6), 0x10, 'a', 'b', 'c', 0x00, 0x02)

	dst := make([]byte, 16)
	n, err := Decompress(src, dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcabc"), dst[:n])
}

func TestDecompressOverlappingCopy(t *testing.T) {
	// One literal followed by a length 8, offset 1 reference. The
	// reference re-reads bytes it has just written, so a block copy
	// would produce zeroes instead of the repeated literal.
	src := append(header(9), 0x40, 'a', 0x50, 0x00)

	dst := make([]byte, 16)
	n, err := Decompress(src, dst)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{'a'}, 9), dst[:n])
}

func TestDecompressStopsAtDeclaredSize(t *testing.T) {
	// The reference encodes 18 bytes but the header only declares 5;
	// decoding stops mid copy, mid flag byte.
	src := append(header(5), 0x40, 'a', 0xf0, 0x00)

	dst := make([]byte, 16)
	n, err := Decompress(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, bytes.Repeat([]byte{'a'}, 5), dst[:n])
}

func TestDecompressBadTag(t *testing.T) {
	src := []byte{0x11, 4, 0, 0, 0x00, 'a', 'b', 'c', 'd'}
	n, err := Decompress(src, make([]byte, 16))
	assert.Equal(t, ErrBadTag, err)
	assert.Zero(t, n)
}

func TestDecompressTooLarge(t *testing.T) {
	src := append(header(8), 0x00)
	src = append(src, []byte("literals")...)

	dst := make([]byte, 4)
	n, err := Decompress(src, dst)
	assert.Equal(t, ErrTooLarge, err)
	assert.Zero(t, n)
	assert.Equal(t, make([]byte, 4), dst, "failed decode must not write output")
}

func TestDecompressIdempotent(t *testing.T) {
	src := append(header(6), 0x10, 'a', 'b', 'c', 0x00, 0x02)

	a := make([]byte, 8)
	b := make([]byte, 8)
	_, err := Decompress(src, a)
	require.NoError(t, err)
	_, err = Decompress(src, b)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCompressTooLarge(t *testing.T) {
	// 16 MB does not fit the 24-bit size field.
	assert.Panics(t, func() { Compress(make([]byte, 1<<24)) })
}

func TestRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{},
		[]byte("a"),
		[]byte("abcabcabcabcabc"),
		bytes.Repeat([]byte{0x00}, 2048),
		bytes.Repeat([]byte("0123456789abcdef"), 200),
	}

	// A deterministic pseudo-random payload.
	noisy := make([]byte, 4096)
	state := uint32(0x2545f491)
	for i := range noisy {
		state = state*1664525 + 1013904223
		noisy[i] = byte(state >> 24)
	}
	payloads = append(payloads, noisy)

	for _, p := range payloads {
		src := Compress(p)

		size, err := Size(src)
		require.NoError(t, err)
		assert.Equal(t, len(p), size)

		n, err := CompressedSize(src)
		require.NoError(t, err)
		assert.Equal(t, len(src), n)

		dst := make([]byte, len(p))
		n, err = Decompress(src, dst)
		require.NoError(t, err)
		assert.Equal(t, len(p), n)
		assert.Equal(t, p, dst[:n])
	}
}
