package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerROM(title, code string, revision uint8) []byte {
	rom := make([]byte, 0x200)
	copy(rom[titleOffset:], title)
	copy(rom[gameCodeOffset:], code)
	rom[revisionOffset] = revision
	return rom
}

func TestDetect(t *testing.T) {
	p, matched := Detect(headerROM("POKEMON FIRE", "BPRE", 0))
	require.NotNil(t, p)
	assert.True(t, matched)
	assert.Equal(t, "FireRed US v1.0", p.Name)
}

func TestDetectUnknownFallsBack(t *testing.T) {
	tests := []struct {
		code     string
		revision uint8
	}{
		{"AXVE", 0}, // different game
		{"BPRE", 1}, // known game, unknown revision
		{"\x00\x00\x00\x00", 0},
	}
	for _, tt := range tests {
		p, matched := Detect(headerROM("", tt.code, tt.revision))
		require.NotNil(t, p)
		assert.False(t, matched)
		assert.Equal(t, Default(), p)
	}
}

func TestDetectShortBuffer(t *testing.T) {
	p, matched := Detect([]byte{0x00, 0x01})
	require.NotNil(t, p)
	assert.False(t, matched)
}

func TestHeaderFields(t *testing.T) {
	rom := headerROM("POKEMON FIRE", "BPRE", 1)
	assert.Equal(t, "POKEMON FIRE", Title(rom))
	assert.Equal(t, "BPRE", GameCode(rom))
	assert.Equal(t, uint8(1), Revision(rom))

	assert.Equal(t, "", Title(nil))
	assert.Equal(t, "", GameCode(nil))
	assert.Equal(t, uint8(0), Revision(nil))
}
