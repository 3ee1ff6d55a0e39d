package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte{0xbb, 0xbc, 0xbd}, "ABC"},
		{[]byte{0xd4, 0xd5, 0xee}, "Zaz"},
		{[]byte{0xa1, 0xa2, 0xaa}, "019"},
		{[]byte{0xab, 0xac, 0xad, 0xae, 0xb8, 0xba}, "!?.-,/"},
		{[]byte{0xc4, 0xdd, 0xdb, 0xdb, 0xe0, 0xed, 0xe4, 0xe9, 0xda, 0xda, 0xff}, "Jigglypuff"},
		{[]byte{0xbb, 0x00, 0xbc}, "A B"},
		{[]byte{0xbb, 0xff, 0xbc}, "A"},
		{[]byte{0x53}, " "}, // no ASCII mapping
		{nil, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Decode(tt.in))
	}
}

func TestDecodeStopsAtTerminator(t *testing.T) {
	in := []byte{0xc9, 0xc3, 0xbf, 0xff, 0xbb, 0xbb, 0xbb}
	assert.Equal(t, "OIE", Decode(in))
}
