// Package text decodes the proprietary character encoding used by the
// game's name and nickname fields.
package text

// Terminator marks the end of an encoded string.
const Terminator = 0xff

// Decode converts encoded bytes to ASCII, stopping at the terminator.
// Characters with no ASCII equivalent decode as spaces.
func Decode(b []byte) string {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c == Terminator {
			break
		}
		out = append(out, decodeChar(c))
	}
	return string(out)
}

func decodeChar(c byte) byte {
	switch {
	case c >= 0xbb && c <= 0xd4:
		return 'A' + c - 0xbb
	case c >= 0xd5 && c <= 0xee:
		return 'a' + c - 0xd5
	case c >= 0xa1 && c <= 0xaa:
		return '0' + c - 0xa1
	}
	switch c {
	case 0x00:
		return ' '
	case 0xab:
		return '!'
	case 0xac:
		return '?'
	case 0xad:
		return '.'
	case 0xae:
		return '-'
	case 0xb8:
		return ','
	case 0xba:
		return '/'
	}
	return ' '
}
