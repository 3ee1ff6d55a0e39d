/*
Package lz implements the legacy type 0x10 LZ77 compression format used
for graphics data in the cartridge ROM.

A compressed block is self-describing: a 4-byte header whose first byte
is the 0x10 tag and whose remaining three bytes hold the decompressed
size as a little-endian 24-bit integer, followed by the compressed
stream. The stream is a sequence of flag bytes, each governing up to
eight chunks consumed MSB first; a clear bit copies one literal byte and
a set bit encodes a two-byte back-reference with a length of 3-18 and an
offset of 1-4096 back into the output produced so far.
*/
package lz

import "errors"

const (
	// Tag identifies a type 0x10 compressed block.
	Tag = 0x10

	// HeaderSize is the length in bytes of the block header.
	HeaderSize = 4

	minMatch  = 3
	maxMatch  = 18
	maxOffset = 4096
)

var (
	// ErrBadTag is returned when the block header does not carry the
	// expected tag byte.
	ErrBadTag = errors.New("lz: bad header tag")

	// ErrTooLarge is returned when the declared decompressed size
	// exceeds the capacity of the destination buffer.
	ErrTooLarge = errors.New("lz: declared size exceeds buffer")

	errShortHeader = errors.New("lz: truncated header")
)

// Size returns the decompressed size declared in the header of the block
// at the start of src.
func Size(src []byte) (int, error) {
	if len(src) < HeaderSize {
		return 0, errShortHeader
	}
	if src[0] != Tag {
		return 0, ErrBadTag
	}
	return int(src[1]) | int(src[2])<<8 | int(src[3])<<16, nil
}

// Decompress expands the block at the start of src into dst and returns
// the number of bytes produced, which always equals the size declared in
// the header. dst is never grown; if the declared size exceeds len(dst)
// nothing is written and ErrTooLarge is returned.
//
// A back-reference that reaches before the start of the output is not
// representable by any valid compressor and is not guarded against;
// feeding such a stream panics.
func Decompress(src, dst []byte) (int, error) {
	size, err := Size(src)
	if err != nil {
		return 0, err
	}
	if size > len(dst) {
		return 0, ErrTooLarge
	}

	si, di := HeaderSize, 0
	for di < size {
		flags := src[si]
		si++
		for bit := 7; bit >= 0 && di < size; bit-- {
			if flags&(1<<uint(bit)) == 0 {
				dst[di] = src[si]
				si++
				di++
				continue
			}
			b1, b2 := src[si], src[si+1]
			si += 2
			length := int(b1>>4) + minMatch
			offset := (int(b1&0x0f)<<8 | int(b2)) + 1
			// The copy must run one byte at a time: when the
			// offset is smaller than the length the reference
			// overlaps bytes written by this same copy.
			for i := 0; i < length && di < size; i++ {
				dst[di] = dst[di-offset]
				di++
			}
		}
	}
	return size, nil
}

// CompressedSize walks the block at the start of src without producing
// any output and returns its total encoded length, header included.
func CompressedSize(src []byte) (int, error) {
	size, err := Size(src)
	if err != nil {
		return 0, err
	}

	si, di := HeaderSize, 0
	for di < size {
		flags := src[si]
		si++
		for bit := 7; bit >= 0 && di < size; bit-- {
			if flags&(1<<uint(bit)) == 0 {
				si++
				di++
			} else {
				di += int(src[si]>>4) + minMatch
				si += 2
			}
		}
	}
	return si, nil
}

// Compress encodes src as a type 0x10 block. The encoder is greedy,
// always taking the longest match available in the window, and produces
// streams that Decompress reverses byte-exactly. src must fit the
// header's 24-bit size field; anything 16 MB or larger panics.
func Compress(src []byte) []byte {
	if len(src) >= 1<<24 {
		panic("lz: input exceeds 24-bit size header")
	}
	out := make([]byte, HeaderSize, HeaderSize+len(src)+len(src)/8+1)
	out[0] = Tag
	out[1] = byte(len(src))
	out[2] = byte(len(src) >> 8)
	out[3] = byte(len(src) >> 16)

	var flagPos, bit int
	for si := 0; si < len(src); {
		if bit == 0 {
			flagPos = len(out)
			out = append(out, 0)
			bit = 8
		}
		bit--

		length, offset := findMatch(src, si)
		if length >= minMatch {
			out[flagPos] |= 1 << uint(bit)
			out = append(out,
				byte(length-minMatch)<<4|byte((offset-1)>>8),
				byte(offset-1))
			si += length
		} else {
			out = append(out, src[si])
			si++
		}
	}
	return out
}

func findMatch(src []byte, pos int) (length, offset int) {
	limit := len(src) - pos
	if limit > maxMatch {
		limit = maxMatch
	}
	win := pos - maxOffset
	if win < 0 {
		win = 0
	}
	for cand := pos - 1; cand >= win; cand-- {
		n := 0
		// A match may run past pos into bytes it produces itself;
		// the decoder copies a byte at a time so this is legal.
		for n < limit && src[cand+n] == src[pos+n] {
			n++
		}
		if n > length {
			length, offset = n, pos-cand
			if length == maxMatch {
				break
			}
		}
	}
	return length, offset
}
