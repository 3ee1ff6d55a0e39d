package gen3peek

import (
	"encoding/binary"

	"gen3peek/text"
)

const maxLearnset = 32

// SpeciesName reads the display name for a species from the ROM name
// table, or "???" when the id is out of range or the table lies beyond
// the loaded image, as with a fallback profile over a smaller ROM.
func (pk *Peeker) SpeciesName(species uint16) string {
	p := pk.profile
	if species == 0 || species >= p.SpeciesCount {
		return "???"
	}
	off := int(p.SpeciesNames) + int(species)*p.SpeciesNameLen
	if off+p.SpeciesNameLen > len(pk.rom) {
		return "???"
	}
	return text.Decode(pk.rom[off : off+p.SpeciesNameLen])
}

// MoveName reads the display name for a move: "---" for an unset move
// slot, "???" when the id is out of range.
func (pk *Peeker) MoveName(move uint16) string {
	p := pk.profile
	if move == 0 {
		return "---"
	}
	if move >= p.MoveCount {
		return "???"
	}
	off := int(p.MoveNames) + int(move)*p.MoveNameLen
	if off+p.MoveNameLen > len(pk.rom) {
		return "???"
	}
	return text.Decode(pk.rom[off : off+p.MoveNameLen])
}

// LearnsetEntry is one level-up move.
type LearnsetEntry struct {
	Level uint8
	Move  uint16
}

// Learnset reads the level-up learnset for a species. Entries are
// 16-bit with the move id in the low nine bits and the level in the
// next seven; 0xffff terminates the list.
func (pk *Peeker) Learnset(species uint16) []LearnsetEntry {
	p := pk.profile
	if species == 0 || species >= p.SpeciesCount {
		return nil
	}

	entry := int(p.LearnsetTable) + int(species)*4
	if entry+4 > len(pk.rom) {
		return nil
	}
	ptr := binary.LittleEndian.Uint32(pk.rom[entry:])
	if ptr>>24 != romPointer {
		return nil
	}
	off := int(ptr & romPointerMask)

	var out []LearnsetEntry
	for len(out) < maxLearnset && off+2 <= len(pk.rom) {
		raw := binary.LittleEndian.Uint16(pk.rom[off:])
		if raw == 0xffff {
			break
		}
		out = append(out, LearnsetEntry{
			Level: uint8(raw >> 9 & 0x7f),
			Move:  raw & 0x1ff,
		})
		off += 2
	}
	return out
}
