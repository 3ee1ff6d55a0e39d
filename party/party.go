/*
Package party decodes the encrypted 100-byte party records the game
keeps in working RAM.

The first 32 bytes and the last 20 bytes of a record are plain; the 48
bytes in between hold four 12-byte substructures, stored in one of 24
orders selected by the record's personality value and XOR-encrypted with
a key derived from the personality and original-trainer IDs. Records are
cheap to decode and are expected to be re-read from live memory on every
poll rather than cached.
*/
package party

import (
	"encoding/binary"
	"errors"

	"gen3peek/profile"
	"gen3peek/text"
)

// RecordSize is the size in bytes of one party record.
const RecordSize = 100

const (
	encryptedOffset = 0x20
	encryptedSize   = 48
	substructSize   = 12

	nicknameOffset = 0x08
	nicknameLen    = 10

	statusOffset = 0x50
	levelOffset  = 0x54
	statsOffset  = 0x56
)

// Substructure roles within the encrypted region.
const (
	growth = iota
	attack
	effort
	misc
)

// order[pid%24] gives the storage order of the four substructure roles.
var order = [24][4]uint8{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}, {0, 2, 3, 1},
	{0, 3, 1, 2}, {0, 3, 2, 1}, {1, 0, 2, 3}, {1, 0, 3, 2},
	{1, 2, 0, 3}, {1, 2, 3, 0}, {1, 3, 0, 2}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 0, 3, 1}, {2, 1, 0, 3}, {2, 1, 3, 0},
	{2, 3, 0, 1}, {2, 3, 1, 0}, {3, 0, 1, 2}, {3, 0, 2, 1},
	{3, 1, 0, 2}, {3, 1, 2, 0}, {3, 2, 0, 1}, {3, 2, 1, 0},
}

var (
	// ErrEmptySlot marks a record whose species is zero or out of
	// range for the active profile: an unoccupied party slot rather
	// than a malformed record. None of its fields are usable.
	ErrEmptySlot = errors.New("party: empty slot")

	errBadSize = errors.New("party: record must be 100 bytes")
)

// Stats holds one value per battle stat, used for both individual
// values (0-31) and effort values (0-255).
type Stats struct {
	HP        uint8
	Attack    uint8
	Defense   uint8
	Speed     uint8
	SpAttack  uint8
	SpDefense uint8
}

// Record is one decrypted party member. Moves and species that fall
// outside the profile's tables are kept as-is; rendering them as
// placeholders is the display layer's concern.
type Record struct {
	PID       uint32
	TrainerID uint32

	Species    uint16
	Experience uint32
	Level      uint8
	Nature     uint8

	Moves [4]uint16
	PP    [4]uint8

	CurHP     uint16
	MaxHP     uint16
	Attack    uint16
	Defense   uint16
	Speed     uint16
	SpAttack  uint16
	SpDefense uint16

	IVs Stats
	EVs Stats

	Status uint32

	Nickname string

	// SpeciesName is the display name from the ROM name table,
	// filled in by the caller; this package only sees live memory.
	SpeciesName string
}

// Decode decrypts and reorders the raw record into a Record. A species
// of zero or beyond the profile's table limit returns ErrEmptySlot.
func Decode(raw []byte, p *profile.Profile) (*Record, error) {
	if len(raw) != RecordSize {
		return nil, errBadSize
	}

	pid := binary.LittleEndian.Uint32(raw[0:])
	otid := binary.LittleEndian.Uint32(raw[4:])
	key := pid ^ otid

	var dec [encryptedSize]byte
	for i := 0; i < encryptedSize; i += 4 {
		w := binary.LittleEndian.Uint32(raw[encryptedOffset+i:])
		binary.LittleEndian.PutUint32(dec[i:], w^key)
	}

	growthOff := substructOffset(pid, growth)
	species := binary.LittleEndian.Uint16(dec[growthOff:])
	if species == 0 || species >= p.SpeciesCount {
		return nil, ErrEmptySlot
	}

	r := &Record{
		PID:        pid,
		TrainerID:  otid,
		Species:    species,
		Experience: binary.LittleEndian.Uint32(dec[growthOff+4:]),
		Level:      raw[levelOffset],
		Nature:     uint8(pid % 25),
		Status:     binary.LittleEndian.Uint32(raw[statusOffset:]),
		Nickname:   text.Decode(raw[nicknameOffset : nicknameOffset+nicknameLen]),
	}

	attackOff := substructOffset(pid, attack)
	for i := range r.Moves {
		r.Moves[i] = binary.LittleEndian.Uint16(dec[attackOff+i*2:])
		r.PP[i] = dec[attackOff+8+i]
	}

	effortOff := substructOffset(pid, effort)
	r.EVs = Stats{
		HP:        dec[effortOff+0],
		Attack:    dec[effortOff+1],
		Defense:   dec[effortOff+2],
		Speed:     dec[effortOff+3],
		SpAttack:  dec[effortOff+4],
		SpDefense: dec[effortOff+5],
	}

	// Individual values are packed five bits apiece into a 32-bit
	// field four bytes into the misc substructure.
	iv := binary.LittleEndian.Uint32(dec[substructOffset(pid, misc)+4:])
	r.IVs = Stats{
		HP:        uint8(iv & 0x1f),
		Attack:    uint8(iv >> 5 & 0x1f),
		Defense:   uint8(iv >> 10 & 0x1f),
		Speed:     uint8(iv >> 15 & 0x1f),
		SpAttack:  uint8(iv >> 20 & 0x1f),
		SpDefense: uint8(iv >> 25 & 0x1f),
	}

	r.CurHP = binary.LittleEndian.Uint16(raw[statsOffset:])
	r.MaxHP = binary.LittleEndian.Uint16(raw[statsOffset+2:])
	r.Attack = binary.LittleEndian.Uint16(raw[statsOffset+4:])
	r.Defense = binary.LittleEndian.Uint16(raw[statsOffset+6:])
	r.Speed = binary.LittleEndian.Uint16(raw[statsOffset+8:])
	r.SpAttack = binary.LittleEndian.Uint16(raw[statsOffset+10:])
	r.SpDefense = binary.LittleEndian.Uint16(raw[statsOffset+12:])

	return r, nil
}

// substructOffset returns the byte offset of the given role within the
// decrypted region for a record with personality value pid.
func substructOffset(pid uint32, role int) int {
	for pos, r := range order[pid%24] {
		if int(r) == role {
			return pos * substructSize
		}
	}
	return 0
}

// StatusName returns the customary abbreviation for a status bitmask,
// or "" when healthy. The low three bits count sleep turns.
func StatusName(status uint32) string {
	switch {
	case status == 0:
		return ""
	case status&0x07 != 0:
		return "SLP"
	case status&0x08 != 0:
		return "PSN"
	case status&0x10 != 0:
		return "BRN"
	case status&0x20 != 0:
		return "FRZ"
	case status&0x40 != 0:
		return "PAR"
	case status&0x80 != 0:
		return "TOX"
	}
	return ""
}
