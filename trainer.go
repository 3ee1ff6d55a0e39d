package gen3peek

import (
	"encoding/binary"
	"errors"

	"gen3peek/text"
)

const (
	trainerEntrySize   = 40
	trainerNameOffset  = 0x04
	trainerNameLen     = 12
	trainerSizeOffset  = 0x20
	trainerPartyOffset = 0x24
)

// Save block pointers live in the 0x02 address space.
const (
	ewramPointer     = 0x02
	ewramPointerMask = 0x3ffff
)

// GymLeader describes the trainer guarding one badge.
type GymLeader struct {
	Name     string
	AceLevel uint8
}

var errBadgeRange = errors.New("gen3peek: badge index out of range")

// GymLeader reads the name and strongest party level of the gym leader
// for the given badge index from the ROM trainer table.
func (pk *Peeker) GymLeader(badge int) (*GymLeader, error) {
	p := pk.profile
	if badge < 0 || badge >= len(p.GymLeaderIDs) {
		return nil, errBadgeRange
	}
	entry := int(p.TrainerTable) + int(p.GymLeaderIDs[badge])*trainerEntrySize
	if entry+trainerEntrySize > len(pk.rom) {
		return nil, errors.New("gen3peek: trainer record outside ROM")
	}

	g := &GymLeader{
		Name: text.Decode(pk.rom[entry+trainerNameOffset : entry+trainerNameOffset+trainerNameLen]),
	}

	ptr := binary.LittleEndian.Uint32(pk.rom[entry+trainerPartyOffset:])
	if ptr>>24 != romPointer {
		return nil, errors.New("gen3peek: trainer party pointer outside ROM")
	}
	off := int(ptr & romPointerMask)

	// Party entries are 8 bytes, or 16 when the trainer has custom
	// moves (flags bit 0). The level sits at +2 either way.
	monSize := 8
	if pk.rom[entry]&1 != 0 {
		monSize = 16
	}
	size := int(pk.rom[entry+trainerSizeOffset])
	if size > MaxParty {
		size = MaxParty
	}
	if off+size*monSize > len(pk.rom) {
		return nil, errors.New("gen3peek: trainer party outside ROM")
	}
	for i := 0; i < size; i++ {
		if lvl := pk.rom[off+i*monSize+2]; lvl > g.AceLevel {
			g.AceLevel = lvl
		}
	}
	return g, nil
}

// NextBadge returns the index of the first unearned badge, or -1 once
// all eight are earned or the save block is not mapped yet. The save
// block moves around in working RAM; its current location is read from
// a fixed pointer in internal RAM each call.
func (pk *Peeker) NextBadge() int {
	p := pk.profile

	if int(p.SaveBlock1Ptr)+4 > len(pk.iwram) {
		return -1
	}
	ptr := binary.LittleEndian.Uint32(pk.iwram[p.SaveBlock1Ptr:])
	if ptr>>24 != ewramPointer {
		return -1
	}

	at := int(ptr&ewramPointerMask) + int(p.BadgeOffset)
	if at >= len(pk.wram) {
		return -1
	}
	badges := pk.wram[at]
	for i := 0; i < 8; i++ {
		if badges&(1<<uint(i)) == 0 {
			return i
		}
	}
	return -1
}
