/*
Package profile describes where the data tables of a supported game
build live in memory.

A Profile is a static table of byte offsets and limits for one specific
cartridge build. Offsets are typed by the memory region they index into,
so a ROM table offset cannot silently be applied to a working-RAM view
or the other way around. Supporting a new build, or a ROM hack that
relocates its tables, means adding one more entry to the table.
*/
package profile

// GBA cartridge header layout.
const (
	titleOffset    = 0xa0
	titleLen       = 12
	gameCodeOffset = 0xac
	gameCodeLen    = 4
	revisionOffset = 0xbc
	headerLen      = 0xc0
)

// ROMOffset is a byte offset into the cartridge ROM image.
type ROMOffset uint32

// EWRAMOffset is a byte offset into the 256 KB external working RAM.
type EWRAMOffset uint32

// IWRAMOffset is a byte offset into the 32 KB internal working RAM.
type IWRAMOffset uint32

// Profile is the layout descriptor for one game build. A Profile is
// never mutated after detection; loading a different ROM selects a
// different Profile wholesale.
type Profile struct {
	Name string

	code     string
	revision uint8

	// Table limits
	SpeciesCount uint16
	MoveCount    uint16

	// ROM pointer and name tables
	SpriteTable   ROMOffset // front sprite pointers, 8 bytes per entry
	PaletteTable  ROMOffset // palette pointers, 8 bytes per entry
	SpeciesNames  ROMOffset
	MoveNames     ROMOffset
	LearnsetTable ROMOffset // level-up learnset pointers, 4 bytes per entry
	TrainerTable  ROMOffset // trainer records, 40 bytes per entry

	SpeciesNameLen int
	MoveNameLen    int

	// Live memory
	PartyCount      EWRAMOffset
	PartyData       EWRAMOffset
	BattleFlags     EWRAMOffset
	BattleMons      EWRAMOffset
	CurrentMove     EWRAMOffset
	BattlerAttacker EWRAMOffset
	SaveBlock1Ptr   IWRAMOffset

	// BadgeOffset locates the badge byte within save block 1.
	BadgeOffset uint32

	// GymLeaderIDs are trainer table indices, in badge order.
	GymLeaderIDs [8]uint16
}

var profiles = []*Profile{
	{
		Name:     "FireRed US v1.0",
		code:     "BPRE",
		revision: 0,

		SpeciesCount: 412,
		MoveCount:    355,

		SpriteTable:   0x2350ac,
		PaletteTable:  0x23730c,
		SpeciesNames:  0x245ee0,
		MoveNames:     0x247094,
		LearnsetTable: 0x25d7b4,
		TrainerTable:  0x23eac8,

		SpeciesNameLen: 11,
		MoveNameLen:    13,

		PartyCount:      0x24029,
		PartyData:       0x24284,
		BattleFlags:     0x22b4c,
		BattleMons:      0x23be4,
		CurrentMove:     0x23d4a,
		BattlerAttacker: 0x23d6b,
		SaveBlock1Ptr:   0x5008,

		BadgeOffset: 0xfe4,

		GymLeaderIDs: [8]uint16{0x19e, 0x19f, 0x1a0, 0x1a1, 0x1a2, 0x1a4, 0x1a3, 0x15e},
	},
}

// Detect matches the ROM header against the table of known builds and
// returns the matching Profile. An unrecognized ROM is not an error:
// the first profile is returned as a best-effort fallback with matched
// set to false. The returned Profile is never nil.
func Detect(rom []byte) (p *Profile, matched bool) {
	code := GameCode(rom)
	rev := Revision(rom)

	// Future: CRC-32 matching for ROM hacks that keep their base
	// game's code but relocate tables.
	for _, p := range profiles {
		if p.code == code && p.revision == rev {
			return p, true
		}
	}
	return profiles[0], false
}

// Default returns the fallback Profile used when no ROM has been
// detected.
func Default() *Profile {
	return profiles[0]
}

// GameCode returns the 4-character game code from the ROM header, or ""
// if the buffer is too short to hold a header.
func GameCode(rom []byte) string {
	if len(rom) < headerLen {
		return ""
	}
	return string(rom[gameCodeOffset : gameCodeOffset+gameCodeLen])
}

// Revision returns the mask revision byte from the ROM header.
func Revision(rom []byte) uint8 {
	if len(rom) < headerLen {
		return 0
	}
	return rom[revisionOffset]
}

// Title returns the internal cartridge title from the ROM header with
// trailing NULs removed.
func Title(rom []byte) string {
	if len(rom) < headerLen {
		return ""
	}
	title := rom[titleOffset : titleOffset+titleLen]
	end := len(title)
	for end > 0 && title[end-1] == 0 {
		end--
	}
	return string(title[:end])
}
