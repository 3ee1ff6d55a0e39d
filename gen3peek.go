/*
Package gen3peek decodes live party state and compressed sprite
graphics of the third-generation Game Boy Advance games from a loaded
cartridge image and the accompanying working-RAM views.

Everything is re-derived on demand from the memory views: records are
decoded fresh on every poll and sprites are memoized only in a small
fixed-size cache. Nothing is ever written back and nothing is persisted.
*/
package gen3peek

import (
	"errors"
	"io"
	"log"

	"gen3peek/party"
	"gen3peek/profile"
	"gen3peek/sprite"
)

// MaxParty is the number of party slots the game keeps in memory.
const MaxParty = 6

// ROM pointer values carry their address space in the top byte.
const (
	romPointer     = 0x08
	romPointerMask = 0x01ffffff
)

// Peeker reads game state out of a cartridge image and the matching
// live memory views. All views are read-only. A Peeker is built for a
// single render/poll thread: one frame's calls finish before the next
// frame's begin, so it does no locking of its own.
type Peeker struct {
	rom   []byte
	wram  []byte
	iwram []byte

	profile *profile.Profile
	matched bool

	sprites *sprite.Cache
	logger  *log.Logger
}

// New detects the ROM build and returns a Peeker over the given memory
// views. An unknown ROM still gets a Peeker, running on the fallback
// profile's offsets on a best-effort basis. wram and iwram may be nil
// when only ROM-derived data (sprites, names) is wanted.
func New(rom, wram, iwram []byte, logger *log.Logger) *Peeker {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	p, matched := profile.Detect(rom)
	if !matched {
		logger.Printf("unrecognized ROM %q rev %d, falling back to profile %q",
			profile.GameCode(rom), profile.Revision(rom), p.Name)
	}

	return &Peeker{
		rom:     rom,
		wram:    wram,
		iwram:   iwram,
		profile: p,
		matched: matched,
		sprites: sprite.NewCache(),
		logger:  logger,
	}
}

// Profile returns the active layout profile. It is never nil.
func (pk *Peeker) Profile() *profile.Profile {
	return pk.profile
}

// Matched reports whether the loaded ROM matched a known profile or
// the fallback is in use.
func (pk *Peeker) Matched() bool {
	return pk.matched
}

// Sprite returns the decoded front sprite for species, with grayscale
// selecting the fainted rendering, going through the fixed-size cache.
func (pk *Peeker) Sprite(species uint16, grayscale bool) (*sprite.Image, error) {
	return pk.sprites.Get(pk.rom, pk.profile, species, grayscale)
}

// ReleaseSprites drops all cached sprite decodes, for when the ROM is
// about to be swapped out.
func (pk *Peeker) ReleaseSprites() {
	pk.sprites.ReleaseAll()
}

var errSlotBounds = errors.New("gen3peek: party record outside working RAM")

// PartyCount returns the number of occupied party slots, clamped to
// MaxParty. A working-RAM view too short to hold the counter reads as
// an empty party.
func (pk *Peeker) PartyCount() int {
	if int(pk.profile.PartyCount) >= len(pk.wram) {
		return 0
	}
	n := int(pk.wram[pk.profile.PartyCount])
	if n > MaxParty {
		n = MaxParty
	}
	return n
}

// Slot decodes party slot i fresh from working RAM and attaches the
// species display name. Records are small enough that re-decoding every
// poll beats keeping a cache coherent with live memory.
func (pk *Peeker) Slot(i int) (*party.Record, error) {
	base := int(pk.profile.PartyData) + i*party.RecordSize
	if base+party.RecordSize > len(pk.wram) {
		return nil, errSlotBounds
	}
	rec, err := party.Decode(pk.wram[base:base+party.RecordSize], pk.profile)
	if err != nil {
		return nil, err
	}
	rec.SpeciesName = pk.SpeciesName(rec.Species)
	return rec, nil
}

// Party decodes every occupied slot. Empty slots come back nil; a
// malformed slot is logged and comes back nil as well, to be retried
// on the next poll with fresh memory.
func (pk *Peeker) Party() []*party.Record {
	out := make([]*party.Record, pk.PartyCount())
	for i := range out {
		rec, err := pk.Slot(i)
		if err != nil {
			if err != party.ErrEmptySlot {
				pk.logger.Printf("party slot %d: %v", i, err)
			}
			continue
		}
		out[i] = rec
	}
	return out
}
