package sprite

import "gen3peek/profile"

// CacheSize is the number of decoded sprites held at once: enough for a
// full six-member party in both renderings of the two on-screen members
// without re-decoding every frame.
const CacheSize = 8

type cacheKey struct {
	species   uint16
	grayscale bool
}

type cacheSlot struct {
	key  cacheKey
	img  *Image
	used bool
}

// Cache memoizes decoded sprites in a fixed number of slots. Eviction
// is round-robin, not least-recently-used: a cursor walks the slots in
// order and the eviction sequence is independent of lookup order. A
// Cache is not safe for concurrent use; the render loop is single
// threaded.
type Cache struct {
	slots [CacheSize]cacheSlot
	next  int

	// Swappable for tests.
	decode func([]byte, *profile.Profile, uint16, bool) (*Image, error)
}

// NewCache returns an empty sprite cache.
func NewCache() *Cache {
	return &Cache{decode: Decode}
}

// Get returns the decoded sprite for (species, grayscale), decoding and
// installing it on a miss. The two renderings of a species are distinct
// entries, never derived from one another. A failed decode leaves the
// claimed slot empty rather than holding a stale image under the new
// key; the next Get for the same key simply retries.
func (c *Cache) Get(rom []byte, p *profile.Profile, species uint16, grayscale bool) (*Image, error) {
	key := cacheKey{species, grayscale}

	for i := range c.slots {
		if c.slots[i].used && c.slots[i].key == key {
			return c.slots[i].img, nil
		}
	}

	slot := -1
	for i := range c.slots {
		if !c.slots[i].used {
			slot = i
			break
		}
	}
	if slot < 0 {
		slot = c.next
		c.next = (c.next + 1) % CacheSize
	}

	// The previous occupant is discarded before decoding starts, so a
	// failure cannot resurrect it.
	c.slots[slot] = cacheSlot{}

	img, err := c.decode(rom, p, species, grayscale)
	if err != nil {
		return nil, err
	}
	c.slots[slot] = cacheSlot{key: key, img: img, used: true}
	return img, nil
}

// ReleaseAll drops every cached sprite and resets the eviction cursor,
// for when the underlying ROM is about to be unloaded.
func (c *Cache) ReleaseAll() {
	for i := range c.slots {
		c.slots[i] = cacheSlot{}
	}
	c.next = 0
}
