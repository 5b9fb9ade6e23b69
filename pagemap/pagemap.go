/*
Package pagemap implements a compact index from Unicode code points of the
Basic Multilingual Plane to single bytes.

Map is a two-level page table:
  - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
  - Pages is a flat array of NumPages*256 entries.

An entry stores the mapped byte plus one, so a zero entry means "no mapping"
and byte 0x00 can still be a mapping target.

Lookup is O(1) with two array reads and a couple of ops.

Memory:
  - Top: 256 * 2 = 512 bytes
  - Each populated page: 256 * 2 = 512 bytes

A CP437 dialect touches about ten high-byte blocks, i.e. ~5 KB of pages.
*/
package pagemap

import "unicode/utf8"

// MaxRune is the largest code point a Map can hold.
const MaxRune = 0xFFFF

// Map maps BMP code points to bytes. The zero value is an empty map.
type Map struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []uint16    // flat: NumPages*256
	count int
}

// Get returns the byte mapped to r.
// Returns false if r is absent or outside the BMP.
func (m *Map) Get(r rune) (byte, bool) {
	if r < 0 || r > MaxRune {
		return 0, false
	}
	pi := m.Top[r>>8]
	if pi == 0 {
		return 0, false
	}
	base := int(pi-1) << 8 // *256
	v := m.Pages[base+int(r&0xFF)]
	if v == 0 {
		return 0, false
	}
	return byte(v - 1), true
}

// Has reports whether r has a mapping.
func (m *Map) Has(r rune) bool {
	_, ok := m.Get(r)
	return ok
}

// Len returns the number of mapped code points.
func (m *Map) Len() int { return m.count }

// NumPages returns the number of allocated pages.
func (m *Map) NumPages() int { return len(m.Pages) >> 8 }

// ensurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (m *Map) ensurePage(hi int) uint16 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	// allocate a new page (256 uint16 initialized to 0)
	m.Pages = append(m.Pages, make([]uint16, 256)...)
	pi = uint16(len(m.Pages) >> 8) // number of pages, 1-based index
	m.Top[hi] = pi
	return pi
}

// Set maps r to b, overwriting a previous mapping of r.
// It returns false, and leaves the map untouched, if r cannot be stored
// (negative, outside the BMP or a surrogate half).
func (m *Map) Set(r rune, b byte) bool {
	if r < 0 || r > MaxRune || !utf8.ValidRune(r) {
		return false
	}
	pi := m.ensurePage(int(r >> 8))
	i := int(pi-1)<<8 + int(r&0xFF)
	if m.Pages[i] == 0 {
		m.count++
	}
	m.Pages[i] = uint16(b) + 1
	return true
}

// Clone returns a deep copy of m.
func (m *Map) Clone() Map {
	c := Map{Top: m.Top, count: m.count}
	if m.Pages != nil {
		c.Pages = make([]uint16, len(m.Pages))
		copy(c.Pages, m.Pages)
	}
	return c
}
