package pagemap

import "testing"

func TestSetGet(t *testing.T) {
	var m Map
	if !m.Set('A', 0x41) {
		t.Fatalf("expected 'A' to be storable")
	}
	if !m.Set('⌂', 0x7F) {
		t.Fatalf("expected U+2302 to be storable")
	}
	if !m.Set('\u0000', 0x00) {
		t.Fatalf("expected U+0000 to be storable")
	}
	tests := []struct {
		r    rune
		want byte
	}{
		{r: 'A', want: 0x41},
		{r: '⌂', want: 0x7F},
		{r: '\u0000', want: 0x00},
	}
	for _, tt := range tests {
		b, ok := m.Get(tt.r)
		if !ok {
			t.Fatalf("expected mapping for %U", tt.r)
		}
		if b != tt.want {
			t.Fatalf("mapping mismatch for %U: got %#02x, want %#02x", tt.r, b, tt.want)
		}
	}
	if m.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", m.Len())
	}
	if m.NumPages() != 2 {
		t.Fatalf("expected 2 pages, got %d", m.NumPages())
	}
}

func TestAbsent(t *testing.T) {
	var m Map
	if _, ok := m.Get('x'); ok {
		t.Fatalf("empty map must not contain 'x'")
	}
	m.Set('x', 0x78)
	if m.Has('y') {
		t.Fatalf("'y' was never set")
	}
	if _, ok := m.Get(-1); ok {
		t.Fatalf("negative rune must be absent")
	}
	if _, ok := m.Get(0x1F600); ok {
		t.Fatalf("non-BMP rune must be absent")
	}
}

func TestRejectsUnstorable(t *testing.T) {
	var m Map
	for _, r := range []rune{-1, 0xD800, 0xDFFF, 0x10000, 0x10FFFF} {
		if m.Set(r, 1) {
			t.Fatalf("expected %U to be rejected", r)
		}
	}
	if m.Len() != 0 || m.NumPages() != 0 {
		t.Fatalf("rejected runes must not allocate, len=%d pages=%d", m.Len(), m.NumPages())
	}
}

func TestOverwrite(t *testing.T) {
	var m Map
	m.Set('√', 0xFB)
	m.Set('√', 0xFA)
	if b, _ := m.Get('√'); b != 0xFA {
		t.Fatalf("expected overwrite to 0xFA, got %#02x", b)
	}
	if m.Len() != 1 {
		t.Fatalf("overwrite must not change count, got %d", m.Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var m Map
	m.Set('A', 0x41)
	c := m.Clone()
	c.Set('A', 0x42)
	c.Set('B', 0x43)
	if b, _ := m.Get('A'); b != 0x41 {
		t.Fatalf("clone modified original: got %#02x", b)
	}
	if m.Has('B') {
		t.Fatalf("clone added entry to original")
	}
	if c.Len() != 2 || m.Len() != 1 {
		t.Fatalf("unexpected lengths: clone=%d original=%d", c.Len(), m.Len())
	}
}
