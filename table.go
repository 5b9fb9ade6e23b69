package codepage

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/codepage/pagemap"
)

// Mapping is a single byte-to-rune association of a mapping source.
// Comment usually carries the Unicode character name.
type Mapping struct {
	Byte    byte
	Rune    rune
	Comment string
}

// MappingReader yields mappings one-by-one.
// It should return io.EOF when the stream is exhausted.
type MappingReader interface {
	Next() (Mapping, error)
}

// Table is one dialect of an 8-bit code page.
//
// The decode table is the source of truth. The encode index is derived from it
// when the table is built and is never changed afterwards:
//   - every rune of the decode table encodes to the first byte (in byte order)
//     that decodes to it
//   - variant glyphs encode to their byte, unless the rune already has a byte
//   - a rune remapped with Remap encodes to its remapped byte, in every table
//     derived from the result
//
// A Table must be created with New, MustNew or Load.
type Table struct {
	name        string
	forward     [256]rune   // decode table, indexed by byte
	backward    pagemap.Map // rune => canonical byte
	variants    [256][]rune // alternate glyphs per byte, encode-only
	variantList []Mapping   // variants that became encode targets, in insertion order
	overlap     [0x80]bool  // byte b decodes to rune(b) and back, same as in UTF-8
}

// New builds a dialect from a literal decode table and an optional list of
// variant glyphs. Variants are applied in list order and never displace a
// byte assigned earlier.
//
// New returns an error wrapping ErrInvalidMapping if any rune is not a valid
// Unicode scalar value or if a variant lies outside the Basic Multilingual
// Plane.
func New(name string, forward [256]rune, variants []Mapping) (*Table, error) {
	t := &Table{
		name:    name,
		forward: forward,
	}
	for b, r := range t.forward {
		if !utf8.ValidRune(r) {
			return nil, fmt.Errorf("%w: %s: byte %#02x decodes to invalid rune %#x",
				ErrInvalidMapping, name, b, r)
		}
		if !t.backward.Has(r) && !t.backward.Set(r, byte(b)) {
			tracer().Debugf("%s: %U at %#02x is outside the BMP, decode-only", name, r, b)
		}
	}
	for _, v := range variants {
		if err := t.addVariant(v); err != nil {
			return nil, err
		}
	}
	t.computeOverlap()
	tracer().Infof("code page %s: 256 bytes, %d encodable runes, %d variants",
		name, t.backward.Len(), len(t.variantList))
	return t, nil
}

// MustNew is like New but panics if the table cannot be built.
// It simplifies safe initialization of global dialect variables.
func MustNew(name string, forward [256]rune, variants []Mapping) *Table {
	t, err := New(name, forward, variants)
	if err != nil {
		panic(err)
	}
	return t
}

// Load builds a dialect from streaming mapping sources.
//
// Bytes not listed by primary decode to the rune of the same value. Listing a
// byte twice in primary is an error. variants may be nil.
func Load(name string, primary, variants MappingReader) (*Table, error) {
	var forward [256]rune
	for b := range forward {
		forward[b] = rune(b)
	}
	var seen [256]bool
	for {
		m, err := primary.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if seen[m.Byte] {
			return nil, fmt.Errorf("%w: %s: byte %#02x mapped twice", ErrInvalidMapping, name, m.Byte)
		}
		seen[m.Byte] = true
		forward[m.Byte] = m.Rune
	}
	var vv []Mapping
	if variants != nil {
		for {
			m, err := variants.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			vv = append(vv, m)
		}
	}
	return New(name, forward, vv)
}

func (t *Table) addVariant(v Mapping) error {
	if !utf8.ValidRune(v.Rune) || v.Rune > pagemap.MaxRune {
		return fmt.Errorf("%w: %s: variant %#x for byte %#02x is not a BMP scalar value",
			ErrInvalidMapping, t.name, v.Rune, v.Byte)
	}
	if t.forward[v.Byte] == v.Rune {
		tracer().Debugf("%s: variant %U for %#02x is its primary, ignored", t.name, v.Rune, v.Byte)
		return nil
	}
	if prev, ok := t.backward.Get(v.Rune); ok {
		tracer().Debugf("%s: variant %U for %#02x ignored, already encodes to %#02x",
			t.name, v.Rune, v.Byte, prev)
		return nil
	}
	t.backward.Set(v.Rune, v.Byte)
	t.variants[v.Byte] = append(t.variants[v.Byte], v.Rune)
	t.variantList = append(t.variantList, v)
	return nil
}

func (t *Table) computeOverlap() {
	for b := range t.overlap {
		r := rune(b)
		enc, ok := t.backward.Get(r)
		t.overlap[b] = t.forward[b] == r && ok && enc == byte(b)
	}
}

// Name returns the dialect identifier.
func (t *Table) Name() string {
	return t.name
}

func (t *Table) String() string {
	return "codepage(" + t.name + ")"
}

// Decode returns the rune for byte b. Decode is total.
func (t *Table) Decode(b byte) rune {
	return t.forward[b]
}

// ValidByte reports whether code is in the domain of DecodeCode.
func ValidByte(code int) bool {
	return code >= 0 && code <= 0xFF
}

// DecodeCode is Decode for integer input. Values outside [0,255] are a
// programming error: DecodeCode panics with an *InvalidByteError.
func (t *Table) DecodeCode(code int) rune {
	if !ValidByte(code) {
		panic(&InvalidByteError{Code: code})
	}
	return t.forward[code]
}

// Encode returns the canonical byte for r. The second result is false if r is
// not representable in this dialect, which is a regular outcome, not an
// error.
func (t *Table) Encode(r rune) (byte, bool) {
	return t.backward.Get(r)
}

// Variants returns the alternate glyphs of byte b. They encode to b but b
// never decodes to them. The result is a copy.
func (t *Table) Variants(b byte) []rune {
	if len(t.variants[b]) == 0 {
		return nil
	}
	vv := make([]rune, len(t.variants[b]))
	copy(vv, t.variants[b])
	return vv
}

// VariantMappings returns all variants with an encode target, in the order
// they were added.
func (t *Table) VariantMappings() []Mapping {
	mm := make([]Mapping, len(t.variantList))
	copy(mm, t.variantList)
	return mm
}

// Forward returns a copy of the decode table.
func (t *Table) Forward() [256]rune {
	return t.forward
}

// EncodeCount returns the number of runes with a byte in this dialect.
func (t *Table) EncodeCount() int {
	return t.backward.Len()
}

// OverlapByte reports whether b means the same in this dialect and in
// UTF-8, i.e. it decodes to rune(b) and is an ASCII byte.
func (t *Table) OverlapByte(b byte) bool {
	return b < utf8.RuneSelf && t.overlap[b]
}

// OverlapRune reports whether r is encoded to the single byte it already
// occupies in UTF-8.
func (t *Table) OverlapRune(r rune) bool {
	return r >= 0 && r < utf8.RuneSelf && t.overlap[r]
}

// Remap returns a copy of t in which b decodes to r and r encodes to b.
//
// The rune previously decoded from b keeps encoding to b and becomes a variant
// of b, unless another byte still decodes to it. Earlier remaps are preserved.
// t itself is not changed.
func (t *Table) Remap(b byte, r rune) (*Table, error) {
	if !utf8.ValidRune(r) || r > pagemap.MaxRune {
		return nil, fmt.Errorf("%w: %s: cannot remap %#02x to %#x",
			ErrInvalidMapping, t.name, b, r)
	}
	nt := t.clone()
	old := nt.forward[b]
	nt.forward[b] = r
	if old != r {
		if enc, ok := nt.backward.Get(old); ok && enc == b {
			if y, found := nt.firstByteOf(old); found {
				nt.backward.Set(old, y)
			} else {
				nt.variants[b] = append(nt.variants[b], old)
				nt.variantList = append(nt.variantList, Mapping{Byte: b, Rune: old, Comment: "remapped"})
			}
		}
	}
	nt.pin(r, b)
	tracer().Debugf("%s: remapped %#02x from %U to %U", t.name, b, old, r)
	return nt, nil
}

// clone returns a deep copy of t.
func (t *Table) clone() *Table {
	c := &Table{
		name:        t.name,
		forward:     t.forward,
		backward:    t.backward.Clone(),
		variantList: t.VariantMappings(),
		overlap:     t.overlap,
	}
	for b := range t.variants {
		c.variants[b] = t.Variants(byte(b))
	}
	return c
}

// firstByteOf returns the lowest byte decoding to r.
func (t *Table) firstByteOf(r rune) (byte, bool) {
	for b, fr := range t.forward {
		if fr == r {
			return byte(b), true
		}
	}
	return 0, false
}

// pin makes b the canonical byte of r, overriding any earlier choice.
// A variant entry for r becomes obsolete, as b now decodes to r.
func (t *Table) pin(r rune, b byte) {
	prev, had := t.backward.Get(r)
	ok := t.backward.Set(r, b)
	assert(ok, "pinned rune must be storable")
	if had {
		t.dropVariant(prev, r)
	}
	t.computeOverlap()
}

func (t *Table) dropVariant(b byte, r rune) {
	vv := t.variants[b][:0:0]
	for _, v := range t.variants[b] {
		if v != r {
			vv = append(vv, v)
		}
	}
	t.variants[b] = vv
	ml := t.variantList[:0:0]
	for _, m := range t.variantList {
		if m.Byte != b || m.Rune != r {
			ml = append(ml, m)
		}
	}
	t.variantList = ml
}
