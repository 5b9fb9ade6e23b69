package codepage

import (
	"strings"
	"unicode/utf8"
)

// DecodeString decodes every byte of src.
//
// If all bytes overlap with ASCII, src is returned unchanged as a string
// without a per-byte conversion.
func (t *Table) DecodeString(src []byte) string {
	if t.allOverlapBytes(src) {
		return string(src)
	}
	var sb strings.Builder
	sb.Grow(len(src))
	for _, b := range src {
		sb.WriteRune(t.forward[b])
	}
	return sb.String()
}

// EncodeString encodes every rune of s.
//
// On the first rune without a byte in this dialect EncodeString returns the
// bytes encoded so far together with an *EncodeError. Invalid UTF-8 in s
// decodes to utf8.RuneError, which no CP437 dialect can encode.
func (t *Table) EncodeString(s string) ([]byte, error) {
	if t.allOverlapRunes(s) {
		return []byte(s), nil
	}
	out := make([]byte, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		b, ok := t.backward.Get(r)
		if !ok {
			return out, &EncodeError{RepresentableUpTo: len(out), Rune: r}
		}
		out = append(out, b)
	}
	return out, nil
}

// EncodeStringLossy encodes every rune of s, substituting replacement for
// runes without a byte in this dialect.
func (t *Table) EncodeStringLossy(s string, replacement byte) []byte {
	out := make([]byte, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		b, ok := t.backward.Get(r)
		if !ok {
			b = replacement
		}
		out = append(out, b)
	}
	return out
}

func (t *Table) allOverlapBytes(src []byte) bool {
	for _, b := range src {
		if !t.OverlapByte(b) {
			return false
		}
	}
	return true
}

func (t *Table) allOverlapRunes(s string) bool {
	for i := 0; i < len(s); i++ { // bytes >= 0x80 never overlap
		if !t.OverlapByte(s[i]) {
			return false
		}
	}
	return true
}
