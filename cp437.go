package codepage

// cp437Upper maps the upper 128 bytes of CP437 to Unicode runes.
// Indices 0-127 correspond to 0x80-0xFF.
var cp437Upper = [128]rune{
	'Ç', 'ü', 'é', 'â', 'ä', 'à', 'å', 'ç', // 80-87
	'ê', 'ë', 'è', 'ï', 'î', 'ì', 'Ä', 'Å', // 88-8F
	'É', 'æ', 'Æ', 'ô', 'ö', 'ò', 'û', 'ù', // 90-97
	'ÿ', 'Ö', 'Ü', '¢', '£', '¥', '₧', 'ƒ', // 98-9F
	'á', 'í', 'ó', 'ú', 'ñ', 'Ñ', 'ª', 'º', // A0-A7
	'¿', '⌐', '¬', '½', '¼', '¡', '«', '»', // A8-AF
	'░', '▒', '▓', '│', '┤', '╡', '╢', '╖', // B0-B7
	'╕', '╣', '║', '╗', '╝', '╜', '╛', '┐', // B8-BF
	'└', '┴', '┬', '├', '─', '┼', '╞', '╟', // C0-C7
	'╚', '╔', '╩', '╦', '╠', '═', '╬', '╧', // C8-CF
	'╨', '╤', '╥', '╙', '╘', '╒', '╓', '╫', // D0-D7
	'╪', '┘', '┌', '█', '▄', '▌', '▐', '▀', // D8-DF
	'α', 'ß', 'Γ', 'π', 'Σ', 'σ', 'µ', 'τ', // E0-E7
	'Φ', 'Θ', 'Ω', 'δ', '∞', 'φ', 'ε', '∩', // E8-EF
	'≡', '±', '≥', '≤', '⌠', '⌡', '÷', '≈', // F0-F7
	'°', '∙', '·', '√', 'ⁿ', '²', '■', '\u00A0', // F8-FF
}

// wingdingsLower holds the PC glyphs of bytes 0x00-0x1F. 0x00 stays NUL.
var wingdingsLower = [32]rune{
	'\u0000', '☺', '☻', '♥', '♦', '♣', '♠', '•', // 00-07
	'◘', '○', '◙', '♂', '♀', '♪', '♫', '☼', // 08-0F
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', // 10-17
	'↑', '↓', '→', '←', '∟', '↔', '▲', '▼', // 18-1F
}

// wingdingsDEL is the house glyph shown for byte 0x7F.
const wingdingsDEL = '⌂'

// cp437Variants lists alternate glyphs found for the upper half in fonts and
// community references. The order is normative: earlier entries win.
var cp437Variants = []Mapping{
	{Byte: 0xE1, Rune: 'β', Comment: "GREEK SMALL LETTER BETA"},
	{Byte: 0xE4, Rune: '∑', Comment: "N-ARY SUMMATION"},
	{Byte: 0xE6, Rune: 'μ', Comment: "GREEK SMALL LETTER MU"},
	{Byte: 0xEA, Rune: '\u2126', Comment: "OHM SIGN"},
	{Byte: 0xEB, Rune: 'ð', Comment: "LATIN SMALL LETTER ETH"},
	{Byte: 0xEB, Rune: '∂', Comment: "PARTIAL DIFFERENTIAL"},
	{Byte: 0xED, Rune: 'ϕ', Comment: "GREEK PHI SYMBOL"},
	{Byte: 0xED, Rune: '∅', Comment: "EMPTY SET"},
	{Byte: 0xED, Rune: '⌀', Comment: "DIAMETER SIGN"},
	{Byte: 0xEE, Rune: '∈', Comment: "ELEMENT OF"},
	{Byte: 0xEE, Rune: '€', Comment: "EURO SIGN"},
	{Byte: 0xFB, Rune: '✓', Comment: "CHECK MARK"},
}

// Built-in dialects.
var (
	// CP437Control is CP437 with the ASCII control characters at 0x00-0x1F
	// and DEL at 0x7F.
	CP437Control = MustNew("cp437_control", cp437ControlTable(), cp437Variants)

	// CP437Wingdings is CP437 as drawn by the IBM PC video BIOS: smileys, card
	// suits, arrows etc. at 0x01-0x1F and a house at 0x7F.
	CP437Wingdings = MustNew("cp437_wingdings", cp437WingdingsTable(), cp437Variants)
)

func cp437ControlTable() [256]rune {
	var t [256]rune
	for b := 0; b < 0x80; b++ {
		t[b] = rune(b)
	}
	copy(t[0x80:], cp437Upper[:])
	return t
}

func cp437WingdingsTable() [256]rune {
	t := cp437ControlTable()
	copy(t[:0x20], wingdingsLower[:])
	t[0x7F] = wingdingsDEL
	return t
}
