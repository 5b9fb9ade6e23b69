/*
Package codepage converts between single bytes of the IBM PC code page 437
family and Unicode.

A dialect of the code page is a Table: a fixed 256-entry decode table plus a
curated encode index. Decoding is total, every byte decodes to some rune.
Encoding is partial, runes outside the dialect's repertoire have no byte and
Encode reports that with its second result. Where several bytes decode to the
same rune, the encode index designates the first of them in byte order as the
canonical byte. Variant glyphs (alternate renderings documented for some
bytes, e.g. β for ß at 0xE1) encode to their byte but are never produced by
decoding.

Two dialects are built in:

	CP437Control    0x00-0x1F are the ASCII control characters
	CP437Wingdings  0x01-0x1F and 0x7F are the PC glyphs ☺☻♥♦… and ⌂

Further dialects may be built with New from a literal table or with Load from
streaming mapping sources; package tsvmapping reads the tab-separated mapping
files these tables are usually distributed as.

Tables are immutable once built and safe for concurrent use.

Further Reading

	http://www.unicode.org/Public/MAPPINGS/VENDORS/MICSFT/PC/CP437.TXT
	https://en.wikipedia.org/wiki/Code_page_437

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package codepage

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'codepage'
func tracer() tracing.Trace {
	return tracing.Select("codepage")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
