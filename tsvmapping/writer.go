package tsvmapping

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/codepage"
	"golang.org/x/text/unicode/runenames"
)

// Write writes the decode table of t in values.tsv format. Comments are the
// Unicode character names. With all == false, bytes which overlap with ASCII
// are left out, as they decode to themselves anyway.
func Write(w io.Writer, t *codepage.Table, all bool) error {
	bw := bufio.NewWriter(w)
	forward := t.Forward()
	for b, r := range forward {
		if !all && t.OverlapByte(byte(b)) {
			continue
		}
		if err := writeMapping(bw, byte(b), r, runeName(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteVariants writes the variants of t in variants.tsv format.
func WriteVariants(w io.Writer, t *codepage.Table) error {
	bw := bufio.NewWriter(w)
	for _, m := range t.VariantMappings() {
		comment := m.Comment
		if comment == "" {
			comment = runeName(m.Rune)
		}
		if err := writeMapping(bw, m.Byte, m.Rune, comment); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeMapping(w *bufio.Writer, b byte, r rune, comment string) error {
	_, err := fmt.Fprintf(w, "0x%02X\t0x%04X\t%s\n", b, r, comment)
	return err
}

// runeName returns the Unicode name of r. Control characters have no name in
// the Unicode character database and are written as <control>.
func runeName(r rune) string {
	if name := runenames.Name(r); name != "" {
		return name
	}
	return "<control>"
}
