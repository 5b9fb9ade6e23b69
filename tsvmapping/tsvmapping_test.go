package tsvmapping

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/codepage"
)

func TestReader(t *testing.T) {
	src := strings.NewReader(`# byte	unicode	name
0x80	0x00C7	LATIN CAPITAL LETTER C WITH CEDILLA

0xFB	0x2713	CHECK MARK
`)
	r := NewReader(src)
	m, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if m.Byte != 0x80 || m.Rune != 'Ç' || m.Comment != "LATIN CAPITAL LETTER C WITH CEDILLA" {
		t.Fatalf("mapping mismatch: %+v", m)
	}
	m, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if m.Byte != 0xFB || m.Rune != '✓' {
		t.Fatalf("mapping mismatch: %+v", m)
	}
	_, err = r.Next()
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderRejectsMalformedLines(t *testing.T) {
	tests := []string{
		"0x80\t0x00C7",                // missing comment column
		"80\t0x00C7\tno prefix",       // byte without 0x
		"0x80\t00C7\tno prefix",       // code point without 0x
		"0x100\t0x0041\ttoo big",      // three byte digits
		"0x80\t0x110000\tbeyond",      // beyond U+10FFFF
		"0xZZ\t0x0041\tnot hex",       // not hex
		"0x80\t0x\tno digits",         // empty code point
		"0x80\t0x123456789\ttoo long", // nine digits
	}
	for _, line := range tests {
		_, err := NewReader(strings.NewReader(line + "\n")).Next()
		if !errors.Is(err, ErrSyntax) {
			t.Fatalf("expected ErrSyntax for %q, got %v", line, err)
		}
		if !strings.Contains(err.Error(), "line 1") {
			t.Fatalf("error should name the line: %v", err)
		}
	}
}

func TestLoadDirMatchesBuiltinDialects(t *testing.T) {
	for _, builtin := range []*codepage.Table{codepage.CP437Control, codepage.CP437Wingdings} {
		table, err := LoadDir(os.DirFS("../testdata"), builtin.Name())
		if err != nil {
			t.Fatal(err)
		}
		if table.Name() != builtin.Name() {
			t.Fatalf("name mismatch: %q vs %q", table.Name(), builtin.Name())
		}
		if table.Forward() != builtin.Forward() {
			t.Fatalf("%s: decode table differs from built-in", builtin.Name())
		}
		for r := rune(0); r < 0x10000; r++ {
			b1, ok1 := table.Encode(r)
			b2, ok2 := builtin.Encode(r)
			if b1 != b2 || ok1 != ok2 {
				t.Fatalf("%s: encode(%U) differs: %#02x/%v vs %#02x/%v", builtin.Name(), r, b1, ok1, b2, ok2)
			}
		}
	}
}

func TestLoadDirWithoutVariants(t *testing.T) {
	fsys := fstest.MapFS{
		"dialects/Tiny/values.tsv": &fstest.MapFile{Data: []byte("0x80\t0x00C7\tLATIN CAPITAL LETTER C WITH CEDILLA\n")},
	}
	table, err := LoadDir(fsys, "dialects/Tiny")
	if err != nil {
		t.Fatal(err)
	}
	if table.Name() != "tiny" {
		t.Fatalf("dialect should be named after directory, is %q", table.Name())
	}
	if table.Decode(0x80) != 'Ç' || table.Decode(0x41) != 'A' {
		t.Fatalf("unexpected decoding")
	}
	if len(table.VariantMappings()) != 0 {
		t.Fatalf("expected no variants")
	}
}

func TestLoadDirMissingValues(t *testing.T) {
	_, err := LoadDir(fstest.MapFS{}, "nothing")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadDialectPropagatesErrors(t *testing.T) {
	_, err := LoadDialect("dup", strings.NewReader("0x80\t0x00C7\tA\n0x80\t0x00FC\tB\n"), nil)
	if !errors.Is(err, codepage.ErrInvalidMapping) {
		t.Fatalf("expected ErrInvalidMapping, got %v", err)
	}
	_, err = LoadDialect("broken", strings.NewReader("0x80\n"), nil)
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	for _, builtin := range []*codepage.Table{codepage.CP437Control, codepage.CP437Wingdings} {
		var values, variants bytes.Buffer
		if err := Write(&values, builtin, false); err != nil {
			t.Fatal(err)
		}
		if err := WriteVariants(&variants, builtin); err != nil {
			t.Fatal(err)
		}
		table, err := LoadDialect(builtin.Name(), &values, &variants)
		if err != nil {
			t.Fatal(err)
		}
		if table.Forward() != builtin.Forward() {
			t.Fatalf("%s: decode table does not survive write/load", builtin.Name())
		}
		if len(table.VariantMappings()) != len(builtin.VariantMappings()) {
			t.Fatalf("%s: variants do not survive write/load", builtin.Name())
		}
	}
}

func TestWriteLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, codepage.CP437Wingdings, false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 31+1+128 {
		t.Fatalf("expected 160 non-overlapping bytes, got %d", len(lines))
	}
	if lines[0] != "0x01\t0x263A\tWHITE SMILING FACE" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	buf.Reset()
	if err := Write(&buf, codepage.CP437Control, true); err != nil {
		t.Fatal(err)
	}
	lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 256 {
		t.Fatalf("expected all 256 bytes, got %d", len(lines))
	}
	if lines[0x91] != "0x91\t0x00E6\tLATIN SMALL LETTER AE" {
		t.Fatalf("unexpected line for 0x91: %q", lines[0x91])
	}
}
