/*
Package tsvmapping reads and writes code page mapping files.

A mapping file lists one byte per line as three tab-separated columns:

	0x80	0x00C7	LATIN CAPITAL LETTER C WITH CEDILLA
	0x81	0x00FC	LATIN SMALL LETTER U WITH DIAERESIS
	...

The first column is the byte (one or two hex digits), the second the Unicode
code point (up to eight hex digits), the third a free comment. Both numbers
carry a "0x" prefix. Empty lines and lines starting with '#' are skipped.

A dialect directory holds a values.tsv with the primary mappings and an
optional variants.tsv with alternate glyphs. Bytes missing from values.tsv
decode to the rune with the same value.
*/
package tsvmapping

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/npillmayer/codepage"
	"github.com/npillmayer/schuko/tracing"
)

// ErrSyntax is wrapped by errors for malformed mapping lines.
var ErrSyntax = errors.New("malformed mapping line")

// File names inside a dialect directory.
const (
	ValuesFile   = "values.tsv"
	VariantsFile = "variants.tsv"
)

// tracer writes to trace with key 'codepage'
func tracer() tracing.Trace {
	return tracing.Select("codepage")
}

// Reader streams mappings from a TSV mapping file.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a Reader for mapping data.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next mapping.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (codepage.Mapping, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimRight(r.scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return r.decodeMappingLine(line)
	}
	if err := r.scanner.Err(); err != nil {
		return codepage.Mapping{}, err
	}
	return codepage.Mapping{}, io.EOF
}

func (r *Reader) decodeMappingLine(line string) (codepage.Mapping, error) {
	fields := strings.SplitN(line, "\t", 3)
	if len(fields) != 3 {
		return codepage.Mapping{}, fmt.Errorf("%w: line %d: %d fields, should be 3",
			ErrSyntax, r.line, len(fields))
	}
	b, err := parseHex(fields[0], 2)
	if err != nil {
		return codepage.Mapping{}, fmt.Errorf("%w: line %d: byte: %v", ErrSyntax, r.line, err)
	}
	u, err := parseHex(fields[1], 8)
	if err != nil {
		return codepage.Mapping{}, fmt.Errorf("%w: line %d: code point: %v", ErrSyntax, r.line, err)
	}
	if u > 0x10FFFF {
		return codepage.Mapping{}, fmt.Errorf("%w: line %d: code point 0x%X out of range",
			ErrSyntax, r.line, u)
	}
	return codepage.Mapping{
		Byte:    byte(b),
		Rune:    rune(u),
		Comment: strings.TrimSpace(fields[2]),
	}, nil
}

func parseHex(s string, maxDigits int) (uint64, error) {
	s = strings.TrimSpace(s)
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok {
		return 0, fmt.Errorf("%q lacks 0x prefix", s)
	}
	if digits == "" || len(digits) > maxDigits {
		return 0, fmt.Errorf("%q must have 1 to %d hex digits", s, maxDigits)
	}
	return strconv.ParseUint(digits, 16, 32)
}

// LoadDialect reads primary mappings from values and alternate glyphs from
// variants and builds a code page table. variants may be nil.
func LoadDialect(name string, values, variants io.Reader) (*codepage.Table, error) {
	var vr codepage.MappingReader
	if variants != nil {
		vr = NewReader(variants)
	}
	t, err := codepage.Load(name, NewReader(values), vr)
	if err != nil {
		return nil, fmt.Errorf("loading code page %s: %w", name, err)
	}
	tracer().Infof("loaded code page %s", name)
	return t, nil
}

// LoadDir loads the dialect stored in directory dir of fsys.
// The dialect is named after the lower-cased base name of dir.
//
// Example usage:
//
//	t, err := tsvmapping.LoadDir(os.DirFS("dialects"), "cp437_control")
func LoadDir(fsys fs.FS, dir string) (*codepage.Table, error) {
	name := strings.ToLower(path.Base(dir))
	values, err := fsys.Open(path.Join(dir, ValuesFile))
	if err != nil {
		return nil, err
	}
	defer values.Close()
	var variants io.Reader
	vf, err := fsys.Open(path.Join(dir, VariantsFile))
	switch {
	case err == nil:
		defer vf.Close()
		variants = vf
	case errors.Is(err, fs.ErrNotExist):
		tracer().Debugf("code page %s has no %s", name, VariantsFile)
	default:
		return nil, err
	}
	return LoadDialect(name, values, variants)
}
