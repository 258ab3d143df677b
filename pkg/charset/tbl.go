package charset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Common errors returned by the table loaders.
var (
	ErrMalformedEntry      = errors.New("charset: malformed table entry")
	ErrDuplicateCode       = errors.New("charset: duplicate table code")
	ErrUnsupportedEncoding = errors.New("charset: unsupported encoding")
)

// Encoding is the text encoding of a .tbl file.
// Fan translation tools usually save tables as Shift-JIS.
type Encoding int

const (
	UTF8 Encoding = iota
	ShiftJIS
	EUCJP
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case ShiftJIS:
		return "shift-jis"
	case EUCJP:
		return "euc-jp"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// ParseEncoding returns the encoding for a name such as "sjis" or "UTF-8".
// An empty name means UTF-8.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "UTF8", "UTF-8":
		return UTF8, nil
	case "SHIFTJIS", "SHIFT_JIS", "SHIFT-JIS", "SJIS", "CP932":
		return ShiftJIS, nil
	case "EUC-JP", "EUCJP", "EUC_JP":
		return EUCJP, nil
	default:
		return UTF8, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
}

// decoded wraps r so that it yields UTF-8.
func (e Encoding) decoded(r io.Reader) (io.Reader, error) {
	switch e {
	case UTF8:
		return r, nil
	case ShiftJIS:
		return transform.NewReader(r, japanese.ShiftJIS.NewDecoder()), nil
	case EUCJP:
		return transform.NewReader(r, japanese.EUCJP.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedEncoding, e)
	}
}

// TableReader streams entries from a .tbl file.
//
// Each entry line has the form
//
//	XX=glyph
//
// where XX is a hexadecimal byte. Lines starting with '#' or ';' and blank
// lines are ignored. The glyph is taken verbatim (it may be a space or '=').
type TableReader struct {
	scanner *bufio.Scanner
	line    int
}

// NewTableReader creates a reader for a .tbl file in the given encoding.
func NewTableReader(r io.Reader, enc Encoding) (*TableReader, error) {
	dr, err := enc.decoded(r)
	if err != nil {
		return nil, err
	}
	return &TableReader{scanner: bufio.NewScanner(dr)}, nil
}

// Next returns the next entry as (code, glyph).
// It returns io.EOF when the stream is exhausted.
func (r *TableReader) Next() (byte, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSuffix(r.scanner.Text(), "\r")
		if r.line == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		key, glyph, found := strings.Cut(line, "=")
		if !found || glyph == "" {
			return 0, "", fmt.Errorf("%w: line %d: %q", ErrMalformedEntry, r.line, line)
		}
		code, err := strconv.ParseUint(strings.TrimSpace(key), 16, 8)
		if err != nil {
			return 0, "", fmt.Errorf("%w: line %d: bad code %q", ErrMalformedEntry, r.line, key)
		}
		return byte(code), glyph, nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, "", err
	}
	return 0, "", io.EOF
}

// ReadTable loads a glyph table. Every glyph must be a single character.
func ReadTable(r io.Reader, enc Encoding) (*Map, error) {
	tr, err := NewTableReader(r, enc)
	if err != nil {
		return nil, err
	}
	m := &Map{}
	for {
		code, glyph, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ch, size := utf8.DecodeRuneInString(glyph)
		if ch == utf8.RuneError || size != len(glyph) {
			return nil, fmt.Errorf("%w: line %d: glyph %q is not a single character",
				ErrMalformedEntry, tr.line, glyph)
		}
		if _, dup := m.Lookup(code); dup {
			return nil, fmt.Errorf("%w: 0x%02X at line %d", ErrDuplicateCode, code, tr.line)
		}
		m.Set(code, ch)
	}
	tracer().Debugf("glyph table loaded: %d entries", m.Len())
	return m, nil
}

// ReadButtonTable loads a button table. Glyphs are button names
// (A, B, START, C_DOWN, C_LEFT, Z).
func ReadButtonTable(r io.Reader, enc Encoding) (*ButtonMap, error) {
	tr, err := NewTableReader(r, enc)
	if err != nil {
		return nil, err
	}
	m := &ButtonMap{}
	for {
		code, name, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		b, ok := ParseButton(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("%w: line %d: unknown button %q", ErrMalformedEntry, tr.line, name)
		}
		if _, dup := m.Lookup(code); dup {
			return nil, fmt.Errorf("%w: 0x%02X at line %d", ErrDuplicateCode, code, tr.line)
		}
		m.Set(code, b)
	}
	tracer().Debugf("button table loaded: %d entries", m.Len())
	return m, nil
}
