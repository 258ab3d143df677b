// Package charset maps dialog bytes to Unicode.
//
// The dialog grammar switches between four lookup tables. Three of them map a
// byte to a glyph; the fourth maps a byte to a controller button. Tables are
// plain data: they are loaded from romhacking-style .tbl files (see
// ReadTable) and a default set is embedded in the package.
package charset

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'charset'
func tracer() tracing.Trace {
	return tracing.Select("charset")
}

// Table identifies one of the lookup tables.
type Table uint8

const (
	Kana Table = iota
	Kanji
	Latin
	ButtonTable
)

// String returns the table name as used in unmapped-glyph placeholders.
func (t Table) String() string {
	switch t {
	case Kana:
		return "kana"
	case Kanji:
		return "kanji"
	case Latin:
		return "latin"
	case ButtonTable:
		return "button"
	default:
		return fmt.Sprintf("Table(%d)", t)
	}
}

// Button is a controller button referenced from dialog text.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonStart
	ButtonCDown
	ButtonCLeft
	ButtonZ
)

var buttonNames = [...]string{
	ButtonA:     "A",
	ButtonB:     "B",
	ButtonStart: "START",
	ButtonCDown: "C_DOWN",
	ButtonCLeft: "C_LEFT",
	ButtonZ:     "Z",
}

var buttonGlyphs = [...]string{
	ButtonA:     "[A]",
	ButtonB:     "[B]",
	ButtonStart: "[START]",
	ButtonCDown: "[C⬇]",
	ButtonCLeft: "[C◀]",
	ButtonZ:     "[Z]",
}

// String returns the button name used in .tbl files.
func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", b)
}

// Glyph returns the bracketed text used to show the button inline.
func (b Button) Glyph() string {
	if int(b) < len(buttonGlyphs) {
		return buttonGlyphs[b]
	}
	return fmt.Sprintf("[%d]", b)
}

// ParseButton returns the button with the given .tbl name.
func ParseButton(name string) (Button, bool) {
	for i, n := range buttonNames {
		if n == name {
			return Button(i), true
		}
	}
	return 0, false
}

// Map is a byte to glyph lookup table.
type Map struct {
	glyphs [256]rune
	mapped [256]bool
	count  int
}

// Set maps code to glyph, replacing any previous mapping.
func (m *Map) Set(code byte, glyph rune) {
	if !m.mapped[code] {
		m.count++
	}
	m.glyphs[code] = glyph
	m.mapped[code] = true
}

// Lookup returns the glyph for code. ok is false if code is unmapped.
func (m *Map) Lookup(code byte) (glyph rune, ok bool) {
	if m == nil || !m.mapped[code] {
		return 0, false
	}
	return m.glyphs[code], true
}

// Len returns the number of mapped codes.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// ButtonMap is a byte to button lookup table.
type ButtonMap struct {
	buttons [256]Button
	mapped  [256]bool
	count   int
}

// Set maps code to button, replacing any previous mapping.
func (m *ButtonMap) Set(code byte, b Button) {
	if !m.mapped[code] {
		m.count++
	}
	m.buttons[code] = b
	m.mapped[code] = true
}

// Lookup returns the button for code. ok is false if code is unmapped.
func (m *ButtonMap) Lookup(code byte) (b Button, ok bool) {
	if m == nil || !m.mapped[code] {
		return 0, false
	}
	return m.buttons[code], true
}

// Len returns the number of mapped codes.
func (m *ButtonMap) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Set bundles the four lookup tables of a decoding session.
// A nil table maps nothing. A Set is read-only once built and may be shared
// between concurrent decodes.
type Set struct {
	Kana    *Map
	Kanji   *Map
	Latin   *Map
	Buttons *ButtonMap
}

// Lookup resolves a byte under one of the glyph tables.
// The button table never yields a glyph; use Button for it.
func (s *Set) Lookup(t Table, code byte) (rune, bool) {
	switch t {
	case Kana:
		return s.Kana.Lookup(code)
	case Kanji:
		return s.Kanji.Lookup(code)
	case Latin:
		return s.Latin.Lookup(code)
	default:
		return 0, false
	}
}

// Button resolves a byte under the button table.
func (s *Set) Button(code byte) (Button, bool) {
	return s.Buttons.Lookup(code)
}

// Placeholder returns the inline marker written for an unmapped byte,
// for example "{kana:0A}".
func Placeholder(t Table, code byte) string {
	return fmt.Sprintf("{%s:%02X}", t, code)
}
