// Package msdialog decodes dialog text of the Japanese release of Paper Mario
// (Mario Story) from raw memory or ROM bytes.
//
// Dialog bytes are stored in 4-byte groups with the byte order inside each
// group reversed. Two grammars are understood:
//
//   - stored dialog text, translated into events by Translate and rendered
//     by Render (DecodeFullText does both);
//   - the live on-screen text buffer of BufferSize bytes, decoded by package
//     imm and paged like the game does by DecodeImmediateBuffer.
//
// # Basic Usage
//
//	text, err := msdialog.DecodeFullText(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(text)
//
//	screen := msdialog.DecodeImmediateBuffer(mem[off:off+msdialog.BufferSize], 0)
//	fmt.Println(screen.Text)
//
// Glyph tables default to charset.Default(); pass WithCharset to use tables
// loaded from .tbl files.
//
// All functions are pure: they read only the bytes they are given and may be
// called concurrently.
package msdialog

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"

	"github.com/acolita/msdialog/pkg/charset"
)

// tracer writes to trace with key 'msdialog'
func tracer() tracing.Trace {
	return tracing.Select("msdialog")
}

// BufferSize is the size of the on-screen dialog buffer. Callers slice
// exactly this many bytes before calling DecodeImmediateBuffer.
const BufferSize = 1024

// ErrInvalidStyle is returned when a style-change code is followed by a byte
// that names no bubble style.
var ErrInvalidStyle = errors.New("msdialog: invalid bubble style")

// PageLayout holds the paging constants of the dialog window.
type PageLayout struct {
	LineHeight    uint32 // scroll units per line
	VisibleLines  int    // lines shown at once
	SignPostInset uint32 // scroll units subtracted for sign-post bubbles
}

// DefaultPageLayout matches the game.
var DefaultPageLayout = PageLayout{LineHeight: 16, VisibleLines: 3, SignPostInset: 12}

type options struct {
	charset *charset.Set
	layout  PageLayout
}

// Option configures decoding.
type Option func(*options)

// WithCharset sets the lookup tables. A nil set selects charset.Default().
func WithCharset(cs *charset.Set) Option {
	return func(o *options) {
		if cs != nil {
			o.charset = cs
		}
	}
}

// WithPageLayout overrides DefaultPageLayout for DecodeImmediateBuffer.
// A zero LineHeight or VisibleLines keeps the default value.
func WithPageLayout(l PageLayout) Option {
	return func(o *options) {
		if l.LineHeight > 0 {
			o.layout.LineHeight = l.LineHeight
		}
		if l.VisibleLines > 0 {
			o.layout.VisibleLines = l.VisibleLines
		}
		o.layout.SignPostInset = l.SignPostInset
	}
}

func newOptions(opts []Option) options {
	o := options{charset: charset.Default(), layout: DefaultPageLayout}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// DecodeFullText translates raw dialog bytes and renders them as a string.
// It fails only on an invalid bubble style.
func DecodeFullText(raw []byte, opts ...Option) (string, error) {
	events, err := Translate(raw, opts...)
	if err != nil {
		return "", err
	}
	return Render(events), nil
}

// DecodeFullTextNthBubble is DecodeFullText restricted to the bubble with
// zero-based index bubble.
func DecodeFullTextNthBubble(raw []byte, bubble int, opts ...Option) (string, error) {
	events, err := Translate(raw, opts...)
	if err != nil {
		return "", err
	}
	return RenderNthBubble(events, bubble), nil
}

// ImmediateText is the visible window of the on-screen buffer.
type ImmediateText struct {
	Text    string
	HOffset uint8 // horizontal offset of the last line scrolled away
}

// DecodeImmediateBuffer decodes the on-screen buffer and returns the lines
// visible at the given scroll value. It never fails; undecodable input
// yields fewer or no lines.
func DecodeImmediateBuffer(raw []byte, scroll uint32, opts ...Option) ImmediateText {
	o := newOptions(opts)
	page := assembleLines(decodeImmediate(raw, o.charset))
	return page.window(scroll, o.layout)
}
