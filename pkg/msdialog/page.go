package msdialog

import (
	"fmt"
	"strings"

	"github.com/acolita/msdialog/pkg/charset"
	"github.com/acolita/msdialog/pkg/msdialog/imm"
)

func decodeImmediate(raw []byte, cs *charset.Set) []imm.Event {
	return imm.Decode(raw, cs)
}

// line is a text line of the on-screen buffer, or a bubble break when
// brk is set.
type line struct {
	text    string
	hoffset uint8
	brk     bool
}

// page is the assembled on-screen buffer.
type page struct {
	lines       []line
	startScroll uint32 // from the vertical offset command
	style       byte
}

// assembleLines groups immediate events into lines.
func assembleLines(events []imm.Event) page {
	var (
		p       page
		buf     strings.Builder
		hoffset uint8
	)
	pushText := func() {
		p.lines = append(p.lines, line{text: buf.String(), hoffset: hoffset})
		buf.Reset()
	}
	for _, ev := range events {
		switch ev.Kind {
		case imm.KindChar:
			buf.WriteRune(ev.Char)
		case imm.KindSpace, imm.KindTab:
			buf.WriteRune(ideographicSpace)
		case imm.KindButton:
			buf.WriteString(ev.Button.Glyph())
		case imm.KindNewline:
			pushText()
		case imm.KindNextBubble:
			if buf.Len() > 0 {
				pushText()
			}
			p.lines = append(p.lines, line{brk: true})
		case imm.KindBubbleStyle:
			p.style = ev.Arg(0)
		case imm.KindTextHOffset:
			hoffset = ev.Arg(0)
		case imm.KindTextVOffset:
			p.startScroll = uint32(ev.Arg(0))
		case imm.KindExtCmd1D, imm.KindStoreColor, imm.KindLoadColor, imm.KindSetColor,
			imm.KindExtCmd06, imm.KindExtCmd0B, imm.KindExtCmd0C:
		default:
			if ev.Kind.IsEffect() {
				continue
			}
			fmt.Fprintf(&buf, " ( %s) ", ev)
		}
	}
	if buf.Len() > 0 {
		pushText()
	}
	return p
}

// window returns the lines visible at scroll.
func (p page) window(scroll uint32, layout PageLayout) ImmediateText {
	scroll += p.startScroll
	if p.style == byte(StyleSignPost) {
		if scroll > layout.SignPostInset {
			scroll -= layout.SignPostInset
		} else {
			scroll = 0
		}
	}
	skip := int(scroll / layout.LineHeight)

	var out ImmediateText
	rest := p.lines
	for skip > 0 && len(rest) > 0 {
		if l := rest[0]; !l.brk {
			out.HOffset = l.hoffset
			skip--
		}
		rest = rest[1:]
	}

	var sb strings.Builder
	shown := 0
	for _, l := range rest {
		if l.brk {
			if shown > 0 {
				break
			}
			continue
		}
		sb.WriteString(l.text)
		shown++
		if shown == layout.VisibleLines {
			break
		}
		sb.WriteByte('\n')
	}
	out.Text = sb.String()
	tracer().Debugf("window: scroll=%d skipped to line %d, %d shown", scroll, scroll/layout.LineHeight, shown)
	return out
}
