// Package imm decodes the live on-screen text buffer.
//
// The on-screen buffer uses its own grammar. It shares the 4-byte group
// reversal and the lookup tables with stored dialog text, but its control
// codes mean different things, so it is decoded by a separate state machine
// into its own event vocabulary.
package imm

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/acolita/msdialog/internal/wire"
	"github.com/acolita/msdialog/pkg/charset"
)

// tracer writes to trace with key 'msdialog.imm'
func tracer() tracing.Trace {
	return tracing.Select("msdialog.imm")
}

type state uint8

const (
	stateInit     state = iota
	stateStyle          // expecting the bubble style byte
	stateExt            // expecting an extended command id
	stateExtExt         // expecting an extended-extended command id
	stateEffect         // expecting a text effect code
	stateArgs           // collecting parameter bytes for pending
	stateStopped        // stop code seen
)

// Decoder turns an immediate buffer into events.
// A Decoder is single-use and not safe for concurrent use.
type Decoder struct {
	reader  *wire.Reader
	charset *charset.Set
	table   charset.Table
	state   state
	pending entry
	args    []byte
	events  []Event
}

// NewDecoder creates a decoder over raw, which is in stored (group-reversed)
// order. A nil cs selects charset.Default().
func NewDecoder(raw []byte, cs *charset.Set) *Decoder {
	if cs == nil {
		cs = charset.Default()
	}
	return &Decoder{
		reader:  wire.NewReader(raw),
		charset: cs,
		table:   charset.Kana,
	}
}

// Decode decodes raw with cs. See Decoder.Decode.
func Decode(raw []byte, cs *charset.Set) []Event {
	return NewDecoder(raw, cs).Decode()
}

// Decode runs the decoder until the input is exhausted or the stop code is
// read, and returns the events collected. A command cut short by the end of
// input is dropped without error.
func (d *Decoder) Decode() []Event {
	for d.state != stateStopped {
		b, err := d.reader.ReadByte()
		if err != nil {
			break
		}
		d.step(b)
	}
	if d.state != stateInit && d.state != stateStopped {
		tracer().Debugf("input ends mid-command at %d, state %d", d.reader.Pos(), d.state)
	}
	return d.events
}

func (d *Decoder) emit(ev Event) {
	d.events = append(d.events, ev)
}

func (d *Decoder) step(b byte) {
	switch d.state {
	case stateInit:
		d.stepInit(b)
	case stateStyle:
		d.emit(Event{Kind: KindBubbleStyle, Args: []byte{b}})
		d.state = stateInit
	case stateExt:
		switch b {
		case extTextEffect:
			d.state = stateEffect
		case extExtCmd:
			d.state = stateExtExt
		default:
			d.dispatch(extCmds, b, KindUnknownExtCmd)
		}
	case stateExtExt:
		d.dispatch(extExtCmds, b, KindUnknownExtExtCmd)
	case stateEffect:
		d.dispatch(textEffects, b, KindUnknownTextEffect)
	case stateArgs:
		d.args = append(d.args, b)
		d.complete()
	}
}

func (d *Decoder) stepInit(b byte) {
	switch b {
	case codeBubbleStyle:
		d.state = stateStyle
	case codeNewline:
		d.emit(Event{Kind: KindNewline})
	case codeKana:
		d.table = charset.Kana
	case codeLatin:
		d.table = charset.Latin
	case codeKanji:
		d.table = charset.Kanji
	case codeButtons:
		d.table = charset.ButtonTable
	case codeSpace:
		d.emit(Event{Kind: KindSpace})
	case codeTab:
		d.emit(Event{Kind: KindTab})
	case codeNextBubble:
		d.emit(Event{Kind: KindNextBubble})
	case codeStop:
		d.state = stateStopped
	case codeExtCmd:
		d.state = stateExt
	default:
		d.emit(d.glyph(b))
	}
}

func (d *Decoder) glyph(b byte) Event {
	if d.table == charset.ButtonTable {
		if btn, ok := d.charset.Button(b); ok {
			return Event{Kind: KindButton, Button: btn}
		}
		return Event{Kind: KindUnknownButton, Args: []byte{b}}
	}
	if r, ok := d.charset.Lookup(d.table, b); ok {
		return Event{Kind: KindChar, Char: r}
	}
	switch d.table {
	case charset.Kanji:
		return Event{Kind: KindUnknownKanji, Args: []byte{b}}
	case charset.Latin:
		return Event{Kind: KindUnknownLatin, Args: []byte{b}}
	default:
		return Event{Kind: KindUnknownKana, Args: []byte{b}}
	}
}

// dispatch looks up code in table. Unregistered codes emit an unknown event
// carrying the code; registered ones start collecting their parameters.
func (d *Decoder) dispatch(table map[byte]entry, code byte, unknown Kind) {
	sp, ok := table[code]
	if !ok {
		d.emit(Event{Kind: unknown, Args: []byte{code}})
		d.state = stateInit
		return
	}
	d.pending = sp
	d.args = nil
	d.state = stateArgs
	d.complete()
}

func (d *Decoder) complete() {
	if len(d.args) < d.pending.argc {
		return
	}
	d.emit(Event{Kind: d.pending.kind, Args: d.args})
	d.args = nil
	d.state = stateInit
}
