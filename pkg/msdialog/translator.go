package msdialog

import (
	"fmt"
	"strings"

	"github.com/acolita/msdialog/internal/wire"
	"github.com/acolita/msdialog/pkg/charset"
)

type state uint8

const (
	stateInit      state = iota
	stateStyle           // expecting a style byte
	stateDelay           // expecting a delay byte
	stateExtCmd          // expecting a command id
	stateExtParams       // collecting command parameters
)

var stateNames = [...]string{"Init", "Style", "Delay", "ExtCmd", "ExtCmdParams"}

func (s state) String() string {
	return stateNames[s]
}

// Translator turns stored dialog bytes into events.
// A Translator is single-use and not safe for concurrent use.
type Translator struct {
	reader  *wire.Reader
	charset *charset.Set
	table   charset.Table
	state   state
	cmdID   byte
	argc    uint8
	params  []byte
	run     strings.Builder // text not yet emitted as Dialog
	events  []Event
	done    bool
}

// NewTranslator creates a translator over raw, which is in stored
// (group-reversed) order.
func NewTranslator(raw []byte, opts ...Option) *Translator {
	o := newOptions(opts)
	return &Translator{
		reader:  wire.NewReader(raw),
		charset: o.charset,
		table:   charset.Kana,
		params:  make([]byte, 0, maxExtCmdParams),
	}
}

// Translate translates raw dialog bytes into events.
//
// Translation stops after the End code or when the input is exhausted. A
// command cut short by the end of input is dropped without error. The only
// error is ErrInvalidStyle.
func Translate(raw []byte, opts ...Option) ([]Event, error) {
	return NewTranslator(raw, opts...).Translate()
}

// Translate runs the translator to completion.
func (t *Translator) Translate() ([]Event, error) {
	for !t.done {
		pos := t.reader.Pos()
		b, err := t.reader.ReadByte()
		if err != nil {
			break
		}
		if err := t.step(b, pos); err != nil {
			tracer().Errorf("translate: %v", err)
			return nil, err
		}
	}
	if t.state != stateInit {
		tracer().Debugf("input ends in state %s; pending command 0x%02X dropped", t.state, t.cmdID)
	}
	t.flush()
	return t.events, nil
}

// flush emits the pending text run, if any.
func (t *Translator) flush() {
	if t.run.Len() == 0 {
		return
	}
	t.events = append(t.events, Dialog(t.run.String()))
	t.run.Reset()
}

// emit flushes the pending run and appends ev.
func (t *Translator) emit(ev Event) {
	t.flush()
	t.events = append(t.events, ev)
}

func (t *Translator) step(b byte, pos int) error {
	switch t.state {
	case stateInit:
		t.stepInit(b)
	case stateStyle:
		s, ok := ParseStyle(b)
		if !ok {
			return fmt.Errorf("%w: 0x%02X at position %d", ErrInvalidStyle, b, pos)
		}
		t.emit(StyleChange(s))
		t.state = stateInit
	case stateDelay:
		t.emit(Delay(b))
		t.state = stateInit
	case stateExtCmd:
		t.startCommand(b)
	case stateExtParams:
		t.params = append(t.params, b)
		if len(t.params) == int(t.argc) {
			t.finishCommand()
		}
	}
	return nil
}

func (t *Translator) stepInit(b byte) {
	switch b {
	case codeSparkle:
		t.emit(Sparkly())
	case codeStyle:
		t.flush()
		t.state = stateStyle
	case codeSpace:
		t.emit(Space())
	case codeLinebreak:
		t.emit(Linebreak())
	case codeBell:
		t.emit(Bell())
	case codeDelay:
		t.flush()
		t.state = stateDelay
	case codeKana:
		t.table = charset.Kana
	case codeLatin:
		t.table = charset.Latin
	case codeKanji:
		t.table = charset.Kanji
	case codeButtons:
		t.table = charset.ButtonTable
	case codeNextBubble:
		t.emit(NextBubble())
	case codeEnd:
		t.emit(End())
		t.done = true
	case codeExtCmd:
		t.flush()
		t.state = stateExtCmd
	default:
		t.glyph(b)
	}
}

func (t *Translator) glyph(b byte) {
	if t.table == charset.ButtonTable {
		btn, ok := t.charset.Button(b)
		if !ok {
			tracer().Debugf("unmapped button 0x%02X", b)
		}
		t.emit(Button(ButtonRef{Button: btn, Known: ok, Raw: b}))
		return
	}
	if r, ok := t.charset.Lookup(t.table, b); ok {
		t.run.WriteRune(r)
		return
	}
	tracer().Debugf("unmapped %s glyph 0x%02X", t.table, b)
	t.run.WriteString(charset.Placeholder(t.table, b))
}

func (t *Translator) startCommand(id byte) {
	argc, ok := ParamCount(id)
	if !ok {
		tracer().Debugf("unknown extended command 0x%02X", id)
		t.emit(Command(UnknownExtCmd(id)))
		t.state = stateInit
		return
	}
	t.cmdID = id
	t.argc = argc
	t.params = t.params[:0]
	if argc == 0 {
		t.finishCommand()
		return
	}
	t.state = stateExtParams
}

func (t *Translator) finishCommand() {
	if c, ok := BuildExtCmd(t.cmdID, t.params); ok {
		t.emit(Command(c))
	} else {
		t.emit(CommandError(ExtCmdError{ID: t.cmdID, Argc: t.argc, Got: uint8(len(t.params))}))
	}
	t.state = stateInit
}
