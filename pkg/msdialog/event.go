package msdialog

import (
	"fmt"

	"github.com/acolita/msdialog/pkg/charset"
)

// Kind is the kind of a translated dialog event.
type Kind uint8

const (
	KindStyleChange Kind = iota
	KindSpace
	KindDialog
	KindEnd
	KindLinebreak
	KindDelay
	KindBell
	KindNextBubble
	KindSparkly
	KindButtonRef
	KindExtCmd
	KindExtCmdError
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStyleChange:
		return "StyleChange"
	case KindSpace:
		return "Space"
	case KindDialog:
		return "Dialog"
	case KindEnd:
		return "End"
	case KindLinebreak:
		return "Linebreak"
	case KindDelay:
		return "Delay"
	case KindBell:
		return "Bell"
	case KindNextBubble:
		return "NextBubble"
	case KindSparkly:
		return "Sparkly"
	case KindButtonRef:
		return "ButtonRef"
	case KindExtCmd:
		return "ExtCmd"
	case KindExtCmdError:
		return "ExtCmdError"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// ButtonRef is a button mention. Known is false when Raw is not in the
// button table.
type ButtonRef struct {
	Button charset.Button
	Known  bool
	Raw    byte
}

// ExtCmdError reports a registered command whose parameters could not be
// turned into a command value.
type ExtCmdError struct {
	ID   byte
	Argc uint8 // declared parameter count
	Got  uint8 // parameter bytes collected
}

// Event is one element of a translated dialog. Events are immutable once
// built; use the accessor matching Kind to read the payload.
type Event struct {
	kind Kind
	data interface{}
}

// StyleChange returns an event switching the bubble style.
func StyleChange(s Style) Event {
	return Event{kind: KindStyleChange, data: s}
}

// Space returns an event for a full-width space.
func Space() Event {
	return Event{kind: KindSpace}
}

// Dialog returns an event carrying a run of text.
func Dialog(text string) Event {
	return Event{kind: KindDialog, data: text}
}

// End returns the end-of-message event.
func End() Event {
	return Event{kind: KindEnd}
}

// Linebreak returns a line break event.
func Linebreak() Event {
	return Event{kind: KindLinebreak}
}

// Delay returns a typing delay event.
func Delay(frames byte) Event {
	return Event{kind: KindDelay, data: frames}
}

// Bell returns a sound cue event.
func Bell() Event {
	return Event{kind: KindBell}
}

// NextBubble returns a bubble boundary event.
func NextBubble() Event {
	return Event{kind: KindNextBubble}
}

// Sparkly returns the sparkle marker event.
func Sparkly() Event {
	return Event{kind: KindSparkly}
}

// Button returns a button mention event.
func Button(ref ButtonRef) Event {
	return Event{kind: KindButtonRef, data: ref}
}

// Command returns an extended command event.
func Command(c ExtCmd) Event {
	return Event{kind: KindExtCmd, data: c}
}

// CommandError returns an extended command failure event.
func CommandError(e ExtCmdError) Event {
	return Event{kind: KindExtCmdError, data: e}
}

// Kind returns the event kind.
func (e Event) Kind() Kind {
	return e.kind
}

// AsStyle returns the style of a StyleChange. Panics on other kinds.
func (e Event) AsStyle() Style {
	if e.kind != KindStyleChange {
		panic(fmt.Sprintf("Event.AsStyle: expected StyleChange, got %s", e.kind))
	}
	return e.data.(Style)
}

// AsText returns the text of a Dialog event. Panics on other kinds.
func (e Event) AsText() string {
	if e.kind != KindDialog {
		panic(fmt.Sprintf("Event.AsText: expected Dialog, got %s", e.kind))
	}
	return e.data.(string)
}

// AsDelay returns the delay of a Delay event. Panics on other kinds.
func (e Event) AsDelay() byte {
	if e.kind != KindDelay {
		panic(fmt.Sprintf("Event.AsDelay: expected Delay, got %s", e.kind))
	}
	return e.data.(byte)
}

// AsButtonRef returns the payload of a ButtonRef event. Panics on other kinds.
func (e Event) AsButtonRef() ButtonRef {
	if e.kind != KindButtonRef {
		panic(fmt.Sprintf("Event.AsButtonRef: expected ButtonRef, got %s", e.kind))
	}
	return e.data.(ButtonRef)
}

// AsExtCmd returns the command of an ExtCmd event. Panics on other kinds.
func (e Event) AsExtCmd() ExtCmd {
	if e.kind != KindExtCmd {
		panic(fmt.Sprintf("Event.AsExtCmd: expected ExtCmd, got %s", e.kind))
	}
	return e.data.(ExtCmd)
}

// AsExtCmdError returns the payload of an ExtCmdError event. Panics on
// other kinds.
func (e Event) AsExtCmdError() ExtCmdError {
	if e.kind != KindExtCmdError {
		panic(fmt.Sprintf("Event.AsExtCmdError: expected ExtCmdError, got %s", e.kind))
	}
	return e.data.(ExtCmdError)
}

// String returns a debug form of the event.
func (e Event) String() string {
	switch e.kind {
	case KindStyleChange:
		return fmt.Sprintf("StyleChange(%s)", e.AsStyle())
	case KindDialog:
		return fmt.Sprintf("Dialog(%q)", e.AsText())
	case KindDelay:
		return fmt.Sprintf("Delay(%d)", e.AsDelay())
	case KindButtonRef:
		ref := e.AsButtonRef()
		if ref.Known {
			return fmt.Sprintf("ButtonRef(%s, 0x%02X)", ref.Button, ref.Raw)
		}
		return fmt.Sprintf("ButtonRef(none, 0x%02X)", ref.Raw)
	case KindExtCmd:
		return fmt.Sprintf("ExtCmd(%s)", e.AsExtCmd())
	case KindExtCmdError:
		x := e.AsExtCmdError()
		return fmt.Sprintf("ExtCmdError { id: 0x%02X, argc: %d, got: %d }", x.ID, x.Argc, x.Got)
	default:
		return e.kind.String()
	}
}
