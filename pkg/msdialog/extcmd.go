package msdialog

import (
	"fmt"
	"strings"
)

// Extended command ids of the stored dialog grammar.
const (
	ExtCmdTextColor     byte = 0x05
	ExtCmdUnk8          byte = 0x08
	ExtCmdAutoScroll    byte = 0x0C
	ExtCmdFontSize      byte = 0x0D
	ExtCmdFontSizeReset byte = 0x0E
	ExtCmdUnk13         byte = 0x13
	ExtCmdUnk14         byte = 0x14
	ExtCmdGraphicsB     byte = 0x18
	ExtCmdSaveTextColor byte = 0x24
	ExtCmdLoadTextColor byte = 0x25
	ExtCmdStartEffect   byte = 0x26
	ExtCmdEndEffect     byte = 0x27
	ExtCmdUnk29         byte = 0x29
	ExtCmdVoice         byte = 0x2F
)

// maxExtCmdParams is the largest parameter count in the registry.
const maxExtCmdParams = 7

type extCmdDef struct {
	name   string
	params []string
	silent bool // renders as nothing
}

// extCmdRegistry is the single source of truth for extended commands:
// adding a command means adding a line here.
var extCmdRegistry = map[byte]extCmdDef{
	ExtCmdTextColor:     {"TextColor", []string{"c"}, true},
	ExtCmdUnk8:          {"Unk8", nil, true},
	ExtCmdAutoScroll:    {"AutoScroll", []string{"p1"}, true},
	ExtCmdFontSize:      {"FontSize", []string{"x", "y"}, true},
	ExtCmdFontSizeReset: {"FontSizeReset", nil, true},
	ExtCmdUnk13:         {"Unk13", []string{"p1"}, true},
	ExtCmdUnk14:         {"Unk14", []string{"p1"}, true},
	ExtCmdGraphicsB:     {"GraphicsB", []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"}, true},
	ExtCmdSaveTextColor: {"SaveTextColor", nil, true},
	ExtCmdLoadTextColor: {"LoadTextColor", nil, true},
	ExtCmdStartEffect:   {"StartEffect", []string{"id"}, true},
	ExtCmdEndEffect:     {"EndEffect", []string{"id"}, true},
	ExtCmdUnk29:         {"Unk29", []string{"p1"}, true},
	ExtCmdVoice:         {"Voice", []string{"p1"}, true},
}

// ParamCount returns the number of parameter bytes that follow the command
// id. ok is false for unregistered ids.
func ParamCount(id byte) (n uint8, ok bool) {
	def, ok := extCmdRegistry[id]
	if !ok {
		return 0, false
	}
	return uint8(len(def.params)), true
}

// ExtCmd is a decoded extended command: a registered command with its
// parameter bytes, or an unknown id.
type ExtCmd struct {
	id    byte
	known bool
	argc  uint8
	args  [maxExtCmdParams]byte
}

// BuildExtCmd builds a registered command from its parameter bytes.
// ok is false if id is unregistered or len(params) does not match the
// registered parameter count.
func BuildExtCmd(id byte, params []byte) (ExtCmd, bool) {
	def, ok := extCmdRegistry[id]
	if !ok || len(params) != len(def.params) {
		return ExtCmd{}, false
	}
	c := ExtCmd{id: id, known: true, argc: uint8(len(params))}
	copy(c.args[:], params)
	return c, true
}

// UnknownExtCmd returns the command value for an unregistered id.
func UnknownExtCmd(id byte) ExtCmd {
	return ExtCmd{id: id}
}

// ID returns the command id.
func (c ExtCmd) ID() byte { return c.id }

// IsUnknown reports whether the id is unregistered.
func (c ExtCmd) IsUnknown() bool { return !c.known }

// Name returns the registered name, or "Unknown".
func (c ExtCmd) Name() string {
	if !c.known {
		return "Unknown"
	}
	return extCmdRegistry[c.id].name
}

// Args returns the parameter bytes in order.
func (c ExtCmd) Args() []byte {
	out := make([]byte, c.argc)
	copy(out, c.args[:c.argc])
	return out
}

// Arg returns the parameter with the given registered name.
func (c ExtCmd) Arg(name string) (byte, bool) {
	if !c.known {
		return 0, false
	}
	for i, p := range extCmdRegistry[c.id].params {
		if p == name {
			return c.args[i], true
		}
	}
	return 0, false
}

// Silent reports whether the command renders as nothing.
func (c ExtCmd) Silent() bool {
	return c.known && extCmdRegistry[c.id].silent
}

// Effect returns the text effect a StartEffect or EndEffect command
// refers to.
func (c ExtCmd) Effect() (TextEffect, bool) {
	if !c.known || (c.id != ExtCmdStartEffect && c.id != ExtCmdEndEffect) {
		return 0, false
	}
	return TextEffect(c.args[0]), true
}

// String returns the debug form, for example "FontSize { x: 1, y: 2 }",
// "Unk8" or "Unknown(0x2A)".
func (c ExtCmd) String() string {
	if !c.known {
		return fmt.Sprintf("Unknown(0x%02X)", c.id)
	}
	def := extCmdRegistry[c.id]
	if len(def.params) == 0 {
		return def.name
	}
	fields := make([]string, len(def.params))
	for i, p := range def.params {
		fields[i] = fmt.Sprintf("%s: %d", p, c.args[i])
	}
	return def.name + " { " + strings.Join(fields, ", ") + " }"
}
