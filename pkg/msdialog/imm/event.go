package imm

import (
	"fmt"
	"strings"

	"github.com/acolita/msdialog/pkg/charset"
)

// Kind is the kind of an immediate-buffer event.
type Kind uint8

const (
	KindChar Kind = iota
	KindButton
	KindUnknownKana
	KindUnknownKanji
	KindUnknownLatin
	KindUnknownButton
	KindBubbleStyle
	KindNewline
	KindSpace
	KindTab
	KindNextBubble
	KindUnknownExtCmd
	KindSetColor
	KindStoreColor
	KindLoadColor
	KindExtCmd06
	KindExtCmd0B
	KindExtCmd0C
	KindExtCmd14
	KindExtCmd15
	KindExtCmd1D
	KindTextHOffset
	KindUnknownExtExtCmd
	KindTextVOffset
	KindUnknownTextEffect
	KindEffectShaky
	KindEffectWavy
	KindEffectDarkStar
	KindEffectNoise
	KindEffectShakyAlt
	KindEffectRainbow
	KindEffectStar
	KindEffectWavyAlt
	KindEffectRainbowAlt
	KindEffectFast
	KindEffectQuickPulse
	KindEffectWavePulse
	KindEffectShadow
)

var kindNames = [...]string{
	KindChar:              "Char",
	KindButton:            "Button",
	KindUnknownKana:       "UnknownKana",
	KindUnknownKanji:      "UnknownKanji",
	KindUnknownLatin:      "UnknownLatin",
	KindUnknownButton:     "UnknownButton",
	KindBubbleStyle:       "BubbleStyle",
	KindNewline:           "Newline",
	KindSpace:             "Space",
	KindTab:               "Tab",
	KindNextBubble:        "NextBubble",
	KindUnknownExtCmd:     "UnknownExtCmd",
	KindSetColor:          "SetColor",
	KindStoreColor:        "StoreColor",
	KindLoadColor:         "LoadColor",
	KindExtCmd06:          "ExtCmd06",
	KindExtCmd0B:          "ExtCmd0B",
	KindExtCmd0C:          "ExtCmd0C",
	KindExtCmd14:          "ExtCmd14",
	KindExtCmd15:          "ExtCmd15",
	KindExtCmd1D:          "ExtCmd1D",
	KindTextHOffset:       "TextHOffset",
	KindUnknownExtExtCmd:  "UnknownExtExtCmd",
	KindTextVOffset:       "TextVOffset",
	KindUnknownTextEffect: "UnknownTextEffect",
	KindEffectShaky:       "EffectShaky",
	KindEffectWavy:        "EffectWavy",
	KindEffectDarkStar:    "EffectDarkStar",
	KindEffectNoise:       "EffectNoise",
	KindEffectShakyAlt:    "EffectShakyAlt",
	KindEffectRainbow:     "EffectRainbow",
	KindEffectStar:        "EffectStar",
	KindEffectWavyAlt:     "EffectWavyAlt",
	KindEffectRainbowAlt:  "EffectRainbowAlt",
	KindEffectFast:        "EffectFast",
	KindEffectQuickPulse:  "EffectQuickPulse",
	KindEffectWavePulse:   "EffectWavePulse",
	KindEffectShadow:      "EffectShadow",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsEffect reports whether k is a recognized text effect.
func (k Kind) IsEffect() bool {
	return k >= KindEffectShaky && k <= KindEffectShadow
}

// IsUnknown reports whether k marks a byte the decoder could not resolve.
func (k Kind) IsUnknown() bool {
	switch k {
	case KindUnknownKana, KindUnknownKanji, KindUnknownLatin, KindUnknownButton,
		KindUnknownExtCmd, KindUnknownExtExtCmd, KindUnknownTextEffect:
		return true
	}
	return false
}

// Event is one decoded element of an immediate buffer.
//
// Char is set for KindChar and Button for KindButton. Args holds the
// parameter bytes of commands, and the raw byte for the Unknown kinds.
type Event struct {
	Kind   Kind
	Char   rune
	Button charset.Button
	Args   []byte
}

// Arg returns the i-th parameter byte, or 0 if there is none.
func (e Event) Arg(i int) byte {
	if i < 0 || i >= len(e.Args) {
		return 0
	}
	return e.Args[i]
}

// String returns a debug form such as "UnknownKana(0A)" or
// "ExtCmd06(01, 02)". Events without payload print as their kind name.
func (e Event) String() string {
	switch e.Kind {
	case KindChar:
		return fmt.Sprintf("Char(%q)", e.Char)
	case KindButton:
		return fmt.Sprintf("Button(%s)", e.Button)
	}
	if len(e.Args) == 0 {
		return e.Kind.String()
	}
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = fmt.Sprintf("%02X", a)
	}
	return e.Kind.String() + "(" + strings.Join(args, ", ") + ")"
}
