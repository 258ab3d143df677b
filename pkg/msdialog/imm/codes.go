package imm

// Control bytes of the immediate-buffer grammar.
// These are not the codes used by stored dialog text.
const (
	codeNewline     byte = 0xF0
	codeKana        byte = 0xF1
	codeLatin       byte = 0xF2
	codeKanji       byte = 0xF3
	codeButtons     byte = 0xF4
	codeSpace       byte = 0xF5
	codeTab         byte = 0xF6
	codeBubbleStyle byte = 0xF8 // followed by the style byte
	codeNextBubble  byte = 0xFA
	codeStop        byte = 0xFB
	codeExtCmd      byte = 0xFF // followed by an extended command id
)

// Extended command ids (after codeExtCmd).
const (
	extSetColor   byte = 0x04
	ext06         byte = 0x06
	ext0B         byte = 0x0B
	ext0C         byte = 0x0C
	ext14         byte = 0x14
	ext15         byte = 0x15
	extStoreColor byte = 0x1A
	extLoadColor  byte = 0x1B
	extTextEffect byte = 0x1C // followed by a text effect code
	ext1D         byte = 0x1D
	extHOffset    byte = 0x1E
	extExtCmd     byte = 0xFF // followed by an extended-extended command id
)

// Extended-extended command ids (after codeExtCmd extExtCmd).
const (
	extExtVOffset byte = 0x0B
)

// entry describes how a dispatched code decodes: the event kind and the
// number of parameter bytes that follow it.
type entry struct {
	kind Kind
	argc int
}

var extCmds = map[byte]entry{
	extSetColor:   {KindSetColor, 1},
	ext06:         {KindExtCmd06, 2},
	ext0B:         {KindExtCmd0B, 1},
	ext0C:         {KindExtCmd0C, 1},
	ext14:         {KindExtCmd14, 1},
	ext15:         {KindExtCmd15, 1},
	extStoreColor: {KindStoreColor, 0},
	extLoadColor:  {KindLoadColor, 0},
	ext1D:         {KindExtCmd1D, 1},
	extHOffset:    {KindTextHOffset, 1},
}

var extExtCmds = map[byte]entry{
	extExtVOffset: {KindTextVOffset, 1},
}

var textEffects = map[byte]entry{
	0x00: {KindEffectShaky, 0},
	0x01: {KindEffectWavy, 0},
	0x02: {KindEffectDarkStar, 0},
	0x03: {KindEffectNoise, 1},
	0x05: {KindEffectShakyAlt, 1},
	0x06: {KindEffectRainbow, 0},
	0x07: {KindEffectStar, 1},
	0x08: {KindEffectWavyAlt, 0},
	0x09: {KindEffectRainbowAlt, 0},
	0x0A: {KindEffectFast, 0},
	0x0C: {KindEffectQuickPulse, 0},
	0x0D: {KindEffectWavePulse, 0},
	0x0E: {KindEffectShadow, 0},
}
