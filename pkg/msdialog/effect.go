package msdialog

import "fmt"

// TextEffect is the effect id carried by StartEffect and EndEffect.
// Codes without a name are kept as is; Known reports whether a code is named.
type TextEffect uint8

const (
	EffectShaky      TextEffect = 0x00
	EffectWavy       TextEffect = 0x01
	EffectDarkStar   TextEffect = 0x02
	EffectNoise      TextEffect = 0x03
	EffectShakyAlt   TextEffect = 0x05
	EffectRainbow    TextEffect = 0x06
	EffectStar       TextEffect = 0x07
	EffectWavyAlt    TextEffect = 0x08
	EffectRainbowAlt TextEffect = 0x09
	EffectFast       TextEffect = 0x0A // used when Bowser laughs
	EffectQuickPulse TextEffect = 0x0C
	EffectWavePulse  TextEffect = 0x0D
	EffectShadow     TextEffect = 0x0E
)

var effectNames = map[TextEffect]string{
	EffectShaky:      "Shaky",
	EffectWavy:       "Wavy",
	EffectDarkStar:   "DarkStar",
	EffectNoise:      "Noise",
	EffectShakyAlt:   "ShakyAlt",
	EffectRainbow:    "Rainbow",
	EffectStar:       "Star",
	EffectWavyAlt:    "WavyAlt",
	EffectRainbowAlt: "RainbowAlt",
	EffectFast:       "Fast",
	EffectQuickPulse: "QuickPulse",
	EffectWavePulse:  "WavePulse",
	EffectShadow:     "Shadow",
}

// Known reports whether e is a named effect.
func (e TextEffect) Known() bool {
	_, ok := effectNames[e]
	return ok
}

func (e TextEffect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return fmt.Sprintf("UnknownEffect(0x%02X)", uint8(e))
}
