package msdialog

import "fmt"

// Style is the presentation mode of a dialog bubble.
type Style uint8

const (
	StyleInvalid          Style = 0x00
	StyleBubbleRight      Style = 0x01
	StyleBubbleLeft       Style = 0x02
	StyleBubbleA          Style = 0x03
	StyleBubbleB          Style = 0x04
	StyleWhiteBorder      Style = 0x05
	StyleNarrationA       Style = 0x06
	StyleSignPost         Style = 0x07
	StyleBlueMessage      Style = 0x08
	StyleInvalid2         Style = 0x09
	StyleWhiteBubbleA     Style = 0x0A
	StyleWhiteBubbleB     Style = 0x0B
	StyleNoDisplay        Style = 0x0C
	StyleNarrationSilent  Style = 0x0D
	StyleNoDisplayVCenter Style = 0x0E
	StyleNarrationB       Style = 0x0F
)

var styleNames = [...]string{
	StyleInvalid:          "Invalid",
	StyleBubbleRight:      "BubbleRight",
	StyleBubbleLeft:       "BubbleLeft",
	StyleBubbleA:          "BubbleA",
	StyleBubbleB:          "BubbleB",
	StyleWhiteBorder:      "WhiteBorder",
	StyleNarrationA:       "NarrationA",
	StyleSignPost:         "SignPost",
	StyleBlueMessage:      "BlueMessage",
	StyleInvalid2:         "Invalid2",
	StyleWhiteBubbleA:     "WhiteBubbleA",
	StyleWhiteBubbleB:     "WhiteBubbleB",
	StyleNoDisplay:        "NoDisplay",
	StyleNarrationSilent:  "NarrationSilent",
	StyleNoDisplayVCenter: "NoDisplayVCenter",
	StyleNarrationB:       "NarrationB",
}

// ParseStyle converts a style byte. The two "invalid" codes are real
// values seen in the data and parse successfully; bytes above 0x0F do not.
func ParseStyle(b byte) (Style, bool) {
	if int(b) >= len(styleNames) {
		return 0, false
	}
	return Style(b), true
}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(0x%02X)", uint8(s))
}
