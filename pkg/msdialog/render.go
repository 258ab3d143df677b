package msdialog

import (
	"fmt"
	"strings"
)

const (
	ideographicSpace = '\u3000'
	bubbleMarker     = "⭐\n"
)

// Render converts translated events into display text. Rendering stops at
// the first End event.
func Render(events []Event) string {
	var sb strings.Builder
	for _, ev := range events {
		if !writeEvent(&sb, ev) {
			break
		}
	}
	return sb.String()
}

// RenderNthBubble renders only the bubble with the given zero-based index.
// Bubbles are separated by NextBubble events. The result is empty if the
// dialog has fewer bubbles.
func RenderNthBubble(events []Event, index int) string {
	var sb strings.Builder
	current := 0
	for _, ev := range events {
		if current == index {
			if ev.Kind() == KindNextBubble {
				break
			}
			if !writeEvent(&sb, ev) {
				break
			}
		} else if ev.Kind() == KindNextBubble {
			current++
		}
	}
	return sb.String()
}

// Bubbles splits events at NextBubble boundaries. The boundary events are
// not included. Events after an End are dropped.
func Bubbles(events []Event) [][]Event {
	bubbles := [][]Event{nil}
	for _, ev := range events {
		last := len(bubbles) - 1
		switch ev.Kind() {
		case KindNextBubble:
			bubbles = append(bubbles, nil)
		case KindEnd:
			bubbles[last] = append(bubbles[last], ev)
			return bubbles
		default:
			bubbles[last] = append(bubbles[last], ev)
		}
	}
	return bubbles
}

// BubbleStyle returns the style set by the last StyleChange in events, or
// StyleInvalid if there is none.
func BubbleStyle(events []Event) Style {
	style := StyleInvalid
	for _, ev := range events {
		if ev.Kind() == KindStyleChange {
			style = ev.AsStyle()
		}
	}
	return style
}

// writeEvent appends the display form of ev. It returns false when
// rendering must stop.
func writeEvent(sb *strings.Builder, ev Event) bool {
	switch ev.Kind() {
	case KindSpace:
		sb.WriteRune(ideographicSpace)
	case KindDialog:
		sb.WriteString(ev.AsText())
	case KindEnd:
		return false
	case KindLinebreak:
		sb.WriteByte('\n')
	case KindButtonRef:
		ref := ev.AsButtonRef()
		if ref.Known {
			sb.WriteString(ref.Button.Glyph())
		} else {
			fmt.Fprintf(sb, "{buttonref:%02X}", ref.Raw)
		}
	case KindNextBubble:
		sb.WriteString(bubbleMarker)
	case KindExtCmd:
		if c := ev.AsExtCmd(); !c.Silent() {
			fmt.Fprintf(sb, " ( %s ) ", c)
		}
	case KindExtCmdError:
		x := ev.AsExtCmdError()
		fmt.Fprintf(sb, "[extcmd_error] id: 0x%02X, argc: %d, got: %d", x.ID, x.Argc, x.Got)
	case KindStyleChange, KindDelay, KindBell, KindSparkly:
	}
	return true
}
