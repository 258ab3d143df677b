package msdialog

import (
	"errors"
	"reflect"
	"testing"

	"github.com/acolita/msdialog/internal/wire"
	"github.com/acolita/msdialog/pkg/charset"
)

// pack turns a logical byte sequence into stored order.
func pack(logical ...byte) []byte {
	return wire.Pack(logical)
}

func mustBuild(t *testing.T, id byte, params ...byte) ExtCmd {
	t.Helper()
	c, ok := BuildExtCmd(id, params)
	if !ok {
		t.Fatalf("BuildExtCmd(0x%02X, %v) failed", id, params)
	}
	return c
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name    string
		logical []byte
		want    []Event
	}{
		{
			name:    "empty",
			logical: nil,
			want:    nil,
		},
		{
			name:    "kana-run",
			logical: []byte{0x01, 0x02},
			want:    []Event{Dialog("あぃ")},
		},
		{
			name:    "control-bytes-flush-run",
			logical: []byte{0x01, codeSpace, 0x02, codeLinebreak, 0x01, codeBell, 0x01, codeSparkle, 0x01, codeNextBubble},
			want: []Event{
				Dialog("あ"), Space(),
				Dialog("ぃ"), Linebreak(),
				Dialog("あ"), Bell(),
				Dialog("あ"), Sparkly(),
				Dialog("あ"), NextBubble(),
			},
		},
		{
			name:    "table-switch-keeps-run",
			logical: []byte{0x01, codeLatin, 0x21, codeKanji, 0x00, codeKana, 0x01},
			want:    []Event{Dialog("あA一あ")},
		},
		{
			name:    "unmapped-glyph-placeholder",
			logical: []byte{codeLatin, 0x21, 0xEE, codeKanji, 0xEE},
			want:    []Event{Dialog("A{latin:EE}{kanji:EE}")},
		},
		{
			name:    "button-refs",
			logical: []byte{0x01, codeButtons, 0x00, 0x99},
			want: []Event{
				Dialog("あ"),
				Button(ButtonRef{Button: charset.ButtonA, Known: true, Raw: 0x00}),
				Button(ButtonRef{Raw: 0x99}),
			},
		},
		{
			name:    "style-and-delay",
			logical: []byte{codeStyle, 0x07, 0x01, codeDelay, 0x05, 0x02},
			want:    []Event{StyleChange(StyleSignPost), Dialog("あ"), Delay(5), Dialog("ぃ")},
		},
		{
			name:    "invalid-style-codes-are-styles",
			logical: []byte{codeStyle, 0x00, codeStyle, 0x09},
			want:    []Event{StyleChange(StyleInvalid), StyleChange(StyleInvalid2)},
		},
		{
			name: "extended-commands",
			logical: []byte{
				0x01,
				codeExtCmd, ExtCmdFontSize, 0x01, 0x02,
				codeExtCmd, ExtCmdUnk8,
				codeExtCmd, 0x2A,
				codeExtCmd, ExtCmdGraphicsB, 1, 2, 3, 4, 5, 6, 7,
			},
			want: []Event{
				Dialog("あ"),
				Command(ExtCmd{id: ExtCmdFontSize, known: true, argc: 2, args: [7]byte{1, 2}}),
				Command(ExtCmd{id: ExtCmdUnk8, known: true}),
				Command(UnknownExtCmd(0x2A)),
				Command(ExtCmd{id: ExtCmdGraphicsB, known: true, argc: 7, args: [7]byte{1, 2, 3, 4, 5, 6, 7}}),
			},
		},
		{
			name:    "control-codes-as-parameters",
			logical: []byte{codeExtCmd, ExtCmdTextColor, codeEnd, 0x01},
			want:    []Event{Command(ExtCmd{id: ExtCmdTextColor, known: true, argc: 1, args: [7]byte{codeEnd}}), Dialog("あ")},
		},
		{
			name:    "stops-at-end",
			logical: []byte{0x01, codeEnd, 0x02, codeSpace},
			want:    []Event{Dialog("あ"), End()},
		},
		{
			name:    "truncated-parameters",
			logical: []byte{0x01, codeExtCmd, ExtCmdGraphicsB, 1, 2},
			want:    []Event{Dialog("あ")},
		},
		{
			name:    "truncated-after-id",
			logical: []byte{codeExtCmd, ExtCmdFontSize},
			want:    nil,
		},
		{
			name:    "truncated-after-style-code",
			logical: []byte{0x01, codeStyle},
			want:    []Event{Dialog("あ")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Translate(pack(tt.logical...))
			if err != nil {
				t.Fatalf("Translate failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got  %v\nwant %v", got, tt.want)
			}
		})
	}
}

func TestTranslateInvalidStyle(t *testing.T) {
	for _, b := range []byte{0x10, 0x7F, 0xFF} {
		events, err := Translate(pack(0x01, codeStyle, b, 0x02))
		if !errors.Is(err, ErrInvalidStyle) {
			t.Errorf("style 0x%02X: expected ErrInvalidStyle, got %v", b, err)
		}
		if events != nil {
			t.Errorf("style 0x%02X: expected no events, got %v", b, events)
		}
	}
	if _, err := DecodeFullText(pack(codeStyle, 0x10)); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("DecodeFullText: expected ErrInvalidStyle, got %v", err)
	}
}

func TestTranslateReadsStoredOrder(t *testing.T) {
	// logical F4 21 22 23 24 is stored as 23 22 21 F4 24
	got, err := Translate([]byte{0x23, 0x22, 0x21, codeLatin, 0x24})
	if err != nil {
		t.Fatal(err)
	}
	want := []Event{Dialog("ABCD")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTranslateWithCharset(t *testing.T) {
	latin := &charset.Map{}
	latin.Set(0x01, 'x')
	cs := &charset.Set{Latin: latin}
	got, err := Translate(pack(codeLatin, 0x01, 0x02, codeKana, 0x01), WithCharset(cs))
	if err != nil {
		t.Fatal(err)
	}
	want := []Event{Dialog("x{latin:02}{kana:01}")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTranslatorIsSingleUse(t *testing.T) {
	tr := NewTranslator(pack(0x01, 0x02))
	first, err := tr.Translate()
	if err != nil {
		t.Fatal(err)
	}
	second, err := tr.Translate()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second call changed the result: %v vs %v", first, second)
	}
}

func FuzzTranslate(f *testing.F) {
	f.Add([]byte{})
	f.Add(pack(0x01, 0x02, codeSpace, codeEnd))
	f.Add(pack(codeExtCmd, ExtCmdGraphicsB, 1, 2, 3))
	f.Add(pack(codeStyle, 0x07, codeButtons, 0x00, codeNextBubble, 0x01))
	f.Fuzz(func(t *testing.T, data []byte) {
		events, err := Translate(data)
		if err != nil {
			if !errors.Is(err, ErrInvalidStyle) {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}
		_ = Render(events)
		for i, ev := range events {
			if ev.Kind() == KindEnd && i != len(events)-1 {
				t.Fatalf("events after End: %v", events)
			}
			if ev.Kind() == KindDialog && ev.AsText() == "" {
				t.Fatalf("empty Dialog event at %d", i)
			}
		}
	})
}
