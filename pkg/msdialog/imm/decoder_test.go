package imm

import (
	"reflect"
	"testing"

	"github.com/acolita/msdialog/internal/wire"
	"github.com/acolita/msdialog/pkg/charset"
)

func decode(logical ...byte) []Event {
	return Decode(wire.Pack(logical), nil)
}

func TestDecode(t *testing.T) {
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
			name:    "kana-by-default",
			logical: []byte{0x01, 0x02},
			want: []Event{
				{Kind: KindChar, Char: 'あ'},
				{Kind: KindChar, Char: 'ぃ'},
			},
		},
		{
			name:    "table-switches",
			logical: []byte{codeLatin, 0x21, codeKanji, 0x00, codeButtons, 0x01, codeKana, 0x01},
			want: []Event{
				{Kind: KindChar, Char: 'A'},
				{Kind: KindChar, Char: '一'},
				{Kind: KindButton, Button: charset.ButtonB},
				{Kind: KindChar, Char: 'あ'},
			},
		},
		{
			name:    "unmapped-per-table",
			logical: []byte{0xEE, codeKanji, 0xEE, codeLatin, 0xEE, codeButtons, 0xEE},
			want: []Event{
				{Kind: KindUnknownKana, Args: []byte{0xEE}},
				{Kind: KindUnknownKanji, Args: []byte{0xEE}},
				{Kind: KindUnknownLatin, Args: []byte{0xEE}},
				{Kind: KindUnknownButton, Args: []byte{0xEE}},
			},
		},
		{
			name:    "layout-codes",
			logical: []byte{codeBubbleStyle, 0x07, codeSpace, codeTab, codeNewline, codeNextBubble},
			want: []Event{
				{Kind: KindBubbleStyle, Args: []byte{0x07}},
				{Kind: KindSpace},
				{Kind: KindTab},
				{Kind: KindNewline},
				{Kind: KindNextBubble},
			},
		},
		{
			name:    "stop-code",
			logical: []byte{0x01, codeStop, 0x02, 0x03},
			want:    []Event{{Kind: KindChar, Char: 'あ'}},
		},
		{
			name: "extended-commands",
			logical: []byte{
				codeExtCmd, extSetColor, 0x03,
				codeExtCmd, ext06, 0x01, 0x02,
				codeExtCmd, extStoreColor,
				codeExtCmd, extLoadColor,
				codeExtCmd, extHOffset, 0x10,
				codeExtCmd, 0x99,
			},
			want: []Event{
				{Kind: KindSetColor, Args: []byte{0x03}},
				{Kind: KindExtCmd06, Args: []byte{0x01, 0x02}},
				{Kind: KindStoreColor},
				{Kind: KindLoadColor},
				{Kind: KindTextHOffset, Args: []byte{0x10}},
				{Kind: KindUnknownExtCmd, Args: []byte{0x99}},
			},
		},
		{
			name: "extended-extended-commands",
			logical: []byte{
				codeExtCmd, extExtCmd, extExtVOffset, 0x20,
				codeExtCmd, extExtCmd, 0x01,
			},
			want: []Event{
				{Kind: KindTextVOffset, Args: []byte{0x20}},
				{Kind: KindUnknownExtExtCmd, Args: []byte{0x01}},
			},
		},
		{
			name: "text-effects",
			logical: []byte{
				codeExtCmd, extTextEffect, 0x00,
				codeExtCmd, extTextEffect, 0x03, 0x09,
				codeExtCmd, extTextEffect, 0x0E,
				codeExtCmd, extTextEffect, 0x04,
			},
			want: []Event{
				{Kind: KindEffectShaky},
				{Kind: KindEffectNoise, Args: []byte{0x09}},
				{Kind: KindEffectShadow},
				{Kind: KindUnknownTextEffect, Args: []byte{0x04}},
			},
		},
		{
			name:    "truncated-parameter",
			logical: []byte{0x01, codeExtCmd, ext06, 0x01},
			want:    []Event{{Kind: KindChar, Char: 'あ'}},
		},
		{
			name:    "truncated-style",
			logical: []byte{0x01, codeBubbleStyle},
			want:    []Event{{Kind: KindChar, Char: 'あ'}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decode(tt.logical...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got  %v\nwant %v", got, tt.want)
			}
		})
	}
}

func TestDecodeUsesGroupReversal(t *testing.T) {
	// stored order of logical {F2 21 22 23}
	got := Decode([]byte{0x23, 0x22, 0x21, codeLatin}, nil)
	want := []Event{
		{Kind: KindChar, Char: 'A'},
		{Kind: KindChar, Char: 'B'},
		{Kind: KindChar, Char: 'C'},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecodeCustomCharset(t *testing.T) {
	kana := &charset.Map{}
	kana.Set(0x01, 'ア')
	got := Decode(wire.Pack([]byte{0x01, 0x02}), &charset.Set{Kana: kana})
	want := []Event{
		{Kind: KindChar, Char: 'ア'},
		{Kind: KindUnknownKana, Args: []byte{0x02}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Kind: KindUnknownKana, Args: []byte{0x0A}}, "UnknownKana(0A)"},
		{Event{Kind: KindExtCmd06, Args: []byte{0x01, 0x02}}, "ExtCmd06(01, 02)"},
		{Event{Kind: KindNewline}, "Newline"},
		{Event{Kind: KindChar, Char: 'a'}, "Char('a')"},
		{Event{Kind: KindButton, Button: charset.ButtonZ}, "Button(Z)"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindClasses(t *testing.T) {
	for _, sp := range textEffects {
		if !sp.kind.IsEffect() || sp.kind.IsUnknown() {
			t.Errorf("%v should be a known effect", sp.kind)
		}
	}
	for _, k := range []Kind{KindUnknownKana, KindUnknownExtCmd, KindUnknownTextEffect} {
		if !k.IsUnknown() || k.IsEffect() {
			t.Errorf("%v should be unknown", k)
		}
	}
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x01, 0x02, 0x03, 0x04})
	f.Add(wire.Pack([]byte{codeExtCmd, extTextEffect, 0x03}))
	f.Add(wire.Pack([]byte{codeExtCmd, extExtCmd, extExtVOffset, 0x20, codeStop}))
	f.Fuzz(func(t *testing.T, data []byte) {
		for _, ev := range Decode(data, nil) {
			_ = ev.String()
		}
	})
}
