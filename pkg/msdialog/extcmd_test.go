package msdialog

import "testing"

func TestParamCount(t *testing.T) {
	tests := []struct {
		id   byte
		want uint8
		ok   bool
	}{
		{ExtCmdTextColor, 1, true},
		{ExtCmdUnk8, 0, true},
		{ExtCmdAutoScroll, 1, true},
		{ExtCmdFontSize, 2, true},
		{ExtCmdFontSizeReset, 0, true},
		{ExtCmdUnk13, 1, true},
		{ExtCmdUnk14, 1, true},
		{ExtCmdGraphicsB, 7, true},
		{ExtCmdSaveTextColor, 0, true},
		{ExtCmdLoadTextColor, 0, true},
		{ExtCmdStartEffect, 1, true},
		{ExtCmdEndEffect, 1, true},
		{ExtCmdUnk29, 1, true},
		{ExtCmdVoice, 1, true},
		{0x00, 0, false},
		{0x2A, 0, false},
		{0xFF, 0, false},
	}
	for _, tt := range tests {
		got, ok := ParamCount(tt.id)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParamCount(0x%02X) = %d, %v; want %d, %v", tt.id, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBuildExtCmd(t *testing.T) {
	c := mustBuild(t, ExtCmdGraphicsB, 1, 2, 3, 4, 5, 6, 7)
	if c.Name() != "GraphicsB" || c.ID() != ExtCmdGraphicsB || c.IsUnknown() {
		t.Errorf("unexpected command %v", c)
	}
	if p7, ok := c.Arg("p7"); !ok || p7 != 7 {
		t.Errorf("Arg(p7) = %d, %v", p7, ok)
	}
	if _, ok := c.Arg("x"); ok {
		t.Errorf("Arg(x) should not exist on GraphicsB")
	}
	args := c.Args()
	args[0] = 0xEE
	if c.Args()[0] != 1 {
		t.Errorf("Args must return a copy")
	}

	if _, ok := BuildExtCmd(ExtCmdFontSize, []byte{1}); ok {
		t.Errorf("too few parameters should fail")
	}
	if _, ok := BuildExtCmd(ExtCmdUnk8, []byte{1}); ok {
		t.Errorf("too many parameters should fail")
	}
	if _, ok := BuildExtCmd(0x2A, nil); ok {
		t.Errorf("unregistered id should fail")
	}
}

func TestExtCmdString(t *testing.T) {
	tests := []struct {
		cmd  ExtCmd
		want string
	}{
		{mustBuild(t, ExtCmdFontSize, 1, 2), "FontSize { x: 1, y: 2 }"},
		{mustBuild(t, ExtCmdTextColor, 200), "TextColor { c: 200 }"},
		{mustBuild(t, ExtCmdUnk8), "Unk8"},
		{UnknownExtCmd(0x2A), "Unknown(0x2A)"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestExtCmdSilent(t *testing.T) {
	for id := range extCmdRegistry {
		n, _ := ParamCount(id)
		c := mustBuild(t, id, make([]byte, n)...)
		if !c.Silent() {
			t.Errorf("%v should be silent", c)
		}
	}
	if UnknownExtCmd(0x2A).Silent() {
		t.Errorf("unknown commands are never silent")
	}
}

func TestExtCmdEffect(t *testing.T) {
	e, ok := mustBuild(t, ExtCmdStartEffect, 0x0A).Effect()
	if !ok || e != EffectFast || !e.Known() {
		t.Errorf("StartEffect effect = %v, %v", e, ok)
	}
	e, ok = mustBuild(t, ExtCmdEndEffect, 0x04).Effect()
	if !ok || e.Known() || e.String() != "UnknownEffect(0x04)" {
		t.Errorf("EndEffect effect = %v, %v", e, ok)
	}
	if _, ok := mustBuild(t, ExtCmdVoice, 0x01).Effect(); ok {
		t.Errorf("Voice has no effect")
	}
}

func TestStyle(t *testing.T) {
	for b := 0; b <= 0x0F; b++ {
		s, ok := ParseStyle(byte(b))
		if !ok || byte(s) != byte(b) {
			t.Errorf("ParseStyle(0x%02X) = %v, %v", b, s, ok)
		}
	}
	if _, ok := ParseStyle(0x10); ok {
		t.Errorf("ParseStyle(0x10) should fail")
	}
	if StyleSignPost.String() != "SignPost" {
		t.Errorf("got %q", StyleSignPost.String())
	}
}
