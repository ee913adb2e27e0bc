package wide

import (
	"errors"
	"testing"
	"unicode/utf16"

	"github.com/wippyai/winutf8io/codepage"
	wrerrors "github.com/wippyai/winutf8io/errors"
)

func newTestCodec(system codepage.ID) *Codec {
	return NewCodec(NewTextConverter(system), NewMode(codepage.ACP))
}

func TestCodec_NilPropagation(t *testing.T) {
	c := newTestCodec(codepage.Windows1252)

	w, err := c.ToWide(nil)
	if w != nil {
		t.Errorf("ToWide(nil) = %v, want nil", w)
	}
	if !errors.Is(err, ErrNoResult) {
		t.Errorf("ToWide(nil) err = %v, want ErrNoResult", err)
	}

	b, err := c.FromWide(nil)
	if b != nil {
		t.Errorf("FromWide(nil) = %v, want nil", b)
	}
	if !errors.Is(err, ErrNoResult) {
		t.Errorf("FromWide(nil) err = %v, want ErrNoResult", err)
	}

	s, err := c.FromWideString(nil)
	if s != "" || !errors.Is(err, ErrNoResult) {
		t.Errorf("FromWideString(nil) = %q, %v", s, err)
	}
}

func TestCodec_EmptyIsNotAbsent(t *testing.T) {
	c := newTestCodec(codepage.Windows1252)

	w, err := c.ToWideString("")
	if err != nil {
		t.Fatalf("ToWideString(\"\") error: %v", err)
	}
	if w == nil || len(w) != 0 {
		t.Errorf("ToWideString(\"\") = %v, want empty non-nil", w)
	}
}

func TestCodec_RoundTripLegacy(t *testing.T) {
	c := newTestCodec(codepage.Windows1252)
	conv := c.Converter()

	for b := 0; b < 256; b++ {
		in := []byte{byte(b)}
		w, err := c.ToWide(in)
		if err != nil {
			continue
		}
		back, err := conv.Encode(codepage.Windows1252, w)
		if err != nil {
			t.Errorf("byte 0x%02x: encode back: %v", b, err)
			continue
		}
		if back[0] != byte(b) || len(back) != 1 {
			t.Errorf("byte 0x%02x: round trip gave %x", b, back)
		}
	}
}

func TestCodec_RoundTripUTF8(t *testing.T) {
	c := newTestCodec(codepage.Windows1252)
	c.Mode().SwitchToUTF8()

	for _, s := range []string{"prog.exe", "héllo.txt", "Привет", "日本語", "𝄞 clef", ""} {
		w, err := c.ToWideString(s)
		if err != nil {
			t.Fatalf("ToWideString(%q): %v", s, err)
		}
		got, err := c.FromWideString(w)
		if err != nil {
			t.Fatalf("FromWideString(%q): %v", s, err)
		}
		if got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestCodec_FromWideAlwaysUTF8(t *testing.T) {
	c := newTestCodec(codepage.Windows1252)
	got, err := c.FromWideString(utf16.Encode([]rune("héllo")))
	if err != nil {
		t.Fatalf("FromWideString: %v", err)
	}
	if got != "héllo" {
		t.Errorf("FromWideString in legacy mode = %q, want UTF-8 héllo", got)
	}
}

func TestCodec_FallbackToSystemCodePage(t *testing.T) {
	c := newTestCodec(codepage.Windows1252)
	c.Mode().SwitchToUTF8()

	w, err := c.ToWide([]byte("h\xe9llo"))
	if err != nil {
		t.Fatalf("ToWide fallback failed: %v", err)
	}
	if got := string(utf16.Decode(w)); got != "héllo" {
		t.Errorf("fallback decode = %q, want héllo", got)
	}
}

func TestCodec_FallbackExhausted(t *testing.T) {
	c := newTestCodec(codepage.UTF8)
	c.Mode().SwitchToUTF8()

	w, err := c.ToWide([]byte("h\xe9llo"))
	if w != nil {
		t.Errorf("ToWide = %v, want nil", w)
	}
	if !errors.Is(err, ErrNoResult) {
		t.Errorf("err = %v, want ErrNoResult", err)
	}
	if !errors.Is(err, &wrerrors.Error{Kind: wrerrors.KindInvalidUTF8}) {
		t.Errorf("err = %v, want first attempt's cause kept", err)
	}
}

func TestCodec_ModeSwitch(t *testing.T) {
	c := newTestCodec(codepage.Windows1252)

	// Legacy: raw code page bytes decode directly.
	w, err := c.ToWide([]byte{0xe9})
	if err != nil || string(utf16.Decode(w)) != "é" {
		t.Fatalf("legacy decode = %q, %v", string(utf16.Decode(w)), err)
	}
	// Legacy: UTF-8 bytes are taken as two code page characters.
	w, _ = c.ToWideString("é")
	if string(utf16.Decode(w)) != "Ã©" {
		t.Errorf("legacy decode of UTF-8 bytes = %q, want Ã©", string(utf16.Decode(w)))
	}

	c.Mode().SwitchToUTF8()

	w, err = c.ToWideString("é")
	if err != nil || string(utf16.Decode(w)) != "é" {
		t.Errorf("utf-8 decode = %q, %v", string(utf16.Decode(w)), err)
	}
	w, err = c.ToWide([]byte{0xe9})
	if err != nil || string(utf16.Decode(w)) != "é" {
		t.Errorf("utf-8 mode fallback = %q, %v", string(utf16.Decode(w)), err)
	}
}

func TestCodec_FromWideUnpairedSurrogate(t *testing.T) {
	c := newTestCodec(codepage.Windows1252)
	_, err := c.FromWide([]uint16{'a', 0xd800})
	if !errors.Is(err, ErrNoResult) {
		t.Errorf("err = %v, want ErrNoResult", err)
	}
}

func TestCodec_Len(t *testing.T) {
	tests := []struct {
		name string
		utf8 bool
		in   string
		want int
	}{
		{"legacy ascii", false, "hello", 5},
		{"legacy reads utf-8 bytes one per byte", false, "héllo", 6},
		{"utf-8 characters", true, "héllo", 5},
		{"utf-8 cjk", true, "日本語", 3},
		{"surrogate pair counts two", true, "𝄞", 2},
		{"invalid falls back to bytes", true, "ab\xff", 3},
		{"invalid multibyte falls back to bytes", true, "\xe2\x9c", 2},
		{"empty", true, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCodec(codepage.Windows1252)
			if tt.utf8 {
				c.Mode().SwitchToUTF8()
			}
			if got := c.Len(tt.in); got != tt.want {
				t.Errorf("Len(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewCodec_DefaultMode(t *testing.T) {
	c := NewCodec(NewTextConverter(codepage.Windows1252), nil)
	if c.Mode() == nil || c.Mode().CodePage() != codepage.ACP {
		t.Error("nil mode should default to legacy ACP")
	}
}
