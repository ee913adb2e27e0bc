package console

import (
	"io"
	"os"
	"unicode/utf16"

	"golang.org/x/term"
)

// TermDevice is the portable Device. A terminal already speaks UTF-8, so
// its console path writes UTF-8 to the descriptor.
type TermDevice struct {
	out *os.File
}

// NewTermDevice returns a TermDevice whose width is measured on out.
func NewTermDevice(out *os.File) *TermDevice {
	return &TermDevice{out: out}
}

// IsConsole reports whether w is a terminal.
func (d *TermDevice) IsConsole(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// WriteConsole writes text to w as UTF-8.
func (d *TermDevice) WriteConsole(w io.Writer, text []uint16) (int, error) {
	if _, err := io.WriteString(w, string(utf16.Decode(text))); err != nil {
		return 0, err
	}
	return len(text), nil
}

// Width returns the terminal's column count.
func (d *TermDevice) Width() (int, bool) {
	if d.out == nil {
		return 0, false
	}
	w, _, err := term.GetSize(int(d.out.Fd()))
	if err != nil {
		return 0, false
	}
	return w, true
}
