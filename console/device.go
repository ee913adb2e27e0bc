package console

import (
	"io"
)

// Device answers console questions about output destinations. The
// Windows implementation talks to the console API; the portable one uses
// golang.org/x/term.
type Device interface {
	// IsConsole reports whether w is an interactive console. It is asked
	// on every write and must not cache across redirections.
	IsConsole(w io.Writer) bool

	// WriteConsole writes wide characters to the console behind w and
	// returns the number of characters written.
	WriteConsole(w io.Writer, text []uint16) (int, error)

	// Width returns the column count of the attached console, or false
	// when there is none.
	Width() (int, bool)
}

// fder is satisfied by *os.File and anything else exposing a descriptor.
type fder interface {
	Fd() uintptr
}
