//go:build windows

package console

import (
	"io"
	"os"

	"golang.org/x/sys/windows"
)

// ConsoleDevice is the Windows Device. Only the process's standard output
// and standard error count as consoles, and only while they are attached
// to a character device that accepts console calls.
type ConsoleDevice struct {
	out *os.File
}

// NewConsoleDevice returns a ConsoleDevice whose width is measured on out.
func NewConsoleDevice(out *os.File) *ConsoleDevice {
	return &ConsoleDevice{out: out}
}

// NewPlatformDevice returns the Device for the host platform, measuring
// width on standard output.
func NewPlatformDevice() Device {
	return NewConsoleDevice(os.Stdout)
}

// IsConsole reports whether w is a standard stream attached to a console.
// Standard handles are looked up on every call so redirections made at
// runtime are honored.
func (d *ConsoleDevice) IsConsole(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	h := windows.Handle(f.Fd())
	if h == windows.InvalidHandle || !isStdHandle(h) {
		return false
	}
	return isConsoleHandle(h)
}

// WriteConsole writes text with WriteConsoleW, retrying short writes.
func (d *ConsoleDevice) WriteConsole(w io.Writer, text []uint16) (int, error) {
	f, ok := w.(fder)
	if !ok {
		return 0, windows.ERROR_INVALID_HANDLE
	}
	h := windows.Handle(f.Fd())

	total := 0
	for total < len(text) {
		var written uint32
		if err := windows.WriteConsole(h, &text[total], uint32(len(text)-total), &written, nil); err != nil {
			return total, err
		}
		if written == 0 {
			return total, io.ErrShortWrite
		}
		total += int(written)
	}
	return total, nil
}

// Width returns the console screen buffer's column count.
func (d *ConsoleDevice) Width() (int, bool) {
	if d.out == nil {
		return 0, false
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(d.out.Fd()), &info); err != nil {
		return 0, false
	}
	return int(info.Size.X), true
}

func isStdHandle(h windows.Handle) bool {
	for _, id := range []uint32{windows.STD_OUTPUT_HANDLE, windows.STD_ERROR_HANDLE} {
		if std, err := windows.GetStdHandle(id); err == nil && std == h {
			return true
		}
	}
	return false
}

// isConsoleHandle requires a character device that also answers
// GetConsoleMode, which excludes NUL and serial ports.
func isConsoleHandle(h windows.Handle) bool {
	t, err := windows.GetFileType(h)
	if err != nil || t != windows.FILE_TYPE_CHAR {
		return false
	}
	var mode uint32
	return windows.GetConsoleMode(h, &mode) == nil
}
