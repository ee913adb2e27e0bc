package winutf8io

import (
	"io"
	"os"
	"sync"

	"github.com/wippyai/winutf8io/fsys"
)

// Utimbuf carries access and modification times for Utime.
type Utimbuf = fsys.Utimbuf

// FileStat is the file status returned by Stat.
type FileStat = fsys.Stat

var defaultAdapter = sync.OnceValue(New)

// Default returns the process-wide Adapter used by the package-level
// functions.
func Default() *Adapter {
	return defaultAdapter()
}

// Args returns the process arguments as UTF-8 using the default adapter.
func Args() ([]string, error) { return Default().Args() }

// ToWide converts s to wide characters using the default adapter.
func ToWide(s []byte) ([]uint16, error) { return Default().ToWide(s) }

// FromWide converts w to UTF-8 using the default adapter.
func FromWide(w []uint16) ([]byte, error) { return Default().FromWide(w) }

// Len returns the wide character count of s using the default adapter.
func Len(s string) int { return Default().Len(s) }

// ConsoleWidth returns the console width using the default adapter.
func ConsoleWidth() int { return Default().ConsoleWidth() }

// Printf writes formatted output to standard output.
func Printf(format string, args ...any) (int, error) {
	return Default().Printf(format, args...)
}

// Eprintf writes formatted output to standard error.
func Eprintf(format string, args ...any) (int, error) {
	return Default().Eprintf(format, args...)
}

// Fprintf writes formatted output to w.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return Default().Fprintf(w, format, args...)
}

// Vfprintf writes formatted output to w with a collected argument list.
func Vfprintf(w io.Writer, format string, args []any) (int, error) {
	return Default().Vfprintf(w, format, args)
}

// Open opens name with a C fopen mode string.
func Open(name, mode string) (*os.File, error) { return Default().Open(name, mode) }

// Stat returns the status of name.
func Stat(name string) (*FileStat, error) { return Default().Stat(name) }

// Chmod changes the permissions of name.
func Chmod(name string, pmode int) error { return Default().Chmod(name, pmode) }

// Utime sets the access and modification times of name.
func Utime(name string, times *Utimbuf) error { return Default().Utime(name, times) }

// Unlink removes the file name.
func Unlink(name string) error { return Default().Unlink(name) }

// Rename moves oldname to newname.
func Rename(oldname, newname string) error { return Default().Rename(oldname, newname) }
