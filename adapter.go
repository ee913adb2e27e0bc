package winutf8io

import (
	"io"
	"os"
	"sync"

	"github.com/wippyai/winutf8io/argv"
	"github.com/wippyai/winutf8io/codepage"
	"github.com/wippyai/winutf8io/console"
	"github.com/wippyai/winutf8io/fsys"
	"github.com/wippyai/winutf8io/wide"
)

// Adapter bundles one encoding mode with the argument, console and file
// operations that share it. Use builder methods to configure it before
// the first call; configuration is frozen on first use.
type Adapter struct {
	conv   wide.Converter
	legacy codepage.ID
	dev    console.Device
	native fsys.Native
	src    argv.Source
	stdout io.Writer
	stderr io.Writer

	initOnce sync.Once
	codec    *wide.Codec
	printer  *console.Printer
	fs       *fsys.FS

	argsOnce sync.Once
	args     []string
	argsErr  error
}

// New creates an Adapter wired to the host platform.
func New() *Adapter {
	return &Adapter{
		legacy: codepage.ACP,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithConverter sets the byte/wide converter
func (a *Adapter) WithConverter(conv wide.Converter) *Adapter {
	a.conv = conv
	return a
}

// WithLegacyCodePage sets the code page used before the switch to UTF-8
func (a *Adapter) WithLegacyCodePage(cp codepage.ID) *Adapter {
	a.legacy = cp
	return a
}

// WithDevice sets the console device
func (a *Adapter) WithDevice(dev console.Device) *Adapter {
	a.dev = dev
	return a
}

// WithNative sets the wide-path filesystem
func (a *Adapter) WithNative(native fsys.Native) *Adapter {
	a.native = native
	return a
}

// WithArgSource sets where Args reads the wide arguments from
func (a *Adapter) WithArgSource(src argv.Source) *Adapter {
	a.src = src
	return a
}

// WithStdout sets the destination of Printf
func (a *Adapter) WithStdout(w io.Writer) *Adapter {
	a.stdout = w
	return a
}

// WithStderr sets the destination of Eprintf
func (a *Adapter) WithStderr(w io.Writer) *Adapter {
	a.stderr = w
	return a
}

func (a *Adapter) init() {
	a.initOnce.Do(func() {
		if a.conv == nil {
			a.conv = wide.NewPlatformConverter()
		}
		if a.dev == nil {
			a.dev = console.NewPlatformDevice()
		}
		if a.native == nil {
			a.native = fsys.NewHost()
		}
		if a.src == nil {
			a.src = argv.NewPlatformSource()
		}
		a.codec = wide.NewCodec(a.conv, wide.NewMode(a.legacy))
		a.printer = console.NewPrinter(console.NewWriter(a.dev, a.codec), a.stdout)
		a.fs = fsys.New(a.codec, a.native)
	})
}

// Codec returns the adapter's codec.
func (a *Adapter) Codec() *wide.Codec {
	a.init()
	return a.codec
}

// Mode returns the adapter's encoding mode.
func (a *Adapter) Mode() *wide.Mode {
	return a.Codec().Mode()
}

// Args returns the process arguments as UTF-8 and switches the adapter to
// UTF-8 mode. Recovery runs once; later calls return the same result.
func (a *Adapter) Args() ([]string, error) {
	a.init()
	a.argsOnce.Do(func() {
		a.args, a.argsErr = argv.Recover(a.src, a.codec)
	})
	if a.argsErr != nil {
		return nil, a.argsErr
	}
	return append([]string(nil), a.args...), nil
}

// ToWide converts s to wide characters under the current mode.
func (a *Adapter) ToWide(s []byte) ([]uint16, error) {
	return a.Codec().ToWide(s)
}

// FromWide converts w to UTF-8.
func (a *Adapter) FromWide(w []uint16) ([]byte, error) {
	return a.Codec().FromWide(w)
}

// Len returns the number of wide characters in s, or its byte length when
// s does not decode.
func (a *Adapter) Len(s string) int {
	return a.Codec().Len(s)
}

// ConsoleWidth returns the console's column count, or 80 without one.
func (a *Adapter) ConsoleWidth() int {
	a.init()
	return console.Width(a.dev)
}

// Printf writes formatted output to standard output.
func (a *Adapter) Printf(format string, args ...any) (int, error) {
	a.init()
	return a.printer.Printf(format, args...)
}

// Eprintf writes formatted output to standard error.
func (a *Adapter) Eprintf(format string, args ...any) (int, error) {
	a.init()
	return a.printer.Vfprintf(a.stderr, format, args)
}

// Fprintf writes formatted output to w.
func (a *Adapter) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	a.init()
	return a.printer.Fprintf(w, format, args...)
}

// Vfprintf writes formatted output to w with a collected argument list.
func (a *Adapter) Vfprintf(w io.Writer, format string, args []any) (int, error) {
	a.init()
	return a.printer.Vfprintf(w, format, args)
}

// Open opens name with a C fopen mode string.
func (a *Adapter) Open(name, mode string) (*os.File, error) {
	a.init()
	return a.fs.Open(name, mode)
}

// Stat returns the status of name.
func (a *Adapter) Stat(name string) (*fsys.Stat, error) {
	a.init()
	return a.fs.Stat(name)
}

// Chmod changes the permissions of name.
func (a *Adapter) Chmod(name string, pmode int) error {
	a.init()
	return a.fs.Chmod(name, pmode)
}

// Utime sets the access and modification times of name. A nil times
// means now.
func (a *Adapter) Utime(name string, times *fsys.Utimbuf) error {
	a.init()
	return a.fs.Utime(name, times)
}

// Unlink removes the file name.
func (a *Adapter) Unlink(name string) error {
	a.init()
	return a.fs.Unlink(name)
}

// Rename moves oldname to newname.
func (a *Adapter) Rename(oldname, newname string) error {
	a.init()
	return a.fs.Rename(oldname, newname)
}
