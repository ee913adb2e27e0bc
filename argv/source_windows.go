//go:build windows

package argv

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"

	"github.com/wippyai/winutf8io/errors"
)

var (
	modmsvcrt         = windows.NewLazySystemDLL("msvcrt.dll")
	procWgetmainargs  = modmsvcrt.NewProc("__wgetmainargs")
	wgetmainargsProbe sync.Once
	wgetmainargsErr   error
)

// probeWgetmainargs resolves __wgetmainargs once per process.
func probeWgetmainargs() error {
	wgetmainargsProbe.Do(func() {
		if err := procWgetmainargs.Find(); err != nil {
			wgetmainargsErr = errors.Unavailable(errors.PhaseArgv, "msvcrt.dll!__wgetmainargs", err)
		}
		Logger().Debug("probed __wgetmainargs", zap.Bool("available", wgetmainargsErr == nil))
	})
	return wgetmainargsErr
}

// NativeSource reads the arguments msvcrt parsed from the wide command
// line, with wildcard expansion enabled.
type NativeSource struct{}

// NewNativeSource returns the msvcrt backed source.
func NewNativeSource() *NativeSource {
	return &NativeSource{}
}

// startupInfo mirrors msvcrt's _startupinfo.
type startupInfo struct {
	newMode int32
}

// WideArgs calls __wgetmainargs and copies the vector it returns.
func (NativeSource) WideArgs() ([][]uint16, error) {
	if err := probeWgetmainargs(); err != nil {
		return nil, err
	}

	var (
		argc int32
		argv **uint16
		envp **uint16
		si   startupInfo
	)
	const doWildcard = 1
	r1, _, callErr := procWgetmainargs.Call(
		uintptr(unsafe.Pointer(&argc)),
		uintptr(unsafe.Pointer(&argv)),
		uintptr(unsafe.Pointer(&envp)),
		doWildcard,
		uintptr(unsafe.Pointer(&si)))
	if int32(r1) != 0 || argv == nil {
		return nil, errors.Wrap(errors.PhaseArgv, errors.KindUnavailable, callErr, "__wgetmainargs failed")
	}

	ptrs := unsafe.Slice(argv, argc)
	out := make([][]uint16, argc)
	for i, p := range ptrs {
		out[i] = copyWide(p)
	}
	return out, nil
}

// CommandLineSource splits GetCommandLineW with CommandLineToArgvW. It
// does not expand wildcards; wrap it with Expand for that.
type CommandLineSource struct{}

// NewCommandLineSource returns the shell32 backed source.
func NewCommandLineSource() *CommandLineSource {
	return &CommandLineSource{}
}

// WideArgs parses the process command line.
func (CommandLineSource) WideArgs() ([][]uint16, error) {
	var argc int32
	argv, err := windows.CommandLineToArgv(windows.GetCommandLine(), &argc)
	if err != nil {
		return nil, errors.Unavailable(errors.PhaseArgv, "CommandLineToArgvW", err)
	}
	defer windows.LocalFree(windows.Handle(unsafe.Pointer(argv)))

	out := make([][]uint16, argc)
	for i := range out {
		out[i] = copyWide(&argv[i][0])
	}
	return out, nil
}

// NewPlatformSource returns the msvcrt source, falling back to the
// command line source with wildcard expansion when the probe fails.
func NewPlatformSource() Source {
	return Chain(NewNativeSource(), Expand(NewCommandLineSource()))
}

// copyWide copies a NUL terminated wide string owned by the C runtime.
func copyWide(p *uint16) []uint16 {
	if p == nil {
		return []uint16{}
	}
	n := 0
	for *(*uint16)(unsafe.Add(unsafe.Pointer(p), n*2)) != 0 {
		n++
	}
	return append(make([]uint16, 0, n), unsafe.Slice(p, n)...)
}
