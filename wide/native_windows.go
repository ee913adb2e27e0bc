//go:build windows

package wide

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/wippyai/winutf8io/codepage"
	"github.com/wippyai/winutf8io/errors"
)

const (
	mbErrInvalidChars = 0x00000008
	wcErrInvalidChars = 0x00000080
)

var (
	modkernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procWideCharToMultiByte = modkernel32.NewProc("WideCharToMultiByte")
)

// NativeConverter implements Converter with MultiByteToWideChar and
// WideCharToMultiByte.
type NativeConverter struct{}

// NewNativeConverter returns the Windows converter.
func NewNativeConverter() *NativeConverter {
	return &NativeConverter{}
}

// SystemCodePage returns GetACP().
func (NativeConverter) SystemCodePage() codepage.ID {
	return codepage.System()
}

// Decode converts src from cp to UTF-16, rejecting invalid input.
func (NativeConverter) Decode(cp codepage.ID, src []byte) ([]uint16, error) {
	if len(src) == 0 {
		return []uint16{}, nil
	}
	flags := uint32(mbErrInvalidChars)
	if !acceptsErrorFlag(cp) {
		flags = 0
	}

	n, err := windows.MultiByteToWideChar(uint32(cp), flags, &src[0], int32(len(src)), nil, 0)
	if n == 0 {
		return nil, decodeFailure(cp, src, err)
	}
	buf := make([]uint16, n)
	n, err = windows.MultiByteToWideChar(uint32(cp), flags, &src[0], int32(len(src)), &buf[0], n)
	if n == 0 {
		return nil, decodeFailure(cp, src, err)
	}
	return buf[:n], nil
}

// Encode converts UTF-16 src to cp. Characters without a mapping in cp
// are an error rather than being replaced by the default character.
func (NativeConverter) Encode(cp codepage.ID, src []uint16) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	if err := procWideCharToMultiByte.Find(); err != nil {
		return nil, errors.Unavailable(errors.PhaseEncode, "WideCharToMultiByte", err)
	}

	var flags uintptr
	var usedDefault int32
	usedDefaultPtr := uintptr(unsafe.Pointer(&usedDefault))
	if cp == codepage.UTF8 || cp == codepage.GB18030 {
		// lpUsedDefaultChar must be NULL for these code pages.
		flags = wcErrInvalidChars
		usedDefaultPtr = 0
	}

	r1, _, err := procWideCharToMultiByte.Call(
		uintptr(cp), flags,
		uintptr(unsafe.Pointer(&src[0])), uintptr(len(src)),
		0, 0, 0, usedDefaultPtr)
	if r1 == 0 {
		return nil, encodeFailure(cp, err)
	}
	buf := make([]byte, r1)
	r1, _, err = procWideCharToMultiByte.Call(
		uintptr(cp), flags,
		uintptr(unsafe.Pointer(&src[0])), uintptr(len(src)),
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)),
		0, usedDefaultPtr)
	if r1 == 0 {
		return nil, encodeFailure(cp, err)
	}
	if usedDefault != 0 {
		return nil, errors.New(errors.PhaseEncode, errors.KindIllegalSequence).
			CodePage(cp.String()).
			Detail("character has no mapping").
			Build()
	}
	return buf[:r1], nil
}

// acceptsErrorFlag reports whether MB_ERR_INVALID_CHARS is allowed for cp.
// The stateful and ISO-2022 code pages reject any flags.
func acceptsErrorFlag(cp codepage.ID) bool {
	switch {
	case cp == 42, cp == 65000:
		return false
	case cp >= 50220 && cp <= 50229:
		return false
	case cp >= 57002 && cp <= 57011:
		return false
	}
	return true
}

func decodeFailure(cp codepage.ID, src []byte, err error) error {
	if err == windows.ERROR_NO_UNICODE_TRANSLATION {
		return errors.IllegalSequence(errors.PhaseDecode, cp.String(), src)
	}
	return errors.New(errors.PhaseDecode, errors.KindIllegalSequence).
		CodePage(cp.String()).
		Cause(err).
		Build()
}

func encodeFailure(cp codepage.ID, err error) error {
	kind := errors.KindIllegalSequence
	if err != windows.ERROR_NO_UNICODE_TRANSLATION {
		kind = errors.KindIO
	}
	return errors.New(errors.PhaseEncode, kind).
		CodePage(cp.String()).
		Cause(err).
		Build()
}
