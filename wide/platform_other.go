//go:build !windows

package wide

import "github.com/wippyai/winutf8io/codepage"

// NewPlatformConverter returns a TextConverter whose system code page is
// codepage.System.
func NewPlatformConverter() Converter {
	return NewTextConverter(codepage.System())
}
