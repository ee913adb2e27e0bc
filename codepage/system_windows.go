//go:build windows

package codepage

import "golang.org/x/sys/windows"

// System returns the active ANSI code page of the process.
func System() ID {
	return ID(windows.GetACP())
}
