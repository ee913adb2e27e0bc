//go:build !windows

package console

import "os"

// NewPlatformDevice returns the Device for the host platform, measuring
// width on standard output.
func NewPlatformDevice() Device {
	return NewTermDevice(os.Stdout)
}
