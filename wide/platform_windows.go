//go:build windows

package wide

// NewPlatformConverter returns the converter backed by the Windows code
// page API.
func NewPlatformConverter() Converter {
	return NewNativeConverter()
}
