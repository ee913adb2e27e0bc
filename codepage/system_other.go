//go:build !windows

package codepage

import "os"

// DefaultSystem is the code page assumed when the host has no ANSI code
// page and EnvVar is unset or invalid.
const DefaultSystem = Windows1252

// System returns the code page that stands in for the Windows ANSI code
// page: EnvVar when it parses to a concrete code page, DefaultSystem
// otherwise.
func System() ID {
	if v := os.Getenv(EnvVar); v != "" {
		if id, err := Parse(v); err == nil && Known(id) {
			return id
		}
	}
	return DefaultSystem
}
