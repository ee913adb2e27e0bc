//go:build !windows

package argv

// NewPlatformSource returns os.Args. Outside Windows the shell has already
// expanded wildcards and arguments are bytes, not wide strings.
func NewPlatformSource() Source {
	return NewOSSource()
}
