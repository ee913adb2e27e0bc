package fsys

import (
	"os"
	"time"
	"unicode/utf16"
)

// Host is the Native implementation backed by the operating system. On
// Windows, removal, renaming and attribute changes call the W APIs
// directly; the os package covers the rest.
type Host struct{}

// NewHost returns the operating system filesystem.
func NewHost() *Host {
	return &Host{}
}

// OpenFile opens the named file.
func (Host) OpenFile(name []uint16, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(pathString(name), flag, perm)
}

// Stat returns file information, following symbolic links.
func (Host) Stat(name []uint16) (os.FileInfo, error) {
	return os.Stat(pathString(name))
}

// Chtimes sets access and modification times.
func (Host) Chtimes(name []uint16, atime, mtime time.Time) error {
	return os.Chtimes(pathString(name), atime, mtime)
}

func pathString(name []uint16) string {
	return string(utf16.Decode(name))
}
