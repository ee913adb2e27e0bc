package fsys

import (
	"os"
	"time"
)

// Native is the wide-character filesystem. Paths are UTF-16 without a
// terminator.
type Native interface {
	OpenFile(name []uint16, flag int, perm os.FileMode) (*os.File, error)
	Stat(name []uint16) (os.FileInfo, error)
	Chmod(name []uint16, mode os.FileMode) error
	Chtimes(name []uint16, atime, mtime time.Time) error
	Remove(name []uint16) error
	Rename(oldname, newname []uint16) error
}
