//go:build unix

package fsys

import (
	"os"
	"syscall"
)

// Chmod changes the permission bits.
func (Host) Chmod(name []uint16, mode os.FileMode) error {
	return os.Chmod(pathString(name), mode)
}

// Remove unlinks a file. Directories are refused.
func (Host) Remove(name []uint16) error {
	path := pathString(name)
	if err := syscall.Unlink(path); err != nil {
		return &os.PathError{Op: "unlink", Path: path, Err: err}
	}
	return nil
}

// Rename moves oldname to newname.
func (Host) Rename(oldname, newname []uint16) error {
	return os.Rename(pathString(oldname), pathString(newname))
}
