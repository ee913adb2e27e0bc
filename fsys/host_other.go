//go:build !unix && !windows

package fsys

import "os"

func (Host) Chmod(name []uint16, mode os.FileMode) error {
	return os.Chmod(pathString(name), mode)
}

func (Host) Remove(name []uint16) error {
	return os.Remove(pathString(name))
}

func (Host) Rename(oldname, newname []uint16) error {
	return os.Rename(pathString(oldname), pathString(newname))
}
