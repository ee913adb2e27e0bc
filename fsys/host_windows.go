//go:build windows

package fsys

import (
	"os"

	"golang.org/x/sys/windows"
)

// Chmod sets or clears the read-only attribute. The file stays writable
// when mode carries the owner write bit.
func (Host) Chmod(name []uint16, mode os.FileMode) error {
	p := terminated(name)
	attrs, err := windows.GetFileAttributes(&p[0])
	if err != nil {
		return &os.PathError{Op: "chmod", Path: pathString(name), Err: err}
	}
	if mode&0o200 != 0 {
		attrs &^= windows.FILE_ATTRIBUTE_READONLY
	} else {
		attrs |= windows.FILE_ATTRIBUTE_READONLY
	}
	if err := windows.SetFileAttributes(&p[0], attrs); err != nil {
		return &os.PathError{Op: "chmod", Path: pathString(name), Err: err}
	}
	return nil
}

// Remove deletes a file. Directories are refused, as with unlink.
func (Host) Remove(name []uint16) error {
	p := terminated(name)
	if err := windows.DeleteFile(&p[0]); err != nil {
		return &os.PathError{Op: "unlink", Path: pathString(name), Err: err}
	}
	return nil
}

// Rename moves oldname to newname without replacing an existing target.
func (Host) Rename(oldname, newname []uint16) error {
	from, to := terminated(oldname), terminated(newname)
	if err := windows.MoveFileEx(&from[0], &to[0], 0); err != nil {
		return &os.LinkError{Op: "rename", Old: pathString(oldname), New: pathString(newname), Err: err}
	}
	return nil
}

func terminated(name []uint16) []uint16 {
	p := make([]uint16, len(name)+1)
	copy(p, name)
	return p
}
