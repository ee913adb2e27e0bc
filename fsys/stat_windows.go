//go:build windows

package fsys

import "syscall"

func fillSys(s *Stat, sys any) {
	d, ok := sys.(*syscall.Win32FileAttributeData)
	if !ok {
		return
	}
	s.Atime = d.LastAccessTime.Nanoseconds() / 1e9
	s.Ctime = d.CreationTime.Nanoseconds() / 1e9
}
