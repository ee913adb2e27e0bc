//go:build linux

package fsys

import "syscall"

func fillSys(s *Stat, sys any) {
	st, ok := sys.(*syscall.Stat_t)
	if !ok {
		return
	}
	s.Atime = int64(st.Atim.Sec)
	s.Ctime = int64(st.Ctim.Sec)
	s.Nlink = uint32(st.Nlink)
}
