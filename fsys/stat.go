package fsys

import (
	"os"
	"time"
)

// Stat is the file status returned by FS.Stat. Times are seconds since the
// Unix epoch. Ctime is the change time on Unix and the creation time on
// Windows.
type Stat struct {
	Mode  os.FileMode
	Size  int64
	Atime int64
	Mtime int64
	Ctime int64
	Nlink uint32
	IsDir bool
}

// ModTime returns Mtime as a time.Time.
func (s *Stat) ModTime() time.Time {
	return time.Unix(s.Mtime, 0)
}

func newStat(fi os.FileInfo) *Stat {
	mtime := fi.ModTime().Unix()
	s := &Stat{
		Mode:  fi.Mode(),
		Size:  fi.Size(),
		Atime: mtime,
		Mtime: mtime,
		Ctime: mtime,
		Nlink: 1,
		IsDir: fi.IsDir(),
	}
	fillSys(s, fi.Sys())
	return s
}

// Utimbuf carries access and modification times in seconds since the
// Unix epoch.
type Utimbuf struct {
	Actime  int64
	Modtime int64
}

// times maps the buffer onto the native time pair. A nil buffer means now
// for both.
func (u *Utimbuf) times(now time.Time) (atime, mtime time.Time) {
	if u == nil {
		return now, now
	}
	return time.Unix(u.Actime, 0), time.Unix(u.Modtime, 0)
}
