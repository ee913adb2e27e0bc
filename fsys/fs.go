package fsys

import (
	"os"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/winutf8io/errors"
	"github.com/wippyai/winutf8io/wide"
)

// FS performs file operations on byte-string paths.
type FS struct {
	codec  *wide.Codec
	native Native
	now    func() time.Time
}

// New creates an FS converting paths with codec and calling native.
func New(codec *wide.Codec, native Native) *FS {
	return &FS{codec: codec, native: native, now: time.Now}
}

// Native returns the underlying filesystem.
func (f *FS) Native() Native {
	return f.native
}

// path converts name for a native call. Names that do not decode, or that
// contain NUL, are rejected.
func (f *FS) path(op, name string) ([]uint16, error) {
	w, err := f.codec.ToWideString(name)
	if err != nil {
		Logger().Debug("path conversion failed", zap.String("op", op), zap.Error(err))
		return nil, errors.InvalidPath(op, name, err)
	}
	if slices.Contains(w, 0) {
		return nil, errors.InvalidPath(op, name, os.ErrInvalid)
	}
	return w, nil
}

// Open opens name with a C fopen mode such as "r", "w+" or "ab".
func (f *FS) Open(name, mode string) (*os.File, error) {
	w, err := f.path("open", name)
	if err != nil {
		return nil, err
	}
	if _, err := f.codec.ToWideString(mode); err != nil {
		return nil, errors.Wrap(errors.PhaseFS, errors.KindInvalidInput, err, "open: cannot convert mode")
	}
	flag, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	return f.native.OpenFile(w, flag, 0o666)
}

// Stat returns the status of name.
func (f *FS) Stat(name string) (*Stat, error) {
	w, err := f.path("stat", name)
	if err != nil {
		return nil, err
	}
	fi, err := f.native.Stat(w)
	if err != nil {
		return nil, err
	}
	return newStat(fi), nil
}

// Chmod changes the permissions of name. On Windows only the owner write
// bit (0200) matters: without it the file becomes read-only.
func (f *FS) Chmod(name string, pmode int) error {
	w, err := f.path("chmod", name)
	if err != nil {
		return err
	}
	return f.native.Chmod(w, os.FileMode(pmode)&os.ModePerm)
}

// Utime sets the access and modification times of name. A nil times sets
// both to the current time.
func (f *FS) Utime(name string, times *Utimbuf) error {
	w, err := f.path("utime", name)
	if err != nil {
		return err
	}
	atime, mtime := times.times(f.now())
	return f.native.Chtimes(w, atime, mtime)
}

// Unlink removes the file name.
func (f *FS) Unlink(name string) error {
	w, err := f.path("unlink", name)
	if err != nil {
		return err
	}
	return f.native.Remove(w)
}

// Rename moves oldname to newname. Neither is touched if either path
// fails to convert.
func (f *FS) Rename(oldname, newname string) error {
	from, err := f.path("rename", oldname)
	if err != nil {
		return err
	}
	to, err := f.path("rename", newname)
	if err != nil {
		return err
	}
	return f.native.Rename(from, to)
}
