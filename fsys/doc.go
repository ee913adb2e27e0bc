// Package fsys exposes file operations that take UTF-8 (or, before the
// switch to UTF-8 mode, legacy code page) path names and call the
// wide-character filesystem primitives.
//
// Every FS method follows the same shape: convert the path with the
// shared wide.Codec, call the Native primitive, return its result. Native
// errors pass through untouched, so errors.Is(err, fs.ErrNotExist) and
// friends keep working. A path that cannot be converted fails with an
// error matching fs.ErrInvalid and the primitive is never called.
package fsys
