// Package wide converts between application bytes and the platform's
// 16-bit wide character encoding (UTF-16).
//
// A Converter is the platform service: NativeConverter calls
// MultiByteToWideChar / WideCharToMultiByte on Windows, TextConverter uses
// golang.org/x/text everywhere. A Codec adds the process encoding Mode on
// top of a Converter:
//
//	codec := wide.NewCodec(wide.NewTextConverter(codepage.Windows1252), nil)
//	w, err := codec.ToWide([]byte("h\xe9llo")) // legacy mode: windows-1252
//	codec.Mode().SwitchToUTF8()
//	w, err = codec.ToWide([]byte("héllo"))      // UTF-8 mode
//
// ToWide tries the mode's code page first and the system code page second.
// FromWide always produces UTF-8. Every failure matches ErrNoResult.
package wide
