// Package winutf8io lets a program that works with UTF-8 byte strings use
// the wide-character (UTF-16) APIs of its host: command line arguments,
// console output, and file operations on non-ASCII path names.
//
// # Architecture Overview
//
//	winutf8io/           Adapter composing the packages below, default instance
//	├── codepage/        Code page identifiers and their encodings
//	├── wide/            Byte string <-> wide string conversion, encoding mode
//	├── argv/            Startup argument recovery
//	├── console/         Console-aware output and formatted printing
//	├── fsys/            File operations on byte-string paths
//	├── errors/          Structured error types
//	└── cmd/utf8io/      Developer CLI
//
// # Encoding mode
//
// An Adapter starts in legacy mode: byte strings are taken to be in the
// system code page. Once Args has recovered the command line as UTF-8 the
// adapter switches to UTF-8 mode for the rest of its life. Conversions
// that fail under the current mode are retried with the system code page.
//
// # Quick Start
//
//	args, err := winutf8io.Args()
//	if err != nil {
//	    args = os.Args
//	}
//	winutf8io.Printf("%d arguments, first %q\n", len(args), args[0])
//
//	st, err := winutf8io.Stat("données.txt")
package winutf8io
