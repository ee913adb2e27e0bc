// Package console routes wide-character text to an output stream.
//
// A Writer asks its Device, on every call, whether the destination is an
// interactive console. Console destinations receive the wide characters
// directly so every Unicode character displays regardless of the active
// console code page. Everything else (files, pipes, redirected standard
// streams) receives UTF-8 bytes.
//
// Printer layers formatted output on top of a Writer. Printf, Fprintf and
// Vfprintf share one pipeline: format with fmt, decode the result under the
// codec's mode, write through the Writer.
//
// Width reports the console's column count, defaulting to DefaultWidth
// when no console is attached.
package console
