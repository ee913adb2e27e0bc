// Package codepage maps Windows code page identifiers to
// golang.org/x/text encodings and reports the system default (ANSI) code
// page.
//
// On Windows System returns GetACP(). Elsewhere there is no ANSI code
// page, so System honours the WINUTF8IO_CODEPAGE environment variable and
// falls back to windows-1252.
package codepage
