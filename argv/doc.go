// Package argv recovers the process arguments from the platform's wide
// character entry point and converts them to UTF-8.
//
// Sources:
//   - NativeSource: msvcrt's __wgetmainargs, probed once at first use
//   - CommandLineSource: CommandLineToArgvW(GetCommandLineW())
//   - StaticSource: a fixed vector, for tests and non-Windows hosts
//
// Expand adds wildcard expansion to any source and Chain tries sources in
// order. Recover is atomic and switches the codec to UTF-8 mode on success.
package argv
