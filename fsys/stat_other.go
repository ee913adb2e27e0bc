//go:build !linux && !windows

package fsys

func fillSys(*Stat, any) {}
