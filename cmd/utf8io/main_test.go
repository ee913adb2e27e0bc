package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/winutf8io"
)

func TestMain(m *testing.M) {
	// main recovers arguments first; do the same so the default adapter
	// runs in UTF-8 mode.
	if _, err := winutf8io.Args(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestRun_FileCommands(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ファイル.txt")
	dst := filepath.Join(dir, "fichier.txt")
	if err := os.WriteFile(src, []byte("contenu"), 0o644); err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		cmd      string
		operands []string
	}{
		{"stat", []string{src}},
		{"touch", []string{src, "1700000000"}},
		{"touch", []string{src}},
		{"chmod", []string{"644", src}},
		{"cat", []string{src}},
		{"mv", []string{src, dst}},
		{"rm", []string{dst}},
	}
	for _, s := range steps {
		if err := run(nil, s.cmd, s.operands); err != nil {
			t.Fatalf("%s %q: %v", s.cmd, s.operands, err)
		}
	}
	if _, err := os.Stat(dst); !errors.Is(err, fs.ErrNotExist) {
		t.Error("rm did not remove the file")
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		cmd      string
		operands []string
	}{
		{"unknown command", "frobnicate", nil},
		{"missing operand", "stat", nil},
		{"bad mode", "chmod", []string{"9z", "x"}},
		{"bad time", "touch", []string{"x", "soon"}},
		{"missing file", "rm", []string{filepath.Join(t.TempDir(), "nope")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(nil, tt.cmd, tt.operands); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestInspect(t *testing.T) {
	in := inspect("日本")
	if in.err != nil {
		t.Fatal(in.err)
	}
	if in.columns != 4 {
		t.Errorf("columns = %d, want 4", in.columns)
	}
	if len(in.utf8) != 6 {
		t.Errorf("utf8 bytes = %d, want 6", len(in.utf8))
	}
	if got := formatUnits(in.units); got != "65e5 672c" {
		t.Errorf("units = %q", got)
	}
}
