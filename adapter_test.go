package winutf8io

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/winutf8io/argv"
	"github.com/wippyai/winutf8io/codepage"
	"github.com/wippyai/winutf8io/fsys"
	"github.com/wippyai/winutf8io/wide"
)

type noConsole struct{ width int }

func (noConsole) IsConsole(io.Writer) bool { return false }

func (noConsole) WriteConsole(io.Writer, []uint16) (int, error) {
	return 0, errors.New("no console")
}

func (d noConsole) Width() (int, bool) { return d.width, d.width > 0 }

func newTestAdapter(args []string, stdout io.Writer) *Adapter {
	return New().
		WithConverter(wide.NewTextConverter(codepage.Windows1252)).
		WithDevice(noConsole{}).
		WithNative(fsys.NewHost()).
		WithArgSource(argv.NewStaticSource(args)).
		WithStdout(stdout).
		WithStderr(io.Discard)
}

func TestAdapter_ArgsSwitchesMode(t *testing.T) {
	var out bytes.Buffer
	a := newTestAdapter([]string{"prog.exe", "héllo.txt"}, &out)

	if a.Mode().State() != wide.Legacy {
		t.Fatal("adapter should start in legacy mode")
	}
	if got := a.Len("héllo"); got != 6 {
		t.Errorf("legacy Len = %d, want 6", got)
	}

	args, err := a.Args()
	if err != nil {
		t.Fatalf("Args: %v", err)
	}
	if len(args) != 2 || args[1] != "héllo.txt" {
		t.Errorf("args = %q", args)
	}
	if a.Mode().State() != wide.UTF8 {
		t.Error("Args should switch to utf-8 mode")
	}
	if got := a.Len("héllo"); got != 5 {
		t.Errorf("utf-8 Len = %d, want 5", got)
	}

	if _, err := a.Printf("%s=%d\n", args[1], 1); err != nil {
		t.Fatal(err)
	}
	if out.String() != "héllo.txt=1\n" {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestAdapter_ArgsOnce(t *testing.T) {
	a := newTestAdapter([]string{"p", "a"}, io.Discard)
	first, _ := a.Args()
	first[1] = "changed"
	second, err := a.Args()
	if err != nil || second[1] != "a" {
		t.Errorf("second Args = %q, %v", second, err)
	}
}

func TestAdapter_ArgsFailureKeepsLegacy(t *testing.T) {
	a := New().
		WithConverter(wide.NewTextConverter(codepage.Windows1252)).
		WithDevice(noConsole{}).
		WithArgSource(argv.NewWideSource([][]uint16{{'p'}, {0xdc00}}))

	if args, err := a.Args(); args != nil || !errors.Is(err, wide.ErrNoResult) {
		t.Errorf("Args = %q, %v", args, err)
	}
	if a.Mode().State() != wide.Legacy {
		t.Error("failed recovery must not switch the mode")
	}
}

func TestAdapter_ConsoleWidth(t *testing.T) {
	if got := newTestAdapter(nil, io.Discard).ConsoleWidth(); got != 80 {
		t.Errorf("ConsoleWidth = %d, want 80", got)
	}
	a := newTestAdapter(nil, io.Discard).WithDevice(noConsole{width: 120})
	if got := a.ConsoleWidth(); got != 120 {
		t.Errorf("ConsoleWidth = %d, want 120", got)
	}
}

func TestAdapter_NilConversions(t *testing.T) {
	a := newTestAdapter(nil, io.Discard)
	if w, err := a.ToWide(nil); w != nil || !errors.Is(err, wide.ErrNoResult) {
		t.Errorf("ToWide(nil) = %v, %v", w, err)
	}
	if b, err := a.FromWide(nil); b != nil || !errors.Is(err, wide.ErrNoResult) {
		t.Errorf("FromWide(nil) = %v, %v", b, err)
	}
}

func TestAdapter_PrintEntryPoints(t *testing.T) {
	var stdout, stderr, other bytes.Buffer
	a := newTestAdapter([]string{"p"}, &stdout).WithStderr(&stderr)
	if _, err := a.Args(); err != nil {
		t.Fatal(err)
	}

	a.Printf("%s %d", "ß", 1)
	a.Eprintf("%s %d", "ß", 1)
	a.Fprintf(&other, "%s %d", "ß", 1)
	n, err := a.Vfprintf(&other, "%s %d", []any{"ß", 1})
	if err != nil || n != 3 {
		t.Errorf("Vfprintf = %d, %v", n, err)
	}

	if stdout.String() != "ß 1" || stderr.String() != "ß 1" || other.String() != "ß 1ß 1" {
		t.Errorf("stdout=%q stderr=%q other=%q", stdout.String(), stderr.String(), other.String())
	}
}

func TestAdapter_FileOperations(t *testing.T) {
	a := newTestAdapter([]string{"p"}, io.Discard)
	if _, err := a.Args(); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	src := filepath.Join(dir, "résumé.txt")
	dst := filepath.Join(dir, "Москва.txt")

	f, err := a.Open(src, "w")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	f.WriteString("hi")
	f.Close()

	st, err := a.Stat(src)
	if err != nil || st.Size != 2 {
		t.Fatalf("Stat = %+v, %v", st, err)
	}
	if err := a.Utime(src, &Utimbuf{Actime: 100, Modtime: 200}); err != nil {
		t.Fatal(err)
	}
	if st, _ := a.Stat(src); st.Mtime != 200 {
		t.Errorf("Mtime = %d", st.Mtime)
	}
	if err := a.Chmod(src, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := a.Rename(src, dst); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if err := a.Unlink(dst); err != nil {
		t.Fatalf("Unlink: %v", err)
	}
	if _, err := os.Stat(dst); !errors.Is(err, fs.ErrNotExist) {
		t.Error("file still exists")
	}
	if err := a.Unlink(dst); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Unlink missing = %v", err)
	}
}

func TestDefault(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same adapter")
	}
	if Len("abc") != 3 {
		t.Errorf("Len = %d", Len("abc"))
	}
	if ConsoleWidth() <= 0 {
		t.Error("ConsoleWidth must be positive")
	}
}
