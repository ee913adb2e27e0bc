package console

import (
	"fmt"
	"io"

	"github.com/wippyai/winutf8io/errors"
)

// Printer formats text and writes it through a Writer.
type Printer struct {
	out    *Writer
	stdout io.Writer
}

// NewPrinter creates a Printer whose Printf writes to stdout.
func NewPrinter(out *Writer, stdout io.Writer) *Printer {
	return &Printer{out: out, stdout: stdout}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() *Writer {
	return p.out
}

// Printf writes formatted output to the printer's standard output.
func (p *Printer) Printf(format string, args ...any) (int, error) {
	return p.Vfprintf(p.stdout, format, args)
}

// Fprintf writes formatted output to dst.
func (p *Printer) Fprintf(dst io.Writer, format string, args ...any) (int, error) {
	return p.Vfprintf(dst, format, args)
}

// Vfprintf writes formatted output to dst with an already collected
// argument list. It returns the number of wide characters written, or -1
// and an error when the output could not be decoded or written.
func (p *Printer) Vfprintf(dst io.Writer, format string, args []any) (int, error) {
	if dst == nil {
		return -1, errors.InvalidInput(errors.PhaseFormat, "nil destination")
	}

	text, err := p.out.codec.ToWideString(fmt.Sprintf(format, args...))
	if err != nil {
		return -1, errors.Wrap(errors.PhaseFormat, errors.KindNoResult, err, "decode formatted output")
	}
	return p.out.Write(dst, text)
}
