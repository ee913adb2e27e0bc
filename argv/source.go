package argv

import (
	stderrors "errors"
	"os"
	"unicode/utf16"

	"github.com/wippyai/winutf8io/errors"
)

// StaticSource serves a fixed argument vector. It stands in for the
// native entry point in tests and on hosts whose arguments are already
// UTF-8.
type StaticSource struct {
	args [][]uint16
}

// NewStaticSource encodes UTF-8 arguments as UTF-16.
func NewStaticSource(args []string) *StaticSource {
	wargs := make([][]uint16, len(args))
	for i, a := range args {
		wargs[i] = utf16.Encode([]rune(a))
	}
	return &StaticSource{args: wargs}
}

// NewWideSource serves raw wide arguments as given, including ill-formed
// UTF-16.
func NewWideSource(wargs [][]uint16) *StaticSource {
	return &StaticSource{args: wargs}
}

// NewOSSource serves os.Args.
func NewOSSource() *StaticSource {
	return NewStaticSource(os.Args)
}

// WideArgs returns copies of the stored arguments.
func (s *StaticSource) WideArgs() ([][]uint16, error) {
	out := make([][]uint16, len(s.args))
	for i, a := range s.args {
		out[i] = append(make([]uint16, 0, len(a)), a...)
	}
	return out, nil
}

type chain []Source

// Chain returns a source that tries each source in order and yields the
// first successful vector. If all fail, the errors are joined.
func Chain(sources ...Source) Source {
	return chain(sources)
}

func (c chain) WideArgs() ([][]uint16, error) {
	var errs []error
	for _, src := range c {
		wargs, err := src.WideArgs()
		if err == nil {
			return wargs, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, errors.Unavailable(errors.PhaseArgv, "argument source", nil)
	}
	return nil, stderrors.Join(errs...)
}
