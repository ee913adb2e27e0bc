package argv

import (
	"strings"
	"unicode/utf16"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

type expander struct {
	src Source
}

// Expand wraps src with wildcard expansion of every argument after the
// program name, the way the C runtime expands a command line. Patterns
// that match nothing, fail to compile, or are not well-formed UTF-16 are
// kept literally.
func Expand(src Source) Source {
	return &expander{src: src}
}

func (e *expander) WideArgs() ([][]uint16, error) {
	wargs, err := e.src.WideArgs()
	if err != nil {
		return nil, err
	}
	if len(wargs) == 0 {
		return wargs, nil
	}

	out := make([][]uint16, 0, len(wargs))
	out = append(out, wargs[0])
	for _, w := range wargs[1:] {
		out = append(out, expandOne(w)...)
	}
	return out, nil
}

func expandOne(w []uint16) [][]uint16 {
	runes := utf16.Decode(w)
	for _, r := range runes {
		if r == 0xfffd {
			return [][]uint16{w}
		}
	}
	pattern := string(runes)
	if !hasMeta(pattern) {
		return [][]uint16{w}
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil || len(matches) == 0 {
		if err != nil {
			Logger().Debug("wildcard kept literally", zap.String("pattern", pattern), zap.Error(err))
		}
		return [][]uint16{w}
	}

	out := make([][]uint16, len(matches))
	for i, m := range matches {
		out[i] = utf16.Encode([]rune(m))
	}
	return out
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[")
}
