package argv

import (
	"go.uber.org/zap"

	"github.com/wippyai/winutf8io/errors"
	"github.com/wippyai/winutf8io/wide"
)

// Source yields the process arguments as the native wide-character entry
// point saw them.
type Source interface {
	WideArgs() ([][]uint16, error)
}

// Recover converts every argument of src to UTF-8. It is all or nothing:
// on any failure it returns nil and the error. On success it switches the
// codec's mode to UTF-8, so later conversions assume UTF-8 input.
func Recover(src Source, codec *wide.Codec) ([]string, error) {
	if src == nil {
		return nil, errors.Unavailable(errors.PhaseArgv, "argument source", nil)
	}
	wargs, err := src.WideArgs()
	if err != nil {
		return nil, err
	}

	args := make([]string, len(wargs))
	for i, w := range wargs {
		s, err := codec.FromWideString(w)
		if err != nil {
			return nil, errors.New(errors.PhaseArgv, errors.KindNoResult).
				Detail("argument %d", i).
				Value(i).
				Cause(err).
				Build()
		}
		args[i] = s
	}

	if codec.Mode().SwitchToUTF8() {
		Logger().Debug("switched to utf-8 mode", zap.Int("argc", len(args)))
	}
	return args, nil
}

// RecoverOrDefault is Recover with the caller-side fallback: when
// recovery fails it returns fallback unchanged and the mode stays as it was.
func RecoverOrDefault(src Source, codec *wide.Codec, fallback []string) []string {
	args, err := Recover(src, codec)
	if err != nil {
		Logger().Warn("argument recovery failed, using default arguments", zap.Error(err))
		return fallback
	}
	return args
}
