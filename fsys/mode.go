package fsys

import (
	"os"

	"github.com/wippyai/winutf8io/errors"
)

// ParseMode converts a C fopen mode string to os.OpenFile flags.
//
// The first character selects the access: r reads an existing file, w
// truncates or creates, a appends or creates. A following + opens for
// both reading and writing. b and t are accepted and ignored; x makes a
// w or a open fail when the file exists.
func ParseMode(mode string) (int, error) {
	if mode == "" {
		return 0, invalidMode(mode)
	}

	var flag int
	switch mode[0] {
	case 'r':
		flag = os.O_RDONLY
	case 'w':
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case 'a':
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	default:
		return 0, invalidMode(mode)
	}

	var plus, binary, excl bool
	for _, c := range mode[1:] {
		switch c {
		case '+':
			if plus {
				return 0, invalidMode(mode)
			}
			plus = true
		case 'b', 't':
			if binary {
				return 0, invalidMode(mode)
			}
			binary = true
		case 'x':
			if excl || mode[0] == 'r' {
				return 0, invalidMode(mode)
			}
			excl = true
		default:
			return 0, invalidMode(mode)
		}
	}

	if plus {
		flag &^= os.O_WRONLY
		flag |= os.O_RDWR
	}
	if excl {
		flag |= os.O_EXCL
	}
	return flag, nil
}

func invalidMode(mode string) error {
	return errors.New(errors.PhaseFS, errors.KindInvalidInput).
		Value(mode).
		Detail("invalid open mode %q", mode).
		Build()
}
