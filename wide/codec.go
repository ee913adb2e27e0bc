package wide

import (
	"go.uber.org/zap"

	"github.com/wippyai/winutf8io/codepage"
	"github.com/wippyai/winutf8io/errors"
)

// ErrNoResult matches every conversion failure of a Codec, whatever the
// cause: nil input, invalid bytes, ill-formed UTF-16.
var ErrNoResult = &errors.Error{Kind: errors.KindNoResult}

// Codec converts between application bytes and wide characters under a
// shared Mode.
type Codec struct {
	conv Converter
	mode *Mode
}

// NewCodec binds a converter to a mode. A nil mode starts a fresh Legacy
// mode on codepage.ACP.
func NewCodec(conv Converter, mode *Mode) *Codec {
	if mode == nil {
		mode = NewMode(codepage.ACP)
	}
	return &Codec{conv: conv, mode: mode}
}

// Mode returns the codec's encoding mode.
func (c *Codec) Mode() *Mode {
	return c.mode
}

// Converter returns the underlying platform converter.
func (c *Codec) Converter() Converter {
	return c.conv
}

// ToWide decodes s under the current mode. If that fails it retries with
// the system default code page, because some strings reach the
// application without having been re-encoded after the switch to UTF-8.
func (c *Codec) ToWide(s []byte) ([]uint16, error) {
	if s == nil {
		return nil, errors.NoResult(errors.PhaseDecode, errors.NilInput(errors.PhaseDecode))
	}

	cp := c.mode.CodePage()
	w, err := c.conv.Decode(cp, s)
	if err == nil {
		return w, nil
	}

	w, fallbackErr := c.conv.Decode(codepage.ACP, s)
	if fallbackErr != nil {
		return nil, errors.NoResult(errors.PhaseDecode, err)
	}
	Logger().Debug("decoded with system code page fallback",
		zap.Stringer("codepage", cp),
		zap.Stringer("system", c.conv.SystemCodePage()),
		zap.Int("bytes", len(s)),
		zap.Error(err))
	return w, nil
}

// ToWideString is ToWide for strings. It never sees a nil input.
func (c *Codec) ToWideString(s string) ([]uint16, error) {
	return c.ToWide([]byte(s))
}

// FromWide encodes w as UTF-8, independent of the mode.
func (c *Codec) FromWide(w []uint16) ([]byte, error) {
	if w == nil {
		return nil, errors.NoResult(errors.PhaseEncode, errors.NilInput(errors.PhaseEncode))
	}
	b, err := c.conv.Encode(codepage.UTF8, w)
	if err != nil {
		return nil, errors.NoResult(errors.PhaseEncode, err)
	}
	return b, nil
}

// FromWideString is FromWide returning a string.
func (c *Codec) FromWideString(w []uint16) (string, error) {
	b, err := c.FromWide(w)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Len returns the number of wide characters s decodes to under the
// current mode. When s does not decode it returns the byte length, so
// column alignment degrades instead of failing.
func (c *Codec) Len(s string) int {
	w, err := c.conv.Decode(c.mode.CodePage(), []byte(s))
	if err != nil {
		Logger().Debug("length fallback to byte count",
			zap.Stringer("codepage", c.mode.CodePage()),
			zap.Error(err))
		return len(s)
	}
	return len(w)
}
