package console

import (
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/winutf8io/errors"
	"github.com/wippyai/winutf8io/wide"
)

// Writer sends wide-character text to a destination stream, choosing the
// console path or the byte path per call.
type Writer struct {
	dev   Device
	codec *wide.Codec
}

// NewWriter creates a Writer. The codec encodes text for non-console
// destinations.
func NewWriter(dev Device, codec *wide.Codec) *Writer {
	return &Writer{dev: dev, codec: codec}
}

// Device returns the device the writer consults.
func (w *Writer) Device() Device {
	return w.dev
}

// Codec returns the codec used for the byte path.
func (w *Writer) Codec() *wide.Codec {
	return w.codec
}

// Write writes text to dst and returns the number of wide characters
// written. Console destinations get the wide characters unchanged; any
// other destination gets their UTF-8 encoding, and on success the count is
// len(text). On failure Write returns -1.
func (w *Writer) Write(dst io.Writer, text []uint16) (int, error) {
	if dst == nil {
		return -1, errors.InvalidInput(errors.PhaseConsole, "nil destination")
	}
	if text == nil {
		return -1, errors.NoResult(errors.PhaseConsole, errors.NilInput(errors.PhaseConsole))
	}

	console := w.dev != nil && w.dev.IsConsole(dst)
	Logger().Debug("write", zap.Bool("console", console), zap.Int("units", len(text)))

	if console {
		n, err := w.dev.WriteConsole(dst, text)
		if err != nil {
			Logger().Debug("console write failed", zap.Int("units", len(text)), zap.Error(err))
			return -1, errors.Wrap(errors.PhaseConsole, errors.KindIO, err, "write console")
		}
		return n, nil
	}

	b, err := w.codec.FromWide(text)
	if err != nil {
		return -1, err
	}
	if _, err := dst.Write(b); err != nil {
		return -1, errors.Wrap(errors.PhaseConsole, errors.KindIO, err, "write stream")
	}
	return len(text), nil
}
