package console

import "go.uber.org/zap"

// DefaultWidth is the column count reported when no console is attached.
const DefaultWidth = 80

// Width returns the console width reported by dev, or DefaultWidth when
// dev is nil, has no console, or reports a non-positive width.
func Width(dev Device) int {
	if dev == nil {
		return DefaultWidth
	}
	w, ok := dev.Width()
	if !ok || w <= 0 {
		Logger().Debug("console width unavailable, using default", zap.Int("width", DefaultWidth))
		return DefaultWidth
	}
	return w
}
