package winutf8io

import (
	"go.uber.org/zap"

	"github.com/wippyai/winutf8io/argv"
	"github.com/wippyai/winutf8io/console"
	"github.com/wippyai/winutf8io/fsys"
	"github.com/wippyai/winutf8io/wide"
)

// SetLogger configures the logger of every package in the module.
// This must be called before the adapter is used.
func SetLogger(l *zap.Logger) {
	wide.SetLogger(l.Named("wide"))
	argv.SetLogger(l.Named("argv"))
	console.SetLogger(l.Named("console"))
	fsys.SetLogger(l.Named("fsys"))
}
