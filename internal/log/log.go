// Package log builds the zap logger used by capcheck.
//
// Build scripts read directives from stdout, so the logger writes to a
// separate sink, stderr by default.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w. Debug entries are only
// written when verbose is set. A nil w means stderr.
func New(w zapcore.WriteSyncer, verbose bool) *zap.Logger {
	if w == nil {
		w = zapcore.Lock(os.Stderr)
	}
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), w, level)
	return zap.New(core)
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }
