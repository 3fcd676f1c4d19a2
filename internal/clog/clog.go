// Package clog configures the structured operational logger cmd/oqlc and
// cmd/schemagen use for their own run/exit lifecycle messages — "parsed N
// statements", "wrote schema" — as opposed to
// the diagnostics a chiSQL program itself produces, which internal/diag
// carries and the CLI renders separately to stderr.
package clog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console-encoded zap logger. verbose raises the level to
// Debug; otherwise only Info and above are emitted.
func New(verbose bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(zapcore.AddSync(os.Stderr)),
		level,
	)
	return zap.New(core).Sugar()
}
