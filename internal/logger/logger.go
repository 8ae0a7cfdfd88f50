// Package logger builds the zap loggers used by the command-line tool.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a console logger writing to stderr.
// With debug set, per-pair debug entries are emitted; otherwise only warnings and errors.
func NewLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"

	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	config.DisableStacktrace = true

	return config.Build()
}
