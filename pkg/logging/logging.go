// Package logging builds the zap logger shared by the explorer binaries.
package logging

import (
	"strings"

	"github.com/kripto-transakcije/explorer/pkg/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger from LOG_LEVEL and LOG_ENCODING.
// Unknown levels fall back to info; "debug" also turns on development mode.
func New() (*zap.Logger, error) {
	return Build(utils.Env("LOG_LEVEL", "debug"), utils.Env("LOG_ENCODING", "json"))
}

// Build returns a logger writing level and above with the given encoding ("json" or "console").
func Build(level, encoding string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Development = lvl == zapcore.DebugLevel
	cfg.Encoding = encoding
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.With(zap.String("service", utils.Env("SERVICE_NAME", "explorer"))), nil
}
