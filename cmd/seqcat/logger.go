// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the diagnostic logger. Data goes to stdout, so the log
// always goes to w, normally stderr.
func newLogger(cfg config, w io.Writer) *zap.Logger {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	if cfg.Verbose {
		level.SetLevel(zap.DebugLevel)
	}

	var encoder zapcore.Encoder
	if strings.ToLower(cfg.LogFormat) == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel))
}
