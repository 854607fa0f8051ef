package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// level is shared by every logger handed out by NewLogger, so package loggers
// created in init() still honour a level configured later in main.
var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

func NewLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	t, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return t.Sugar()
}

// SetLevel changes the level of all loggers, e.g. "debug" or "warn".
func SetLevel(name string) error {
	return level.UnmarshalText([]byte(name))
}

func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	}
}
