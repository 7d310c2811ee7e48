package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console-friendly Zap logger for the CLI. Debug switches the
// level and adds caller info.
func New(debug bool) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(os.Stderr), level)

	if debug {
		return zap.New(core, zap.AddCaller())
	}
	return zap.New(core)
}
