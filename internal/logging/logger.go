// Package logging sets up the zap logger shared by the command line hosts.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// File is the log file path. Empty disables file logging.
	File string
	// Console also writes to stderr. Terminal hosts leave this off since
	// stderr shares the screen.
	Console bool
	// Debug lowers the level from Info to Debug.
	Debug bool
}

// New builds a SugaredLogger writing to a rolling file and optionally stderr.
// With neither output enabled it returns a no-op logger.
func New(opts Options) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	var cores []zapcore.Core
	if opts.File != "" {
		// 10MB per file, 3 backups, 7 days
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   false,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), level))
	}
	if opts.Console {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level))
	}
	if len(cores) == 0 {
		return zap.NewNop().Sugar()
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
}

// Sync flushes buffered log entries.
func Sync(log *zap.SugaredLogger) {
	if log != nil {
		_ = log.Sync()
	}
}
