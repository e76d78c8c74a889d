package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rgehrsitz/ley73/internal/calculation"
)

// ParseLevel maps a level name ("debug", "info", ...) to an atomic level
func ParseLevel(name string) (zap.AtomicLevel, error) {
	if name == "" {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}
	lvl, err := zap.ParseAtomicLevel(name)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// InitLog builds the console logger. Logs go to stderr so command output on stdout stays machine readable.
func InitLog(lvl zap.AtomicLevel) (*zap.Logger, error) {
	loggerCfg := &zap.Config{
		Level:    lvl,
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// engineLogger adapts a sugared zap logger to calculation.Logger
type engineLogger struct {
	s *zap.SugaredLogger
}

// NewEngineLogger returns a calculation.Logger writing to the "engine" child of l
func NewEngineLogger(l *zap.Logger) calculation.Logger {
	if l == nil {
		return calculation.NopLogger{}
	}
	return engineLogger{s: l.Sugar().Named("engine")}
}

func (e engineLogger) Debugf(format string, args ...any) { e.s.Debugf(format, args...) }
func (e engineLogger) Infof(format string, args ...any)  { e.s.Infof(format, args...) }
func (e engineLogger) Warnf(format string, args ...any)  { e.s.Warnf(format, args...) }
func (e engineLogger) Errorf(format string, args ...any) { e.s.Errorf(format, args...) }
