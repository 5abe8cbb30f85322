package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

func init() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	var err error
	L, err = config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
}

// WithComponent returns a logger tagged with a component field (handler, service, mq, worker, ...).
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}

// SetDevelopment swaps the global logger for a human readable console logger.
func SetDevelopment() {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		L.Warn("failed to build development logger", zap.Error(err))
		return
	}
	L = l
}

// Sync flushes buffered log entries.
func Sync() {
	_ = L.Sync()
}
