package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger so the rest of the codebase does not depend on zap directly.
type Logger struct {
	*zap.Logger
}

// New creates a new logger with the given level and encoding ("json" or "console").
func New(level, encoding string) (*Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	if encoding == "" {
		encoding = "json"
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}

	return &Logger{Logger: zapLogger}, nil
}

// Field creates a generic structured log field.
func Field(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

// StringField creates a string log field.
func StringField(key, value string) zap.Field {
	return zap.String(key, value)
}

// IntField creates an int log field.
func IntField(key string, value int) zap.Field {
	return zap.Int(key, value)
}

// DurationField creates a duration log field.
func DurationField(key string, value time.Duration) zap.Field {
	return zap.Duration(key, value)
}

// ErrorField creates an error log field.
func ErrorField(err error) zap.Field {
	return zap.Error(err)
}
