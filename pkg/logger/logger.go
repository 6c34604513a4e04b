package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around zap.Logger shared by the handler and the stores
type Logger struct {
	zap *zap.Logger
}

// Config holds logger configuration
type Config struct {
	Level       string
	Environment string // "development" or "production"
	ServiceName string
}

// New creates a new Logger instance
func New(cfg Config) (*Logger, error) {
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"

	z, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	return FromZap(z.With(zap.String("service", cfg.ServiceName))), nil
}

// FromZap wraps an existing zap logger, e.g. an observer core in tests
func FromZap(z *zap.Logger) *Logger {
	return &Logger{zap: z}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

// Error logs at ErrorLevel and attaches err under the "error" key
func (l *Logger) Error(msg string, err error, fields ...zap.Field) {
	l.zap.Error(msg, append(fields, zap.Error(err))...)
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(msg, fields...)
}

// With creates a child logger and adds structured context to it
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{zap: l.zap.With(fields...)}
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

// ParseLevel parses the log level string, falling back to info
func ParseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}
