// Package logger builds the zap logger used by the solver and the CLI.
// Results are written to stdout by the report package; diagnostics go
// through this logger, to stderr unless configured otherwise.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dbsmedya/gosecret/internal/config"
)

// Logger is a SugaredLogger carrying case and share context.
type Logger struct {
	*zap.SugaredLogger
	base *zap.Logger
}

// New builds a Logger from the logging section of the configuration.
func New(cfg *config.LoggingConfig) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	ws, err := openOutput(cfg.Output)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(buildEncoder(cfg.Format), ws, level)
	return wrap(zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))), nil
}

// NewDefault returns an info-level text logger on stderr.
func NewDefault() *Logger {
	l, _ := New(&config.LoggingConfig{Level: "info", Format: "text", Output: "stderr"})
	return l
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return wrap(zap.NewNop())
}

func wrap(base *zap.Logger) *Logger {
	return &Logger{SugaredLogger: base.Sugar(), base: base}
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// buildEncoder returns a JSON encoder for "json" and a compact console
// encoder otherwise. Console lines carry no timestamp.
func buildEncoder(format string) zapcore.Encoder {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if format == "json" {
		return zapcore.NewJSONEncoder(encCfg)
	}

	encCfg.TimeKey = zapcore.OmitKey
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encCfg)
}

// openOutput resolves "stderr", "stdout" or a file path. Log files are
// appended to.
func openOutput(output string) (zapcore.WriteSyncer, error) {
	switch output {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	}
	f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return zapcore.Lock(f), nil
}

// WithCase tags entries with the input case name.
func (l *Logger) WithCase(name string) *Logger {
	return wrap(l.base.With(zap.String("case", name)))
}

// WithIndex tags entries with a share index.
func (l *Logger) WithIndex(index int) *Logger {
	return wrap(l.base.With(zap.Int("index", index)))
}

// WithShare tags entries with a share index and, when known, its base.
func (l *Logger) WithShare(index, base int) *Logger {
	fields := []zap.Field{zap.Int("index", index)}
	if base != 0 {
		fields = append(fields, zap.Int("base", base))
	}
	return wrap(l.base.With(fields...))
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
