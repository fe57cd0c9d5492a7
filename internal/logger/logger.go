package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the root logger; it discards everything until Init succeeds.
var Log = zap.NewNop().Sugar()

// Config represents configuration options for logger initialization
type Config struct {
	Debug   bool   // Enable debug logging
	LogFile string // Also write JSON lines to this file when set
	// Output is the console destination; os.Stderr when nil.
	Output io.Writer
}

// Init is a function to initialize logger with extended configuration
func Init(config Config) (func() error, error) {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := zapcore.InfoLevel
	if config.Debug {
		level = zapcore.DebugLevel
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	// Console encoder with colors only on a terminal stream
	consoleEncoderConfig := encoderConfig
	if out == os.Stderr || out == os.Stdout {
		consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig), zapcore.Lock(zapcore.AddSync(out)), level),
	}

	closeFile := func() error { return nil }
	if config.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.LogFile), os.ModePerm); err != nil {
			return nil, errors.Wrap(err, "create log directory")
		}
		f, err := os.OpenFile(config.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(f), level))
		closeFile = f.Close
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	Log = log.Named("qrstyle").Sugar()

	return func() error {
		_ = Log.Sync()
		return closeFile()
	}, nil
}

// Named returns a child of the root logger ("render", "config", etc.)
func Named(name string) *zap.SugaredLogger {
	return Log.Named(name)
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format("2006-01-02 15:04:05"))
}
