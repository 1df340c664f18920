// Package logging configures the shared zap logger. Human-facing command
// output goes to stdout directly; zap carries diagnostics on stderr and all
// server-side logs.
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance.
	Logger = zap.NewNop()

	// Sugar is the sugared form of Logger.
	Sugar = Logger.Sugar()
)

// Config controls level, encoding and destination.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is "console" or "json". Empty picks console on a terminal
	// and json otherwise.
	Format string `yaml:"format"`

	// Output is "stderr", "stdout" or a file path.
	Output string `yaml:"output"`
}

// DefaultConfig returns the CLI defaults.
func DefaultConfig() Config {
	return Config{Level: "info", Output: "stderr"}
}

// Init sets up the global logger.
func Init(cfg Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	format := cfg.Format
	if format == "" {
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			format = "console"
		} else {
			format = "json"
		}
	}

	var encoder zapcore.Encoder
	if format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	var sink zapcore.WriteSyncer
	switch cfg.Output {
	case "stdout":
		sink = zapcore.AddSync(os.Stdout)
	case "stderr", "":
		sink = zapcore.AddSync(os.Stderr)
	default:
		file, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		sink = zapcore.AddSync(file)
	}

	Logger = zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller())
	Sugar = Logger.Sugar()
	return nil
}

// InitVerbose initializes with the default config at the given verbosity.
func InitVerbose(verbose bool) {
	cfg := DefaultConfig()
	if verbose {
		cfg.Level = "debug"
	}
	_ = Init(cfg)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
