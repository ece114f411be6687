package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stdout and Stderr are the zap sink names accepted by WithOutput.
const (
	Stdout = "stdout"
	Stderr = "stderr"
)

type options struct {
	outputs []string
}

// Option changes how New builds the logger.
type Option func(*options)

// WithOutput sends log entries to the given sinks instead of stdout. Commands
// that print their result on stdout log to stderr so the two never mix.
func WithOutput(paths ...string) Option {
	return func(o *options) {
		if len(paths) > 0 {
			o.outputs = paths
		}
	}
}

// New builds the CLI logger. Console output is the default, json switches the
// encoding and debug lowers the level.
func New(json bool, debug bool, opts ...Option) (*zap.Logger, error) {
	o := options{outputs: []string{Stdout}}
	for _, opt := range opts {
		opt(&o)
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoding := "console"
	if json {
		encoding = "json"
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      o.outputs,
		ErrorOutputPaths: []string{Stderr},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "step",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,

			EncodeDuration: zapcore.StringDurationEncoder,
		},
	}

	return cfg.Build()
}
