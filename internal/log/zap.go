package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	level string
}

type Option func(o *options)

func WithLevel(lv string) Option {
	return func(o *options) {
		o.level = lv
	}
}

// New builds a JSON logger writing to stderr.
func New(opts ...Option) (*zap.Logger, error) {
	o := options{
		level: "info",
	}
	for _, e := range opts {
		e(&o)
	}

	var al zap.AtomicLevel
	if err := al.UnmarshalText([]byte(o.level)); err != nil {
		return nil, fmt.Errorf("al.UnmarshalText: level=%s, %w", o.level, err)
	}

	encConfig := zap.NewProductionEncoderConfig()
	encConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zc := zap.Config{
		DisableCaller:     true,
		DisableStacktrace: true,
		Level:             al,
		Development:       false,
		Encoding:          "json",
		EncoderConfig:     encConfig,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	zl, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("zap.Build: %w", err)
	}
	return zl, nil
}

func Must(zl *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return zl
}
