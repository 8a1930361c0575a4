package dataset

import (
	"io"
	"log/slog"
)

type options struct {
	header bool
	logger *slog.Logger
}

// Option configures Read and Load.
type Option func(*options)

// WithHeader sets whether the first line is a header row. Default true.
func WithHeader(header bool) Option {
	return func(o *options) {
		o.header = header
	}
}

// WithLogger sets the logger for per-field parse diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		header: true,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
