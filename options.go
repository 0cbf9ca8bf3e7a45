package signals

import "log/slog"

type options struct {
	logger *slog.Logger
	policy Policy
	source Source
}

// Option customizes a single SetHandler call.
type Option func(*options)

// WithLogger sets the logger used by the worker.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPolicy sets the panic policy for the worker.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithSource overrides how signals are registered with the OS.
func WithSource(src Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}

func buildOptions(opts []Option) options {
	cfg := getConfig()
	o := options{
		logger: cfg.Logger,
		policy: *cfg.Policy,
		source: cfg.Source,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
