package lang

import "github.com/jtl-lang/jtl/log"

// Option applies a configuration option to a parse call.
type Option func(options) options

// options holds the configuration for one parse call.
type options struct {
	logger   log.Logger
	comments bool
}

// makeOptions builds the configuration for a parse call with defaults
// applied, overridden by any provided options.
func makeOptions(opts ...Option) options {
	cfg := options{comments: true}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithLogger sets the logger used for parse tracing. The zero Logger
// discards all messages.
func WithLogger(logger log.Logger) Option {
	return func(cfg options) options {
		cfg.logger = logger

		return cfg
	}
}

// WithComments controls whether comment lines ("/*", "*/", and ">//>")
// are recognized and skipped. Enabled by default.
func WithComments(enable bool) Option {
	return func(cfg options) options {
		cfg.comments = enable

		return cfg
	}
}
