package genestring

type options struct {
	logger *Logger
}

func defaultOptions() options {
	return options{
		logger: noopLogger,
	}
}

// Option configures genestring construction.
type Option func(*options)

// WithLogger configures the logger used for operation logging.
//
// If nil is passed, the noop logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = noopLogger
		}
		o.logger = l
	}
}
