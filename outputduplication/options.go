package outputduplication

import "go.uber.org/zap"

type options struct {
	log *zap.Logger
}

// Option configures Capturers, Scanners and shared buffers.
type Option func(*options)

// WithLogger routes diagnostics to log. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
