package ecs

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
}

// Option configures a ComponentDirectory or an EntityManager.
type Option func(*options)

// WithLogger sets the logger used for registration, growth and rejected
// operations. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
