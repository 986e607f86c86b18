package openaddr

import "github.com/rs/zerolog"

type options struct {
	capacity uint
	logger   zerolog.Logger
}

// Option configures a Table at construction time
type Option func(*options)

// WithCapacity sets the initial slot count. It is rounded up to the
// next power of two and is never smaller than DefaultMapSize.
func WithCapacity(size uint) Option {
	return func(o *options) {
		o.capacity = size
	}
}

// WithLogger sets the logger the table reports growth to (at debug level)
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func makeOptions(opts []Option) options {
	o := options{
		capacity: DefaultMapSize,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
