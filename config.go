package callbacks

import "github.com/rs/zerolog"

// Option configures a registry.
type Option func(*options)

// PanicHandler is called when a callback panics during dispatch.
// Receives the handle of the callback and the recovered panic value.
type PanicHandler func(handle Handle, recovered any)

type options struct {
	name         string
	logger       zerolog.Logger
	panicHandler PanicHandler
}

func newOptions(opts []Option) options {
	o := options{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithName sets a label for the registry.
// The name appears in log entries, Stats and callback errors.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger used for registration and dispatch events.
// By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPanicHandler isolates callbacks from each other.
// A panicking callback is recovered, the handler receives its handle and the
// recovered value, and dispatch continues with the next callback. The
// panicking callback counts as having returned its zero result.
// Without a handler, panics propagate to the caller of Dispatch.
func WithPanicHandler(handler PanicHandler) Option {
	return func(o *options) {
		o.panicHandler = handler
	}
}
