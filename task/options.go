package task

import "github.com/lukh/uCoSM/log"

// handlerOptions holds configuration for a Handler.
type handlerOptions struct {
	logger      log.Logger
	onException func(error)
}

// Option configures a Handler at construction. Grounded on the teacher's
// eventloop/options.go functional-options pattern (LoopOption /
// loopOptionImpl / resolveLoopOptions).
type Option interface {
	applyHandler(*handlerOptions)
}

type optionImpl struct {
	fn func(*handlerOptions)
}

func (o *optionImpl) applyHandler(opts *handlerOptions) { o.fn(opts) }

// WithLogger sets the Logger a Handler reports diagnostic events to.
// Defaults to log.Discard.
func WithLogger(l log.Logger) Option {
	return &optionImpl{func(opts *handlerOptions) { opts.logger = l }}
}

// WithExceptionHandler registers a callback invoked whenever the handler
// hits one of the original's HandlerException conditions (no free slots, an
// unknown task ID, an illegal call to ThisTask/ThisTaskID). The error is
// always one of ErrNoSlotsAvailable, ErrTaskNotFound or ErrIllegalCall,
// passed as is.
func WithExceptionHandler(f func(error)) Option {
	return &optionImpl{func(opts *handlerOptions) { opts.onException = f }}
}

func resolveOptions(opts []Option) *handlerOptions {
	cfg := &handlerOptions{logger: log.Discard}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyHandler(cfg)
	}
	return cfg
}
