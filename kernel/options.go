package kernel

import "github.com/lukh/uCoSM/log"

// kernelOptions holds configuration for a Kernel.
type kernelOptions struct {
	logger      log.Logger
	onException func(error)
}

// Option configures a Kernel at construction. Grounded on the teacher's
// eventloop/options.go functional-options pattern, same shape as
// task.Option.
type Option interface {
	applyKernel(*kernelOptions)
}

type optionImpl struct {
	fn func(*kernelOptions)
}

func (o *optionImpl) applyKernel(opts *kernelOptions) { o.fn(opts) }

// WithLogger sets the Logger a Kernel reports diagnostic events to.
// Defaults to log.Discard.
func WithLogger(l log.Logger) Option {
	return &optionImpl{func(opts *kernelOptions) { opts.logger = l }}
}

// WithExceptionHandler registers a callback invoked whenever the kernel
// hits an exceptional condition (no free handler slots, an unrecognized
// handler). The error is always ErrNoHandlerSlotsAvailable or
// ErrHandlerNotFound.
func WithExceptionHandler(f func(error)) Option {
	return &optionImpl{func(opts *kernelOptions) { opts.onException = f }}
}

func resolveOptions(opts []Option) *kernelOptions {
	cfg := &kernelOptions{logger: log.Discard}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyKernel(cfg)
	}
	return cfg
}
