package sequencer

import "log/slog"

type options struct {
	logger   *slog.Logger
	capacity int
}

// Option configures a Sequencer.
type Option func(*options)

// WithLogger sets the logger used for debug tracing of insertions, drains
// and completions. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCapacity pre-sizes the node arena.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}
