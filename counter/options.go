package counter

import "log/slog"

// Option configures a Controller.
type Option func(*options)

type options struct {
	labels Labels
	logger *slog.Logger
}

// WithLabels sets the texts written to the status slot.
// Empty fields keep their English default.
func WithLabels(l Labels) Option {
	return func(o *options) {
		o.labels = English.Merge(l)
	}
}

// WithLogger sets the logger lifecycle transitions are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
