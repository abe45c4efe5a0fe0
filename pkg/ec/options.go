package ec

import "go.uber.org/zap"

// Option configures a Curve at construction time.
type Option func(*Curve)

// WithLogger sets the logger used to trace the group analysis operations.
func WithLogger(l *zap.Logger) Option {
	return func(c *Curve) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithWorkers bounds the number of goroutines Decomposition runs at once.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *Curve) {
		if n > 0 {
			c.workers = n
		}
	}
}
