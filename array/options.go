package array

import "math"

// DefaultMaxCapacity bounds the slot count of an array built without
// WithMaxCapacity.
const DefaultMaxCapacity = math.MaxInt32

type options struct {
	maxCapacity int
}

// Option configures an Array at construction.
type Option func(*options)

// WithMaxCapacity caps the capacity an array may grow to. Growth past the
// cap fails with cods.ErrOutOfMemory.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		o.maxCapacity = n
	}
}

func buildOptions(opts []Option) options {
	o := options{maxCapacity: DefaultMaxCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
