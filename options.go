package vectorx

// Option configures a Vector at construction via the functional options pattern.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity requests an initial backing buffer of exactly n slots.
// New rejects negative n.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}
