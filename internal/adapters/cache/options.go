package cache

// settings holds construction-time configuration.
type settings struct {
	capacity int
}

// Option applies a configuration option to the Store.
type Option func(*settings)

// WithCapacity bounds the number of cached genomes.
func WithCapacity(capacity int) Option {
	return func(s *settings) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}
