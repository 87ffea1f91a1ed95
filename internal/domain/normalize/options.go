package normalize

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithFallbackRating overrides the rating used when upstream provides no
// usable weight. The value is taken as-is; callers keep it within [0,5].
func WithFallbackRating(rating float64) Option {
	return func(n *Normalizer) {
		if rating >= 0 && rating <= 5 {
			n.rating = rating
		}
	}
}

// WithFallbackPersonality overrides the per-trait percentage used when a
// trait is missing from an otherwise present personality block.
func WithFallbackPersonality(score int) Option {
	return func(n *Normalizer) {
		if score >= 0 && score <= 100 {
			n.personality = score
		}
	}
}

// WithFallbackProficiency overrides the proficiency used when a skill entry
// carries none.
func WithFallbackProficiency(score int) Option {
	return func(n *Normalizer) {
		if score >= 0 && score <= 100 {
			n.proficiency = score
		}
	}
}

// WithFallbackExperience overrides the experience label used when a skill
// entry carries none.
func WithFallbackExperience(label string) Option {
	return func(n *Normalizer) {
		if label != "" {
			n.experience = label
		}
	}
}

// WithIDGenerator overrides the generator for opaque Person IDs. Useful in
// tests that need stable output.
func WithIDGenerator(gen func() string) Option {
	return func(n *Normalizer) {
		if gen != nil {
			n.newID = gen
		}
	}
}
