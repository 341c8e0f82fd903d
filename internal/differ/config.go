package differ

// DefaultSimilarityThreshold is the replace-pair similarity below which a
// change is considered structural. Pairs at or above it are treated as
// likely un-canonicalized volatile fields unless a state word flipped.
const DefaultSimilarityThreshold = 0.8

// Config holds the per-call configuration surface of the engine: the
// similarity threshold and any caller-supplied volatile patterns that
// extend the pattern repository without modifying it.
type Config struct {
	SimilarityThreshold   float64
	ExtraVolatilePatterns []string
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: DefaultSimilarityThreshold,
	}
}
