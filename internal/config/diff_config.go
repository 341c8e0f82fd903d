package config

// DiffConfig defines configuration for the state diffing engine
type DiffConfig struct {
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty" yaml:"similarity_threshold,omitempty" validate:"omitempty,gt=0,lte=1"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		SimilarityThreshold: DefaultSimilarityThreshold,
	}
}
