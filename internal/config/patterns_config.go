package config

// PatternsConfig defines caller-supplied extensions to the built-in
// pattern repository. Extra volatile patterns are appended as their own
// canonicalization group and never modify the built-in groups.
type PatternsConfig struct {
	ExtraVolatilePatterns []string `json:"extra_volatile_patterns,omitempty" yaml:"extra_volatile_patterns,omitempty" validate:"omitempty,dive,regexpsyntax"`
}

// NewDefaultPatternsConfig creates default patterns configuration
func NewDefaultPatternsConfig() PatternsConfig {
	return PatternsConfig{}
}
