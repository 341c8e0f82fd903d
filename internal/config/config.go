package config

const (
	// Diff Defaults
	DefaultSimilarityThreshold = 0.8

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)

// GlobalConfig is the root configuration structure loaded from YAML or
// JSON and validated before use.
type GlobalConfig struct {
	DiffConfig     DiffConfig     `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
	LogConfig      LogConfig      `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	PatternsConfig PatternsConfig `json:"patterns_config,omitempty" yaml:"patterns_config,omitempty"`
}

// NewDefaultGlobalConfig creates a GlobalConfig with default values.
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DiffConfig:     NewDefaultDiffConfig(),
		LogConfig:      NewDefaultLogConfig(),
		PatternsConfig: NewDefaultPatternsConfig(),
	}
}
