package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/opsdiff/opsdiff/internal/common/errorwrapper"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. -config command-line flag
// 2. OPSDIFF_CONFIG_PATH environment variable
// 3. config.yaml / config.json in the current working directory
// 4. config.yaml / config.json in the executable's directory
// Returns "" when no config file is found; defaults apply in that case.
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		if _, err := os.Stat(configFilePathFlag); err == nil {
			return configFilePathFlag
		}
	}

	envPath := os.Getenv("OPSDIFF_CONFIG_PATH")
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	var locations []string
	if cwd, err := os.Getwd(); err == nil {
		locations = append(locations, cwd)
	}
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		if len(locations) == 0 || locations[0] != exeDir {
			locations = append(locations, exeDir)
		}
	}

	for _, loc := range locations {
		for _, file := range []string{"config.yaml", "config.json"} {
			path := filepath.Join(loc, file)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// LoadGlobalConfig reads and validates configuration from the given path.
// An empty path yields the validated defaults.
func LoadGlobalConfig(path string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if path == "" {
		logger.Debug().Msg("No config file found, using defaults")
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read config file "+path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse YAML config "+path)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse JSON config "+path)
		}
	default:
		return nil, errorwrapper.NewError("unsupported config file extension: %s", filepath.Ext(path))
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "config validation failed for "+path)
	}

	logger.Debug().Str("path", path).Msg("Loaded configuration")
	return cfg, nil
}
