package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Git     GitConfig    `json:"git"`
	Output  OutputConfig `json:"output"`
	Filters FilterConfig `json:"filters"`
}

// GitConfig holds subprocess invocation options.
type GitConfig struct {
	Bin            string `json:"bin"`            // Git executable; default "git"
	MaxOutputBytes int64  `json:"maxOutputBytes"` // Cap on captured diff output
}

// OutputConfig holds output options.
type OutputConfig struct {
	Format string `json:"format"` // Default: "console"
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			Bin:            "git",
			MaxOutputBytes: 200 * 1024 * 1024,
		},
		Output: OutputConfig{
			Format: "console",
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
// When path is empty, .gitdiff.json is tried in the current directory and
// then in the user's home directory.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".gitdiff.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".gitdiff.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".gitdiff.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
