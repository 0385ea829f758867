package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user defaults read from ~/.gamedir/config.yaml.
// A missing file yields the zero Config; CLI flags always win over it.
type Config struct {
	Defaults struct {
		Engine    string `yaml:"engine"`
		Platforms string `yaml:"platforms"` // comma-separated, like the flag
		RootDir   string `yaml:"root_dir"`
	} `yaml:"defaults"`
	Clean struct {
		AgeDays int      `yaml:"age_days"`
		Exclude []string `yaml:"exclude"`
	} `yaml:"clean"`
}

// ConfigPath returns the location of the user config file.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".gamedir", "config.yaml"), nil
}

// LoadConfig reads the user config, returning a zero Config when the file
// does not exist.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user config
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config.yaml: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config.yaml: %w", err)
	}
	return cfg, nil
}
