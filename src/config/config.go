package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".imgcraft.yml"

// Output modes for the build command.
const (
	OutputImageID    = "image-id"
	OutputImageName  = "image-name"
	OutputDockerfile = "dockerfile"
)

// Config is the top-level imgcraft configuration.
type Config struct {
	Build BuildConfig `yaml:"build"`
}

// BuildConfig holds defaults for the build command. CLI flags override it.
type BuildConfig struct {
	From   string `yaml:"from"`   // default base image
	Output string `yaml:"output"` // default output mode
}

// Load reads configuration from a YAML file.
// If path is empty, it tries the default file.
// Returns sensible defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if !ValidOutput(cfg.Build.Output) {
		return nil, fmt.Errorf("invalid build.output %q (want %s, %s, or %s)",
			cfg.Build.Output, OutputImageID, OutputImageName, OutputDockerfile)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Build: BuildConfig{
			From:   "ubuntu:18.04",
			Output: OutputImageID,
		},
	}
}

// ValidOutput reports whether s is a known output mode.
func ValidOutput(s string) bool {
	switch s {
	case OutputImageID, OutputImageName, OutputDockerfile:
		return true
	}
	return false
}
