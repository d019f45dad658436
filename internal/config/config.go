package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel       = "info"
	DefaultProjectName    = "pulse_project"
	DefaultProjectVersion = "0.1.0"
)

type LogConfig struct {
	Level string `yaml:"level"`
}

type ProjectConfig struct {
	DefaultName string `yaml:"default_name"`
	Version     string `yaml:"version"`
}

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Project ProjectConfig `yaml:"project"`
	BaseDir string        `yaml:"-"`
}

// Dir returns the pulse state directory under home.
func Dir(home string) string {
	return filepath.Join(home, ".pulse")
}

// Path returns the conventional config file location under home.
func Path(home string) string {
	return filepath.Join(Dir(home), "config.yaml")
}

// Default returns the built-in config. BaseDir stays empty when home is "".
func Default(home string) *Config {
	cfg := &Config{
		Log: LogConfig{Level: DefaultLogLevel},
		Project: ProjectConfig{
			DefaultName: DefaultProjectName,
			Version:     DefaultProjectVersion,
		},
	}
	if home != "" {
		cfg.BaseDir = Dir(home)
	}
	return cfg
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path, home string) (*Config, error) {
	cfg := Default(home)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Ensure defaults for zero values
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Project.DefaultName == "" {
		cfg.Project.DefaultName = DefaultProjectName
	}
	if cfg.Project.Version == "" {
		cfg.Project.Version = DefaultProjectVersion
	}

	return cfg, nil
}
