package main

import (
	"fmt"
	"log/slog"

	"github.com/pulse-rs/pulse/internal/config"
	"github.com/pulse-rs/pulse/internal/env"
)

// homeDir returns the user's home directory or an error.
func homeDir() (string, error) {
	home, err := env.Home()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return home, nil
}

// resolveConfigPath returns explicit if set, otherwise the path under home.
// An unresolvable home yields "" so callers fall back to defaults.
func resolveConfigPath(explicit string) (path, home string) {
	home, err := homeDir()
	if err != nil {
		slog.Debug("no home directory, using default config", "error", err)
		home = ""
	}
	if explicit != "" {
		return explicit, home
	}
	if home == "" {
		return "", ""
	}
	return config.Path(home), home
}

func loadConfig(explicit string) (*config.Config, error) {
	path, home := resolveConfigPath(explicit)
	if path == "" {
		return config.Default(home), nil
	}
	c, err := config.Load(path, home)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}
