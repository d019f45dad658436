package project

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/pulse-rs/pulse/internal/perror"
)

//go:embed std/*.hpp
var stdFS embed.FS

// StdFiles lists the runtime headers written by SetupBuildDir.
func StdFiles() []string {
	names, _ := fs.Glob(stdFS, "std/*.hpp")
	for i, n := range names {
		names[i] = path.Base(n)
	}
	return names
}

// SetupBuildDir creates buildDir/std and writes the runtime headers into it,
// overwriting earlier copies. It returns the std directory.
func SetupBuildDir(buildDir string) (string, error) {
	if buildDir == "" {
		return "", perror.New(perror.InvalidArgument, "build directory must not be empty")
	}
	stdDir := filepath.Join(buildDir, "std")
	slog.Debug("setting up build directory", "path", stdDir)
	if err := os.MkdirAll(stdDir, 0755); err != nil {
		return "", perror.Wrap(perror.IO, err.Error(), err)
	}

	for _, name := range StdFiles() {
		data, err := stdFS.ReadFile("std/" + name)
		if err != nil {
			return "", perror.Wrap(perror.IO, err.Error(), err)
		}
		if err := os.WriteFile(filepath.Join(stdDir, name), data, 0644); err != nil {
			return "", perror.Wrap(perror.IO, err.Error(), err)
		}
	}
	return stdDir, nil
}
