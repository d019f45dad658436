// Package project scaffolds new pulse projects on disk.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/pulse-rs/pulse/internal/env"
	"github.com/pulse-rs/pulse/internal/fsutil"
	"github.com/pulse-rs/pulse/internal/perror"
)

// Options controls the generated manifest.
type Options struct {
	Name    string // project name in pulse.toml; defaults to the directory base name
	Version string
}

// File is one scaffolded file, relative to the project root.
type File struct {
	Path    string
	Content string
}

// Files returns the scaffold for a project with the given manifest values.
func Files(name, version string) []File {
	return []File{
		{
			Path:    filepath.Join("src", "main.pulse"),
			Content: "fn main() {\n    println(\"Hello, World!\");\n}\n",
		},
		{
			Path:    "pulse.toml",
			Content: "[project]\nname = " + tomlString(name) + "\nversion = " + tomlString(version) + "\n",
		},
		{
			Path:    ".gitignore",
			Content: "build/\n",
		},
	}
}

// Init creates dir and writes the project scaffold into it. dir must not
// exist yet. The returned path is absolute with symlinks resolved.
func Init(dir string, opts Options) (string, error) {
	if dir == "" {
		return "", perror.New(perror.InvalidArgument, "project directory must not be empty")
	}
	if opts.Name == "" {
		opts.Name = filepath.Base(dir)
	}
	if opts.Version == "" {
		opts.Version = "0.1.0"
	}
	if !utf8.ValidString(opts.Name) || !utf8.ValidString(opts.Version) {
		return "", perror.New(perror.InvalidArgument, "project name and version must be valid UTF-8")
	}

	if err := os.Mkdir(dir, 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", perror.Wrap(perror.AlreadyExists, fmt.Sprintf("%s already exists", dir), err)
		}
		return "", perror.Wrap(perror.IO, err.Error(), err)
	}

	if err := writeScaffold(dir, Files(opts.Name, opts.Version)); err != nil {
		// A half-written project would block the next attempt with AlreadyExists.
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			slog.Warn("could not remove partial project", "path", dir, "error", rmErr)
		}
		return "", err
	}

	cwd, err := env.Cwd()
	if err != nil {
		return "", err
	}
	return fsutil.NormalizePath(dir, cwd)
}

var writeFile = os.WriteFile

func writeScaffold(dir string, files []File) error {
	for _, f := range files {
		path := filepath.Join(dir, f.Path)
		slog.Debug("writing scaffold file", "path", path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return perror.Wrap(perror.IO, err.Error(), err)
		}
		if err := writeFile(path, []byte(f.Content), 0644); err != nil {
			return perror.Wrap(perror.IO, err.Error(), err)
		}
	}
	return nil
}
