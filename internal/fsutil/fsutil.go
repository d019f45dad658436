// Package fsutil resolves user-supplied paths against a root directory.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pulse-rs/pulse/internal/perror"
)

// extendedPrefix marks Windows extended-length paths.
const extendedPrefix = `\\?\`

// NormalizePath joins a relative path onto root and returns the absolute,
// symlink-resolved result. If the target does not exist its parent directory
// is created, and a NotFound error is still returned.
func NormalizePath(path, root string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", perror.Wrap(perror.IO, err.Error(), err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			parent := filepath.Dir(abs)
			slog.Debug("creating parent", "path", parent)
			if mkErr := os.MkdirAll(parent, 0755); mkErr != nil {
				return "", perror.Wrap(perror.IO, mkErr.Error(), mkErr)
			}
			return "", perror.Wrap(perror.NotFound, fmt.Sprintf("%s does not exist", abs), err)
		}
		return "", perror.Wrap(perror.IO, err.Error(), err)
	}

	return strings.TrimPrefix(resolved, extendedPrefix), nil
}
