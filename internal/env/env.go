// Package env resolves the process working directory and the user's home
// directory. Nothing is cached; each call reads the current process state.
package env

import (
	"os"
	"path/filepath"

	"github.com/pulse-rs/pulse/internal/perror"
)

// MaxPathLen bounds the working directory length. Paths at or beyond it are
// reported as errors rather than truncated.
const MaxPathLen = 1024

var (
	getwd     = os.Getwd
	lookupEnv = os.LookupEnv
)

// Cwd returns the absolute path of the current working directory.
func Cwd() (string, error) {
	dir, err := getwd()
	if err != nil || dir == "" || len(dir) >= MaxPathLen {
		return "", perror.Wrap(perror.NotFound, "Could not get current working directory.", err)
	}
	return dir, nil
}

// Home returns the value of HomeVar exactly as set.
func Home() (string, error) {
	home, ok := lookupEnv(HomeVar)
	if !ok || home == "" {
		return "", perror.New(perror.NotFound, "Could not get home directory.")
	}
	return home, nil
}

// BuildDir returns the build output directory under the working directory.
func BuildDir() (string, error) {
	cwd, err := Cwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, "build"), nil
}
