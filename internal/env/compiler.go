package env

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/pulse-rs/pulse/internal/perror"
)

var (
	goos     = runtime.GOOS
	lookPath = exec.LookPath
	statFile = os.Stat
)

// vcvarsPaths are the MSVC environment scripts checked on windows.
var vcvarsPaths = []string{
	`C:\Program Files\Microsoft Visual Studio\2022\Community\VC\Auxiliary\Build\vcvarsall.bat`,
	`C:\Program Files\Microsoft Visual Studio\2019\Community\VC\Auxiliary\Build\vcvarsall.bat`,
}

// CompilerName returns the C++ compiler expected on the host platform.
func CompilerName() string {
	switch goos {
	case "linux":
		return "g++"
	case "darwin":
		return "clang++"
	default:
		return "cl"
	}
}

// VCVars returns the first MSVC environment script found on disk.
func VCVars() (string, error) {
	for _, p := range vcvarsPaths {
		if _, err := statFile(p); err == nil {
			return p, nil
		}
	}
	return "", perror.New(perror.NotFound, "Could not find an MSVC installation.")
}

// Compiler locates the platform C++ compiler on PATH. On windows an MSVC
// installation must also be present.
func Compiler() (name, path string, err error) {
	name = CompilerName()
	if goos == "windows" {
		if _, err := VCVars(); err != nil {
			return name, "", err
		}
	}

	path, err = lookPath(name)
	if err != nil {
		return name, "", perror.Wrap(perror.NotFound, fmt.Sprintf("Could not find C++ compiler %s.", name), err)
	}
	return name, path, nil
}
