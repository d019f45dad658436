//go:build windows

package env

// HomeVar names the environment variable holding the home directory.
const HomeVar = "USERPROFILE"
