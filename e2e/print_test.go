package e2e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintStdout(t *testing.T) {
	env := newTestEnv(t)

	stdout, stderr, code := env.runPulse("print", "hello", "world")

	assert.Equal(t, 0, code)
	assert.Equal(t, "hello world \n", stdout)
	assert.Empty(t, stderr)
}

func TestPrintStderr(t *testing.T) {
	env := newTestEnv(t)

	stdout, stderr, code := env.runPulse("print", "--stderr", "oops")

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "oops \n", stderr)
}

func TestPrintNoNewline(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, code := env.runPulse("print", "-n", "a", "b")

	assert.Equal(t, 0, code)
	assert.Equal(t, "a b ", stdout)
}

func TestPrintNoArgs(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, code := env.runPulse("print")

	assert.Equal(t, 0, code)
	assert.Equal(t, "\n", stdout)
}
