package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminalBuffer(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}

func TestRenderMarkdownPlainForBuffers(t *testing.T) {
	out := renderMarkdown(&bytes.Buffer{}, nextSteps("demo"))

	assert.Contains(t, out, "Next steps")
	assert.Contains(t, out, "src/main.pulse")
	assert.NotContains(t, out, "\x1b[", "captured output should carry no ANSI escapes")
}
