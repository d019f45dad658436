package main

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const guideWidth = 80

var (
	styleLabel   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Width(8)
	styleAccent  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// renderMarkdown renders text for w. Terminals get the auto-detected theme;
// pipes and buffers get glamour's plain notty style so no escape codes leak
// into captured output. The raw text is returned if rendering fails.
func renderMarkdown(w io.Writer, text string) string {
	style := glamour.WithStandardStyle(styles.NoTTYStyle)
	if isTerminal(w) {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(guideWidth))
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}
