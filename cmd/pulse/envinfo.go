package main

import (
	"fmt"
	"io"

	"github.com/pulse-rs/pulse/internal/config"
	"github.com/pulse-rs/pulse/internal/console"
	"github.com/pulse-rs/pulse/internal/env"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the directories pulse resolves",
	Args:  cobra.NoArgs,
	RunE:  runEnv,
}

type envEntry struct {
	Label    string
	Value    string
	Err      error
	Optional bool // shown when unresolved but not counted as a failure
}

// collectEnv resolves every reported directory. Failures are kept per entry.
func collectEnv() []envEntry {
	cwd, cwdErr := env.Cwd()
	home, homeErr := env.Home()
	build, buildErr := env.BuildDir()

	entries := []envEntry{
		{Label: "cwd", Value: cwd, Err: cwdErr},
		{Label: "home", Value: home, Err: homeErr},
		{Label: "build", Value: build, Err: buildErr},
	}

	switch {
	case configPath != "":
		entries = append(entries, envEntry{Label: "config", Value: configPath})
	case homeErr == nil:
		entries = append(entries, envEntry{Label: "config", Value: config.Path(home)})
	default:
		entries = append(entries, envEntry{Label: "config", Err: homeErr})
	}

	name, path, compErr := env.Compiler()
	if compErr == nil {
		path = name + " (" + path + ")"
	}
	entries = append(entries, envEntry{Label: "compiler", Value: path, Err: compErr, Optional: true})
	return entries
}

// writeEnv prints entries and returns how many failed.
func writeEnv(w io.Writer, entries []envEntry) int {
	p := console.NewPrinter(w, w)
	failed := 0
	for _, e := range entries {
		if e.Err != nil {
			if !e.Optional {
				failed++
			}
			p.Println(styleLabel.Render(e.Label), styleError.Render(e.Err.Error()))
			continue
		}
		p.Println(styleLabel.Render(e.Label), e.Value)
	}
	return failed
}

func runEnv(cmd *cobra.Command, args []string) error {
	if failed := writeEnv(cmd.OutOrStdout(), collectEnv()); failed > 0 {
		return fmt.Errorf("%d of the directories could not be resolved", failed)
	}
	return nil
}
