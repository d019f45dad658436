package main

import (
	"fmt"
	"log/slog"

	"github.com/pulse-rs/pulse/internal/env"
	"github.com/pulse-rs/pulse/internal/project"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Prepare build/std with the C++ runtime headers",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

var setupRequireCompiler bool

func init() {
	setupCmd.Flags().BoolVar(&setupRequireCompiler, "require-compiler", false, "Fail when no C++ compiler is found")
}

func runSetup(cmd *cobra.Command, args []string) error {
	buildDir, err := env.BuildDir()
	if err != nil {
		return err
	}
	stdDir, err := project.SetupBuildDir(buildDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %s %s\n", styleSuccess.Render("Runtime written to"), styleAccent.Render(stdDir))

	name, path, err := env.Compiler()
	if err != nil {
		if setupRequireCompiler {
			return err
		}
		slog.Debug("compiler lookup failed", "compiler", name, "error", err)
		fmt.Fprintf(out, "  %s %s\n", styleDim.Render("Compiler"), styleError.Render(err.Error()))
		return nil
	}
	fmt.Fprintf(out, "  %s %s\n", styleDim.Render("Compiler"), path)
	return nil
}
