package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/pulse-rs/pulse/internal/project"
	"github.com/pulse-rs/pulse/internal/timing"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Create a new pulse project",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

var initNoGuide bool

func init() {
	initCmd.Flags().BoolVar(&initNoGuide, "no-guide", false, "Skip the next-steps guide")
}

func runInit(cmd *cobra.Command, args []string) error {
	name := cfg.Project.DefaultName
	if len(args) == 1 {
		name = args[0]
	}

	start := time.Now()
	path, err := project.Init(name, project.Options{
		Name:    filepath.Base(name),
		Version: cfg.Project.Version,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %s %s %s\n", styleSuccess.Render("Created project at"), styleAccent.Render(path),
		styleDim.Render("("+timing.Since(start)+")"))

	if !initNoGuide {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderMarkdown(out, nextSteps(name)))
	}
	return nil
}

func nextSteps(name string) string {
	return fmt.Sprintf("## Next steps\n\n"+
		"1. `cd %s`\n"+
		"2. Edit `src/main.pulse`\n"+
		"3. Keep build output out of git: `build/` is already in `.gitignore`\n", name)
}
