package main

import (
	"github.com/pulse-rs/pulse/internal/console"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print [value...]",
	Short: "Print values separated by spaces",
	RunE:  runPrint,
}

var (
	printStderr    bool
	printNoNewline bool
)

func init() {
	printCmd.Flags().BoolVar(&printStderr, "stderr", false, "Write to stderr instead of stdout")
	printCmd.Flags().BoolVarP(&printNoNewline, "no-newline", "n", false, "Do not write a trailing newline")
}

func runPrint(cmd *cobra.Command, args []string) error {
	p := console.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	values := make([]any, len(args))
	for i, a := range args {
		values[i] = a
	}

	switch {
	case printStderr && printNoNewline:
		p.Eprint(values...)
	case printStderr:
		p.Eprintln(values...)
	case printNoNewline:
		p.Print(values...)
	default:
		p.Println(values...)
	}
	return nil
}
