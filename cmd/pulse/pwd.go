package main

import (
	"fmt"

	"github.com/pulse-rs/pulse/internal/env"
	"github.com/spf13/cobra"
)

var pwdCmd = &cobra.Command{
	Use:   "pwd",
	Short: "Print the current working directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := env.Cwd()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dir)
		return nil
	},
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Print the home directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := env.Home()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), home)
		return nil
	},
}
