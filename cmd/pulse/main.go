package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pulse-rs/pulse/internal/config"
	"github.com/pulse-rs/pulse/internal/console"
	"github.com/pulse-rs/pulse/internal/logger"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:               "pulse",
	Short:             "Pulse - language toolchain helper",
	Long:              "Pulse scaffolds projects and reports the environment the toolchain runs in.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "pulse "+version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.pulse/config.yaml)")
	rootCmd.AddCommand(versionCmd, pwdCmd, homeCmd, envCmd, initCmd, printCmd, setupCmd)
}

// setup loads config and installs the default logger before any subcommand.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	slog.SetDefault(logger.New(level, cmd.ErrOrStderr()))
	slog.Debug("config loaded", "base_dir", cfg.BaseDir, "level", level)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		console.Eprintln(styleError.Render("error:"), err)
		slog.Debug("program failed", "error", err)
		os.Exit(1)
	}
	slog.Debug("program finished successfully")
}
