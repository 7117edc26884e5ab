// Package main is the CLI entry point for aura.
package main

import (
	"fmt"
	"os"

	"github.com/1broseidon/aura/internal/config"
	"github.com/1broseidon/aura/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Version info (set via ldflags)
	Version   = "0.1.0"
	Commit    = "dev"
	BuildTime = "unknown"
)

var (
	configPath string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aura",
	Short: "Load-reactive glow around the focused window",
	Long: `aura draws a translucent, click-through border around the window that
has keyboard focus. The border breathes faster as the owning process uses
more CPU and shifts from white toward red as its memory use grows.

Press the zen toggle key (F8 by default) to dim everything else.`,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runOverlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.config/aura/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log_level from the config file")

	rootCmd.AddCommand(runCmd, configCmd, snapshotCmd, watchCmd, versionCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the overlay (default command)",
	Args:  cobra.NoArgs,
	RunE:  runOverlay,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "aura %s (commit: %s, built: %s)\n", Version, Commit, BuildTime)
	},
}

// loadConfig reads the config file named by --config, or the default location.
func loadConfig() (*config.LoadResult, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	return config.LoadFromPath(path)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	return logging.New(logging.Options{Level: level})
}
