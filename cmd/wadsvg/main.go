package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wadsvg/wadsvg/internal/config"
	"github.com/wadsvg/wadsvg/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	logManager = logging.NewSlogManager()
	logFile    *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wadsvg",
	Short: "Extract maps from Doom-engine WAD archives and render them as SVG",
	Long: `wadsvg decodes WAD level archives, reconstructs sector geometry,
and renders each map as an SVG floor plan.

It can also list archive contents, summarize maps, and persist extraction
results through a configurable storage backend.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	rootCmd.PersistentFlags().String("config", ".", "Directory containing wadsvg.cfg.json")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(svgCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and initializes logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	configDir, _ := cmd.Flags().GetString("config")
	if err := config.Load(configDir); err != nil {
		return err
	}

	level := config.GetString("logLevel")
	if logsDir := config.GetString("logsDir"); logsDir != "" {
		if err := os.MkdirAll(logsDir, 0755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
		f, err := os.Create(logging.LogFilePath(logsDir, time.Now().UTC()))
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		logFile = f
		logManager.Setup(f, level)
	} else {
		logManager.Setup(nil, level)
	}

	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wadsvg version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
	},
}
