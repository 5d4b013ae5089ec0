// Package cmd implements the physical CLI commands.
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BhaskerGarudadri/Physical/catalog"
	"github.com/BhaskerGarudadri/Physical/unit"
)

var (
	catalogPaths []string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "physical",
	Short: "Unit conversion and dimensional analysis",
	Long: `physical converts values between commensurable units and inspects
the dimension vectors of units from the built-in SI catalog.

User-defined units can be layered on top of the built-in catalog with
one or more --catalog YAML files; all catalogs are loaded and the unit
registry frozen before any command runs.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(logLevel)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&catalogPaths, "catalog", nil,
		"YAML unit catalog loaded on top of the built-in SI catalog (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level (debug, info, warn, error)")
}

// buildRegistry seeds the built-in SI catalog plus any user catalogs, then
// freezes the registry. Commands only ever see a frozen registry.
func buildRegistry() (*unit.Registry, error) {
	reg := unit.NewRegistry()
	if err := catalog.Register(reg); err != nil {
		return nil, err
	}
	for _, path := range catalogPaths {
		slog.Debug("Loading user catalog", "path", path)
		if err := catalog.Load(path, reg); err != nil {
			return nil, err
		}
	}
	reg.Freeze()
	slog.Debug("Unit registry frozen", "units", reg.Len())
	return reg, nil
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel == slog.LevelDebug,
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
}
