// Package main provides the semterms binary entry point.
// Semterms validates ontology term usage: it looks up term labels through
// the multi-level cache, expands dynamic enum definitions, and builds the
// SQLite ontology databases the adapters read.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	// Register the sqlite adapter via init()
	_ "github.com/c360studio/semterms/ontology/sqlite"

	"github.com/c360studio/semterms/config"
	"github.com/c360studio/semterms/plugin"
)

const (
	Version = "0.1.0"
	appName = "semterms"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags carries the persistent flags shared by all subcommands.
type globalFlags struct {
	configPath   string
	adaptersPath string
	cacheDir     string
	noCache      bool
	logLevel     string
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Ontology term validation utilities",
		Long: `Semterms validates ontology term usage in schemas and data:
CURIE label lookup through a two-tier cache, dynamic enum expansion
against ontology backends, and ontology database construction.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(flags.logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&flags.adaptersPath, "adapters", "", "Ontology adapters file (ontology_adapters YAML)")
	cmd.PersistentFlags().StringVar(&flags.cacheDir, "cache-dir", "", "Label cache directory")
	cmd.PersistentFlags().BoolVar(&flags.noCache, "no-cache", false, "Disable the persistent label cache")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(labelCmd(flags))
	cmd.AddCommand(expandCmd(flags))
	cmd.AddCommand(buildCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// newBase builds the shared plugin base from flags and config file.
func newBase(flags *globalFlags) (*plugin.Base, error) {
	cfg := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.LoadFromFile(flags.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if flags.adaptersPath != "" {
		cfg.Adapter.ConfigPath = flags.adaptersPath
	}
	if flags.cacheDir != "" {
		cfg.Cache.Dir = flags.cacheDir
	}
	if flags.noCache {
		cfg.Cache.Labels = false
	}

	base, err := plugin.NewBase(plugin.Options{Config: cfg})
	if err != nil {
		return nil, err
	}
	return base, nil
}
