package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/apidoc/internal/config"
)

// loadConfig loads and validates the config, providing a user-friendly error.
// Flags set on cmd override the file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `apidoc init` to create a config file", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if !verbose && cfg.LogLevel != "" {
		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			log.SetLevel(level)
		}
	}
	log.WithField("config", cfgFile).Debug("configuration loaded")
	return cfg, nil
}

// applyFlags copies explicitly set flags onto cfg. Commands only define the
// flags that make sense for them; undefined ones are skipped.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source, _ = flags.GetString("source")
	}
	if flags.Changed("output") {
		cfg.OutputDir, _ = flags.GetString("output")
	}
	if flags.Changed("title") {
		cfg.Title, _ = flags.GetString("title")
	}
	if flags.Changed("templates") {
		cfg.TemplatesDir, _ = flags.GetString("templates")
	}
	if flags.Changed("include") {
		cfg.Include, _ = flags.GetStringSlice("include")
	}
	if flags.Changed("exclude") {
		cfg.Exclude, _ = flags.GetStringSlice("exclude")
	}
	if flags.Changed("expand") {
		cfg.Expand, _ = flags.GetStringSlice("expand")
	}
	if flags.Changed("port") {
		cfg.Server.Port, _ = flags.GetInt("port")
	}
}

// addSourceFlags registers the flags shared by commands that render.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", "", "documentation tree (.json, .yaml or .js)")
	cmd.Flags().String("output", "", "output directory for the generated site")
	cmd.Flags().String("title", "", "page title")
	cmd.Flags().String("templates", "", "directory of <name>.tmpl template overrides")
	cmd.Flags().StringSlice("include", nil, "only render packages matching these globs")
	cmd.Flags().StringSlice("exclude", nil, "skip packages matching these globs")
	cmd.Flags().StringSlice("expand", nil, `section ids to show on load ("*" for all)`)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
