package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/apidoc/internal/config"
)

var (
	cfgFile string
	verbose bool

	// log writes to stderr so stdout stays free for the MCP protocol.
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "apidoc",
	Short: "Render API documentation trees into collapsible HTML",
	Long: `apidoc turns a documentation tree (packages, enums, classes and
functions) into a static page of nested cards, where every package body
hides behind a "Show API" toggle. It can serve the page with live reload
and exposes the tree to AI agents over MCP.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.FileName, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setupLogger() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
}
