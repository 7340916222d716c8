package cmd

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/apidoc/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing tools to list, describe and render the documented packages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		log.WithField("source", cfg.Source).Info("apidoc MCP server started on stdio")

		srv := mcpserver.NewServer(cfg, log)
		return srv.Serve()
	},
}

func init() {
	mcpCmd.Flags().String("source", "", "documentation tree (.json, .yaml or .js)")
	rootCmd.AddCommand(mcpCmd)
}
