package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/apidoc/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize apidoc configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure apidoc for your project and writes the config file (.apidoc.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
