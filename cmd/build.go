package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/apidoc/internal/progress"
	"github.com/ziadkadry99/apidoc/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the documentation page",
	Long: `Renders the documentation tree into index.html, style.css and script.js
in the output directory. Every package body starts collapsed unless listed
with --expand.`,
	RunE: runBuild,
}

func init() {
	addSourceFlags(buildCmd)
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	buildCmd.Flags().Bool("watch", false, "rebuild when the source changes (implies --serve)")
	buildCmd.Flags().Int("port", 8080, "port for the local dev server")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	serve, _ := cmd.Flags().GetBool("serve")
	if serve || watch {
		open, _ := cmd.Flags().GetBool("open")
		return runServer(cfg, watch, open)
	}

	generator := site.NewGenerator(cfg, log)
	generator.Progress = progress.NewReporter(log)

	ctx, cancel := signalContext()
	defer cancel()

	res, err := generator.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Documentation generated: %s (%d packages, %d sections, %d functions)\n",
		cfg.OutputDir, res.Packages, res.Stats.Sections, res.Stats.Functions)
	if n := len(res.Warnings); n > 0 {
		fmt.Printf("%d warning(s); see the log above\n", n)
	}
	return nil
}
