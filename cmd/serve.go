package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/apidoc/internal/config"
	"github.com/ziadkadry99/apidoc/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation page with live reload",
	Long: `Builds the documentation page, serves it on a local HTTP server and
rebuilds it whenever the source or a template override changes. Open pages
reload automatically. Metrics are exposed on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		watch, _ := cmd.Flags().GetBool("watch")
		open, _ := cmd.Flags().GetBool("open")
		return runServer(cfg, watch, open)
	},
}

func init() {
	addSourceFlags(serveCmd)
	serveCmd.Flags().Int("port", 8080, "port for the local dev server")
	serveCmd.Flags().Bool("watch", true, "rebuild when the source changes")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

// runServer builds the site once, then serves it until interrupted.
func runServer(cfg *config.Config, watch, open bool) error {
	ctx, cancel := signalContext()
	defer cancel()

	srv := site.NewServer(cfg, site.NewGenerator(cfg, log), log)
	if _, err := srv.Rebuild(ctx); err != nil {
		return err
	}

	if open {
		go site.OpenBrowser(fmt.Sprintf("http://localhost:%d", cfg.Server.Port))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.ListenAndServe(ctx) })
	if watch {
		g.Go(func() error { return srv.Watch(ctx) })
	}
	return g.Wait()
}
