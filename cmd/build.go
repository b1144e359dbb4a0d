package cmd

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/dhruvvakharia/portfolio/internal/config"
)

func newBuildCmd(cfg *config.Config) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Renders every page to static HTML",
		Long: `The build command renders each route to <out>/<route>/index.html,
writes 404.html and copies the static and images directories. The output
directory is emptied first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" {
				cfg.OutputDir = out
			}
			return runBuild(cmd.Context(), *cfg)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (overrides config)")
	return cmd
}

func runBuild(ctx context.Context, cfg config.Config) error {
	gin.SetMode(gin.ReleaseMode)
	// Exported pages never record visits.
	cfg.Analytics.Enabled = false
	srv, _, cleanup, err := newServer(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer cleanup()

	log.Printf("Building site into %s", cfg.OutputDir)
	return srv.Export(ctx, cfg.OutputDir)
}
