package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dhruvvakharia/portfolio/internal/analytics"
	"github.com/dhruvvakharia/portfolio/internal/config"
	"github.com/dhruvvakharia/portfolio/internal/site"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	var (
		port string
		dev  bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves the site",
		Long: `The serve command runs the web server. With --dev, templates are read
from the templates directory and reloaded whenever a file there changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				cfg.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, *cfg, dev)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides config and PORT)")
	cmd.Flags().BoolVar(&dev, "dev", false, "reload templates from disk on change")
	return cmd
}

// newServer wires the renderer and, when enabled, the analytics store.
// cleanup releases the store.
func newServer(ctx context.Context, cfg config.Config, dev bool) (srv *site.Server, renderer *site.Renderer, cleanup func(), err error) {
	cleanup = func() {}
	fsys := site.Templates()
	if dev {
		fsys = os.DirFS(cfg.TemplatesDir)
	}
	if renderer, err = site.NewRenderer(fsys); err != nil {
		return nil, nil, cleanup, err
	}

	var store *analytics.Store
	if cfg.Analytics.Enabled {
		if store, err = analytics.Open(cfg.Analytics.DBPath); err != nil {
			return nil, nil, cleanup, err
		}
		cleanup = func() {
			if err := store.Close(); err != nil {
				log.Printf("Error closing analytics db: %v", err)
			}
		}
		go func() {
			if _, err := store.Purge(ctx, cfg.Analytics.RetentionMonths); err != nil {
				log.Printf("Error cleaning up old visitor data: %v", err)
			}
		}()
		log.Println("Privacy-conscious visitor tracking initialized")
	}

	srv, err = site.New(site.Options{Config: cfg, Renderer: renderer, Store: store})
	if err != nil {
		cleanup()
		return nil, nil, func() {}, err
	}
	return srv, renderer, cleanup, nil
}

func runServe(ctx context.Context, cfg config.Config, dev bool) error {
	srv, renderer, cleanup, err := newServer(ctx, cfg, dev)
	if err != nil {
		return fmt.Errorf("setting up server: %w", err)
	}
	defer cleanup()

	if dev {
		go func() {
			if err := site.Watch(ctx, cfg.TemplatesDir, site.ReloadDebounce, renderer.Reload); err != nil {
				log.Printf("Template watcher stopped: %v", err)
			}
		}()
	}
	return srv.ListenAndServe(ctx)
}
