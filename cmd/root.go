// Package cmd is the portfolio command line: serve runs the site, build
// exports it as static files.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhruvvakharia/portfolio/internal/config"
)

// NewRootCmd returns the command tree. Subcommands see the loaded config
// through the shared pointer once PersistentPreRunE has run.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	cfg := &config.Config{}

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Dhruv Vakharia's portfolio site",
		Long: `portfolio serves the portfolio website, or renders every page
to static HTML for hosting without a Go server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			*cfg = loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	root.AddCommand(newServeCmd(cfg), newBuildCmd(cfg))
	return root
}

// Execute runs the command line and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
