package main

import (
	"fmt"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/eringen/techinsights"
)

var (
	buildOut         string
	buildPrecompress bool
	buildClean       bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	Long: `build renders the listing, every post, the not-found page, the sitemap,
the RSS feed, robots.txt and the stylesheet into the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := techinsights.New(siteConfig)
		if err != nil {
			return err
		}
		defer app.Close()

		if buildClean {
			if err := os.RemoveAll(buildOut); err != nil {
				return fmt.Errorf("clean %s: %w", buildOut, err)
			}
		}

		n, err := app.Export(cmd.Context(), buildOut, buildPrecompress)
		if err != nil {
			return err
		}
		log.Infof("wrote %d files to %s", n, buildOut)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "public", "output directory")
	buildCmd.Flags().BoolVar(&buildPrecompress, "precompress", false, "also write brotli-compressed .br files")
	buildCmd.Flags().BoolVar(&buildClean, "clean", false, "remove the output directory first")
}
