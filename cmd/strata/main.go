// Command strata renders layered image compositions described by YAML
// configuration files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/strataimg/strata"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "Composite layered raster images from declarative configs",
	Long: `strata flattens an ordered stack of layers (rectangles, bitmaps,
rasterized text), each with an optional filter chain, into a single
image file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			strata.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
