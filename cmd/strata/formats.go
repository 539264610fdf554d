package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strataimg/strata/codec"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported output formats",
	Run: func(cmd *cobra.Command, args []string) {
		reg := codec.NewRegistry()
		for _, f := range reg.Formats() {
			enc := reg.Get(f)
			fmt.Printf("%-6s .%s\n", f, enc.Extension())
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
