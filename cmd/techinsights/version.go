package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the techinsights version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("techinsights %s\n", version)
	},
}
