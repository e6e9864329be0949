package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wasade/pairalign/pkg/pairalign"
)

// versionCmd is for printing version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(pairalign.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
