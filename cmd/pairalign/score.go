package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wasade/pairalign/pkg/pairalign"
)

// scoreCmd is for computing an alignment score without a traceback.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Alignment score only, without a traceback",
	Run:   runScore,
}

// set flags
func init() {
	addAlignFlags(scoreCmd)
	scoreCmd.Flags().StringP("mode", "m", "global", "alignment mode (global or local)")
	scoreCmd.Flags().Bool("penalize-terminal-gaps", false,
		"charge leading and trailing gap runs at the usual affine rates")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) {
	a, b := parseInputs(cmd)
	p := alignParams(cmd, settings())
	p.PenalizeTerminalGaps, _ = cmd.Flags().GetBool("penalize-terminal-gaps")

	mode, _ := cmd.Flags().GetString("mode")

	var score float64
	var err error
	switch strings.ToLower(mode) {
	case "global":
		score, err = pairalign.GlobalScore(a, b, p)
	case "local":
		score, err = pairalign.LocalScore(a, b, p)
	default:
		log.Fatalf("unknown mode %q", mode)
	}
	if err != nil {
		log.Fatalf("scoring failed: %v", err)
	}

	fmt.Printf("%g\n", score)
}
