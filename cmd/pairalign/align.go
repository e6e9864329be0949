package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wasade/pairalign/config"
	"github.com/wasade/pairalign/pkg/pairalign"
)

// globalCmd is for aligning two profiles over their full lengths.
var globalCmd = &cobra.Command{
	Use:   "global",
	Short: "Global (Needleman-Wunsch) alignment of two sequences or profiles",
	Run:   runGlobal,
}

// localCmd is for aligning the best-scoring subregions of two sequences.
var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Local (Smith-Waterman) alignment of two sequences",
	Run:   runLocal,
}

// set flags
func init() {
	addAlignFlags(globalCmd)
	addAlignFlags(localCmd)

	globalCmd.Flags().Bool("penalize-terminal-gaps", false,
		"charge leading and trailing gap runs at the usual affine rates")

	rootCmd.AddCommand(globalCmd)
	rootCmd.AddCommand(localCmd)
}

// addAlignFlags registers the input and scoring flags shared by the
// alignment commands. Scoring flags left unset fall back to the settings
// file and then the per-alphabet defaults.
func addAlignFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("query", "q", "", "query sequence, or comma-separated pre-aligned sequences")
	cmd.Flags().StringP("target", "t", "", "target sequence, or comma-separated pre-aligned sequences")
	cmd.Flags().StringP("alphabet", "a", "protein", "input alphabet (protein or nucleotide)")
	cmd.Flags().String("matrix", "", "protein substitution matrix (blosum50 or blosum62)")
	cmd.Flags().Float64("match", 0, "nucleotide match score")
	cmd.Flags().Float64("mismatch", 0, "nucleotide mismatch score")
	cmd.Flags().Float64("gap-open", 0, "gap open penalty")
	cmd.Flags().Float64("gap-extend", 0, "gap extend penalty")
	cmd.MarkFlagRequired("query")
	cmd.MarkFlagRequired("target")
}

func runGlobal(cmd *cobra.Command, args []string) {
	a, b := parseInputs(cmd)
	p := alignParams(cmd, settings())
	p.PenalizeTerminalGaps, _ = cmd.Flags().GetBool("penalize-terminal-gaps")

	aln, err := pairalign.Global(a, b, p)
	if err != nil {
		log.Fatalf("alignment failed: %v", err)
	}

	printAlignment(aln)
}

func runLocal(cmd *cobra.Command, args []string) {
	a, b := parseInputs(cmd)
	p := alignParams(cmd, settings())

	aln, err := pairalign.Local(a, b, p)
	if err != nil {
		log.Fatalf("alignment failed: %v", err)
	}

	printAlignment(aln)
}

// parseInputs builds the query and target profiles from the command flags.
func parseInputs(cmd *cobra.Command) (*pairalign.Profile, *pairalign.Profile) {
	query, _ := cmd.Flags().GetString("query")
	target, _ := cmd.Flags().GetString("target")

	a, err := parseProfile("query", query)
	if err != nil {
		log.Fatalf("%v", err)
	}

	b, err := parseProfile("target", target)
	if err != nil {
		log.Fatalf("%v", err)
	}

	return a, b
}

// parseProfile splits a comma-separated list of pre-aligned sequences into
// a profile.
func parseProfile(flagName, value string) (*pairalign.Profile, error) {
	rows := strings.Split(value, ",")

	seqs := make([]*pairalign.Sequence, 0, len(rows))
	for i, r := range rows {
		seq, err := pairalign.NewSequence(strings.TrimSpace(r))
		if err != nil {
			return nil, fmt.Errorf("%s sequence %d: %v", flagName, i+1, err)
		}
		seqs = append(seqs, seq)
	}

	return pairalign.NewProfile(seqs...)
}

// alignParams resolves scoring parameters: explicit flags win, then the
// settings file, then the built-in alphabet defaults.
func alignParams(cmd *cobra.Command, cfg config.Config) *pairalign.Params {
	alphabet, _ := cmd.Flags().GetString("alphabet")

	var p *pairalign.Params
	switch strings.ToLower(alphabet) {
	case "protein":
		name := cfg.Protein.Matrix
		if cmd.Flags().Changed("matrix") {
			name, _ = cmd.Flags().GetString("matrix")
		}
		m, err := pairalign.MatrixByName(name)
		if err != nil {
			log.Fatalf("%v", err)
		}
		p = &pairalign.Params{
			GapOpen:   cfg.Protein.GapOpen,
			GapExtend: cfg.Protein.GapExtend,
			Matrix:    m,
		}
	case "nucleotide", "dna":
		match := cfg.Nucleotide.Match
		if cmd.Flags().Changed("match") {
			match, _ = cmd.Flags().GetFloat64("match")
		}
		mismatch := cfg.Nucleotide.Mismatch
		if cmd.Flags().Changed("mismatch") {
			mismatch, _ = cmd.Flags().GetFloat64("mismatch")
		}
		p = &pairalign.Params{
			GapOpen:   cfg.Nucleotide.GapOpen,
			GapExtend: cfg.Nucleotide.GapExtend,
			Matrix:    pairalign.NucleotideMatrix(match, mismatch),
		}
	default:
		log.Fatalf("unknown alphabet %q", alphabet)
	}

	if cmd.Flags().Changed("gap-open") {
		p.GapOpen, _ = cmd.Flags().GetFloat64("gap-open")
	}
	if cmd.Flags().Changed("gap-extend") {
		p.GapExtend, _ = cmd.Flags().GetFloat64("gap-extend")
	}

	return p
}

func printAlignment(aln *pairalign.Alignment) {
	fmt.Println(aln.Format())
	fmt.Printf("Query span: %d-%d\n", aln.StartA, aln.EndA)
	fmt.Printf("Target span: %d-%d\n", aln.StartB, aln.EndB)
}
