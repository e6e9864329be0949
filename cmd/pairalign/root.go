package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wasade/pairalign/config"
	"github.com/wasade/pairalign/pkg/pairalign"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pairalign",
	Short: "Pairwise alignment of biological sequences and profiles",
	Long: `Align pairs of sequences or profiles by dynamic programming, in global
(Needleman-Wunsch) or local (Smith-Waterman) mode under an affine gap model.

Profiles are comma-separated lists of pre-aligned, equal-length sequences;
their columns are scored as the mean over all residue cross-pairs.`,
	Version: pairalign.Version(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// settings returns the configuration, honoring the --settings flag.
func settings() config.Config {
	return config.Load(viper.GetString("settings"))
}

func init() {
	// settings is an optional parameter for a settings file that overrides
	// the built-in scoring and server defaults
	rootCmd.PersistentFlags().StringP("settings", "s", "",
		"path to a settings file (default: "+config.SettingsFile+" in the working directory)")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
}
