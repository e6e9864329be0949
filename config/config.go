// Package config holds application-wide settings unmarshalled from
// Viper: built-in defaults, overridden by an optional settings file,
// overridden by bound command line flags (see: /cmd).
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"

	"github.com/wasade/pairalign/pkg/pairalign"
)

// SettingsFile is the name of the optional settings file looked up in
// the working directory when no --settings path is given.
const SettingsFile = "pairalign.yaml"

// ProteinSettings are the default scoring parameters for the protein
// alphabet.
type ProteinSettings struct {
	// Matrix names the substitution matrix (blosum50 or blosum62)
	Matrix string `mapstructure:"matrix"`

	// GapOpen is the penalty charged when a gap run starts
	GapOpen float64 `mapstructure:"gap-open"`

	// GapExtend is the penalty charged per additional gap position
	GapExtend float64 `mapstructure:"gap-extend"`
}

// NucleotideSettings are the default scoring parameters for the
// nucleotide alphabet.
type NucleotideSettings struct {
	// Match is the score for identical bases
	Match float64 `mapstructure:"match"`

	// Mismatch is the score for differing bases
	Mismatch float64 `mapstructure:"mismatch"`

	// GapOpen is the penalty charged when a gap run starts
	GapOpen float64 `mapstructure:"gap-open"`

	// GapExtend is the penalty charged per additional gap position
	GapExtend float64 `mapstructure:"gap-extend"`
}

// ServerSettings say where the HTTP API binds.
type ServerSettings struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Config is the root-level settings struct.
type Config struct {
	Protein    ProteinSettings    `mapstructure:"protein"`
	Nucleotide NucleotideSettings `mapstructure:"nucleotide"`
	Server     ServerSettings     `mapstructure:"server"`
}

// New returns a Config populated from the defaults and, when present,
// the settings file in the working directory.
func New() Config {
	return Load("")
}

// Load returns a Config read from the settings file at path. With an
// empty path the working directory file is used if it exists; a named
// file that cannot be read is fatal.
func Load(path string) Config {
	setDefaults()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file %s: %v", path, err)
		}
	} else {
		viper.SetConfigName("pairalign")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				log.Fatalf("failed to read %s: %v", SettingsFile, err)
			}
		}
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("failed to decode settings file %s: %v", viper.ConfigFileUsed(), err)
	}

	return config
}

// setDefaults registers the built-in value of every settings key.
func setDefaults() {
	viper.SetDefault("protein.matrix", "blosum50")
	viper.SetDefault("protein.gap-open", pairalign.DefaultProteinGapOpen)
	viper.SetDefault("protein.gap-extend", pairalign.DefaultProteinGapExtend)

	viper.SetDefault("nucleotide.match", pairalign.DefaultNucleotideMatch)
	viper.SetDefault("nucleotide.mismatch", pairalign.DefaultNucleotideMismatch)
	viper.SetDefault("nucleotide.gap-open", pairalign.DefaultNucleotideGapOpen)
	viper.SetDefault("nucleotide.gap-extend", pairalign.DefaultNucleotideGapExtend)

	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
}

// Addr returns the server bind address in host:port form.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
