package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	c := New()

	assert.Equal(t, "blosum50", c.Protein.Matrix)
	assert.Equal(t, 11.0, c.Protein.GapOpen)
	assert.Equal(t, 1.0, c.Protein.GapExtend)

	assert.Equal(t, 2.0, c.Nucleotide.Match)
	assert.Equal(t, -3.0, c.Nucleotide.Mismatch)
	assert.Equal(t, 5.0, c.Nucleotide.GapOpen)
	assert.Equal(t, 2.0, c.Nucleotide.GapExtend)

	assert.Equal(t, "localhost:8080", c.Addr())
}

func TestLoadSettingsFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	settings := []byte(`protein:
  matrix: blosum62
  gap-open: 10
nucleotide:
  mismatch: -4
server:
  port: 9090
`)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, settings, 0644))

	c := Load(path)

	// keys in the file win
	assert.Equal(t, "blosum62", c.Protein.Matrix)
	assert.Equal(t, 10.0, c.Protein.GapOpen)
	assert.Equal(t, -4.0, c.Nucleotide.Mismatch)
	assert.Equal(t, "localhost:9090", c.Addr())

	// keys left out keep their defaults
	assert.Equal(t, 1.0, c.Protein.GapExtend)
	assert.Equal(t, 2.0, c.Nucleotide.Match)
	assert.Equal(t, "localhost", c.Server.Host)
}
