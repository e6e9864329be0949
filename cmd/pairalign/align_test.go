package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wasade/pairalign/config"
)

func TestParseProfile(t *testing.T) {
	p, err := parseProfile("query", "HEAGAWGHEE")
	require.NoError(t, err)
	assert.Equal(t, 1, p.SequenceCount())
	assert.Equal(t, 10, p.Len())

	p, err = parseProfile("query", "AWGHE, AW-HE")
	require.NoError(t, err)
	assert.Equal(t, 2, p.SequenceCount())
	assert.Equal(t, 5, p.Len())

	_, err = parseProfile("query", "AWGHE,AW")
	require.Error(t, err)

	_, err = parseProfile("query", "AWG!E")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query sequence 1")
}

func TestAlignParams(t *testing.T) {
	cfg := config.Config{
		Protein:    config.ProteinSettings{Matrix: "blosum50", GapOpen: 11, GapExtend: 1},
		Nucleotide: config.NucleotideSettings{Match: 2, Mismatch: -3, GapOpen: 5, GapExtend: 2},
	}

	t.Run("protein settings apply", func(t *testing.T) {
		cmd := &cobra.Command{}
		addAlignFlags(cmd)

		p := alignParams(cmd, cfg)
		assert.Equal(t, 11.0, p.GapOpen)
		assert.Equal(t, 1.0, p.GapExtend)

		require.NotNil(t, p.Matrix)
		score, ok := p.Matrix.Score('A', 'A')
		require.True(t, ok)
		assert.Equal(t, 5.0, score)
	})

	t.Run("explicit flags win", func(t *testing.T) {
		cmd := &cobra.Command{}
		addAlignFlags(cmd)
		require.NoError(t, cmd.Flags().Set("alphabet", "nucleotide"))
		require.NoError(t, cmd.Flags().Set("match", "5"))
		require.NoError(t, cmd.Flags().Set("mismatch", "-4"))
		require.NoError(t, cmd.Flags().Set("gap-open", "10"))

		p := alignParams(cmd, cfg)
		assert.Equal(t, 10.0, p.GapOpen)
		assert.Equal(t, 2.0, p.GapExtend)

		match, ok := p.Matrix.Score('A', 'A')
		require.True(t, ok)
		assert.Equal(t, 5.0, match)

		mismatch, ok := p.Matrix.Score('A', 'C')
		require.True(t, ok)
		assert.Equal(t, -4.0, mismatch)
	})
}
