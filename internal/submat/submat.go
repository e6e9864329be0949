// Package submat provides substitution score matrices for alignment.
//
// A substitution matrix maps ordered pairs of residue symbols to
// real-valued scores. Nucleotide matrices are built on demand from
// match/mismatch scores; the common protein matrices (BLOSUM50,
// BLOSUM62) ship embedded.
package submat

import (
	"fmt"
	"sort"
	"strings"
)

// Matrix is a symbol-pair substitution score table.
type Matrix struct {
	name   string
	scores map[byte]map[byte]float64
}

// New creates a matrix from an explicit score table.
func New(name string, scores map[byte]map[byte]float64) *Matrix {
	return &Matrix{name: name, scores: scores}
}

// NewNucleotide creates a nucleotide matrix over A, C, G, T where every
// identical pair scores match and every other pair scores mismatch.
func NewNucleotide(match, mismatch float64) *Matrix {
	bases := []byte("ACGT")
	scores := make(map[byte]map[byte]float64, len(bases))
	for _, b1 := range bases {
		row := make(map[byte]float64, len(bases))
		for _, b2 := range bases {
			if b1 == b2 {
				row[b2] = match
			} else {
				row[b2] = mismatch
			}
		}
		scores[b1] = row
	}
	return &Matrix{name: "nucleotide", scores: scores}
}

// ByName returns an embedded protein matrix by its lowercase name.
func ByName(name string) (*Matrix, error) {
	switch strings.ToLower(name) {
	case "blosum50":
		return Blosum50(), nil
	case "blosum62":
		return Blosum62(), nil
	default:
		return nil, fmt.Errorf("unknown substitution matrix %q", name)
	}
}

// Name returns the matrix name.
func (m *Matrix) Name() string {
	return m.name
}

// Score returns the score for an ordered symbol pair and whether the
// pair is defined.
func (m *Matrix) Score(a, b byte) (float64, bool) {
	row, ok := m.scores[a]
	if !ok {
		return 0, false
	}
	s, ok := row[b]
	return s, ok
}

// Contains reports whether a symbol has any defined scores.
func (m *Matrix) Contains(sym byte) bool {
	_, ok := m.scores[sym]
	return ok
}

// Symbols returns the defined symbols in sorted order.
func (m *Matrix) Symbols() []byte {
	syms := make([]byte, 0, len(m.scores))
	for s := range m.scores {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix { name: %s, symbols: %s }", m.name, string(m.Symbols()))
}

// fromTable builds a lookup matrix from a symbol ordering and a square
// table of scores in that order.
func fromTable(name string, symbols []byte, table [][]float64) *Matrix {
	scores := make(map[byte]map[byte]float64, len(symbols))
	for i, a := range symbols {
		row := make(map[byte]float64, len(symbols))
		for j, b := range symbols {
			row[b] = table[i][j]
		}
		scores[a] = row
	}
	return &Matrix{name: name, scores: scores}
}
