package align

import (
	"fmt"

	"github.com/wasade/pairalign/internal/sequence"
)

// SubstitutionMatrix scores pairs of residues. Implementations are expected
// to be symmetric in their arguments.
type SubstitutionMatrix interface {
	// Score returns the score for a residue pair, or false if the pair is
	// not covered by the matrix.
	Score(a, b byte) (float64, bool)
	// Contains reports whether a residue has any defined scores.
	Contains(sym byte) bool
}

// UnknownSymbolError is returned when profile residues have no defined
// substitution score. It usually means the matrix does not fit the sequence
// type, such as a nucleotide matrix applied to protein sequences.
type UnknownSymbolError struct {
	Symbols []byte
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("substitution matrix does not cover symbol(s) %q", string(e.Symbols))
}

// SubstitutionScore scores one profile column against another as the mean
// over every ordered residue pair drawn from the two columns. Pairs with a
// gap on either side contribute gapScore instead of a matrix lookup.
func SubstitutionScore(colA, colB []byte, m SubstitutionMatrix, gapScore float64) (float64, error) {
	total := 0.0
	for _, a := range colA {
		for _, b := range colB {
			if sequence.IsGap(a) || sequence.IsGap(b) {
				total += gapScore
				continue
			}

			v, ok := m.Score(a, b)
			if !ok {
				return 0, unknownSymbols(colA, colB, m)
			}
			total += v
		}
	}
	return total / float64(len(colA)*len(colB)), nil
}

// unknownSymbols collects the residues of both columns that the matrix does
// not cover, in column order without duplicates.
func unknownSymbols(colA, colB []byte, m SubstitutionMatrix) *UnknownSymbolError {
	seen := make(map[byte]bool)
	var missing []byte

	for _, col := range [][]byte{colA, colB} {
		for _, sym := range col {
			if sequence.IsGap(sym) || m.Contains(sym) || seen[sym] {
				continue
			}
			seen[sym] = true
			missing = append(missing, sym)
		}
	}

	return &UnknownSymbolError{Symbols: missing}
}
