package align

import (
	"fmt"

	"github.com/wasade/pairalign/internal/sequence"
)

// Result carries the raw product of a traceback walk: one aligned residue
// slice per input row, the score at the walk's start cell, the 0-based
// offsets where the recovered alignment begins in each profile, and the
// number of columns consumed from each.
type Result struct {
	AlignedA  [][]byte
	AlignedB  [][]byte
	Score     float64
	StartA    int
	StartB    int
	ConsumedA int
	ConsumedB int
}

// Traceback walks the traceback matrix backward from (startRow, startCol),
// rebuilding the aligned profiles column by column until it reaches an End
// cell. Gap columns are inserted in lockstep across all rows of the gapped
// profile. The reported score is taken from the start cell even when the
// walk stops early at an interior End.
func Traceback(tm *TracebackMatrix, sm *ScoreMatrix, a, b *sequence.Profile, startRow, startCol int) Result {
	seqsA := a.Sequences()
	seqsB := b.Sequences()

	alignedA := make([][]byte, len(seqsA))
	alignedB := make([][]byte, len(seqsB))

	row, col := startRow, startCol
	consumedA, consumedB := 0, 0

walk:
	for {
		switch move := tm.At(row, col); move {
		case End:
			break walk

		case Diagonal:
			for k, s := range seqsA {
				alignedA[k] = append(alignedA[k], s.Residues[col-1])
			}
			for k, s := range seqsB {
				alignedB[k] = append(alignedB[k], s.Residues[row-1])
			}
			row--
			col--
			consumedA++
			consumedB++

		case Up:
			for k := range alignedA {
				alignedA[k] = append(alignedA[k], sequence.Gap)
			}
			for k, s := range seqsB {
				alignedB[k] = append(alignedB[k], s.Residues[row-1])
			}
			row--
			consumedB++

		case Left:
			for k, s := range seqsA {
				alignedA[k] = append(alignedA[k], s.Residues[col-1])
			}
			for k := range alignedB {
				alignedB[k] = append(alignedB[k], sequence.Gap)
			}
			col--
			consumedA++

		default:
			panic(fmt.Sprintf("align: invalid traceback move %d at (%d, %d)", move, row, col))
		}
	}

	for k := range alignedA {
		reverseBytes(alignedA[k])
	}
	for k := range alignedB {
		reverseBytes(alignedB[k])
	}

	return Result{
		AlignedA:  alignedA,
		AlignedB:  alignedB,
		Score:     sm.At(startRow, startCol),
		StartA:    col,
		StartB:    row,
		ConsumedA: consumedA,
		ConsumedB: consumedB,
	}
}

// reverseBytes reverses a byte slice in place.
func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
