package align

import (
	"math"

	"github.com/wasade/pairalign/internal/sequence"
)

// Params collects the scoring parameters for one alignment call. Gap
// penalties are given as positive costs and subtracted during the fill.
type Params struct {
	// GapOpen is charged when a gap run starts. It already includes the
	// cost of the run's first position.
	GapOpen float64
	// GapExtend is charged for each additional position in a gap run.
	GapExtend float64
	// Matrix scores residue pairs between profile columns.
	Matrix SubstitutionMatrix
	// GapSubstitution replaces the matrix lookup when either residue of a
	// cross-pair is a gap. Typically zero.
	GapSubstitution float64
	// PenalizeTerminalGaps charges leading and trailing gap runs in global
	// mode at the usual affine rates instead of making them free.
	PenalizeTerminalGaps bool
}

// scoredMove pairs a candidate score with the move that would produce it.
type scoredMove struct {
	score float64
	move  Move
}

// firstLargest returns the earliest candidate holding the largest score.
// A later candidate replaces the running best only when strictly greater,
// so the input order encodes the tie-break priority.
func firstLargest(candidates ...scoredMove) scoredMove {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}
	return best
}

// gapCost returns the cost of stepping into a gap from the predecessor cell
// (i, j): the extend rate when that cell's recorded move already runs in
// dir, the open rate otherwise.
func gapCost(tm *TracebackMatrix, i, j int, dir Move, open, extend float64) float64 {
	if tm.At(i, j) == dir {
		return extend
	}
	return open
}

// InitMatrices allocates the score and traceback matrices for aligning a
// (across the columns) against b (down the rows) and writes the mode's
// border values. Interior traceback cells stay Uninitialized for the fill
// to overwrite.
func InitMatrices(a, b *sequence.Profile, mode Mode, p Params) (*ScoreMatrix, *TracebackMatrix) {
	rows, cols := b.Len()+1, a.Len()+1
	sm := NewScoreMatrix(rows, cols)
	tm := NewTracebackMatrix(rows, cols)

	tm.Set(0, 0, End)

	if mode == Local {
		for j := 1; j < cols; j++ {
			tm.Set(0, j, End)
		}
		for i := 1; i < rows; i++ {
			tm.Set(i, 0, End)
		}
		return sm, tm
	}

	for j := 1; j < cols; j++ {
		tm.Set(0, j, Left)
		if p.PenalizeTerminalGaps {
			sm.Set(0, j, -p.GapOpen-float64(j-1)*p.GapExtend)
		}
	}
	for i := 1; i < rows; i++ {
		tm.Set(i, 0, Up)
		if p.PenalizeTerminalGaps {
			sm.Set(i, 0, -p.GapOpen-float64(i-1)*p.GapExtend)
		}
	}

	return sm, tm
}

// FillMatrices runs the dynamic programming recurrence over freshly
// initialized matrices and returns them filled. The candidate order fixes
// the tie-break on exact ties: the restart (zero in local mode, never taken
// in global) beats a leftward gap, which beats a diagonal move, which beats
// an upward gap.
func FillMatrices(a, b *sequence.Profile, mode Mode, p Params) (*ScoreMatrix, *TracebackMatrix, error) {
	lenA, lenB := a.Len(), b.Len()
	sm, tm := InitMatrices(a, b, mode, p)

	restart := scoredMove{math.Inf(-1), End}
	if mode == Local {
		restart = scoredMove{0, End}
	}

	colsA := make([][]byte, lenA)
	for j := range colsA {
		colsA[j] = a.Column(j)
	}

	for i := 1; i <= lenB; i++ {
		colB := b.Column(i - 1)

		for j := 1; j <= lenA; j++ {
			sub, err := SubstitutionScore(colsA[j-1], colB, p.Matrix, p.GapSubstitution)
			if err != nil {
				return nil, nil, err
			}

			diag := scoredMove{sm.At(i-1, j-1) + sub, Diagonal}

			var up scoredMove
			if mode == Global && !p.PenalizeTerminalGaps && j == lenA {
				// gaps trailing the first profile are free
				up = scoredMove{sm.At(i-1, j), Up}
			} else {
				up = scoredMove{sm.At(i-1, j) - gapCost(tm, i-1, j, Up, p.GapOpen, p.GapExtend), Up}
			}

			var left scoredMove
			if mode == Global && !p.PenalizeTerminalGaps && i == lenB {
				// gaps trailing the second profile are free
				left = scoredMove{sm.At(i, j-1), Left}
			} else {
				left = scoredMove{sm.At(i, j-1) - gapCost(tm, i, j-1, Left, p.GapOpen, p.GapExtend), Left}
			}

			winner := firstLargest(restart, left, diag, up)
			sm.Set(i, j, winner.score)
			tm.Set(i, j, winner.move)
		}
	}

	return sm, tm, nil
}
