package align

import "github.com/wasade/pairalign/internal/sequence"

// ScoreOnly computes the best alignment score without materializing the
// full matrices, keeping only two rows of scores and moves. It returns the
// same score as FillMatrices followed by Traceback from the appropriate
// start cell.
func ScoreOnly(a, b *sequence.Profile, mode Mode, p Params) (float64, error) {
	lenA, lenB := a.Len(), b.Len()

	prev := make([]float64, lenA+1)
	curr := make([]float64, lenA+1)
	prevMoves := make([]Move, lenA+1)
	currMoves := make([]Move, lenA+1)

	// Border row, mirroring InitMatrices.
	borderMove := Left
	if mode == Local {
		borderMove = End
	}
	for j := 1; j <= lenA; j++ {
		prevMoves[j] = borderMove
		if mode == Global && p.PenalizeTerminalGaps {
			prev[j] = -p.GapOpen - float64(j-1)*p.GapExtend
		}
	}

	colsA := make([][]byte, lenA)
	for j := range colsA {
		colsA[j] = a.Column(j)
	}

	best := 0.0

	for i := 1; i <= lenB; i++ {
		colB := b.Column(i - 1)

		// Border column for this row.
		if mode == Local {
			curr[0] = 0
			currMoves[0] = End
		} else {
			currMoves[0] = Up
			if p.PenalizeTerminalGaps {
				curr[0] = -p.GapOpen - float64(i-1)*p.GapExtend
			} else {
				curr[0] = 0
			}
		}

		for j := 1; j <= lenA; j++ {
			sub, err := SubstitutionScore(colsA[j-1], colB, p.Matrix, p.GapSubstitution)
			if err != nil {
				return 0, err
			}

			diag := prev[j-1] + sub

			var up float64
			switch {
			case mode == Global && !p.PenalizeTerminalGaps && j == lenA:
				up = prev[j]
			case prevMoves[j] == Up:
				up = prev[j] - p.GapExtend
			default:
				up = prev[j] - p.GapOpen
			}

			var left float64
			switch {
			case mode == Global && !p.PenalizeTerminalGaps && i == lenB:
				left = curr[j-1]
			case currMoves[j-1] == Left:
				left = curr[j-1] - p.GapExtend
			default:
				left = curr[j-1] - p.GapOpen
			}

			score := left
			move := Left
			if diag > score {
				score = diag
				move = Diagonal
			}
			if up > score {
				score = up
				move = Up
			}
			if mode == Local && score <= 0 {
				score = 0
				move = End
			}

			curr[j] = score
			currMoves[j] = move

			if mode == Local && score > best {
				best = score
			}
		}

		prev, curr = curr, prev
		prevMoves, currMoves = currMoves, prevMoves
	}

	if mode == Local {
		return best, nil
	}
	return prev[lenA], nil
}
