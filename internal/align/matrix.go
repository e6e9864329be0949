// Package align implements profile-vs-profile pairwise alignment by dynamic
// programming, in global (Needleman-Wunsch) and local (Smith-Waterman) modes
// with affine gap scoring.
//
// Matrices are laid out with the second profile down the rows and the first
// profile across the columns. Gap opens and extends are distinguished by
// inspecting the predecessor cell's recorded move rather than by carrying
// separate gap matrices; this matches the full affine recurrence whenever
// the open penalty is at least the extend penalty.
package align

import (
	"fmt"
	"math"
	"strings"
)

// Move encodes one traceback step. The numeric values are fixed: they are
// written into traceback matrices and must stay stable across versions.
type Move int8

const (
	// End marks the matrix origin and, in local mode, any cell where no
	// move beat the zero restart.
	End Move = 0
	// Diagonal consumes a column from both profiles.
	Diagonal Move = 1
	// Up consumes a column from the second profile, gapping the first.
	Up Move = 2
	// Left consumes a column from the first profile, gapping the second.
	Left Move = 3
	// Uninitialized marks interior cells the recurrence has not reached.
	Uninitialized Move = -1
)

func (m Move) String() string {
	switch m {
	case End:
		return "end"
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	case Uninitialized:
		return "uninitialized"
	default:
		return "unknown"
	}
}

// Mode selects the alignment strategy.
type Mode int

const (
	// Local represents Smith-Waterman local alignment
	Local Mode = iota
	// Global represents Needleman-Wunsch global alignment
	Global
)

func (m Mode) String() string {
	switch m {
	case Local:
		return "local"
	case Global:
		return "global"
	default:
		return "unknown"
	}
}

// ScoreMatrix is a dense rows x cols matrix of alignment scores backed by a
// single contiguous slice.
type ScoreMatrix struct {
	rows  int
	cols  int
	cells []float64
}

// NewScoreMatrix creates a zeroed rows x cols score matrix.
func NewScoreMatrix(rows, cols int) *ScoreMatrix {
	return &ScoreMatrix{
		rows:  rows,
		cols:  cols,
		cells: make([]float64, rows*cols),
	}
}

// Rows returns the number of rows.
func (m *ScoreMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *ScoreMatrix) Cols() int { return m.cols }

// At returns the score at row i, column j.
func (m *ScoreMatrix) At(i, j int) float64 {
	return m.cells[i*m.cols+j]
}

// Set stores a score at row i, column j.
func (m *ScoreMatrix) Set(i, j int, v float64) {
	m.cells[i*m.cols+j] = v
}

// Argmax returns the position of the highest score, scanning row-major and
// keeping the earliest cell on exact ties.
func (m *ScoreMatrix) Argmax() (int, int) {
	best := math.Inf(-1)
	row, col := 0, 0
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if v := m.cells[i*m.cols+j]; v > best {
				best = v
				row, col = i, j
			}
		}
	}
	return row, col
}

func (m *ScoreMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.cells[i*m.cols+j])
		}
	}
	return sb.String()
}

// TracebackMatrix is a dense rows x cols matrix of Move codes backed by a
// single contiguous slice.
type TracebackMatrix struct {
	rows  int
	cols  int
	cells []Move
}

// NewTracebackMatrix creates a rows x cols traceback matrix with every cell
// marked Uninitialized.
func NewTracebackMatrix(rows, cols int) *TracebackMatrix {
	cells := make([]Move, rows*cols)
	for i := range cells {
		cells[i] = Uninitialized
	}
	return &TracebackMatrix{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (m *TracebackMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *TracebackMatrix) Cols() int { return m.cols }

// At returns the move at row i, column j.
func (m *TracebackMatrix) At(i, j int) Move {
	return m.cells[i*m.cols+j]
}

// Set stores a move at row i, column j.
func (m *TracebackMatrix) Set(i, j int, v Move) {
	m.cells[i*m.cols+j] = v
}

func (m *TracebackMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", m.cells[i*m.cols+j])
		}
	}
	return sb.String()
}
