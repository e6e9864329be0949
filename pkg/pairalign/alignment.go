package pairalign

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wasade/pairalign/internal/align"
	"github.com/wasade/pairalign/internal/sequence"
)

// Alignment is the packaged result of one alignment call: the two aligned
// profiles, the score, and the consumed spans of the original inputs.
type Alignment struct {
	// A and B are gap-padded aligned copies of the inputs, one sequence
	// per original row, with gaps inserted in lockstep per profile.
	A *sequence.Profile
	B *sequence.Profile

	Score float64

	// StartA and EndA delimit the consumed span of the first input,
	// 0-based inclusive. An empty local alignment yields (0, -1).
	StartA int
	EndA   int
	StartB int
	EndB   int

	Mode align.Mode
}

// newAlignment wraps a raw traceback result, assigning positional default
// identifiers to unnamed sequences: rows of A first, then rows of B.
func newAlignment(pa, pb *sequence.Profile, res align.Result, mode align.Mode) (*Alignment, error) {
	outA := make([]*sequence.Sequence, len(res.AlignedA))
	for i, residues := range res.AlignedA {
		id := pa.Sequences()[i].ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		outA[i] = &sequence.Sequence{ID: id, Residues: string(residues)}
	}

	outB := make([]*sequence.Sequence, len(res.AlignedB))
	for i, residues := range res.AlignedB {
		id := pb.Sequences()[i].ID
		if id == "" {
			id = strconv.Itoa(len(res.AlignedA) + i)
		}
		outB[i] = &sequence.Sequence{ID: id, Residues: string(residues)}
	}

	alignedA, err := sequence.NewProfile(outA...)
	if err != nil {
		return nil, err
	}
	alignedB, err := sequence.NewProfile(outB...)
	if err != nil {
		return nil, err
	}

	return &Alignment{
		A:      alignedA,
		B:      alignedB,
		Score:  res.Score,
		StartA: res.StartA,
		EndA:   res.StartA + res.ConsumedA - 1,
		StartB: res.StartB,
		EndB:   res.StartB + res.ConsumedB - 1,
		Mode:   mode,
	}, nil
}

// Length returns the number of aligned columns.
func (a *Alignment) Length() int {
	return a.A.Len()
}

// columnClass reports one aligned column as a match ('|'), a gap column
// (' '), or a mismatch ('.'). A match requires every residue across both
// profiles to agree with no gaps present.
func (a *Alignment) columnClass(i int) byte {
	colA := a.A.Column(i)
	colB := a.B.Column(i)

	first := colA[0]
	allEqual := true
	for _, c := range colA {
		if sequence.IsGap(c) {
			return ' '
		}
		if c != first {
			allEqual = false
		}
	}
	for _, c := range colB {
		if sequence.IsGap(c) {
			return ' '
		}
		if c != first {
			allEqual = false
		}
	}

	if allEqual {
		return '|'
	}
	return '.'
}

// Identity returns the fraction of aligned columns that are matches.
func (a *Alignment) Identity() float64 {
	if a.Length() == 0 {
		return 0.0
	}
	return float64(a.MatchCount()) / float64(a.Length())
}

// MatchCount returns the number of match columns.
func (a *Alignment) MatchCount() int {
	count := 0
	for i := 0; i < a.Length(); i++ {
		if a.columnClass(i) == '|' {
			count++
		}
	}
	return count
}

// MismatchCount returns the number of columns where both profiles hold
// residues but they disagree.
func (a *Alignment) MismatchCount() int {
	count := 0
	for i := 0; i < a.Length(); i++ {
		if a.columnClass(i) == '.' {
			count++
		}
	}
	return count
}

// isGapColumn reports whether column i of p is entirely gaps. Inserted gap
// columns always are; gaps carried in from a pre-aligned input may not be.
func isGapColumn(p *sequence.Profile, i int) bool {
	for _, c := range p.Column(i) {
		if !sequence.IsGap(c) {
			return false
		}
	}
	return true
}

// gapColumns counts the all-gap columns of p.
func gapColumns(p *sequence.Profile) int {
	count := 0
	for i := 0; i < p.Len(); i++ {
		if isGapColumn(p, i) {
			count++
		}
	}
	return count
}

// GapsA returns the number of gap columns in the first aligned profile.
func (a *Alignment) GapsA() int {
	return gapColumns(a.A)
}

// GapsB returns the number of gap columns in the second aligned profile.
func (a *Alignment) GapsB() int {
	return gapColumns(a.B)
}

// TotalGaps returns the number of gap columns across both profiles.
func (a *Alignment) TotalGaps() int {
	return a.GapsA() + a.GapsB()
}

// GapOpenings counts the distinct gap runs across both aligned profiles.
func (a *Alignment) GapOpenings() int {
	openings := 0
	inGapA, inGapB := false, false

	for i := 0; i < a.Length(); i++ {
		if isGapColumn(a.A, i) {
			if !inGapA {
				openings++
				inGapA = true
			}
		} else {
			inGapA = false
		}

		if isGapColumn(a.B, i) {
			if !inGapB {
				openings++
				inGapB = true
			}
		} else {
			inGapB = false
		}
	}

	return openings
}

// CIGAR generates a CIGAR string over aligned columns: M for matches, X for
// mismatches, I for gap columns in the first profile, D for gap columns in
// the second.
func (a *Alignment) CIGAR() string {
	if a.Length() == 0 {
		return ""
	}

	var cigar strings.Builder
	currentOp := byte(0)
	count := 0

	for i := 0; i < a.Length(); i++ {
		var op byte
		switch {
		case isGapColumn(a.A, i):
			op = 'I'
		case isGapColumn(a.B, i):
			op = 'D'
		case a.columnClass(i) == '|':
			op = 'M'
		default:
			op = 'X'
		}

		if op == currentOp {
			count++
		} else {
			if count > 0 {
				fmt.Fprintf(&cigar, "%d%c", count, currentOp)
			}
			currentOp = op
			count = 1
		}
	}

	if count > 0 {
		fmt.Fprintf(&cigar, "%d%c", count, currentOp)
	}

	return cigar.String()
}

// Format renders the alignment with one line per sequence and a match line
// between the two profiles.
func (a *Alignment) Format() string {
	var matchLine strings.Builder
	for i := 0; i < a.Length(); i++ {
		matchLine.WriteByte(a.columnClass(i))
	}

	var sb strings.Builder
	for _, s := range a.A.Sequences() {
		fmt.Fprintf(&sb, "%-10s %s\n", s.ID, s.Residues)
	}
	fmt.Fprintf(&sb, "%-10s %s\n", "", matchLine.String())
	for _, s := range a.B.Sequences() {
		fmt.Fprintf(&sb, "%-10s %s\n", s.ID, s.Residues)
	}
	fmt.Fprintf(&sb, "Score: %.1f\nIdentity: %.1f%%\nCIGAR: %s",
		a.Score, a.Identity()*100, a.CIGAR())

	return sb.String()
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment { mode: %s, score: %.1f, identity: %.1f%%, length: %d }",
		a.Mode, a.Score, a.Identity()*100, a.Length())
}
