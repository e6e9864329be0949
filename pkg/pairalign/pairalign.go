// Package pairalign provides pairwise alignment of biological sequences and
// profiles.
//
// Alignments run in global (Needleman-Wunsch) or local (Smith-Waterman)
// mode under an affine gap model, scoring profile columns as the mean over
// all residue cross-pairs.
//
// Example usage:
//
//	a, _ := pairalign.NewSequence("HEAGAWGHEE")
//	b, _ := pairalign.NewSequence("PAWHEAE")
//
//	aln, err := pairalign.GlobalProtein(a, b, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(aln.Format())
package pairalign

import (
	"fmt"

	"github.com/wasade/pairalign/internal/align"
	"github.com/wasade/pairalign/internal/sequence"
	"github.com/wasade/pairalign/internal/submat"
)

// Re-export types for convenience
type (
	Sequence           = sequence.Sequence
	Profile            = sequence.Profile
	Alignable          = sequence.Alignable
	Params             = align.Params
	Mode               = align.Mode
	SubstitutionMatrix = align.SubstitutionMatrix
	UnknownSymbolError = align.UnknownSymbolError
	ProfileShapeError  = sequence.ProfileShapeError
)

// Constants
const (
	ModeLocal  = align.Local
	ModeGlobal = align.Global
)

// Standard scoring defaults per alphabet.
const (
	DefaultProteinGapOpen      = 11.0
	DefaultProteinGapExtend    = 1.0
	DefaultNucleotideMatch     = 2.0
	DefaultNucleotideMismatch  = -3.0
	DefaultNucleotideGapOpen   = 5.0
	DefaultNucleotideGapExtend = 2.0
)

// InvalidModeError is returned when local alignment is requested with a
// multi-sequence profile as one of the operands.
type InvalidModeError struct {
	SequenceCount int
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("local alignment requires single sequences, got a profile of %d", e.SequenceCount)
}

// NewSequence creates a validated sequence.
func NewSequence(residues string) (*Sequence, error) {
	return sequence.New(residues)
}

// NewSequenceWithID creates a validated sequence with an identifier.
func NewSequenceWithID(residues, id string) (*Sequence, error) {
	return sequence.WithID(residues, id)
}

// NewProfile creates a profile from one or more equal-length sequences.
func NewProfile(seqs ...*Sequence) (*Profile, error) {
	return sequence.NewProfile(seqs...)
}

// Blosum50 returns the BLOSUM50 protein substitution matrix.
func Blosum50() SubstitutionMatrix {
	return submat.Blosum50()
}

// Blosum62 returns the BLOSUM62 protein substitution matrix.
func Blosum62() SubstitutionMatrix {
	return submat.Blosum62()
}

// NucleotideMatrix builds a match/mismatch matrix over A, C, G and T.
func NucleotideMatrix(match, mismatch float64) SubstitutionMatrix {
	return submat.NewNucleotide(match, mismatch)
}

// MatrixByName looks up a named protein matrix ("blosum50" or "blosum62").
func MatrixByName(name string) (SubstitutionMatrix, error) {
	m, err := submat.ByName(name)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// DefaultProtein returns the standard protein parameters: BLOSUM50 scoring
// with gap open 11 and gap extend 1.
func DefaultProtein() *Params {
	return &Params{
		GapOpen:   DefaultProteinGapOpen,
		GapExtend: DefaultProteinGapExtend,
		Matrix:    submat.Blosum50(),
	}
}

// DefaultNucleotide returns the standard nucleotide parameters: match 2,
// mismatch -3, gap open 5, gap extend 2.
func DefaultNucleotide() *Params {
	return &Params{
		GapOpen:   DefaultNucleotideGapOpen,
		GapExtend: DefaultNucleotideGapExtend,
		Matrix:    submat.NewNucleotide(DefaultNucleotideMatch, DefaultNucleotideMismatch),
	}
}

// checkParams validates facade parameters before they reach the engine.
func checkParams(p *Params) (align.Params, error) {
	if p == nil || p.Matrix == nil {
		return align.Params{}, fmt.Errorf("a substitution matrix is required")
	}
	if p.GapOpen < 0 || p.GapExtend < 0 {
		return align.Params{}, fmt.Errorf("gap penalties must be non-negative")
	}
	return *p, nil
}

// run validates inputs, fills the matrices, and packages the traceback.
func run(a, b Alignable, mode align.Mode, p align.Params) (*Alignment, error) {
	pa, pb := a.AsProfile(), b.AsProfile()

	if mode == align.Local {
		if n := pa.SequenceCount(); n > 1 {
			return nil, &InvalidModeError{SequenceCount: n}
		}
		if n := pb.SequenceCount(); n > 1 {
			return nil, &InvalidModeError{SequenceCount: n}
		}
	}

	sm, tm, err := align.FillMatrices(pa, pb, mode, p)
	if err != nil {
		return nil, err
	}

	startRow, startCol := sm.Rows()-1, sm.Cols()-1
	if mode == align.Local {
		startRow, startCol = sm.Argmax()
	}

	res := align.Traceback(tm, sm, pa, pb, startRow, startCol)
	return newAlignment(pa, pb, res, mode)
}

// Global aligns two profiles over their full lengths. The params must carry
// a substitution matrix; terminal gaps are free unless
// Params.PenalizeTerminalGaps is set.
func Global(a, b Alignable, p *Params) (*Alignment, error) {
	ep, err := checkParams(p)
	if err != nil {
		return nil, err
	}
	return run(a, b, align.Global, ep)
}

// Local aligns the best-scoring subregions of two sequences. Profile
// operands with more than one sequence are rejected with InvalidModeError.
func Local(a, b Alignable, p *Params) (*Alignment, error) {
	ep, err := checkParams(p)
	if err != nil {
		return nil, err
	}
	return run(a, b, align.Local, ep)
}

// GlobalProtein globally aligns protein inputs, using DefaultProtein when p
// is nil and BLOSUM50 when p carries no matrix.
func GlobalProtein(a, b Alignable, p *Params) (*Alignment, error) {
	return Global(a, b, withDefaults(p, DefaultProtein))
}

// LocalProtein locally aligns protein inputs, defaulting like GlobalProtein.
func LocalProtein(a, b Alignable, p *Params) (*Alignment, error) {
	return Local(a, b, withDefaults(p, DefaultProtein))
}

// GlobalNucleotide globally aligns nucleotide inputs, using
// DefaultNucleotide when p is nil and match 2 / mismatch -3 scoring when p
// carries no matrix.
func GlobalNucleotide(a, b Alignable, p *Params) (*Alignment, error) {
	return Global(a, b, withDefaults(p, DefaultNucleotide))
}

// LocalNucleotide locally aligns nucleotide inputs, defaulting like
// GlobalNucleotide.
func LocalNucleotide(a, b Alignable, p *Params) (*Alignment, error) {
	return Local(a, b, withDefaults(p, DefaultNucleotide))
}

// withDefaults fills in missing parameters from the given default set.
func withDefaults(p *Params, defaults func() *Params) *Params {
	if p == nil {
		return defaults()
	}
	if p.Matrix == nil {
		q := *p
		q.Matrix = defaults().Matrix
		return &q
	}
	return p
}

// GlobalScore computes the global alignment score without a traceback,
// using two-row storage instead of full matrices.
func GlobalScore(a, b Alignable, p *Params) (float64, error) {
	ep, err := checkParams(p)
	if err != nil {
		return 0, err
	}
	return align.ScoreOnly(a.AsProfile(), b.AsProfile(), align.Global, ep)
}

// LocalScore computes the local alignment score without a traceback. As
// with Local, multi-sequence profiles are rejected.
func LocalScore(a, b Alignable, p *Params) (float64, error) {
	ep, err := checkParams(p)
	if err != nil {
		return 0, err
	}

	pa, pb := a.AsProfile(), b.AsProfile()
	if n := pa.SequenceCount(); n > 1 {
		return 0, &InvalidModeError{SequenceCount: n}
	}
	if n := pb.SequenceCount(); n > 1 {
		return 0, &InvalidModeError{SequenceCount: n}
	}

	return align.ScoreOnly(pa, pb, align.Local, ep)
}

// Version returns the library version.
func Version() string {
	return "1.0.0"
}

// Info returns information about the library.
func Info() string {
	return fmt.Sprintf(`pairalign v%s - Pairwise Sequence Alignment Library

Profile-aware pairwise alignment by dynamic programming.

Features:
  - Needleman-Wunsch global alignment
  - Smith-Waterman local alignment
  - Affine gap penalties with optional free terminal gaps
  - Profile-vs-profile scoring by column averaging
  - BLOSUM50/BLOSUM62 and match/mismatch substitution matrices
  - Deterministic tie-breaking
  - Memory-efficient score-only mode

For more information, see: https://github.com/wasade/pairalign
`, Version())
}
