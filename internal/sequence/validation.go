package sequence

import "fmt"

// SequenceError is the base error type for sequence and profile operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence has no residues.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one residue"
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidResidueError is returned when a character outside the residue
// alphabet is encountered.
type InvalidResidueError struct {
	Position int
	Found    rune
}

func (e *InvalidResidueError) Error() string {
	return fmt.Sprintf("invalid residue '%c' at position %d", e.Found, e.Position)
}

func (e *InvalidResidueError) IsSequenceError() {}

// EmptyProfileError is returned when a profile is built with no rows.
type EmptyProfileError struct{}

func (e *EmptyProfileError) Error() string {
	return "profile must have at least one sequence"
}

func (e *EmptyProfileError) IsSequenceError() {}

// ProfileShapeError is returned when profile rows have unequal lengths.
type ProfileShapeError struct {
	Index int
	Want  int
	Got   int
}

func (e *ProfileShapeError) Error() string {
	return fmt.Sprintf("sequence %d has length %d, want %d", e.Index, e.Got, e.Want)
}

func (e *ProfileShapeError) IsSequenceError() {}

// ValidateResidues validates that a string contains only residue letters,
// the gap symbol, or the translation stop symbol.
func ValidateResidues(residues string) error {
	for i, c := range residues {
		if !IsValidResidue(c) {
			return &InvalidResidueError{Position: i, Found: c}
		}
	}
	return nil
}

// IsValidResidue checks if a character is an uppercase residue letter, the
// gap symbol, or the translation stop symbol.
func IsValidResidue(c rune) bool {
	return (c >= 'A' && c <= 'Z') || c == rune(Gap) || c == '*'
}

// IsGap checks if a byte is the gap symbol.
func IsGap(b byte) bool {
	return b == Gap
}
