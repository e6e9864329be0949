// Package sequence provides validated biological sequence and profile types
// used as alignment inputs.
//
// A Sequence holds a single protein or nucleotide string. A Profile is a
// rectangular stack of equal-length sequences; a lone sequence behaves as
// the degenerate single-row profile. Residues are validated at construction
// time only.
package sequence

import (
	"fmt"
	"strings"
)

// Gap is the symbol marking an alignment gap.
const Gap byte = '-'

// Sequence represents a validated protein or nucleotide sequence.
type Sequence struct {
	ID       string
	Residues string
}

// New creates a sequence, uppercasing and validating the residues.
func New(residues string) (*Sequence, error) {
	normalized := strings.ToUpper(residues)

	if len(normalized) == 0 {
		return nil, &EmptySequenceError{}
	}

	if err := ValidateResidues(normalized); err != nil {
		return nil, err
	}

	return &Sequence{Residues: normalized}, nil
}

// WithID creates a sequence with an identifier.
func WithID(residues, id string) (*Sequence, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ID cannot be empty")
	}

	seq, err := New(residues)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	return seq, nil
}

// Len returns the number of residues, counting gaps.
func (s *Sequence) Len() int {
	return len(s.Residues)
}

// At returns the residue at index i, or false if out of bounds.
func (s *Sequence) At(i int) (byte, bool) {
	if i < 0 || i >= len(s.Residues) {
		return 0, false
	}
	return s.Residues[i], true
}

// Degap returns a copy of the sequence with all gap symbols removed.
func (s *Sequence) Degap() *Sequence {
	return &Sequence{
		ID:       s.ID,
		Residues: strings.ReplaceAll(s.Residues, string(Gap), ""),
	}
}

// IsGapped reports whether the sequence contains any gap symbols.
func (s *Sequence) IsGapped() bool {
	return strings.IndexByte(s.Residues, Gap) >= 0
}

// AsProfile wraps the sequence as a single-row profile.
func (s *Sequence) AsProfile() *Profile {
	return &Profile{seqs: []*Sequence{s}, length: len(s.Residues)}
}

// String returns the sequence in FASTA-like form when an ID is set.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Residues)
	}
	return s.Residues
}

// Equal checks residue equality with another sequence, ignoring IDs.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.Residues == other.Residues
}
