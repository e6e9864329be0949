package sequence

import "strings"

// Alignable is satisfied by inputs that can be aligned: a single Sequence
// or a multi-sequence Profile.
type Alignable interface {
	AsProfile() *Profile
}

// Profile is a rectangular stack of equal-length sequences treated as one
// alignment input. Column i of the profile is the vertical slice of residue
// i across all rows.
type Profile struct {
	seqs   []*Sequence
	length int
}

// NewProfile creates a profile from one or more equal-length sequences.
func NewProfile(seqs ...*Sequence) (*Profile, error) {
	if len(seqs) == 0 {
		return nil, &EmptyProfileError{}
	}

	length := seqs[0].Len()
	for i, s := range seqs[1:] {
		if s.Len() != length {
			return nil, &ProfileShapeError{Index: i + 1, Want: length, Got: s.Len()}
		}
	}

	return &Profile{seqs: seqs, length: length}, nil
}

// Len returns the number of columns.
func (p *Profile) Len() int {
	return p.length
}

// SequenceCount returns the number of rows.
func (p *Profile) SequenceCount() int {
	return len(p.seqs)
}

// Sequences returns the profile rows in order.
func (p *Profile) Sequences() []*Sequence {
	return p.seqs
}

// Column returns the residues of column i, one byte per row.
func (p *Profile) Column(i int) []byte {
	col := make([]byte, len(p.seqs))
	for r, s := range p.seqs {
		col[r] = s.Residues[i]
	}
	return col
}

// AsProfile returns the profile itself.
func (p *Profile) AsProfile() *Profile {
	return p
}

// String renders the profile one row per line.
func (p *Profile) String() string {
	rows := make([]string, len(p.seqs))
	for i, s := range p.seqs {
		rows[i] = s.Residues
	}
	return strings.Join(rows, "\n")
}
