// Package handlers provides HTTP handlers for the pairalign API.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/wasade/pairalign/pkg/pairalign"
)

// AlignRequest represents an alignment request. Each profile holds one or
// more pre-aligned, equal-length sequences. Scoring fields left out fall
// back to the alphabet defaults.
type AlignRequest struct {
	ProfileA []string `json:"profile_a"`
	ProfileB []string `json:"profile_b"`

	// Alphabet selects the scoring defaults: protein (the default) or
	// nucleotide.
	Alphabet string `json:"alphabet"`

	// Matrix names a protein substitution matrix (blosum50 or blosum62).
	Matrix string `json:"matrix"`

	// Match and Mismatch override the nucleotide scores.
	Match    *float64 `json:"match"`
	Mismatch *float64 `json:"mismatch"`

	GapOpen   *float64 `json:"gap_open"`
	GapExtend *float64 `json:"gap_extend"`

	// PenalizeTerminalGaps charges leading and trailing gap runs in
	// global mode instead of leaving them free.
	PenalizeTerminalGaps bool `json:"penalize_terminal_gaps"`
}

// AlignResponse represents the response for an alignment.
type AlignResponse struct {
	AlignedA   []string `json:"aligned_a"`
	AlignedB   []string `json:"aligned_b"`
	IDs        []string `json:"ids"`
	Score      float64  `json:"score"`
	StartA     int      `json:"start_a"`
	EndA       int      `json:"end_a"`
	StartB     int      `json:"start_b"`
	EndB       int      `json:"end_b"`
	Identity   float64  `json:"identity"`
	CIGAR      string   `json:"cigar"`
	Matches    int      `json:"matches"`
	Mismatches int      `json:"mismatches"`
	Gaps       int      `json:"gaps"`
}

// GlobalAlignHandler handles global alignment requests.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	a, err := buildProfile("profile_a", req.ProfileA)
	if err != nil {
		writeError(w, err)
		return
	}

	b, err := buildProfile("profile_b", req.ProfileB)
	if err != nil {
		writeError(w, err)
		return
	}

	p, err := requestParams(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	aln, err := pairalign.Global(a, b, p)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alignResponse(aln))
}

// LocalAlignHandler handles local alignment requests.
func LocalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	a, err := buildProfile("profile_a", req.ProfileA)
	if err != nil {
		writeError(w, err)
		return
	}

	b, err := buildProfile("profile_b", req.ProfileB)
	if err != nil {
		writeError(w, err)
		return
	}

	p, err := requestParams(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	aln, err := pairalign.Local(a, b, p)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alignResponse(aln))
}

// ScoreRequest represents a score-only request.
type ScoreRequest struct {
	AlignRequest

	// Mode is global (the default) or local.
	Mode string `json:"mode"`
}

// ScoreResponse represents the response for an alignment score.
type ScoreResponse struct {
	Score float64 `json:"score"`
}

// AlignmentScoreHandler handles score-only requests, computing the
// alignment score without a traceback.
func AlignmentScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	a, err := buildProfile("profile_a", req.ProfileA)
	if err != nil {
		writeError(w, err)
		return
	}

	b, err := buildProfile("profile_b", req.ProfileB)
	if err != nil {
		writeError(w, err)
		return
	}

	p, err := requestParams(&req.AlignRequest)
	if err != nil {
		writeError(w, err)
		return
	}

	var score float64
	switch strings.ToLower(req.Mode) {
	case "", "global":
		score, err = pairalign.GlobalScore(a, b, p)
	case "local":
		score, err = pairalign.LocalScore(a, b, p)
	default:
		writeError(w, fmt.Errorf("unknown mode %q", req.Mode))
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScoreResponse{Score: score})
}

// buildProfile assembles a validated profile from raw sequence strings.
func buildProfile(field string, rows []string) (*pairalign.Profile, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: at least one sequence is required", field)
	}

	seqs := make([]*pairalign.Sequence, 0, len(rows))
	for i, r := range rows {
		seq, err := pairalign.NewSequence(r)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %v", field, i, err)
		}
		seqs = append(seqs, seq)
	}

	return pairalign.NewProfile(seqs...)
}

// requestParams resolves the request's scoring fields against the alphabet
// defaults.
func requestParams(req *AlignRequest) (*pairalign.Params, error) {
	var p *pairalign.Params

	switch strings.ToLower(req.Alphabet) {
	case "", "protein":
		if req.Match != nil || req.Mismatch != nil {
			return nil, fmt.Errorf("match and mismatch scores apply to the nucleotide alphabet only")
		}
		p = pairalign.DefaultProtein()
		if req.Matrix != "" {
			m, err := pairalign.MatrixByName(req.Matrix)
			if err != nil {
				return nil, err
			}
			p.Matrix = m
		}
	case "nucleotide", "dna":
		if req.Matrix != "" {
			return nil, fmt.Errorf("named matrices apply to the protein alphabet only")
		}
		p = pairalign.DefaultNucleotide()
		if req.Match != nil || req.Mismatch != nil {
			match := pairalign.DefaultNucleotideMatch
			mismatch := pairalign.DefaultNucleotideMismatch
			if req.Match != nil {
				match = *req.Match
			}
			if req.Mismatch != nil {
				mismatch = *req.Mismatch
			}
			p.Matrix = pairalign.NucleotideMatrix(match, mismatch)
		}
	default:
		return nil, fmt.Errorf("unknown alphabet %q", req.Alphabet)
	}

	if req.GapOpen != nil {
		p.GapOpen = *req.GapOpen
	}
	if req.GapExtend != nil {
		p.GapExtend = *req.GapExtend
	}
	p.PenalizeTerminalGaps = req.PenalizeTerminalGaps

	return p, nil
}

// alignResponse flattens an alignment into its wire form.
func alignResponse(aln *pairalign.Alignment) AlignResponse {
	return AlignResponse{
		AlignedA:   profileRows(aln.A),
		AlignedB:   profileRows(aln.B),
		IDs:        alignmentIDs(aln),
		Score:      aln.Score,
		StartA:     aln.StartA,
		EndA:       aln.EndA,
		StartB:     aln.StartB,
		EndB:       aln.EndB,
		Identity:   aln.Identity(),
		CIGAR:      aln.CIGAR(),
		Matches:    aln.MatchCount(),
		Mismatches: aln.MismatchCount(),
		Gaps:       aln.TotalGaps(),
	}
}

// profileRows returns the residue strings of a profile, one per sequence.
func profileRows(p *pairalign.Profile) []string {
	seqs := p.Sequences()
	rows := make([]string, len(seqs))
	for i, s := range seqs {
		rows[i] = s.Residues
	}
	return rows
}

// alignmentIDs returns the sequence identifiers of both aligned profiles,
// rows of A first.
func alignmentIDs(aln *pairalign.Alignment) []string {
	ids := make([]string, 0, len(aln.A.Sequences())+len(aln.B.Sequences()))
	for _, s := range aln.A.Sequences() {
		ids = append(ids, s.ID)
	}
	for _, s := range aln.B.Sequences() {
		ids = append(ids, s.ID)
	}
	return ids
}

// writeError reports a client error in the {"error": ...} shape shared by
// every endpoint.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
