package handlers

import (
	"encoding/json"
	"net/http"
)

// ProfileRequest represents a profile validation request.
type ProfileRequest struct {
	Sequences []string `json:"sequences"`
}

// ProfileResponse represents a profile validation result.
type ProfileResponse struct {
	Valid         bool   `json:"valid"`
	Length        int    `json:"length,omitempty"`
	SequenceCount int    `json:"sequence_count,omitempty"`
	Message       string `json:"message,omitempty"`
}

// ValidateProfileHandler handles profile validation requests: it checks
// that the sequences hold only valid residues and share one length.
func ValidateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	p, err := buildProfile("sequences", req.Sequences)

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		json.NewEncoder(w).Encode(ProfileResponse{
			Valid:   false,
			Message: err.Error(),
		})
		return
	}

	json.NewEncoder(w).Encode(ProfileResponse{
		Valid:         true,
		Length:        p.Len(),
		SequenceCount: p.SequenceCount(),
	})
}
