package dto

import (
	"time"
)

// CreatePassRequest payload.
type CreatePassRequest struct {
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`
	PositionTitle  string `json:"position_title"`
}

// CreatePassResponse returns the new pass plus the one-time candidate token.
type CreatePassResponse struct {
	Pass      PassSummary `json:"pass"`
	PassToken string      `json:"pass_token"`
}

// MoveStageRequest payload.
type MoveStageRequest struct {
	Stage  string `json:"stage"`
	Status string `json:"status"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// PassSummary is the staff listing projection of a pass.
type PassSummary struct {
	ID            string    `json:"id"`
	PassNumber    string    `json:"pass_number"`
	CandidateName string    `json:"candidate_name"`
	PositionTitle string    `json:"position_title"`
	Stage         string    `json:"stage"`
	Status        string    `json:"status"`
	StageLabel    string    `json:"stage_label"`
	StatusLabel   string    `json:"status_label"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
