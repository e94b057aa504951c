package domain

import "time"

// RecruitmentPass is the aggregate tracking one candidate through the
// pipeline. Stage and Status are stored as raw strings (stored records may
// carry legacy casing and punctuation); callers normalize before lookups.
type RecruitmentPass struct {
	ID             string
	PassNumber     string
	CandidateName  string
	CandidateEmail string
	PositionTitle  string
	Stage          string
	Status         string
	TokenHash      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
