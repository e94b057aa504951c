package domain

// SubjectType differentiates staff tokens from candidate pass tokens.
type SubjectType string

const (
	SubjectTypeStaff     SubjectType = "STAFF"
	SubjectTypeCandidate SubjectType = "CANDIDATE"
)
