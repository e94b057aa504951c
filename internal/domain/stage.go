package domain

// Stage keys for the five ordered recruitment phases. Order determines
// timeline position.
const (
	StageApplication = "application"
	StageScreening   = "screening"
	StageInterview   = "interview"
	StageOffer       = "offer"
	StageOnboarding  = "onboarding"
)

// Stage describes one recruitment phase. CandidateLabel and ManagerLabel are
// the viewpoint-specific projections; Label is the generic fallback. Icon is
// an SVG path reference consumed by the UI.
type Stage struct {
	Key            string
	Label          string
	CandidateLabel string
	ManagerLabel   string
	Icon           string
}
