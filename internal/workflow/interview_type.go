package workflow

import "github.com/spec-kit/recruitment-service/internal/domain"

var interviewTypeLabels = map[domain.InterviewType]string{
	domain.InterviewTypePhoneScreen: "Phone Screening",
	domain.InterviewTypeTechnical:   "Technical Interview",
	domain.InterviewTypeHR:          "HR Interview",
	domain.InterviewTypeManager:     "Manager Interview",
	domain.InterviewTypePanel:       "Panel Interview",
	domain.InterviewTypeFinal:       "Final Interview",
}

// InterviewTypeLabel returns the display label for an interview type, with
// the generic humanizer as fallback for unknown types.
func InterviewTypeLabel(t domain.InterviewType) string {
	if label, ok := interviewTypeLabels[t]; ok {
		return label
	}
	return humanize(string(t))
}
