package workflow

import "github.com/spec-kit/recruitment-service/internal/domain"

// IsInternalOnlyStatus reports whether (stage, status) exists for HR
// bookkeeping only and must be excluded from every candidate-facing list,
// filter and search. Internal-only is a candidate-registry concept: the
// manager registry carries no such flags since staff always see true status.
// Unknown keys resolve to false.
func IsInternalOnlyStatus(stage, status string) bool {
	cfg := statusConfig(stage, status, domain.ViewpointCandidate)
	return cfg != nil && cfg.InternalOnly
}
