package workflow

import (
	"regexp"
	"strings"

	"github.com/spec-kit/recruitment-service/internal/domain"
)

var statusSeparators = regexp.MustCompile(`[\s-]+`)

// NormalizeStageKey canonicalizes a raw stage string into a registry key.
// The offer stage was previously called "decision" on the manager side and
// stored records were never migrated, so the alias mapping is permanent.
func NormalizeStageKey(stage string) string {
	key := strings.ToLower(stage)
	if key == "decision" {
		return domain.StageOffer
	}
	return key
}

// NormalizeStatusKey canonicalizes a raw status string: lowercase, with runs
// of spaces and hyphens collapsed to underscores. "Not Shortlisted",
// "not-shortlisted" and "not_shortlisted" are all equivalent.
func NormalizeStatusKey(status string) string {
	return statusSeparators.ReplaceAllString(strings.ToLower(status), "_")
}

// StageLabel returns the viewpoint-specific label for a stage, falling back
// to the generic label, and to the raw input when the stage is unknown.
func StageLabel(stage string, view domain.Viewpoint) string {
	desc := StageByKey(stage)
	if desc == nil {
		return stage
	}
	if view == domain.ViewpointCandidate {
		if desc.CandidateLabel != "" {
			return desc.CandidateLabel
		}
	} else if desc.ManagerLabel != "" {
		return desc.ManagerLabel
	}
	return desc.Label
}

// StatusLabel returns the display label for (stage, status) under the given
// viewpoint. Internal-only statuses are masked to "In Progress" for the
// candidate viewpoint so the true status never leaks. Unknown keys fall back
// to a humanized form of the raw status.
func StatusLabel(stage, status string, view domain.Viewpoint) string {
	if cfg := statusConfig(stage, status, view); cfg != nil {
		if view == domain.ViewpointCandidate && cfg.InternalOnly {
			return "In Progress"
		}
		return cfg.Label
	}
	return humanize(status)
}

// humanize turns a machine key into a display string: underscores to spaces,
// each word title-cased.
func humanize(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
