package rank

import (
	"strings"

	"careerlift-engine/internal/domain"
)

// Key is the identity under which two listings count as the same job.
func Key(title, company string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "|" + strings.ToLower(strings.TrimSpace(company))
}

// Dedupe keeps the first job seen per (title, company) identity, preserving
// input order. First occurrence wins regardless of score.
func Dedupe(jobs []domain.ScoredJob) []domain.ScoredJob {
	seen := map[string]struct{}{}
	out := make([]domain.ScoredJob, 0, len(jobs))
	for _, j := range jobs {
		k := Key(j.Title, j.Company)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, j)
	}
	return out
}
