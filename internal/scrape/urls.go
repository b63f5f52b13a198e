package scrape

import (
	"fmt"
	"net/url"
	"strings"

	"careerlift-engine/internal/config"
	"careerlift-engine/internal/domain"
)

// Keywords derives the search string: the first max_skills skills plus the
// career goal, space-joined. Empty parts are dropped, so an empty profile
// yields an empty string and the target site falls back to a broad search.
func Keywords(cfg config.Config, p domain.Profile) string {
	maxSkills := cfg.Search.MaxSkills
	if maxSkills <= 0 {
		maxSkills = 5
	}

	parts := p.SkillList()
	if len(parts) > maxSkills {
		parts = parts[:maxSkills]
	}
	if goal := strings.TrimSpace(p.CareerGoal); goal != "" {
		parts = append(parts, goal)
	}
	return strings.Join(parts, " ")
}

// CandidateURLs builds the fallback chain, most filtered first. The order is
// load-bearing: later entries are deliberately broader so they only run when
// the specific variants came back blocked or empty.
func CandidateURLs(cfg config.Config, p domain.Profile) []string {
	base := "https://" + cfg.Search.Host
	kw := url.QueryEscape(Keywords(cfg, p))
	goal := url.QueryEscape(strings.TrimSpace(p.CareerGoal))
	loc := url.QueryEscape(cfg.Search.Location)
	geo := url.QueryEscape(cfg.Search.GeoID)
	tpr := url.QueryEscape(cfg.Search.RecencyParam)

	return []string{
		// recency-filtered, freshest-first
		fmt.Sprintf("%s/jobs/search/?keywords=%s&location=%s&geoId=%s&f_TPR=%s&sortBy=DD", base, kw, loc, geo, tpr),
		fmt.Sprintf("%s/jobs/search/?keywords=%s&location=%s&f_TPR=%s", base, kw, loc, tpr),
		// guest API variant; serves HTML-shaped fragments despite the path
		fmt.Sprintf("%s/jobs-guest/jobs/api/seeMoreJobPostings/search?keywords=%s&location=%s&start=0&f_TPR=%s", base, kw, loc, tpr),
		// goal-only query
		fmt.Sprintf("%s/jobs/search/?keywords=%s&f_TPR=%s&sortBy=DD", base, goal, tpr),
		// last resort: no recency filter at all
		fmt.Sprintf("%s/jobs/search/?keywords=%s&location=%s&geoId=%s", base, kw, loc, geo),
	}
}
