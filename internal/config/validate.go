package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus anything a user should
// fix before saving.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Search.Host = strings.TrimSpace(out.Search.Host)
	out.Search.Location = strings.TrimSpace(out.Search.Location)
	out.Search.GeoID = strings.TrimSpace(out.Search.GeoID)
	out.Search.RecencyParam = strings.TrimSpace(out.Search.RecencyParam)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Search.Host == "" {
		res.addErr("search.host is required")
	}
	if out.Search.TimeoutSeconds <= 0 {
		res.addErr("search.timeout_seconds must be > 0")
	} else if out.Search.TimeoutSeconds > 60 {
		res.addWarn("search.timeout_seconds is high (%d); a slow attempt delays every fallback behind it.", out.Search.TimeoutSeconds)
	}
	if out.Search.MaxSkills <= 0 {
		res.addErr("search.max_skills must be > 0")
	}
	if out.Search.RequestsPerSecond <= 0 {
		res.addErr("search.requests_per_second must be > 0")
	} else if out.Search.RequestsPerSecond > 2 {
		res.addWarn("search.requests_per_second above 2 raises the block risk on the target site.")
	}
	if out.Search.Burst <= 0 {
		res.addErr("search.burst must be > 0")
	}

	if out.Ranking.RelevanceFloor < 0 {
		res.addErr("ranking.relevance_floor must be >= 0")
	}
	if out.Ranking.RecentMaxDays <= 0 {
		res.addErr("ranking.recent_max_days must be > 0")
	} else if out.Ranking.RecentMaxDays > 14 {
		res.addWarn("ranking.recent_max_days is %d; the recency filter stops meaning much past two weeks.", out.Ranking.RecentMaxDays)
	}

	return out, res
}
