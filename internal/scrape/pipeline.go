package scrape

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"careerlift-engine/internal/config"
	"careerlift-engine/internal/domain"
	"careerlift-engine/internal/rank"
)

// Score given to the synthetic placeholder job when every candidate URL was
// blocked, failed, or came back empty.
const placeholderScore = 25

// Meta is the per-search bookkeeping returned alongside the jobs.
type Meta struct {
	KeywordUsed    string `json:"keywordUsed"`
	TotalFound     int    `json:"totalFound"`
	RecentCount    int    `json:"recentCount"`
	RelevantCount  int    `json:"relevantCount"`
	FinalCount     int    `json:"finalCount"`
	SearchURL      string `json:"searchUrl"`
	ScrapingStatus string `json:"scrapingStatus,omitempty"`
	FilterApplied  string `json:"filterApplied,omitempty"`
	Note           string `json:"note,omitempty"`
}

type Result struct {
	Jobs []domain.ScoredJob
	Meta Meta
}

// Pipeline drives the whole search: build the candidate URL chain, walk it
// sequentially until one attempt yields listings, then dedupe, classify,
// score, filter, and sort. It is the only stateful coordinator; everything
// it calls is a pure function over its inputs.
type Pipeline struct {
	Fetch Fetcher
	Cfg   func() config.Config
	Log   zerolog.Logger

	group singleflight.Group
}

// Search coalesces concurrent identical searches for the same user: firing
// the chain twice in parallel doubles the block risk for zero extra data.
func (p *Pipeline) Search(ctx context.Context, prof domain.Profile) (Result, error) {
	v, err, _ := p.group.Do(prof.ID, func() (any, error) {
		return p.search(ctx, prof)
	})
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}

func (p *Pipeline) search(ctx context.Context, prof domain.Profile) (Result, error) {
	cfg := p.Cfg()
	keywords := Keywords(cfg, prof)
	candidates := CandidateURLs(cfg, prof)

	var leads []domain.JobLead
	successfulURL := ""

	// Strictly sequential: an early success must short-circuit the rest of
	// the chain, and parallel attempts would only invite a block.
	for _, target := range candidates {
		res, err := p.Fetch.Fetch(ctx, target)
		if err != nil {
			p.Log.Warn().Err(err).Str("url", target).Msg("fetch attempt failed")
			continue
		}
		if res.Blocked {
			p.Log.Warn().Int("status", res.Status).Str("url", target).Msg("anti-automation signal, trying next url")
			continue
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
		if err != nil {
			p.Log.Warn().Err(err).Str("url", target).Msg("parse failed")
			continue
		}

		found := ExtractJobs(doc)
		if len(found) == 0 {
			p.Log.Debug().Str("url", target).Msg("no listings matched any selector")
			continue
		}

		leads = found
		successfulURL = target
		p.Log.Info().Int("count", len(found)).Str("url", target).Msg("scrape succeeded")
		break
	}

	if len(leads) == 0 {
		return p.placeholderResult(prof, keywords, candidates[0]), nil
	}

	classifier := RecencyClassifier{MaxDays: cfg.Ranking.RecentMaxDays}

	scored := make([]domain.ScoredJob, 0, len(leads))
	for _, lead := range leads {
		scored = append(scored, domain.ScoredJob{
			Title:      lead.Title,
			Company:    lead.Company,
			Location:   lead.Location,
			Link:       lead.URL,
			PostedWhen: lead.PostedWhen,
			MatchScore: rank.MatchScore(lead.Title, lead.Company, prof),
			IsRecent:   classifier.IsRecent(lead.PostedWhen),
		})
	}

	unique := rank.Dedupe(scored)

	floor := cfg.Ranking.RelevanceFloor
	var recent, recentRelevant []domain.ScoredJob
	relevantCount := 0
	for _, j := range unique {
		if j.MatchScore >= floor {
			relevantCount++
		}
		if !j.IsRecent {
			continue
		}
		recent = append(recent, j)
		if j.MatchScore >= floor {
			recentRelevant = append(recentRelevant, j)
		}
	}

	// Prefer recent AND relevant; when that is empty, show everything recent
	// rather than an empty page.
	chosen := recentRelevant
	if len(chosen) == 0 {
		chosen = recent
	}
	sort.SliceStable(chosen, func(i, k int) bool {
		return chosen[i].MatchScore > chosen[k].MatchScore
	})

	return Result{
		Jobs: chosen,
		Meta: Meta{
			KeywordUsed:    keywords,
			TotalFound:     len(leads),
			RecentCount:    len(recent),
			RelevantCount:  relevantCount,
			FinalCount:     len(chosen),
			SearchURL:      successfulURL,
			ScrapingStatus: "successful",
			FilterApplied:  fmt.Sprintf("Recent jobs (<= %d days)", classifier.maxDays()),
		},
	}, nil
}

// placeholderResult is the chain-exhausted fallback: one synthetic job
// pointing the user at the first candidate URL. Deliberately a 200, not an
// error — the caller never sees an empty page.
func (p *Pipeline) placeholderResult(prof domain.Profile, keywords, firstURL string) Result {
	p.Log.Warn().Str("keywords", keywords).Msg("all candidate urls exhausted, returning placeholder")

	title := strings.TrimSpace(prof.CareerGoal) + " Position"
	title = strings.TrimSpace(title)
	return Result{
		Jobs: []domain.ScoredJob{{
			Title:      title,
			Company:    "Tech Company",
			Location:   "Remote",
			Link:       firstURL,
			PostedWhen: "Recently",
			MatchScore: placeholderScore,
			IsRecent:   true,
			Note:       "Scraping currently limited - please visit the search page directly",
		}},
		Meta: Meta{
			KeywordUsed: keywords,
			TotalFound:  0,
			SearchURL:   firstURL,
			Note:        "Search scraping is currently limited. Please visit the search URL directly.",
		},
	}
}
