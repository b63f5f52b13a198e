package scrape

import (
	"strings"
	"testing"

	"careerlift-engine/internal/config"
	"careerlift-engine/internal/domain"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.Search.Host = "www.linkedin.com"
	cfg.Search.Location = "Worldwide"
	cfg.Search.GeoID = "92000000"
	cfg.Search.RecencyParam = "r259200"
	cfg.Search.MaxSkills = 5
	cfg.Ranking.RelevanceFloor = 5
	cfg.Ranking.RecentMaxDays = 3
	return cfg
}

func TestKeywords(t *testing.T) {
	p := domain.Profile{
		Skills:     "React, Node, Go, SQL, Docker, Kubernetes, Terraform",
		CareerGoal: "Full Stack Developer",
	}
	got := Keywords(testConfig(), p)
	want := "React Node Go SQL Docker Full Stack Developer"
	if got != want {
		t.Fatalf("keywords = %q, want %q", got, want)
	}
}

func TestKeywords_EmptyProfile(t *testing.T) {
	if got := Keywords(testConfig(), domain.Profile{}); got != "" {
		t.Fatalf("expected empty keywords, got %q", got)
	}
}

func TestCandidateURLs_OrderAndShape(t *testing.T) {
	p := domain.Profile{Skills: "React", CareerGoal: "Frontend Developer"}
	urls := CandidateURLs(testConfig(), p)

	if len(urls) != 5 {
		t.Fatalf("expected 5 candidates, got %d", len(urls))
	}

	// most filtered first
	if !strings.Contains(urls[0], "f_TPR=r259200") || !strings.Contains(urls[0], "sortBy=DD") || !strings.Contains(urls[0], "geoId=92000000") {
		t.Fatalf("first candidate missing filters: %q", urls[0])
	}

	// guest api variant
	if !strings.Contains(urls[2], "/jobs-guest/jobs/api/seeMoreJobPostings/search") {
		t.Fatalf("third candidate should be the guest api variant: %q", urls[2])
	}

	// goal-only variant
	if !strings.Contains(urls[3], "keywords=Frontend+Developer") || strings.Contains(urls[3], "React") {
		t.Fatalf("fourth candidate should query the goal only: %q", urls[3])
	}

	// last resort drops the recency filter
	if strings.Contains(urls[4], "f_TPR") {
		t.Fatalf("last candidate must not carry a recency filter: %q", urls[4])
	}

	for i, u := range urls {
		if !strings.HasPrefix(u, "https://www.linkedin.com/") {
			t.Fatalf("candidate %d not on the configured host: %q", i, u)
		}
	}
}

func TestCandidateURLs_EmptyProfileStillProducesURLs(t *testing.T) {
	urls := CandidateURLs(testConfig(), domain.Profile{})
	if len(urls) != 5 {
		t.Fatalf("expected 5 candidates for an empty profile, got %d", len(urls))
	}
	if !strings.Contains(urls[0], "keywords=&") {
		t.Fatalf("expected an empty keyword parameter: %q", urls[0])
	}
}
