package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	var c Config
	c.App.Port = 8740
	c.Search.Host = "www.linkedin.com"
	c.Search.Location = "Worldwide"
	c.Search.GeoID = "92000000"
	c.Search.RecencyParam = "r259200"
	c.Search.TimeoutSeconds = 25
	c.Search.MaxSkills = 5
	c.Search.RequestsPerSecond = 1.0
	c.Search.Burst = 2
	c.Ranking.RelevanceFloor = 5
	c.Ranking.RecentMaxDays = 3
	return c
}

func TestNormalizeAndValidate_OK(t *testing.T) {
	_, res := NormalizeAndValidate(validConfig())
	if !res.OK() {
		t.Fatalf("valid config rejected: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
}

func TestNormalizeAndValidate_TrimsFields(t *testing.T) {
	cfg := validConfig()
	cfg.Search.Host = "  www.linkedin.com  "
	cfg.Search.GeoID = " 92000000 "

	out, res := NormalizeAndValidate(cfg)
	if !res.OK() {
		t.Fatalf("rejected: %v", res.Errors)
	}
	if out.Search.Host != "www.linkedin.com" || out.Search.GeoID != "92000000" {
		t.Fatalf("fields not trimmed: %q %q", out.Search.Host, out.Search.GeoID)
	}
}

func TestNormalizeAndValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad port", func(c *Config) { c.App.Port = 0 }, "app.port"},
		{"port too high", func(c *Config) { c.App.Port = 70000 }, "app.port"},
		{"missing host", func(c *Config) { c.Search.Host = "   " }, "search.host"},
		{"zero timeout", func(c *Config) { c.Search.TimeoutSeconds = 0 }, "timeout_seconds"},
		{"zero max skills", func(c *Config) { c.Search.MaxSkills = 0 }, "max_skills"},
		{"zero rps", func(c *Config) { c.Search.RequestsPerSecond = 0 }, "requests_per_second"},
		{"zero burst", func(c *Config) { c.Search.Burst = 0 }, "burst"},
		{"negative floor", func(c *Config) { c.Ranking.RelevanceFloor = -1 }, "relevance_floor"},
		{"zero recency window", func(c *Config) { c.Ranking.RecentMaxDays = 0 }, "recent_max_days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			_, res := NormalizeAndValidate(cfg)
			if res.OK() {
				t.Fatal("expected a validation error")
			}
			found := false
			for _, e := range res.Errors {
				if strings.Contains(e, tt.want) {
					found = true
				}
			}
			if !found {
				t.Fatalf("no error mentioning %q in %v", tt.want, res.Errors)
			}
		})
	}
}

func TestNormalizeAndValidate_Warnings(t *testing.T) {
	cfg := validConfig()
	cfg.Search.TimeoutSeconds = 90
	cfg.Search.RequestsPerSecond = 5
	cfg.Ranking.RecentMaxDays = 30

	_, res := NormalizeAndValidate(cfg)
	if !res.OK() {
		t.Fatalf("warnings must not block saving: %v", res.Errors)
	}
	if len(res.Warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %v", res.Warnings)
	}
}
