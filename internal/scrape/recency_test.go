package scrape

import "testing"

func TestRecencyClassifier(t *testing.T) {
	c := RecencyClassifier{MaxDays: 3}

	cases := []struct {
		in   string
		want bool
	}{
		{"just now", true},
		{"5 minutes ago", true},
		{"an hour ago", true},
		{"2 hours ago", true},
		{"Today", true},
		{"yesterday", true},
		{"1 day ago", true},
		{"3 days ago", true},
		{"4 days ago", false},
		{"3 weeks ago", false},
		{"2 months ago", false},
		{"", false},
		{"Recently", false},
		{"2026-08-28", false},
	}

	for _, tc := range cases {
		if got := c.IsRecent(tc.in); got != tc.want {
			t.Fatalf("IsRecent(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRecencyClassifier_ConfiguredWindow(t *testing.T) {
	c := RecencyClassifier{MaxDays: 7}
	if !c.IsRecent("5 days ago") {
		t.Fatalf("expected 5 days to be recent under a 7 day window")
	}
	if c.IsRecent("8 days ago") {
		t.Fatalf("expected 8 days to be stale under a 7 day window")
	}
}

func TestRecencyClassifier_ZeroValueDefaultsToThreeDays(t *testing.T) {
	var c RecencyClassifier
	if !c.IsRecent("3 days ago") {
		t.Fatalf("expected 3 days to be recent by default")
	}
	if c.IsRecent("4 days ago") {
		t.Fatalf("expected 4 days to be stale by default")
	}
}
