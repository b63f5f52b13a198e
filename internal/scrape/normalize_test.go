package scrape

import "testing"

func TestNormalizeJobURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", PlaceholderLink},
		{"/jobs/view/123", "https://www.linkedin.com/jobs/view/123"},
		{"jobs/view/5", "https://www.linkedin.com/jobs/view/5"},
		{"https://linkedin.com/jobs/view/7", "https://www.linkedin.com/jobs/view/7"},
		{"https://linkedin.comhttps://www.linkedin.com/jobs/view/9", "https://www.linkedin.com/jobs/view/9"},
		{"https://www.linkedin.com/jobs/view/123", "https://www.linkedin.com/jobs/view/123"},
	}

	for _, tc := range cases {
		if got := NormalizeJobURL(tc.in); got != tc.want {
			t.Fatalf("NormalizeJobURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeJobURL_Idempotent(t *testing.T) {
	once := NormalizeJobURL("/jobs/view/42?refId=abc")
	twice := NormalizeJobURL(once)
	if once != twice {
		t.Fatalf("not idempotent: %q -> %q", once, twice)
	}
}
