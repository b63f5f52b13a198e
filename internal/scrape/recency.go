package scrape

import (
	"regexp"
	"strconv"
	"strings"
)

// Phrases that mean "posted within the last day" no matter the threshold.
var immediateRecency = []string{
	"just now",
	"minutes ago",
	"an hour ago",
	"hours ago",
	"today",
	"yesterday",
}

var reDaysAgo = regexp.MustCompile(`(\d+)\s*days?`)

// RecencyClassifier turns free-text "posted X ago" strings into a recency
// flag. Anything it cannot parse — including larger units like weeks or
// months — counts as not recent; unknown age is never assumed fresh.
type RecencyClassifier struct {
	MaxDays int
}

func (c RecencyClassifier) IsRecent(postedWhen string) bool {
	text := strings.ToLower(strings.TrimSpace(postedWhen))
	if text == "" {
		return false
	}

	for _, phrase := range immediateRecency {
		if strings.Contains(text, phrase) {
			return true
		}
	}

	if m := reDaysAgo.FindStringSubmatch(text); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			return days <= c.maxDays()
		}
	}

	return false
}

func (c RecencyClassifier) maxDays() int {
	if c.MaxDays > 0 {
		return c.MaxDays
	}
	return 3
}
