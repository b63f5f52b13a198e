package domain

// JobLead is one raw listing pulled out of a search results page, before
// scoring. Title and Company are always non-empty; Location and PostedWhen
// carry defaults when the card didn't expose them.
type JobLead struct {
	Title      string
	Company    string
	Location   string
	URL        string
	PostedWhen string
}

// ScoredJob is the response-level entity: a lead annotated with its match
// score and recency flag. Never mutated after creation.
type ScoredJob struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Link       string `json:"link"`
	PostedWhen string `json:"postedWhen"`
	MatchScore int    `json:"matchScore"`
	IsRecent   bool   `json:"isRecent"`
	Note       string `json:"note,omitempty"`
}
