package scrape

import (
	"github.com/PuerkitoBio/goquery"

	"careerlift-engine/internal/domain"
	"careerlift-engine/internal/rank"
)

// The target site serves different card markup per locale and experiment
// cohort, and shifts it over time. Each list below is ordered most-common
// first; extraction takes the first selector that yields a non-empty value
// and only gives up on a field when every candidate missed.
var containerSelectors = []string{
	"div.base-card",
	"div.job-search-card",
	"li.result-card",
	"div[data-entity-urn]",
	".jobs-search__results-list li",
}

var titleSelectors = []string{
	"h3.base-search-card__title",
	"h3.job-search-card__title",
	".result-card__title",
	`a[data-tracking-control-name="public_jobs_jserp-result_search-card"]`,
	".job-search-card__title a",
}

var companySelectors = []string{
	"h4.base-search-card__subtitle a",
	".job-search-card__subtitle-primary-grouping .job-search-card__subtitle",
	".result-card__subtitle",
	"h4.job-search-card__subtitle",
	".job-search-card__subtitle a",
}

var locationSelectors = []string{
	"span.job-search-card__location",
	".result-card__location",
	".job-search-card__location",
	`[data-tracking-control-name="public_jobs_jserp-result_job-search-card-location"]`,
}

var linkSelectors = []string{
	"a.base-card__full-link",
	".result-card__full-card-link",
	"h3 a",
	".job-search-card__title a",
}

var dateSelectors = []string{
	"time.job-search-card__listdate",
	"time.job-search-card__listdate--new",
	".result-card__listdate",
	"time[datetime]",
	".job-result-card__listdate",
	`[data-tracking-control-name="public_jobs_jserp-result_job-search-card-date"]`,
	"time",
}

// ExtractJobs walks every known card pattern in the document and returns the
// raw leads. A card only counts when both title and company resolved; the
// other fields fall back to defaults. The same logical job can match more
// than one container pattern on one page, so duplicates are suppressed here
// by (title, company) identity as well as in the final dedup pass.
func ExtractJobs(doc *goquery.Document) []domain.JobLead {
	var jobs []domain.JobLead
	seen := map[string]struct{}{}

	for _, containerSel := range containerSelectors {
		doc.Find(containerSel).Each(func(_ int, card *goquery.Selection) {
			title := firstText(card, titleSelectors)
			company := firstText(card, companySelectors)
			if title == "" || company == "" {
				return
			}

			key := rank.Key(title, company)
			if _, ok := seen[key]; ok {
				return
			}
			seen[key] = struct{}{}

			location := firstText(card, locationSelectors)
			if location == "" {
				location = "Remote"
			}

			posted := firstDateText(card, dateSelectors)
			if posted == "" {
				posted = "Recently"
			}

			jobs = append(jobs, domain.JobLead{
				Title:      title,
				Company:    company,
				Location:   location,
				URL:        NormalizeJobURL(firstAttr(card, linkSelectors, "href")),
				PostedWhen: posted,
			})
		})
	}

	return jobs
}

func firstText(card *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if t := cleanText(card.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

func firstAttr(card *goquery.Selection, selectors []string, attr string) string {
	for _, sel := range selectors {
		if v, ok := card.Find(sel).First().Attr(attr); ok && cleanText(v) != "" {
			return cleanText(v)
		}
	}
	return ""
}

// Date cells sometimes carry their value only in the datetime attribute.
func firstDateText(card *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		el := card.Find(sel).First()
		if t := cleanText(el.Text()); t != "" {
			return t
		}
		if v, ok := el.Attr("datetime"); ok && cleanText(v) != "" {
			return cleanText(v)
		}
	}
	return ""
}
