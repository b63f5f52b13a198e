package rank

import (
	"strings"

	"careerlift-engine/internal/domain"
)

// Additive points per matched signal. Scores are unbounded; a title that
// matches many terms just keeps accumulating.
const (
	goalTermPoints    = 12
	skillPoints       = 8
	experiencePoints  = 6
	literalGoalPoints = 15
	genericTechPoints = 5
)

// goalTerms is a closed mapping keyed by the exact career-goal label. Goals
// outside the table earn no goal-term points; every other signal still
// applies.
var goalTerms = map[string][]string{
	domain.GoalFrontend:      {"frontend", "front-end", "react", "angular", "vue", "javascript", "js", "typescript", "ts", "html", "css"},
	domain.GoalFullStack:     {"full stack", "fullstack", "full-stack", "mern", "mean", "node", "react", "javascript"},
	domain.GoalBackend:       {"backend", "back-end", "server-side", "api", "node", "python", "java", "server"},
	domain.GoalDataScientist: {"data science", "data scientist", "machine learning", "ml", "data analysis", "analytics"},
	domain.GoalAIEngineer:    {"ai", "artificial intelligence", "ml", "machine learning", "neural networks", "deep learning"},
	domain.GoalCybersecurity: {"cyber security", "cybersecurity", "security", "infosec", "penetration", "ethical hacking"},
	domain.GoalDevOps:        {"devops", "dev ops", "cloud", "infrastructure", "aws", "azure", "docker", "kubernetes"},
	domain.GoalUIUX:          {"ui", "ux", "user experience", "user interface", "design", "designer", "product design"},
}

var genericTechKeywords = []string{"developer", "engineer", "programmer", "software", "tech", "it"}

// MatchScore rates a job title/company pair against a profile. Skills and
// experience tokens match against both title and company; everything else
// matches the title only. Case-insensitive substring containment throughout.
func MatchScore(title, company string, p domain.Profile) int {
	if strings.TrimSpace(title) == "" {
		return 0
	}

	titleLower := strings.ToLower(title)
	companyLower := strings.ToLower(company)

	score := 0

	for _, term := range goalTerms[p.CareerGoal] {
		if strings.Contains(titleLower, term) {
			score += goalTermPoints
		}
	}

	for _, skill := range p.SkillList() {
		s := strings.ToLower(skill)
		if strings.Contains(titleLower, s) || strings.Contains(companyLower, s) {
			score += skillPoints
		}
	}

	for _, exp := range p.ExperienceList() {
		e := strings.ToLower(exp)
		if strings.Contains(titleLower, e) || strings.Contains(companyLower, e) {
			score += experiencePoints
		}
	}

	if goal := strings.ToLower(strings.TrimSpace(p.CareerGoal)); goal != "" && strings.Contains(titleLower, goal) {
		score += literalGoalPoints
	}

	for _, kw := range genericTechKeywords {
		if strings.Contains(titleLower, kw) {
			score += genericTechPoints
		}
	}

	return score
}
