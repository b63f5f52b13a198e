package domain

import "strings"

// Career goal labels the relevance scorer has term tables for. A profile may
// carry any free-form goal; unrecognized goals simply earn no goal-term
// points.
const (
	GoalFrontend      = "Frontend Developer"
	GoalFullStack     = "Full Stack Developer"
	GoalBackend       = "Backend Developer"
	GoalDataScientist = "Data Scientist"
	GoalAIEngineer    = "AI Engineer"
	GoalCybersecurity = "Cybersecurity Engineer"
	GoalDevOps        = "DevOps Engineer"
	GoalUIUX          = "UI/UX Designer"
)

// Profile is the per-user input to the job search. Skills and experience are
// comma-separated free text, matching what the profile editor collects.
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	CareerGoal string `json:"careerGoal"`
}

func (p Profile) SkillList() []string {
	return splitCSV(p.Skills)
}

func (p Profile) ExperienceList() []string {
	return splitCSV(p.Experience)
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
