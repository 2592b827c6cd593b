// Package matching implements the job match scoring engine: five
// independent sub-scores per (user, job) pair combined into one weighted
// overall score. Everything here is a pure function over in-memory inputs,
// so it is safe to call concurrently.
package matching

import (
	"strings"

	"go-career-mentor-backend/internal/domain"
)

// Fixed weight vector. The five weights encode the product's priority
// ordering and must sum to 1.0 exactly.
const (
	WeightSkills     = 0.35
	WeightExperience = 0.25
	WeightLocation   = 0.15
	WeightSalary     = 0.15
	WeightCompany    = 0.10
)

// neutralScore is used whenever there is not enough data to compute a
// meaningful sub-score.
const neutralScore = 50.0

// experienceLevels is the ordinal scale for experience distance.
// Unrecognized or missing values map to mid.
var experienceLevels = map[string]int{
	domain.ExperienceJunior:    1,
	domain.ExperienceMid:       2,
	domain.ExperienceSenior:    3,
	domain.ExperienceLead:      4,
	domain.ExperienceExecutive: 5,
}

// Score computes the match between one user and one job posting. A nil
// profile or preferences never fails: each sub-score degrades to its
// documented neutral or penalized value.
func Score(profile *domain.UserProfile, prefs *domain.UserJobPreferences, job *domain.JobPosting) domain.MatchResult {
	breakdown := domain.ScoreBreakdown{
		Skills:     skillsScore(profile, job),
		Experience: experienceScore(profile, job),
		Location:   locationScore(prefs, job),
		Salary:     salaryScore(prefs, job),
		Company:    companyScore(prefs, job),
	}

	overall := breakdown.Skills*WeightSkills +
		breakdown.Experience*WeightExperience +
		breakdown.Location*WeightLocation +
		breakdown.Salary*WeightSalary +
		breakdown.Company*WeightCompany

	return domain.MatchResult{
		OverallScore: clamp(overall),
		Scores:       breakdown,
	}
}

// skillsScore weighs required-skill coverage at 0.7 and coverage of the
// full skill union at 0.3.
func skillsScore(profile *domain.UserProfile, job *domain.JobPosting) float64 {
	if profile == nil || len(profile.TechnicalSkills) == 0 {
		return 0.0
	}

	userSkills := toSet(profile.TechnicalSkills)
	required := toSet(job.RequiredSkills)
	allJobSkills := toSet(job.RequiredSkills)
	addAll(allJobSkills, job.PreferredSkills)
	addAll(allJobSkills, job.Technologies)

	// A job that lists no skills cannot be penalized for unknown
	// requirements.
	if len(allJobSkills) == 0 {
		return neutralScore
	}

	requiredRate := 100.0
	if len(required) > 0 {
		requiredRate = float64(intersectCount(userSkills, required)) / float64(len(required)) * 100
	}
	overallRate := float64(intersectCount(userSkills, allJobSkills)) / float64(len(allJobSkills)) * 100

	return clamp(requiredRate*0.7 + overallRate*0.3)
}

// experienceScore is a discrete step function over the level distance, not
// a continuous one: level mismatches have qualitatively different impact.
func experienceScore(profile *domain.UserProfile, job *domain.JobPosting) float64 {
	if profile == nil || profile.ExperienceLevel == nil || *profile.ExperienceLevel == "" {
		return neutralScore
	}

	userLevel := levelOf(*profile.ExperienceLevel)
	jobLevel := levelOf(stringOrEmpty(job.ExperienceLevel))

	diff := userLevel - jobLevel
	if diff < 0 {
		diff = -diff
	}

	switch diff {
	case 0:
		return 100.0
	case 1:
		return 70.0
	case 2:
		return 40.0
	default:
		return 20.0
	}
}

// locationScore checks remote preference first: remote_only and flexible
// short-circuit before any location-string matching.
func locationScore(prefs *domain.UserJobPreferences, job *domain.JobPosting) float64 {
	if prefs == nil {
		return neutralScore
	}

	switch prefs.RemotePreference {
	case domain.RemoteOnly:
		if job.RemoteType == domain.JobRemote {
			return 100.0
		}
		// Near-disqualifying but nonzero so downstream ranking can still
		// differentiate among onsite jobs.
		return 10.0
	case domain.RemoteFlexible:
		return 80.0
	}

	jobLocation := strings.ToLower(job.Location)
	for _, loc := range prefs.PreferredLocations {
		if loc != "" && strings.Contains(jobLocation, strings.ToLower(loc)) {
			return 100.0
		}
	}

	if prefs.WillingToRelocate {
		return 60.0
	}
	return 30.0
}

// salaryScore anchors both branches at a 70-point pivot: meeting the user's
// floor guarantees at least 70 with a diminishing bonus for surplus, while
// a shortfall subtracts its full percentage from the same pivot.
func salaryScore(prefs *domain.UserJobPreferences, job *domain.JobPosting) float64 {
	if prefs == nil || prefs.MinimumSalary == nil || *prefs.MinimumSalary <= 0 {
		return neutralScore
	}
	if job.SalaryMin == nil && job.SalaryMax == nil {
		return neutralScore
	}

	userMin := float64(*prefs.MinimumSalary)
	ceiling := 0.0
	if job.SalaryMax != nil {
		ceiling = float64(*job.SalaryMax)
	} else {
		ceiling = float64(*job.SalaryMin)
	}

	if ceiling >= userMin {
		excessPct := (ceiling - userMin) / userMin * 100
		return clamp(70 + excessPct/2)
	}
	shortfallPct := (userMin - ceiling) / userMin * 100
	return clamp(70 - shortfallPct)
}

// companyScore is additive bonuses only; company mismatch is never
// disqualifying.
func companyScore(prefs *domain.UserJobPreferences, job *domain.JobPosting) float64 {
	if prefs == nil {
		return neutralScore
	}

	score := 50.0

	companyName := strings.ToLower(job.CompanyName)
	for _, comp := range prefs.PreferredCompanies {
		if comp != "" && strings.Contains(companyName, strings.ToLower(comp)) {
			score += 30.0
			break
		}
	}

	if job.CompanySize != nil && *job.CompanySize != "" {
		for _, size := range prefs.CompanySizes {
			if strings.EqualFold(size, *job.CompanySize) {
				score += 20.0
				break
			}
		}
	}

	return clamp(score)
}

func levelOf(level string) int {
	if n, ok := experienceLevels[strings.ToLower(level)]; ok {
		return n
	}
	return experienceLevels[domain.ExperienceMid]
}

func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	addAll(set, skills)
	return set
}

func addAll(set map[string]struct{}, skills []string) {
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}
}

func intersectCount(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for s := range a {
		if _, ok := b[s]; ok {
			n++
		}
	}
	return n
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
