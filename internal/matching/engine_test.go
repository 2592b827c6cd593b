package matching_test

import (
	"testing"

	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func baseProfile() *domain.UserProfile {
	return &domain.UserProfile{
		TechnicalSkills: []string{"python", "react"},
		ExperienceLevel: strPtr("senior"),
	}
}

func basePrefs() *domain.UserJobPreferences {
	return &domain.UserJobPreferences{
		RemotePreference:   domain.RemoteFlexible,
		PreferredLocations: []string{"London"},
		MinimumSalary:      intPtr(60000),
	}
}

func baseJob() *domain.JobPosting {
	return &domain.JobPosting{
		Title:           "Backend Developer",
		CompanyName:     "Acme Ltd",
		Location:        "London, UK",
		RequiredSkills:  []string{"python", "django"},
		PreferredSkills: []string{"react"},
		ExperienceLevel: strPtr("senior"),
		RemoteType:      domain.JobRemote,
		SalaryMax:       intPtr(90000),
		IsActive:        true,
	}
}

func TestScoreSkillsScenario(t *testing.T) {
	// required match 1/2=50%, overall match 2/3≈66.7% → 0.7*50 + 0.3*66.7 ≈ 55
	profile := &domain.UserProfile{TechnicalSkills: []string{"python", "react"}}
	job := &domain.JobPosting{
		RequiredSkills:  []string{"python", "django"},
		PreferredSkills: []string{"react"},
	}

	res := matching.Score(profile, nil, job)
	assert.InDelta(t, 55.0, res.Scores.Skills, 0.1)
}

func TestScoreSkillsEdgeCases(t *testing.T) {
	t.Run("no user skills scores zero", func(t *testing.T) {
		res := matching.Score(&domain.UserProfile{}, nil, baseJob())
		assert.Equal(t, 0.0, res.Scores.Skills)
	})

	t.Run("nil profile scores zero", func(t *testing.T) {
		res := matching.Score(nil, nil, baseJob())
		assert.Equal(t, 0.0, res.Scores.Skills)
	})

	t.Run("job without skills is neutral", func(t *testing.T) {
		job := &domain.JobPosting{Title: "Mystery Role"}
		res := matching.Score(baseProfile(), nil, job)
		assert.Equal(t, 50.0, res.Scores.Skills)
	})

	t.Run("empty required set counts as full required coverage", func(t *testing.T) {
		job := &domain.JobPosting{Technologies: []string{"python", "react"}}
		res := matching.Score(baseProfile(), nil, job)
		assert.InDelta(t, 100.0, res.Scores.Skills, 1e-9)
	})

	t.Run("comparison is case-insensitive and duplicates collapse", func(t *testing.T) {
		profile := &domain.UserProfile{TechnicalSkills: []string{"Python", "PYTHON", "React"}}
		job := &domain.JobPosting{RequiredSkills: []string{"python", "react", "react"}}
		res := matching.Score(profile, nil, job)
		assert.InDelta(t, 100.0, res.Scores.Skills, 1e-9)
	})
}

func TestScoreSkillsMonotonicity(t *testing.T) {
	job := &domain.JobPosting{RequiredSkills: []string{"go", "postgres", "docker", "kubernetes"}}

	prev := -1.0
	skills := []string{"go", "postgres", "docker", "kubernetes"}
	for i := 1; i <= len(skills); i++ {
		res := matching.Score(&domain.UserProfile{TechnicalSkills: skills[:i]}, nil, job)
		assert.GreaterOrEqual(t, res.Scores.Skills, prev)
		prev = res.Scores.Skills
	}
}

func TestScoreExperience(t *testing.T) {
	cases := []struct {
		name      string
		userLevel string
		jobLevel  string
		want      float64
	}{
		{"exact match", "senior", "senior", 100.0},
		{"one level apart", "senior", "mid", 70.0},
		{"two levels apart", "senior", "junior", 40.0},
		{"three levels apart", "executive", "mid", 40.0},
		{"four levels apart", "executive", "junior", 20.0},
		{"unknown job level maps to mid", "senior", "wizard", 70.0},
		{"missing job level maps to mid", "mid", "", 100.0},
		{"case insensitive", "Senior", "SENIOR", 100.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &domain.UserProfile{ExperienceLevel: strPtr(tc.userLevel)}
			job := &domain.JobPosting{}
			if tc.jobLevel != "" {
				job.ExperienceLevel = strPtr(tc.jobLevel)
			}
			res := matching.Score(profile, nil, job)
			assert.Equal(t, tc.want, res.Scores.Experience)
		})
	}

	t.Run("profile without level is neutral, not mid", func(t *testing.T) {
		res := matching.Score(&domain.UserProfile{TechnicalSkills: []string{"go"}}, nil, baseJob())
		assert.Equal(t, 50.0, res.Scores.Experience)
	})
}

func TestScoreLocation(t *testing.T) {
	t.Run("remote_only on remote job", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{RemotePreference: domain.RemoteOnly}
		job := &domain.JobPosting{RemoteType: domain.JobRemote}
		assert.Equal(t, 100.0, matching.Score(nil, prefs, job).Scores.Location)
	})

	t.Run("remote_only on onsite job is near-disqualifying", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{RemotePreference: domain.RemoteOnly}
		job := &domain.JobPosting{RemoteType: domain.JobOnsite}
		assert.Equal(t, 10.0, matching.Score(nil, prefs, job).Scores.Location)
	})

	t.Run("flexible is fixed regardless of location", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{
			RemotePreference:   domain.RemoteFlexible,
			PreferredLocations: []string{"Tokyo"},
		}
		job := &domain.JobPosting{RemoteType: domain.JobOnsite, Location: "Aberdeen"}
		assert.Equal(t, 80.0, matching.Score(nil, prefs, job).Scores.Location)
	})

	t.Run("preferred location substring match", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{PreferredLocations: []string{"london"}}
		job := &domain.JobPosting{Location: "Central London, UK"}
		assert.Equal(t, 100.0, matching.Score(nil, prefs, job).Scores.Location)
	})

	t.Run("willing to relocate", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{
			PreferredLocations: []string{"Manchester"},
			WillingToRelocate:  true,
		}
		job := &domain.JobPosting{Location: "Bristol"}
		assert.Equal(t, 60.0, matching.Score(nil, prefs, job).Scores.Location)
	})

	t.Run("total mismatch keeps a low nonzero score", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{PreferredLocations: []string{"Manchester"}}
		job := &domain.JobPosting{Location: "Bristol"}
		assert.Equal(t, 30.0, matching.Score(nil, prefs, job).Scores.Location)
	})
}

func TestScoreSalary(t *testing.T) {
	t.Run("ceiling fifty percent above minimum", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{MinimumSalary: intPtr(60000)}
		job := &domain.JobPosting{SalaryMax: intPtr(90000)}
		assert.InDelta(t, 95.0, matching.Score(nil, prefs, job).Scores.Salary, 1e-9)
	})

	t.Run("meeting the floor exactly scores the pivot", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{MinimumSalary: intPtr(60000)}
		job := &domain.JobPosting{SalaryMax: intPtr(60000)}
		assert.InDelta(t, 70.0, matching.Score(nil, prefs, job).Scores.Salary, 1e-9)
	})

	t.Run("falls back to salary_min when max absent", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{MinimumSalary: intPtr(50000)}
		job := &domain.JobPosting{SalaryMin: intPtr(40000)}
		// 20% shortfall → 70 - 20 = 50
		assert.InDelta(t, 50.0, matching.Score(nil, prefs, job).Scores.Salary, 1e-9)
	})

	t.Run("huge surplus is capped at 100", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{MinimumSalary: intPtr(10000)}
		job := &domain.JobPosting{SalaryMax: intPtr(200000)}
		assert.Equal(t, 100.0, matching.Score(nil, prefs, job).Scores.Salary)
	})

	t.Run("huge shortfall floors at 0", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{MinimumSalary: intPtr(100000)}
		job := &domain.JobPosting{SalaryMax: intPtr(10000)}
		assert.Equal(t, 0.0, matching.Score(nil, prefs, job).Scores.Salary)
	})

	t.Run("job without salary info is neutral", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{MinimumSalary: intPtr(60000)}
		assert.Equal(t, 50.0, matching.Score(nil, prefs, &domain.JobPosting{}).Scores.Salary)
	})

	t.Run("no salary preference is neutral", func(t *testing.T) {
		job := &domain.JobPosting{SalaryMax: intPtr(90000)}
		assert.Equal(t, 50.0, matching.Score(nil, &domain.UserJobPreferences{}, job).Scores.Salary)
	})
}

func TestScoreCompany(t *testing.T) {
	t.Run("baseline", func(t *testing.T) {
		res := matching.Score(nil, &domain.UserJobPreferences{}, baseJob())
		assert.Equal(t, 50.0, res.Scores.Company)
	})

	t.Run("preferred company substring bonus", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{PreferredCompanies: []string{"acme"}}
		res := matching.Score(nil, prefs, baseJob())
		assert.Equal(t, 80.0, res.Scores.Company)
	})

	t.Run("company size bonus stacks", func(t *testing.T) {
		prefs := &domain.UserJobPreferences{
			PreferredCompanies: []string{"acme"},
			CompanySizes:       []string{"startup", "mid-size"},
		}
		job := baseJob()
		job.CompanySize = strPtr("startup")
		res := matching.Score(nil, prefs, job)
		assert.Equal(t, 100.0, res.Scores.Company)
	})
}

func TestScoreMissingPreferences(t *testing.T) {
	// No preferences at all: location, salary and company all neutral.
	res := matching.Score(baseProfile(), nil, baseJob())
	assert.Equal(t, 50.0, res.Scores.Location)
	assert.Equal(t, 50.0, res.Scores.Salary)
	assert.Equal(t, 50.0, res.Scores.Company)
}

func TestScoreWeightedCombination(t *testing.T) {
	res := matching.Score(baseProfile(), basePrefs(), baseJob())

	want := res.Scores.Skills*0.35 +
		res.Scores.Experience*0.25 +
		res.Scores.Location*0.15 +
		res.Scores.Salary*0.15 +
		res.Scores.Company*0.10
	assert.InDelta(t, want, res.OverallScore, 1e-6)
}

func TestScoreBoundsAndIdempotence(t *testing.T) {
	profiles := []*domain.UserProfile{nil, {}, baseProfile()}
	prefsList := []*domain.UserJobPreferences{nil, {}, basePrefs()}
	jobs := []*domain.JobPosting{{}, baseJob()}

	for _, p := range profiles {
		for _, pr := range prefsList {
			for _, j := range jobs {
				first := matching.Score(p, pr, j)
				second := matching.Score(p, pr, j)
				assert.Equal(t, first, second)

				for _, s := range []float64{
					first.OverallScore,
					first.Scores.Skills, first.Scores.Experience,
					first.Scores.Location, first.Scores.Salary, first.Scores.Company,
				} {
					assert.GreaterOrEqual(t, s, 0.0)
					assert.LessOrEqual(t, s, 100.0)
				}
			}
		}
	}
}
