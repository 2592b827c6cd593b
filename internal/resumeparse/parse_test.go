package resumeparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResume = `Jane Doe
Senior Backend Engineer
jane.doe@example.com | +1 415-555-0142
linkedin.com/in/janedoe | github.com/janedoe

Summary
Backend engineer with 7+ years of experience building services in Go and Python.

Skills
Go, Python, PostgreSQL, Redis, Docker, Kubernetes, AWS, Git

Experience
Acme Corp, 2019-present. Built APIs with FastAPI and Django behind Nginx.`

func TestParseContactDetails(t *testing.T) {
	a := Parse(sampleResume)

	assert.Equal(t, "jane.doe@example.com", a.Email)
	assert.Equal(t, "+1 415-555-0142", a.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", a.LinkedinURL)
	assert.Equal(t, "github.com/janedoe", a.GithubURL)
}

func TestParseSkillsAndExperience(t *testing.T) {
	a := Parse(sampleResume)

	assert.Contains(t, a.Skills, "go")
	assert.Contains(t, a.Skills, "python")
	assert.Contains(t, a.Skills, "postgresql")
	assert.Contains(t, a.Skills, "redis")
	assert.Contains(t, a.Skills, "docker")
	assert.Contains(t, a.Skills, "kubernetes")
	assert.Contains(t, a.Skills, "aws")
	assert.Contains(t, a.Skills, "fastapi")
	assert.Equal(t, 7, a.ExperienceYears)
	assert.Greater(t, a.WordCount, 30)
}

func TestExtractSkillsWordBoundaries(t *testing.T) {
	// "go" must not match inside "golang", "git" not inside "github".
	skills := ExtractSkills("i write golang and host on github pages")
	assert.NotContains(t, skills, "go")
	assert.NotContains(t, skills, "git")

	skills = ExtractSkills("expert in go, git and c++")
	assert.Contains(t, skills, "go")
	assert.Contains(t, skills, "git")
	assert.Contains(t, skills, "c++")
}

func TestParseEmptyText(t *testing.T) {
	a := Parse("")

	assert.Empty(t, a.Email)
	assert.Empty(t, a.Skills)
	assert.Zero(t, a.ExperienceYears)
	assert.Zero(t, a.WordCount)
}

func TestEstimateYearsTakesMaximum(t *testing.T) {
	a := Parse("3 years experience in frontend, then 10+ years of experience in backend")
	assert.Equal(t, 10, a.ExperienceYears)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	_, err := ExtractText("resume.odt", []byte("data"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText("resume.txt", []byte("hello world"))
	assert.NoError(t, err)
	assert.Equal(t, "hello world", text)
}
