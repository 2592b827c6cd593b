package jobfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestClient(serverURL string) *AdzunaClient {
	c := NewAdzunaClient("test-app", "test-key", "gb")
	c.baseURL = serverURL
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

func TestFetchMapsPostings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/gb/search/1", r.URL.Path)
		assert.Equal(t, "test-app", r.URL.Query().Get("app_id"))
		assert.Equal(t, "golang", r.URL.Query().Get("what"))
		assert.Equal(t, "London", r.URL.Query().Get("where"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 1, "results": [{
			"id": 4567,
			"title": "Senior Go Engineer",
			"company": {"display_name": "Acme Ltd"},
			"location": {"display_name": "London, UK"},
			"description": "Fully remote role. You will use Go, PostgreSQL, Docker and Kubernetes.",
			"salary_min": 80000.0,
			"salary_max": 110000.5,
			"redirect_url": "https://example.com/apply/4567",
			"created": "2025-08-20T10:30:00Z",
			"contract_type": "permanent"
		}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	jobs, err := client.Fetch(context.Background(), "golang", "London", 1)

	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.Equal(t, "Senior Go Engineer", job.Title)
	assert.Equal(t, "Acme Ltd", job.CompanyName)
	assert.Equal(t, "London, UK", job.Location)
	assert.Equal(t, "adzuna", job.Source)
	assert.Equal(t, "4567", job.ExternalID)
	assert.Equal(t, "remote", job.RemoteType)
	assert.Equal(t, "permanent", job.EmploymentType)
	assert.True(t, job.IsActive)

	require.NotNil(t, job.SalaryMin)
	assert.Equal(t, 80000, *job.SalaryMin)
	require.NotNil(t, job.SalaryMax)
	assert.Equal(t, 110000, *job.SalaryMax)

	require.NotNil(t, job.PostedDate)
	assert.Equal(t, time.Date(2025, 8, 20, 10, 30, 0, 0, time.UTC), job.PostedDate.UTC())

	assert.Contains(t, job.RequiredSkills, "go")
	assert.Contains(t, job.RequiredSkills, "postgresql")
	assert.Contains(t, job.RequiredSkills, "docker")
	assert.Contains(t, job.RequiredSkills, "kubernetes")
}

func TestFetchStopsOnShortPage(t *testing.T) {
	var pagesHit []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagesHit = append(pagesHit, r.URL.Path)
		w.Write([]byte(`{"count": 0, "results": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	jobs, err := client.Fetch(context.Background(), "golang", "", 3)

	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.Len(t, pagesHit, 1)
}

func TestFetchPropagatesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Fetch(context.Background(), "golang", "", 1)

	assert.ErrorContains(t, err, "status 403")
}

func TestNewAdzunaClientRequiresCredentials(t *testing.T) {
	assert.Nil(t, NewAdzunaClient("", "key", "gb"))
	assert.Nil(t, NewAdzunaClient("app", "", "gb"))
	assert.NotNil(t, NewAdzunaClient("app", "key", ""))
}

func TestDetectRemoteType(t *testing.T) {
	assert.Equal(t, "remote", DetectRemoteType("This is a fully remote position"))
	assert.Equal(t, "remote", DetectRemoteType("Work from home encouraged"))
	assert.Equal(t, "hybrid", DetectRemoteType("Hybrid setup, 2 days in office"))
	assert.Equal(t, "hybrid", DetectRemoteType("We offer flexible working"))
	assert.Equal(t, "onsite", DetectRemoteType("Based in our Berlin office"))
	assert.Equal(t, "onsite", DetectRemoteType(""))
}

func TestExtractSkillsBoundaries(t *testing.T) {
	skills := ExtractSkills("We use Go and GitLab, not golang branding or gophers")
	assert.Contains(t, skills, "go")
	assert.NotContains(t, skills, "git")

	skills = ExtractSkills("Experience with node.js, ci/cd and rest api design")
	assert.Contains(t, skills, "node.js")
	assert.Contains(t, skills, "ci/cd")
	assert.Contains(t, skills, "rest api")
}
