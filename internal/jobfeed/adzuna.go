// Package jobfeed pulls postings from the Adzuna job board API and maps
// them onto the internal posting model.
package jobfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-career-mentor-backend/internal/domain"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.adzuna.com/v1/api"
	resultsPerPage = 20
)

// AdzunaClient is a typed client for the Adzuna search endpoint. The free
// tier allows 250 calls per month, so fetches are rate limited client-side.
type AdzunaClient struct {
	appID   string
	apiKey  string
	country string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

func NewAdzunaClient(appID, apiKey, country string) *AdzunaClient {
	if appID == "" || apiKey == "" {
		return nil
	}
	if country == "" {
		country = "gb"
	}
	return &AdzunaClient{
		appID:   appID,
		apiKey:  apiKey,
		country: country,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// adzunaResult mirrors the fields we read from one search hit.
type adzunaResult struct {
	ID      json.Number `json:"id"`
	Title   string      `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description  string   `json:"description"`
	SalaryMin    *float64 `json:"salary_min"`
	SalaryMax    *float64 `json:"salary_max"`
	RedirectURL  string   `json:"redirect_url"`
	Created      string   `json:"created"`
	ContractType string   `json:"contract_type"`
}

type adzunaSearchResponse struct {
	Results []adzunaResult `json:"results"`
	Count   int            `json:"count"`
}

// Fetch retrieves up to pages pages of postings for the query. Stops early
// when the board returns a short page.
func (c *AdzunaClient) Fetch(ctx context.Context, query, location string, pages int) ([]domain.JobPosting, error) {
	if pages < 1 {
		pages = 1
	}

	postings := make([]domain.JobPosting, 0, pages*resultsPerPage)
	for page := 1; page <= pages; page++ {
		results, err := c.searchPage(ctx, query, location, page)
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			postings = append(postings, mapResult(r))
		}
		if len(results) < resultsPerPage {
			break
		}
	}
	return postings, nil
}

func (c *AdzunaClient) searchPage(ctx context.Context, query, location string, page int) ([]adzunaResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/jobs/%s/search/%d", c.baseURL, c.country, page)
	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.apiKey)
	params.Set("results_per_page", strconv.Itoa(resultsPerPage))
	params.Set("what", query)
	if location != "" {
		params.Set("where", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna returned status %d", resp.StatusCode)
	}

	var body adzunaSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode adzuna response: %w", err)
	}
	return body.Results, nil
}

func mapResult(r adzunaResult) domain.JobPosting {
	company := r.Company.DisplayName
	if company == "" {
		company = "Unknown"
	}
	employment := r.ContractType
	if employment == "" {
		employment = "full-time"
	}

	job := domain.JobPosting{
		Title:          r.Title,
		CompanyName:    company,
		Location:       r.Location.DisplayName,
		Description:    r.Description,
		RequiredSkills: ExtractSkills(r.Description),
		RemoteType:     DetectRemoteType(r.Description),
		EmploymentType: employment,
		Source:         "adzuna",
		ExternalID:     r.ID.String(),
		ApplyURL:       r.RedirectURL,
		IsActive:       true,
	}
	if r.SalaryMin != nil {
		v := int(*r.SalaryMin)
		job.SalaryMin = &v
	}
	if r.SalaryMax != nil {
		v := int(*r.SalaryMax)
		job.SalaryMax = &v
	}
	if r.Created != "" {
		if t, err := time.Parse(time.RFC3339, r.Created); err == nil {
			job.PostedDate = &t
		} else if t, err := time.Parse("2006-01-02T15:04:05Z", r.Created); err == nil {
			job.PostedDate = &t
		}
	}
	return job
}
