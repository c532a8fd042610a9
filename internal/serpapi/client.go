// Package serpapi is a thin client for the SerpAPI Google Jobs engine.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go-medtech-job-alerts/internal/model"
)

const defaultBaseURL = "https://serpapi.com/search"

type Client struct {
	apiKey       string
	baseURL      string
	client       *http.Client
	num          int
	daysLookback int
	now          func() time.Time
}

// NewClient builds a client that requests num results per query and asks the
// engine to pre-filter postings older than daysLookback days (0 disables the
// date filter).
func NewClient(apiKey string, num, daysLookback int) *Client {
	return &Client{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		client:       &http.Client{Timeout: 30 * time.Second},
		num:          num,
		daysLookback: daysLookback,
		now:          time.Now,
	}
}

// Mirror of the SerpAPI google_jobs response, trimmed to the fields we read.
type searchResponse struct {
	Error       string      `json:"error"`
	JobsResults []jobResult `json:"jobs_results"`
}

type jobResult struct {
	JobID              string             `json:"job_id"`
	Title              string             `json:"title"`
	CompanyName        string             `json:"company_name"`
	Location           string             `json:"location"`
	Description        string             `json:"description"`
	DetectedExtensions detectedExtensions `json:"detected_extensions"`
	ApplyOptions       []applyOption      `json:"apply_options"`
}

type detectedExtensions struct {
	PostedAt string `json:"posted_at"`
}

type applyOption struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Search runs one google_jobs query for term in location and returns the
// normalized listings. Records without a title are skipped with a log line.
func (c *Client) Search(ctx context.Context, term, location string) ([]model.Listing, error) {
	params := url.Values{}
	params.Set("engine", "google_jobs")
	params.Set("q", term)
	params.Set("location", location)
	params.Set("api_key", c.apiKey)
	params.Set("num", strconv.Itoa(c.num))
	params.Set("hl", "en")
	params.Set("gl", "us")
	if chips := datePostedChips(c.daysLookback); chips != "" {
		params.Set("chips", chips)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi: build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi: request %q in %s: %w", term, location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi: unexpected status %d for %q in %s", resp.StatusCode, term, location)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("serpapi: decode response: %w", err)
	}

	//SerpAPI reports engine-level failures inside the body
	if body.Error != "" {
		return nil, fmt.Errorf("serpapi: %s", body.Error)
	}

	now := c.now()
	listings := make([]model.Listing, 0, len(body.JobsResults))
	for _, job := range body.JobsResults {
		if job.Title == "" {
			log.Printf("⚠️ Skipping malformed listing without title (company=%q)", job.CompanyName)
			continue
		}
		listings = append(listings, toListing(job, now))
	}

	return listings, nil
}

// datePostedChips maps a day count onto the engine's coarse date_posted
// buckets, rounding up so nothing inside the window is filtered away.
func datePostedChips(days int) string {
	switch {
	case days <= 0:
		return ""
	case days == 1:
		return "date_posted:today"
	case days <= 3:
		return "date_posted:3days"
	case days <= 7:
		return "date_posted:week"
	default:
		return "date_posted:month"
	}
}

func toListing(job jobResult, now time.Time) model.Listing {
	id := job.JobID
	if id == "" {
		id = model.FallbackID(job.Title, job.CompanyName)
	}

	return model.Listing{
		ID:          id,
		Title:       job.Title,
		Company:     job.CompanyName,
		Location:    job.Location,
		Description: job.Description,
		ApplyLink:   applyLink(job),
		PostedAtRaw: job.DetectedExtensions.PostedAt,
		PostedAt:    parsePostedAt(job.DetectedExtensions.PostedAt, now),
	}
}

// applyLink prefers the provider's first real apply option and falls back to
// a Google Jobs deep link when only a job_id is available.
func applyLink(job jobResult) string {
	for _, option := range job.ApplyOptions {
		if option.Link != "" {
			return option.Link
		}
	}
	if job.JobID != "" {
		return "https://www.google.com/search?ibp=htl;jobs&q=" + url.QueryEscape(job.Title) + "&htidocid=" + url.QueryEscape(job.JobID)
	}
	return ""
}

var postedAgoPattern = regexp.MustCompile(`(\d+)\s+(minute|hour|day)s?\s+ago`)

// parsePostedAt turns the engine's relative posted_at strings ("3 days ago",
// "just posted") into an absolute time. Unparseable values return nil.
func parsePostedAt(raw string, now time.Time) *time.Time {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return nil
	}

	if lower == "just posted" || lower == "today" {
		t := now
		return &t
	}
	if lower == "yesterday" {
		t := now.AddDate(0, 0, -1)
		return &t
	}

	m := postedAgoPattern.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	var t time.Time
	switch m[2] {
	case "minute":
		t = now.Add(-time.Duration(n) * time.Minute)
	case "hour":
		t = now.Add(-time.Duration(n) * time.Hour)
	case "day":
		t = now.AddDate(0, 0, -n)
	}
	return &t
}
