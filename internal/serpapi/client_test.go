package serpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testClient(srv *httptest.Server, days int) *Client {
	return &Client{
		apiKey:       "test-key",
		baseURL:      srv.URL,
		client:       srv.Client(),
		num:          10,
		daysLookback: days,
		now: func() time.Time {
			return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
		},
	}
}

const jobsBody = `{
  "jobs_results": [
    {
      "job_id": "abc123",
      "title": "Associate Sales Representative",
      "company_name": "Stryker",
      "location": "Chicago, IL",
      "description": "Entry level role",
      "detected_extensions": {"posted_at": "3 days ago"},
      "apply_options": [{"title": "LinkedIn", "link": "https://example.com/apply"}]
    },
    {
      "title": "",
      "company_name": "Mystery Co"
    },
    {
      "title": "Medical Sales Rep",
      "company_name": "Acme Medical",
      "location": "Dallas, TX",
      "description": "No provider id on this one"
    },
    {
      "job_id": "xyz789",
      "title": "Device Sales Associate",
      "company_name": "Medtronic",
      "location": "Houston, TX",
      "description": "No apply options on this one"
    }
  ]
}`

func TestSearchNormalizesListings(t *testing.T) {
	var gotParams url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParams = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(jobsBody))
	}))
	defer srv.Close()

	listings, err := testClient(srv, 7).Search(context.Background(), "medical device sales", "Chicago, IL")

	assert.NoError(t, err)
	assert.Len(t, listings, 3, "the record without a title should be skipped")

	first := listings[0]
	assert.Equal(t, "abc123", first.ID)
	assert.Equal(t, "Associate Sales Representative", first.Title)
	assert.Equal(t, "https://example.com/apply", first.ApplyLink)
	assert.Equal(t, "3 days ago", first.PostedAtRaw)
	if assert.NotNil(t, first.PostedAt) {
		assert.Equal(t, time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC), *first.PostedAt)
	}

	//no provider id: a stable derived one, and no apply link to invent
	assert.NotEmpty(t, listings[1].ID)
	assert.Empty(t, listings[1].ApplyLink)
	assert.Nil(t, listings[1].PostedAt)

	//provider id but no apply options: deep link into Google Jobs
	assert.Contains(t, listings[2].ApplyLink, "htidocid=xyz789")

	assert.Equal(t, "google_jobs", gotParams.Get("engine"))
	assert.Equal(t, "medical device sales", gotParams.Get("q"))
	assert.Equal(t, "Chicago, IL", gotParams.Get("location"))
	assert.Equal(t, "10", gotParams.Get("num"))
	assert.Equal(t, "date_posted:week", gotParams.Get("chips"))
}

func TestSearchReportsBodyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Invalid API key"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv, 0).Search(context.Background(), "term", "Chicago, IL")
	assert.ErrorContains(t, err, "Invalid API key")
}

func TestSearchReportsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv, 0).Search(context.Background(), "term", "Chicago, IL")
	assert.ErrorContains(t, err, "429")
}

func TestDatePostedChips(t *testing.T) {
	tests := []struct {
		days     int
		expected string
	}{
		{0, ""},
		{1, "date_posted:today"},
		{3, "date_posted:3days"},
		{7, "date_posted:week"},
		{30, "date_posted:month"},
	}

	for _, tt := range tests {
		if got := datePostedChips(tt.days); got != tt.expected {
			t.Errorf("days=%d: got %q, want %q", tt.days, got, tt.expected)
		}
	}
}

func TestParsePostedAt(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	at := func(tm time.Time) *time.Time { return &tm }

	tests := []struct {
		raw      string
		expected *time.Time
	}{
		{"just posted", at(now)},
		{"Today", at(now)},
		{"Yesterday", at(now.AddDate(0, 0, -1))},
		{"2 hours ago", at(now.Add(-2 * time.Hour))},
		{"14 days ago", at(now.AddDate(0, 0, -14))},
		{"1 minute ago", at(now.Add(-time.Minute))},
		{"last week", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := parsePostedAt(tt.raw, now)
		if tt.expected == nil {
			if got != nil {
				t.Errorf("%q: got %v, want nil", tt.raw, got)
			}
			continue
		}
		if got == nil || !got.Equal(*tt.expected) {
			t.Errorf("%q: got %v, want %v", tt.raw, got, tt.expected)
		}
	}
}
