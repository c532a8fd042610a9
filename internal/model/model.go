// Package model defines the data structures shared across one alert run.
package model

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Query pairs one search term with the metro it is issued against.
type Query struct {
	Term  string
	Metro string
}

// Listing is a normalized job posting fetched from the search API.
// Immutable once fetched.
type Listing struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	ApplyLink   string     `json:"apply_link,omitempty"`
	PostedAtRaw string     `json:"posted_at_raw,omitempty"`
	PostedAt    *time.Time `json:"posted_at,omitempty"`
}

// ScoredListing decorates a Listing with its relevancy score and the metro
// bucket it was assigned to.
type ScoredListing struct {
	Listing
	Score int    `json:"score"`
	Metro string `json:"metro"`
}

// FallbackID derives a stable listing ID for providers that omit job_id.
// Location is excluded on purpose: the same posting often reappears with a
// slightly different free-text location, and the dedup key must not change
// when it does.
func FallbackID(title, company string) string {
	raw := strings.ToLower(title) + "|" + strings.ToLower(company)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
