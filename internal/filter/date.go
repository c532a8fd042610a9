package filter

import (
	"time"

	"go-medtech-job-alerts/internal/model"
)

// Tolerate slightly-future posting dates caused by timezone skew.
const futureSkew = 2 * 24 * time.Hour

// IsFresh reports whether a listing was posted within the lookback window.
// Listings without a parseable posting date pass: the engine's own date
// filter already did the coarse cut, and dropping undated postings would
// lose real matches.
func IsFresh(listing model.Listing, now time.Time, days int) bool {
	if days <= 0 || listing.PostedAt == nil {
		return true
	}

	diff := now.Sub(*listing.PostedAt)
	if diff > time.Duration(days)*24*time.Hour {
		return false
	}
	if diff < -futureSkew {
		return false
	}
	return true
}
