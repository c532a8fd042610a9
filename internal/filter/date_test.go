package filter

import (
	"testing"
	"time"

	"go-medtech-job-alerts/internal/model"
)

func TestIsFresh(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	at := func(tm time.Time) *time.Time { return &tm }

	tests := []struct {
		name     string
		posted   *time.Time
		days     int
		expected bool
	}{
		{
			name:     "No posting date passes",
			posted:   nil,
			days:     7,
			expected: true,
		},
		{
			name:     "Recent posting passes",
			posted:   at(now.AddDate(0, 0, -3)),
			days:     7,
			expected: true,
		},
		{
			name:     "Window boundary passes",
			posted:   at(now.AddDate(0, 0, -7)),
			days:     7,
			expected: true,
		},
		{
			name:     "Stale posting rejected",
			posted:   at(now.AddDate(0, 0, -8)),
			days:     7,
			expected: false,
		},
		{
			name:     "Slight future date tolerated",
			posted:   at(now.AddDate(0, 0, 1)),
			days:     7,
			expected: true,
		},
		{
			name:     "Far future date rejected",
			posted:   at(now.AddDate(0, 0, 3)),
			days:     7,
			expected: false,
		},
		{
			name:     "Zero window disables the check",
			posted:   at(now.AddDate(0, 0, -30)),
			days:     0,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := model.Listing{Title: "Sales Rep", PostedAt: tt.posted}
			got := IsFresh(listing, now, tt.days)
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
