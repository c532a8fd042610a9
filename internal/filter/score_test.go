package filter

import (
	"testing"

	"go-medtech-job-alerts/internal/model"
)

func TestRelevancyScore(t *testing.T) {
	tests := []struct {
		name     string
		listing  model.Listing
		expected int
	}{
		{
			name: "Known company with associate title",
			listing: model.Listing{
				Title:       "Associate Sales Representative",
				Company:     "Stryker",
				Description: "0-2 years experience preferred",
			},
			expected: 50, //keyword 10 + title 15 + company 25
		},
		{
			name: "Staffing agency goes negative",
			listing: model.Listing{
				Title:   "Sales Rep",
				Company: "Acme Staffing Solutions",
			},
			expected: -20,
		},
		{
			name: "Keyword bonus is capped",
			listing: model.Listing{
				Title:       "Medical Device Sales Rep",
				Company:     "BrightPath Medical",
				Description: "orthopedic spine trauma implant endoscopy training provided",
			},
			expected: 30, //five high keywords present, only three count
		},
		{
			name: "Company match survives diacritics",
			listing: model.Listing{
				Title:   "Account Representative",
				Company: "Mölnlycke Health Care",
			},
			expected: 25,
		},
		{
			name: "Company name with legal suffix still matches",
			listing: model.Listing{
				Title:   "Sales Rep",
				Company: "Stryker Corp",
			},
			expected: 25,
		},
		{
			name: "Agency phrase in description",
			listing: model.Listing{
				Title:       "Entry Level Medical Sales",
				Company:     "CareerBridge",
				Description: "We are a recruiting firm placing candidates",
			},
			expected: 10, //keywords 15 + title 15 - staffing 20
		},
		{
			name:     "Nothing special scores baseline",
			listing:  model.Listing{Title: "Account Executive", Company: "Initech"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelevancyScore(tt.listing)
			if got != tt.expected {
				t.Errorf("got %d, want %d", got, tt.expected)
			}
		})
	}
}
