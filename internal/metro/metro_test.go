package metro

import "testing"

func TestBucket(t *testing.T) {
	b := NewBucketer("Chicago, IL", []string{"Dallas, TX", "Austin, TX", "Florida", "Nashville, TN"}, nil)

	tests := []struct {
		name     string
		location string
		expected string
	}{
		{
			name:     "Priority metro by city name",
			location: "Chicago, IL",
			expected: "Chicago, IL",
		},
		{
			name:     "Suburb maps to its metro",
			location: "Naperville, IL",
			expected: "Chicago, IL",
		},
		{
			name:     "Secondary metro alias",
			location: "Fort Worth, TX",
			expected: "Dallas, TX",
		},
		{
			name:     "Statewide bucket",
			location: "Sarasota, FL",
			expected: "Florida",
		},
		{
			name:     "Metro without alias table entry",
			location: "Nashville, Tennessee",
			expected: "Nashville, TN",
		},
		{
			name:     "Remote goes to Other",
			location: "Remote",
			expected: Other,
		},
		{
			name:     "Anywhere goes to Other",
			location: "Anywhere (United States)",
			expected: Other,
		},
		{
			name:     "Unconfigured city goes to Other",
			location: "Seattle, WA",
			expected: Other,
		},
		{
			name:     "Empty location goes to Other",
			location: "",
			expected: Other,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Bucket(tt.location)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

// The configured order decides when aliases overlap: the priority metro is
// checked first.
func TestBucketPriorityWinsOverlap(t *testing.T) {
	b := NewBucketer("Florida", []string{"Tampa, FL"}, nil)

	if got := b.Bucket("Tampa, FL"); got != "Florida" {
		t.Errorf("got %q, want %q", got, "Florida")
	}
}

// A metro_aliases config entry replaces the built-in list for that metro.
func TestBucketConfigOverrides(t *testing.T) {
	b := NewBucketer("Chicago, IL", nil, map[string][]string{
		"Chicago, IL": {"Chicago", "Rockford, IL"},
	})

	if got := b.Bucket("Rockford, IL"); got != "Chicago, IL" {
		t.Errorf("got %q, want %q", got, "Chicago, IL")
	}
	if got := b.Bucket("Naperville, IL"); got != Other {
		t.Errorf("got %q, want %q: override replaces the built-in aliases", got, Other)
	}
}
