package filter

import (
	"regexp"
	"strconv"
	"strings"
)

// Title keywords that mark a posting as senior-track.
var excludeTitleKeywords = []string{
	"senior", "sr.", "sr ", "director", "vp ", "vice president", "principal",
	"manager", "lead", "head of", "chief", "executive", "staff",
}

// A title must mention at least one of these to count as sales-adjacent.
var requireTitleKeywords = []string{
	"sales", "clinical", "account", "representative", "rep",
	"medical", "surgical", "med ", "associate", "device",
}

// Matches "3+ years", "4 years", "3-5 years" and similar ranges; group 1 is
// the minimum.
var yoePattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:-\s*\d+\s*)?years?`)

// Postings asking for more than this many years are not entry level.
const maxYears = 2

// IsEntryLevel reports whether a posting reads like an entry-level sales
// role. Depends only on title and description, no I/O.
func IsEntryLevel(title, description string) bool {
	titleLower := strings.ToLower(title)

	//must not carry a senior title
	for _, kw := range excludeTitleKeywords {
		if strings.Contains(titleLower, kw) {
			return false
		}
	}

	//must be sales/clinical related
	relevant := false
	for _, kw := range requireTitleKeywords {
		if strings.Contains(titleLower, kw) {
			relevant = true
			break
		}
	}
	if !relevant {
		return false
	}

	//must not require more than maxYears of experience; no stated
	//requirement passes
	for _, m := range yoePattern.FindAllStringSubmatch(description, -1) {
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if years > maxYears {
			return false
		}
	}

	return true
}
