// Package metro assigns free-text job locations to configured metro buckets.
package metro

import (
	"strings"

	"go-medtech-job-alerts/internal/textnorm"
)

// Other is the catch-all bucket for locations matching no configured metro,
// including remote and nationwide postings.
const Other = "Other"

// Suburbs and spellings that map back to each metro. Keys match the metro
// names used in config.
var metroAliases = map[string][]string{
	"Chicago, IL": {"chicago", "naperville", "oak park", "evanston", "schaumburg",
		"oak lawn", "elmhurst", "joliet", "aurora, il", "lincolnshire, il"},
	"Cleveland, OH":  {"cleveland", "akron, oh", "akron, ohio"},
	"Columbus, OH":   {"columbus, oh", "columbus, ohio"},
	"Greenville, SC": {"greenville, sc", "spartanburg, sc"},
	"New York, NY": {"new york", "nyc", "manhattan", "brooklyn", "queens",
		"long island", "newark, nj", "jersey city", "new hyde park"},
	"Dallas, TX": {"dallas", "fort worth", "dfw", "plano, tx", "irving, tx", "arlington, tx"},
	"Austin, TX": {"austin, tx", "austin, texas", "round rock, tx", "san marcos, tx"},
	"Houston, TX": {"houston", "sugar land", "the woodlands", "katy, tx"},
	"Florida": {"florida", "miami", "orlando", "tampa", "jacksonville, fl",
		"fort lauderdale", "tallahassee", "gainesville, fl", "ocala, fl",
		"st. petersburg", "sarasota"},
	"Boston, MA": {"boston", "cambridge, ma", "worcester, ma"},
	"Philadelphia, PA": {"philadelphia", "philly", "harrisburg, pa", "pittsburgh",
		"allentown, pa", "king of prussia"},
}

// Bucketer maps locations onto the configured metros, priority metro first,
// then secondaries in configured order. First match wins.
type Bucketer struct {
	metros  []string
	aliases [][]string
}

func NewBucketer(priority string, secondaries []string, overrides map[string][]string) *Bucketer {
	metros := append([]string{priority}, secondaries...)

	b := &Bucketer{metros: metros}
	for _, m := range metros {
		b.aliases = append(b.aliases, aliasesFor(m, overrides))
	}
	return b
}

// aliasesFor returns the alias list for a metro. A config override replaces
// the built-in entry for that metro; metros with neither fall back to their
// folded full name plus the bare city name.
func aliasesFor(metro string, overrides map[string][]string) []string {
	if aliases, ok := overrides[metro]; ok {
		folded := make([]string, 0, len(aliases))
		for _, a := range aliases {
			folded = append(folded, textnorm.Fold(a))
		}
		return folded
	}

	if aliases, ok := metroAliases[metro]; ok {
		return aliases
	}

	folded := textnorm.Fold(metro)
	aliases := []string{folded}
	if city, _, ok := strings.Cut(folded, ","); ok {
		city = strings.TrimSpace(city)
		if city != "" {
			aliases = append(aliases, city)
		}
	}
	return aliases
}

// Bucket assigns a free-text location to exactly one bucket. Every input
// gets a bucket; nothing is ever dropped here.
func (b *Bucketer) Bucket(location string) string {
	loc := textnorm.Fold(location)

	for i, metro := range b.metros {
		for _, alias := range b.aliases[i] {
			if strings.Contains(loc, alias) {
				return metro
			}
		}
	}

	return Other
}
