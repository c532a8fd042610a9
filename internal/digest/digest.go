// Package digest groups scored listings by metro and renders the HTML
// email for one run.
package digest

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go-medtech-job-alerts/internal/metro"
	"go-medtech-job-alerts/internal/model"
)

// Digest is one run's composed output.
type Digest struct {
	Subject string
	HTML    string
	Summary string
	Total   int
	Counts  []MetroCount
	TopPick string //highest-scored listing, "Title @ Company"
}

// MetroCount is one metro section's listing count, in digest order.
type MetroCount struct {
	Metro string
	Count int
}

type Composer struct {
	priorityMetro string
	topThreshold  int
	goodThreshold int
	quotes        []string
}

func NewComposer(priorityMetro string, topThreshold, goodThreshold int, quotes []string) *Composer {
	return &Composer{
		priorityMetro: priorityMetro,
		topThreshold:  topThreshold,
		goodThreshold: goodThreshold,
		quotes:        quotes,
	}
}

// Compose renders the digest for one run. A nil digest with a nil error
// means there is nothing worth sending.
//
// Section order is priority metro first, "Other" last, everything else
// alphabetical. Within a section listings sort by score, newest first on
// ties, then title, so the same input always renders the same document.
func (c *Composer) Compose(listings []model.ScoredListing, now time.Time) (*Digest, error) {
	if len(listings) == 0 {
		return nil, nil
	}

	sections := c.sectionize(listings)

	html, err := render(emailData{
		Date:     now.Format("January 02, 2006"),
		Total:    len(listings),
		Quote:    PickQuote(c.quotes, now),
		Sections: sections,
	})
	if err != nil {
		return nil, fmt.Errorf("digest: render: %w", err)
	}

	counts := make([]MetroCount, 0, len(sections))
	for _, s := range sections {
		counts = append(counts, MetroCount{Metro: s.Metro, Count: len(s.Listings)})
	}

	//overall best listing, same ordering the sections use
	best := make([]model.ScoredListing, len(listings))
	copy(best, listings)
	sortGroup(best)

	return &Digest{
		Subject: fmt.Sprintf("Med Device Sales Jobs - %s (%d new)", now.Format("Jan 02, 2006"), len(listings)),
		HTML:    html,
		Summary: summarize(sections),
		Total:   len(listings),
		Counts:  counts,
		TopPick: fmt.Sprintf("%s @ %s", best[0].Title, best[0].Company),
	}, nil
}

func (c *Composer) sectionize(listings []model.ScoredListing) []section {
	groups := make(map[string][]model.ScoredListing)
	for _, l := range listings {
		groups[l.Metro] = append(groups[l.Metro], l)
	}

	var names []string
	for name := range groups {
		if name != c.priorityMetro && name != metro.Other {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	ordered := make([]string, 0, len(groups))
	if _, ok := groups[c.priorityMetro]; ok {
		ordered = append(ordered, c.priorityMetro)
	}
	ordered = append(ordered, names...)
	if _, ok := groups[metro.Other]; ok {
		ordered = append(ordered, metro.Other)
	}

	sections := make([]section, 0, len(ordered))
	for _, name := range ordered {
		group := groups[name]
		sortGroup(group)

		s := section{Metro: name, Priority: name == c.priorityMetro}
		for i, l := range group {
			s.Listings = append(s.Listings, c.toRow(l, name, i))
		}
		sections = append(sections, s)
	}
	return sections
}

func sortGroup(group []model.ScoredListing) {
	sort.SliceStable(group, func(i, j int) bool {
		a, b := group[i], group[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !postedEqual(a.PostedAt, b.PostedAt) {
			return postedAfter(a.PostedAt, b.PostedAt)
		}
		return a.Title < b.Title
	})
}

func (c *Composer) toRow(l model.ScoredListing, metroName string, index int) row {
	location := l.Location
	if location == "" {
		location = metroName
	}

	posted := l.PostedAtRaw
	if posted == "" {
		posted = "Recently"
	}

	badge := ""
	switch {
	case l.Score >= c.topThreshold:
		badge = "TOP MATCH"
	case l.Score >= c.goodThreshold:
		badge = "GOOD FIT"
	}

	return row{
		Title:     l.Title,
		Company:   l.Company,
		Location:  location,
		Posted:    posted,
		ApplyLink: l.ApplyLink,
		Badge:     badge,
		Top:       badge == "TOP MATCH",
		Alt:       index%2 == 0,
		Score:     l.Score,
	}
}

// summarize builds the console/dry-run view of the same sections.
func summarize(sections []section) string {
	bar := strings.Repeat("=", 60)

	var b strings.Builder
	for _, s := range sections {
		fmt.Fprintf(&b, "\n%s\n  %s (%d jobs)\n%s\n", bar, s.Metro, len(s.Listings), bar)
		for _, r := range s.Listings {
			tag := ""
			if r.Badge != "" {
				tag = " [" + r.Badge + "]"
			}
			fmt.Fprintf(&b, "  %3dpts | %s @ %s%s\n", r.Score, r.Title, r.Company, tag)
		}
	}
	return b.String()
}

func postedAfter(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}

func postedEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
