// Package planner turns the configured metros and search terms into the
// ordered query list for one run.
package planner

import (
	"time"

	"go-medtech-job-alerts/internal/config"
	"go-medtech-job-alerts/internal/model"
)

// Plan pairs search terms with metros for a single run. The priority metro
// comes first with its own term budget, then every secondary metro with a
// smaller rotating subset. Rotation is keyed off the day of the year, so
// consecutive runs cycle through the whole term list while each run stays
// within the query budget.
func Plan(cfg *config.Config, now time.Time) []model.Query {
	var queries []model.Query

	for _, term := range rotateTerms(cfg.SearchTerms, now, cfg.PriorityMetro.QueriesPerRun) {
		queries = append(queries, model.Query{Term: term, Metro: cfg.PriorityMetro.Name})
	}

	secondaryTerms := rotateTerms(cfg.SearchTerms, now, cfg.SecondaryTermsPerMetro)
	for _, metro := range cfg.SecondaryMetros {
		for _, term := range secondaryTerms {
			queries = append(queries, model.Query{Term: term, Metro: metro})
		}
	}

	return queries
}

// rotateTerms picks count consecutive terms starting at a day-of-year
// offset, wrapping around the end of the list. Count is clamped so a
// generous budget never issues the same query twice.
func rotateTerms(terms []string, now time.Time, count int) []string {
	if len(terms) == 0 || count <= 0 {
		return nil
	}
	if count > len(terms) {
		count = len(terms)
	}

	start := now.YearDay() % len(terms)
	picked := make([]string, 0, count)
	for i := 0; i < count; i++ {
		picked = append(picked, terms[(start+i)%len(terms)])
	}
	return picked
}
