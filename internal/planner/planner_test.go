package planner

import (
	"reflect"
	"testing"
	"time"

	"go-medtech-job-alerts/internal/config"
	"go-medtech-job-alerts/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{
		SearchTerms: []string{
			"medical device sales",
			"surgical sales associate",
			"entry level medical sales",
			"clinical specialist",
		},
		PriorityMetro:          config.PriorityMetro{Name: "Chicago, IL", QueriesPerRun: 2},
		SecondaryMetros:        []string{"Dallas, TX", "Houston, TX"},
		SecondaryTermsPerMetro: 1,
	}
}

func TestPlanBudgetAndOrder(t *testing.T) {
	cfg := testConfig()
	now := time.Date(2026, 8, 25, 6, 0, 0, 0, time.UTC)

	queries := Plan(cfg, now)

	want := cfg.PriorityMetro.QueriesPerRun + len(cfg.SecondaryMetros)*cfg.SecondaryTermsPerMetro
	if len(queries) != want {
		t.Fatalf("got %d queries, want %d", len(queries), want)
	}

	//priority metro comes first and gets its full budget
	for i := 0; i < cfg.PriorityMetro.QueriesPerRun; i++ {
		if queries[i].Metro != cfg.PriorityMetro.Name {
			t.Errorf("query %d: got metro %q, want %q", i, queries[i].Metro, cfg.PriorityMetro.Name)
		}
	}

	//each secondary metro gets exactly its share
	counts := map[string]int{}
	for _, q := range queries[cfg.PriorityMetro.QueriesPerRun:] {
		counts[q.Metro]++
	}
	for _, m := range cfg.SecondaryMetros {
		if counts[m] != cfg.SecondaryTermsPerMetro {
			t.Errorf("metro %s: got %d queries, want %d", m, counts[m], cfg.SecondaryTermsPerMetro)
		}
	}
}

func TestPlanDeterministicPerDay(t *testing.T) {
	cfg := testConfig()
	day := time.Date(2026, 8, 25, 6, 0, 0, 0, time.UTC)

	first := Plan(cfg, day)
	second := Plan(cfg, day.Add(5*time.Hour)) //same calendar day

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same day produced different plans:\n%v\n%v", first, second)
	}

	nextDay := Plan(cfg, day.AddDate(0, 0, 1))
	if first[0].Term == nextDay[0].Term {
		t.Errorf("rotation did not advance: both days start with %q", first[0].Term)
	}
}

func TestPlanClampsBudget(t *testing.T) {
	cfg := testConfig()
	cfg.PriorityMetro.QueriesPerRun = 99

	queries := Plan(cfg, time.Date(2026, 8, 25, 6, 0, 0, 0, time.UTC))

	var priority []model.Query
	for _, q := range queries {
		if q.Metro == cfg.PriorityMetro.Name {
			priority = append(priority, q)
		}
	}
	if len(priority) != len(cfg.SearchTerms) {
		t.Fatalf("got %d priority queries, want %d", len(priority), len(cfg.SearchTerms))
	}

	seen := map[string]bool{}
	for _, q := range priority {
		if seen[q.Term] {
			t.Errorf("term %q queried twice for the priority metro", q.Term)
		}
		seen[q.Term] = true
	}
}
