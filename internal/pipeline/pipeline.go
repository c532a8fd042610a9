// Package pipeline drives one alert run end to end: plan, fetch, filter,
// score, bucket, dedup, compose, deliver, persist.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-medtech-job-alerts/internal/config"
	"go-medtech-job-alerts/internal/dedup"
	"go-medtech-job-alerts/internal/digest"
	"go-medtech-job-alerts/internal/filter"
	"go-medtech-job-alerts/internal/metro"
	"go-medtech-job-alerts/internal/model"
	"go-medtech-job-alerts/internal/planner"
)

// Searcher runs one query against the job-search engine.
type Searcher interface {
	Search(ctx context.Context, term, location string) ([]model.Listing, error)
}

// Mailer delivers one composed digest.
type Mailer interface {
	Send(subject, html string) error
}

// Messenger posts the optional after-send summary.
type Messenger interface {
	SendSummary(text string) error
}

// Runner wires the collaborators for one run.
type Runner struct {
	Cfg       *config.Config
	Searcher  Searcher
	Mailer    Mailer    //nil in dry-run
	Messenger Messenger //nil when Telegram is not configured
	Store     *dedup.Store
	Composer  *digest.Composer
	Bucketer  *metro.Bucketer
	DryRun    bool
	Now       func() time.Time
}

// Result summarizes what one run did.
type Result struct {
	RunID     string
	Queries   int
	Failed    int //queries that errored
	Fetched   int
	Filtered  int //dropped as non-entry-level or stale
	New       int //unseen listings that went into the digest
	Sent      bool
	Previewed bool
}

// Run executes one alert run. A fatal condition (every query failed, mail
// transport failure, store write failure) comes back as an error; the seen
// store is only persisted after a successful live send, so failed and dry
// runs leave the next run's input untouched.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	now := r.Now()

	queries := planner.Plan(r.Cfg, now)
	res.Queries = len(queries)
	log.Printf("🗺️ Run %s: %d queries planned (priority metro %s)", res.RunID, len(queries), r.Cfg.PriorityMetro.Name)

	//fetch, then filter/score/bucket each query's listings
	var scored []model.ScoredListing
	for _, q := range queries {
		listings, err := r.Searcher.Search(ctx, q.Term, q.Metro)
		if err != nil {
			log.Printf("❌ Query %q in %s failed: %v", q.Term, q.Metro, err)
			res.Failed++
			continue
		}

		res.Fetched += len(listings)
		for _, l := range listings {
			if !filter.IsEntryLevel(l.Title, l.Description) || !filter.IsFresh(l, now, r.Cfg.DaysLookback) {
				res.Filtered++
				continue
			}
			scored = append(scored, model.ScoredListing{
				Listing: l,
				Score:   filter.RelevancyScore(l),
				Metro:   r.Bucketer.Bucket(l.Location),
			})
		}
	}

	if res.Queries > 0 && res.Failed == res.Queries {
		return res, fmt.Errorf("pipeline: all %d queries failed", res.Queries)
	}
	log.Printf("📦 Collected %d listings, filtered out %d (senior/irrelevant/stale)", res.Fetched, res.Filtered)

	unseen := r.Store.Split(scored)
	res.New = len(unseen)
	log.Printf("🔍 Deduplication: %d relevant -> %d unseen", len(scored), res.New)

	d, err := r.Composer.Compose(unseen, now)
	if err != nil {
		return res, err
	}
	if d == nil {
		log.Println("ℹ️ 0 new jobs. Skipping email.")
		return res, nil
	}

	if r.DryRun {
		fmt.Println(d.Summary)
		if err := os.WriteFile(r.Cfg.PreviewPath, []byte(d.HTML), 0644); err != nil {
			return res, fmt.Errorf("pipeline: write preview: %w", err)
		}
		log.Printf("📝 [DRY RUN] Would send email with %d jobs. Preview written to %s", d.Total, r.Cfg.PreviewPath)
		res.Previewed = true
		return res, nil
	}

	if err := r.Mailer.Send(d.Subject, d.HTML); err != nil {
		return res, fmt.Errorf("pipeline: %w", err)
	}
	res.Sent = true
	log.Printf("📧 Email sent: %s", d.Subject)

	if r.Messenger != nil {
		if err := r.Messenger.SendSummary(summaryText(d, res)); err != nil {
			log.Printf("⚠️ Failed to send Telegram summary: %v", err)
		}
	}

	if err := r.Store.Save(now, res.RunID); err != nil {
		return res, fmt.Errorf("pipeline: %w", err)
	}
	log.Printf("💾 Seen store now tracks %d ids", r.Store.Size())

	return res, nil
}

func summaryText(d *digest.Digest, res *Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📬 <b>Med device job alerts</b>: %d new listings emailed (%d queries, %d failed)\n", d.Total, res.Queries, res.Failed)
	for _, c := range d.Counts {
		fmt.Fprintf(&b, "• %s: %d\n", c.Metro, c.Count)
	}
	fmt.Fprintf(&b, "⭐ Top match: %s", d.TopPick)
	return b.String()
}
