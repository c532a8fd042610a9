// Package dedup tracks listing ids that already went out in a digest, so
// the same posting never gets emailed twice.
package dedup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"go-medtech-job-alerts/internal/model"
)

// On-disk shape of the store.
type seenFile struct {
	SeenIDs   []string `json:"seen_ids"`
	LastRun   string   `json:"last_run,omitempty"`
	LastRunID string   `json:"last_run_id,omitempty"`
}

// Store holds the set of already-emitted listing ids. The set only grows;
// ids are never evicted. Split updates it in memory, Save persists it;
// callers decide when (after a successful send) and when not (dry run, no
// new jobs).
type Store struct {
	path string
	seen mapset.Set[string]
}

// Load reads the store at path. A missing file yields an empty store (first
// run); any other failure is an error the caller treats as fatal, before
// spending API quota on queries.
func Load(path string) (*Store, error) {
	store := &Store{path: path, seen: mapset.NewSet[string]()}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("dedup: read %s: %w", path, err)
	}

	var file seenFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("dedup: parse %s: %w", path, err)
	}

	store.seen.Append(file.SeenIDs...)
	return store, nil
}

// Split keeps the listings whose id has never been emitted and marks them
// seen in memory. The id alone governs: a known posting reappearing with a
// changed location is still dropped. Duplicates within the batch collapse
// to their first occurrence.
func (s *Store) Split(listings []model.ScoredListing) []model.ScoredListing {
	var unseen []model.ScoredListing
	for _, l := range listings {
		if s.seen.Contains(l.ID) {
			continue
		}
		s.seen.Add(l.ID)
		unseen = append(unseen, l)
	}
	return unseen
}

// Save atomically rewrites the store file with the current set, sorted for
// stable diffs.
func (s *Store) Save(now time.Time, runID string) error {
	ids := s.seen.ToSlice()
	sort.Strings(ids)

	data, err := json.MarshalIndent(seenFile{
		SeenIDs:   ids,
		LastRun:   now.UTC().Format(time.RFC3339),
		LastRunID: runID,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("dedup: marshal: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("dedup: create %s: %w", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("dedup: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("dedup: replace %s: %w", s.path, err)
	}
	return nil
}

// Size returns how many ids the store currently tracks.
func (s *Store) Size() int {
	return s.seen.Cardinality()
}
