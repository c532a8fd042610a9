package digest

import (
	"fmt"
	"hash/fnv"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type quoteFile struct {
	Quotes []string `yaml:"quotes"`
}

// LoadQuotes reads the quote pool from a YAML file.
func LoadQuotes(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("digest: read quotes %s: %w", path, err)
	}

	var file quoteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("digest: parse quotes %s: %w", path, err)
	}
	return file.Quotes, nil
}

// PickQuote selects the day's quote, seeded by the date: the same day
// always shows the same quote, so re-runs render identical digests.
func PickQuote(quotes []string, now time.Time) string {
	if len(quotes) == 0 {
		return ""
	}

	h := fnv.New32a()
	h.Write([]byte(now.Format("2006-01-02")))
	return quotes[int(h.Sum32()%uint32(len(quotes)))]
}
