// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// PriorityMetro gets the largest slice of the query budget and the top
// section of the digest.
type PriorityMetro struct {
	Name          string `yaml:"name"`
	QueriesPerRun int    `yaml:"queries_per_run"`
}

type Config struct {
	SerpAPIKey string `env:"SERPAPI_KEY"`

	GmailAddress     string `env:"GMAIL_ADDRESS"`
	GmailAppPassword string `env:"GMAIL_APP_PASSWORD"`
	RecipientEmail   string `yaml:"recipient_email" env:"RECIPIENT_EMAIL"`

	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	//Search criteria
	SearchTerms            []string            `yaml:"search_terms"`
	PriorityMetro          PriorityMetro       `yaml:"priority_metro"`
	SecondaryMetros        []string            `yaml:"secondary_metros"`
	SecondaryTermsPerMetro int                 `yaml:"secondary_terms_per_metro"`
	MetroAliases           map[string][]string `yaml:"metro_aliases"`
	ResultsPerQuery        int                 `yaml:"results_per_query"`
	DaysLookback           int                 `yaml:"days_lookback"`

	//Digest badges
	ScoreTopThreshold  int `yaml:"score_top_threshold"`
	ScoreGoodThreshold int `yaml:"score_good_threshold"`

	//Paths
	SeenPath    string `yaml:"seen_path"`
	QuotesPath  string `yaml:"quotes_path"`
	PreviewPath string `yaml:"preview_path"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if key := os.Getenv("SERPAPI_KEY"); key != "" {
		cfg.SerpAPIKey = key
	}

	if addr := os.Getenv("GMAIL_ADDRESS"); addr != "" {
		cfg.GmailAddress = addr
	}

	if pass := os.Getenv("GMAIL_APP_PASSWORD"); pass != "" {
		cfg.GmailAppPassword = pass
	}

	if rcpt := os.Getenv("RECIPIENT_EMAIL"); rcpt != "" {
		cfg.RecipientEmail = rcpt
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.PriorityMetro.QueriesPerRun == 0 {
		//Unset means the priority metro covers every search term
		cfg.PriorityMetro.QueriesPerRun = len(cfg.SearchTerms)
	}

	if cfg.SecondaryTermsPerMetro == 0 {
		cfg.SecondaryTermsPerMetro = 2
	}

	if cfg.ResultsPerQuery == 0 {
		cfg.ResultsPerQuery = 10
	}

	if cfg.DaysLookback == 0 {
		cfg.DaysLookback = 7
	}

	if cfg.ScoreTopThreshold == 0 {
		cfg.ScoreTopThreshold = 50
	}

	if cfg.ScoreGoodThreshold == 0 {
		cfg.ScoreGoodThreshold = 25
	}

	if cfg.SeenPath == "" {
		cfg.SeenPath = "data/seen_jobs.json"
	}

	if cfg.QuotesPath == "" {
		cfg.QuotesPath = "configs/quotes.yaml"
	}

	if cfg.PreviewPath == "" {
		cfg.PreviewPath = "preview_email.html"
	}

	//Validate required fields
	if cfg.SerpAPIKey == "" {
		log.Fatal("SERPAPI_KEY is required")
	}

	if len(cfg.SearchTerms) == 0 {
		log.Fatal("search_terms is required")
	}

	if cfg.PriorityMetro.Name == "" {
		log.Fatal("priority_metro.name is required")
	}

	return cfg
}

// HasMailer reports whether every credential needed for a live send is set.
// Dry runs work without them.
func (c *Config) HasMailer() bool {
	return c.GmailAddress != "" && c.GmailAppPassword != "" && c.RecipientEmail != ""
}

// HasTelegram reports whether the optional Telegram summary is configured.
func (c *Config) HasTelegram() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
