package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go-medtech-job-alerts/internal/config"
	"go-medtech-job-alerts/internal/dedup"
	"go-medtech-job-alerts/internal/digest"
	"go-medtech-job-alerts/internal/mailer"
	"go-medtech-job-alerts/internal/metro"
	"go-medtech-job-alerts/internal/pipeline"
	"go-medtech-job-alerts/internal/serpapi"
	"go-medtech-job-alerts/internal/telegram"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "collect jobs and write a preview, but don't send email")
	flag.Parse()

	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. %d search terms, priority metro %s", len(cfg.SearchTerms), cfg.PriorityMetro.Name)

	if !*dryRun && !cfg.HasMailer() {
		log.Fatal("GMAIL_ADDRESS, GMAIL_APP_PASSWORD and RECIPIENT_EMAIL are required for a live run")
	}

	//load seen store before spending any API quota
	store, err := dedup.Load(cfg.SeenPath)
	if err != nil {
		log.Fatalf("❌ Failed to load seen store: %v", err)
	}
	log.Printf("📋 Loaded %d previously seen jobs", store.Size())

	//load quote pool
	quotes, err := digest.LoadQuotes(cfg.QuotesPath)
	if err != nil {
		log.Fatalf("❌ Failed to load quotes: %v", err)
	}

	//init telegram bot if configured; the run works without it
	var messenger pipeline.Messenger
	if cfg.HasTelegram() {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Failed to init Telegram Bot: %v. Continuing without summary.", err)
		} else {
			messenger = bot
			log.Println("🤖 Telegram Bot initialized.")
		}
	}

	var mail pipeline.Mailer
	if !*dryRun {
		mail = mailer.New(cfg.GmailAddress, cfg.GmailAppPassword, cfg.RecipientEmail)
	}

	//whole-run timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	runner := &pipeline.Runner{
		Cfg:       cfg,
		Searcher:  serpapi.NewClient(cfg.SerpAPIKey, cfg.ResultsPerQuery, cfg.DaysLookback),
		Mailer:    mail,
		Messenger: messenger,
		Store:     store,
		Composer:  digest.NewComposer(cfg.PriorityMetro.Name, cfg.ScoreTopThreshold, cfg.ScoreGoodThreshold, quotes),
		Bucketer:  metro.NewBucketer(cfg.PriorityMetro.Name, cfg.SecondaryMetros, cfg.MetroAliases),
		DryRun:    *dryRun,
		Now:       time.Now,
	}

	log.Println("🚀 Starting med-tech job alerts...")
	if _, err := runner.Run(ctx); err != nil {
		log.Fatalf("❌ Run failed: %v", err)
	}
	log.Println("🏁 Execution finished.")
}
