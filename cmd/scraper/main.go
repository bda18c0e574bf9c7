package main

import (
	"context"
	"log"
	"time"

	"go-jobtrack-automation/internal/browser"
	"go-jobtrack-automation/internal/config"
	"go-jobtrack-automation/internal/notify"
	"go-jobtrack-automation/internal/runner"
	"go-jobtrack-automation/internal/scraper"
	"go-jobtrack-automation/internal/scraper/linkedin"
	"go-jobtrack-automation/internal/scraper/stepstone"
	"go-jobtrack-automation/internal/store"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Search terms: %v, location: %s, pages: %d",
		cfg.SearchTerms, cfg.Location, cfg.MaxPages)

	//prepare the store before any scraping: sheet creation failures should
	//surface before a browser is launched
	wb, err := store.OpenWorkbook(cfg.ExcelPath)
	if err != nil {
		log.Fatalf("❌ Failed to open workbook: %v", err)
	}
	defer wb.Close()

	st, err := store.New(wb)
	if err != nil {
		log.Fatalf("❌ Failed to initialize store: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	log.Println("🚀 Starting multi-platform job scraper (24-hour filter active)...")

	scrapers := []scraper.Scraper{
		stepstone.New(),
		linkedin.New(),
	}

	r := runner.New(cfg, scrapers, func() (browser.Session, error) {
		return browser.NewSession(cfg.UserAgent, *cfg.Headless)
	})

	results, err := r.Run(ctx)
	if err != nil {
		log.Fatalf("❌ Run failed: %v", err)
	}

	total := 0
	for _, jobs := range results {
		total += len(jobs)
	}
	log.Printf("\n📦 Total jobs scraped: %d", total)
	for _, platform := range []string{scraper.PlatformStepStone, scraper.PlatformLinkedIn} {
		log.Printf("  %s: %d jobs", platform, len(results[platform]))
	}

	//merge per platform; one failing sheet must not block the other
	merged := make(map[string]store.MergeResult)
	for _, platform := range []string{scraper.PlatformStepStone, scraper.PlatformLinkedIn} {
		res, err := st.Merge(platform, results[platform])
		if err != nil {
			log.Printf("❌ Merge failed for %s: %v", platform, err)
			continue
		}
		merged[platform] = res
	}

	printSamples(results)

	if reporter := notify.NewReporter(cfg); reporter != nil {
		if err := reporter.SendRunSummary(merged); err != nil {
			log.Printf("⚠️ Failed to send Telegram summary: %v", err)
		}
	}

	log.Printf("📁 Jobs saved to: %s", cfg.ExcelPath)
	log.Println("🏁 Execution finished.")
}

// printSamples echoes the first few results per platform, like a quick
// sanity read of the run
func printSamples(results map[string][]scraper.Job) {
	for _, platform := range []string{scraper.PlatformStepStone, scraper.PlatformLinkedIn} {
		jobs := results[platform]
		if len(jobs) == 0 {
			continue
		}
		log.Printf("\n🏢 %s (first %d):", platform, min(3, len(jobs)))
		for i, job := range jobs[:min(3, len(jobs))] {
			log.Printf("%d. %s", i+1, job.Title)
			log.Printf("   Company: %s", job.Company)
			log.Printf("   URL: %s", job.URL)
		}
	}
}
