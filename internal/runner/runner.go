// Drive all scrapers across all search terms with one shared browser session

package runner

import (
	"context"
	"fmt"
	"log"

	"go-jobtrack-automation/internal/browser"
	"go-jobtrack-automation/internal/config"
	"go-jobtrack-automation/internal/scraper"
)

// SessionFactory lets tests swap the Playwright session for a fake
type SessionFactory func() (browser.Session, error)

type Runner struct {
	cfg        *config.Config
	scrapers   []scraper.Scraper
	newSession SessionFactory
}

func New(cfg *config.Config, scrapers []scraper.Scraper, newSession SessionFactory) *Runner {
	return &Runner{
		cfg:        cfg,
		scrapers:   scrapers,
		newSession: newSession,
	}
}

// Run walks search terms x scrapers strictly sequentially: every adapter
// shares the one session and must not interleave navigation. A failed
// combination is logged and skipped; results from earlier combinations are
// never lost. The session is closed on every exit path - a leaked browser
// process is a correctness bug.
func (r *Runner) Run(ctx context.Context) (map[string][]scraper.Job, error) {
	session, err := r.newSession()
	if err != nil {
		return nil, fmt.Errorf("failed to establish browser session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Printf("⚠️ Error closing browser: %v", err)
		}
		log.Println("🔒 Browser closed")
	}()

	results := make(map[string][]scraper.Job, len(r.scrapers))
	for _, s := range r.scrapers {
		results[s.Name()] = nil
	}

	for _, term := range r.cfg.SearchTerms {
		for _, s := range r.scrapers {
			if ctx.Err() != nil {
				return results, ctx.Err()
			}

			log.Printf("\n▶️ %s: %q", s.Name(), term)
			jobs, err := s.Scrape(ctx, session, term, r.cfg.Location, r.cfg.MaxPages)
			//keep whatever the adapter managed to collect before failing
			results[s.Name()] = append(results[s.Name()], jobs...)
			if err != nil {
				log.Printf("❌ Scraper %s failed for %q: %v", s.Name(), term, err)
				continue
			}
			log.Printf("✅ %s finished for %q: %d jobs", s.Name(), term, len(jobs))
		}
	}

	return results, nil
}
