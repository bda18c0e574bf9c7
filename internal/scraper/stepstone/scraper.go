package stepstone

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"go-jobtrack-automation/internal/browser"
	"go-jobtrack-automation/internal/scraper"
	"go-jobtrack-automation/internal/scraper/extract"
)

type Scraper struct{}

func New() *Scraper {
	return &Scraper{}
}

func (s *Scraper) Name() string {
	return scraper.PlatformStepStone
}

// slugify folds diacritics and turns "Werkstudent IT" into "werkstudent-it"
// for the stepstone.de path scheme
func slugify(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, _ := transform.String(t, str)
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(folded)), " ", "-")
}

func (s *Scraper) Scrape(ctx context.Context, session browser.Session, term, location string, maxPages int) ([]scraper.Job, error) {
	var jobs []scraper.Job
	seen := make(map[string]bool)

	log.Printf("🔍 [STEPSTONE] Searching: %s in %s", term, location)

	url := fmt.Sprintf("https://www.stepstone.de/jobs/%s/in-%s", slugify(term), slugify(location))
	log.Printf("  🌐 Loading StepStone: %s", url)
	if err := session.Navigate(url); err != nil {
		return nil, fmt.Errorf("failed to load stepstone search: %w", err)
	}
	browser.RandomDelay(4000, 6000)

	//best-effort UI filters; none of these may abort the scrape
	s.applyFilters(session)

	for page := 1; page <= maxPages; page++ {
		if ctx.Err() != nil {
			return jobs, ctx.Err()
		}

		if page > 1 {
			next := nextPageURL(session.CurrentURL(), page)
			if err := session.Navigate(next); err != nil {
				log.Printf("  ⚠️ Error navigating to page %d: %v", page, err)
				break
			}
			browser.RandomDelay(3000, 5000)
		}

		log.Printf("  📄 Scraping page %d...", page)

		if !session.WaitVisible("article", 10*time.Second) {
			//no cards within the bound means no more results, not an error
			log.Printf("  ⚠️ Timeout waiting for job cards")
			session.Screenshot("stepstone-no-cards")
			break
		}

		html, err := session.Content()
		if err != nil {
			log.Printf("  ⚠️ Could not read page content: %v", err)
			break
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			log.Printf("  ⚠️ Could not parse page: %v", err)
			break
		}

		cards := doc.Find("article")
		if cards.Length() == 0 {
			log.Printf("  ⚠️ No jobs found on page %d", page)
			break
		}
		log.Printf("  ✅ Found %d job cards", cards.Length())

		cards.Each(func(_ int, card *goquery.Selection) {
			job := extract.StepStone.Extract(card, term, location)
			if job == nil {
				return
			}
			if seen[job.URL] {
				return
			}
			seen[job.URL] = true
			jobs = append(jobs, *job)
			log.Printf("    ➕ %s @ %s", job.Title, job.Company)
		})

		browser.RandomDelay(2000, 4000)
	}

	return jobs, nil
}

// applyFilters walks the optional UI steps: cookie consent, the 24-hour
// recency filter, and the English language filter. Every step is bounded and
// a miss only reduces result quality for this run.
func (s *Scraper) applyFilters(session browser.Session) {
	if session.Click(`button:has-text("Alle akzeptieren"), button:has-text("Accept")`, 5*time.Second) {
		log.Println("  🍪 Accepted cookies")
		browser.RandomDelay(1500, 2500)
	} else {
		log.Println("  ℹ️ No cookie banner found")
	}

	log.Println("  ⏰ Applying 24-hour filter...")
	if session.Click(`button:has-text("24"), button[aria-label*="24 Stunden"]`, 10*time.Second) {
		log.Println("  ✅ 24-hour filter applied")
		browser.RandomDelay(1500, 2500)
	} else {
		log.Println("  ⚠️ Could not apply 24-hour filter")
	}

	log.Println("  🌍 Applying English language filter...")
	//the language checkbox may sit behind the filter panel
	session.Click(`button:has-text("Alle Filter"), button:has-text("Filter")`, 3*time.Second)
	if session.Click(`label:has-text("Englisch"), label:has-text("English")`, 10*time.Second) {
		browser.RandomDelay(1500, 2500)
		session.Click(`button:has-text("Anwenden"), button:has-text("Apply")`, 3*time.Second)
		log.Println("  ✅ English language filter applied")
	} else {
		log.Println("  ⚠️ Could not apply English filter")
	}

	session.Humanize()
}

// nextPageURL derives page 2+ from whatever URL the filters left us on.
// StepStone has no reliable "next" control, the page parameter does.
func nextPageURL(current string, page int) string {
	if strings.Contains(current, "?") {
		return fmt.Sprintf("%s&page=%d", current, page)
	}
	return fmt.Sprintf("%s?page=%d", current, page)
}
