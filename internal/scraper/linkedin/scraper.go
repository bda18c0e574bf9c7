package linkedin

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-jobtrack-automation/internal/browser"
	"go-jobtrack-automation/internal/scraper"
	"go-jobtrack-automation/internal/scraper/extract"
)

// jobsPerPage is LinkedIn's guest-search offset step
const jobsPerPage = 25

type Scraper struct{}

func New() *Scraper {
	return &Scraper{}
}

func (s *Scraper) Name() string {
	return scraper.PlatformLinkedIn
}

func (s *Scraper) Scrape(ctx context.Context, session browser.Session, term, location string, maxPages int) ([]scraper.Job, error) {
	var jobs []scraper.Job
	seen := make(map[string]bool)

	log.Printf("🔍 [LINKEDIN] Searching: %s in %s", term, location)

	for page := 0; page < maxPages; page++ {
		if ctx.Err() != nil {
			return jobs, ctx.Err()
		}

		//f_TPR=r86400 keeps the search to the past 24 hours, sortBy=DD newest first
		searchURL := fmt.Sprintf(
			"https://www.linkedin.com/jobs/search?keywords=%s&location=%s&f_TPR=r86400&sortBy=DD&start=%d",
			url.QueryEscape(term), url.QueryEscape(location), page*jobsPerPage,
		)
		log.Printf("  📄 Page %d: Past 24 hours filter active", page+1)

		if err := session.Navigate(searchURL); err != nil {
			log.Printf("  ⚠️ Error navigating to page %d: %v", page+1, err)
			break
		}
		browser.RandomDelay(4000, 6000)

		//results load lazily
		session.ScrollToBottom()
		browser.RandomDelay(1500, 2500)

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

		cards := findCards(doc)
		if cards.Length() == 0 {
			log.Printf("  ⚠️ No jobs found")
			session.Screenshot("linkedin-no-cards")
			break
		}
		log.Printf("  ✅ Found %d job cards", cards.Length())

		cards.Each(func(_ int, card *goquery.Selection) {
			job := extract.LinkedIn.Extract(card, term, location)
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

		browser.RandomDelay(3000, 5000)
	}

	return jobs, nil
}

// findCards tries the guest-search card class first, then the looser
// list-item fallback the mobile layout uses
func findCards(doc *goquery.Document) *goquery.Selection {
	cards := doc.Find(`div[class*="base-card"]`)
	if cards.Length() > 0 {
		return cards
	}
	return doc.Find(`li[class*="job"]`)
}
