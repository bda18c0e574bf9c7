// Define an interface for all scrapers
// Ensure consistency

package scraper

import (
	"context"

	"go-jobtrack-automation/internal/browser"
)

// Platform sheet names, fixed by the store layout
const (
	PlatformStepStone = "StepStone"
	PlatformLinkedIn  = "LinkedIn"
)

// Job is one normalized posting. URL is the sole dedup key; a Job is never
// created without one. Values are not mutated after extraction.
type Job struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PostedDate  string `json:"posted_date"`
	Platform    string `json:"platform"`
	SearchTerm  string `json:"search_term"`
}

//Scraper defines the interface that all platform scrapers must implement
type Scraper interface {
	//Scrape listings for one search term, bounded by maxPages
	Scrape(ctx context.Context, session browser.Session, term, location string, maxPages int) ([]Job, error)

	//Name is the platform name (StepStone, LinkedIn)
	Name() string
}
