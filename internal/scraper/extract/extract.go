// Parse one rendered listing card into a Job
// Layered fallbacks per field: specific selector -> positional -> sentinel

package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-jobtrack-automation/internal/scraper"
)

// maxDescriptionLen bounds persisted descriptions
const maxDescriptionLen = 500

// Strategy is one attempt at extracting a field from a card. Strategies for a
// field are tried in order; the first hit wins, else the field's sentinel.
// Kept table-driven so each fallback step stays independently testable.
type Strategy struct {
	Name string
	Fn   func(card *goquery.Selection) (string, bool)
}

// CardSpec describes how one platform's listing card maps to a Job
type CardSpec struct {
	Platform string
	//BaseURL prefixes relative hrefs
	BaseURL string
	//Link extracts the title and canonical href. No link, no Job:
	//URL is the dedup key, so a card without one is skipped entirely.
	Link func(card *goquery.Selection) (title, href string, ok bool)
	//StripQuery removes the query string from the URL (tracking params
	//make one posting look like many different URLs)
	StripQuery bool

	Company     []Strategy
	Location    []Strategy
	Description []Strategy
	Posted      []Strategy
	//PostedSentinel is used when no date element exists at all
	PostedSentinel string
}

// Extract turns a card selection into a Job, or nil when the card has no
// usable link. fallbackLocation is the searched location, used when the card
// carries no location of its own.
func (spec CardSpec) Extract(card *goquery.Selection, term, fallbackLocation string) *scraper.Job {
	title, href, ok := spec.Link(card)
	if !ok || href == "" || title == "" {
		return nil
	}

	url := href
	if !strings.HasPrefix(url, "http") {
		url = spec.BaseURL + url
	}
	if spec.StripQuery {
		url = strings.SplitN(url, "?", 2)[0]
	}

	return &scraper.Job{
		Title:       title,
		Company:     firstOf(card, spec.Company, "N/A"),
		Location:    firstOf(card, spec.Location, fallbackLocation),
		Description: Truncate(firstOf(card, spec.Description, ""), maxDescriptionLen),
		URL:         url,
		PostedDate:  NormalizePostedDate(firstOf(card, spec.Posted, ""), spec.PostedSentinel),
		Platform:    spec.Platform,
		SearchTerm:  term,
	}
}

func firstOf(card *goquery.Selection, strategies []Strategy, sentinel string) string {
	for _, s := range strategies {
		if val, ok := s.Fn(card); ok {
			return val
		}
	}
	return sentinel
}

// ClassContains matches the first tag element whose class attribute contains
// substr, case-insensitive. Site class names carry hashes and prefixes that
// change between deploys; the substring survives.
func ClassContains(tag, substr string) Strategy {
	substr = strings.ToLower(substr)
	return Strategy{
		Name: tag + "[class*=" + substr + "]",
		Fn: func(card *goquery.Selection) (string, bool) {
			var out string
			found := false
			card.Find(tag).EachWithBreak(func(_ int, s *goquery.Selection) bool {
				class, _ := s.Attr("class")
				if strings.Contains(strings.ToLower(class), substr) {
					out = CleanText(s.Text())
					found = out != ""
					return !found
				}
				return true
			})
			return out, found
		},
	}
}

// NthText takes the text of the n-th (0-based) element matching selector.
// Positional heuristic for cards without usable class names.
func NthText(selector string, n int) Strategy {
	return Strategy{
		Name: fmt.Sprintf("%s:nth(%d)", selector, n),
		Fn: func(card *goquery.Selection) (string, bool) {
			s := card.Find(selector).Eq(n)
			if s.Length() == 0 {
				return "", false
			}
			text := CleanText(s.Text())
			return text, text != ""
		},
	}
}

// FirstText takes the text of the first element matching selector
func FirstText(selector string) Strategy {
	return Strategy{
		Name: selector,
		Fn: func(card *goquery.Selection) (string, bool) {
			s := card.Find(selector).First()
			if s.Length() == 0 {
				return "", false
			}
			text := CleanText(s.Text())
			return text, text != ""
		},
	}
}

// AttrOf takes an attribute of the first element matching selector
func AttrOf(selector, attr string) Strategy {
	return Strategy{
		Name: selector + "@" + attr,
		Fn: func(card *goquery.Selection) (string, bool) {
			val, ok := card.Find(selector).First().Attr(attr)
			val = strings.TrimSpace(val)
			return val, ok && val != ""
		},
	}
}

// CleanText collapses runs of whitespace left behind by rendered markup
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate bounds s to max runes
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
