package extract

import (
	"github.com/PuerkitoBio/goquery"

	"go-jobtrack-automation/internal/scraper"
)

// StepStone describes a stepstone.de search-result card.
// Fallback order per field:
//
//	company:  span with "company" in its class, else the second span on the card
//	location: span with "location" in its class, else the searched location
//	desc:     first paragraph, else empty
//	posted:   <time datetime=...>, else "N/A"
var StepStone = CardSpec{
	Platform: scraper.PlatformStepStone,
	BaseURL:  "https://www.stepstone.de",
	Link:     stepStoneLink,
	Company: []Strategy{
		ClassContains("span", "company"),
		NthText("span", 1),
	},
	Location: []Strategy{
		ClassContains("span", "location"),
	},
	Description: []Strategy{
		FirstText("p"),
	},
	Posted: []Strategy{
		AttrOf("time", "datetime"),
	},
	PostedSentinel: "N/A",
}

// LinkedIn describes a linkedin.com guest search-result card.
// Fallback order per field:
//
//	title:    h3 base-search-card__title, else the job link's own text
//	company:  h4 base-search-card__subtitle, else any anchor with "company" class
//	location: span job-search-card__location, else the searched location
//	posted:   <time datetime=...>, else "24h" (the search itself is 24h-filtered)
var LinkedIn = CardSpec{
	Platform:   scraper.PlatformLinkedIn,
	BaseURL:    "https://www.linkedin.com",
	Link:       linkedInLink,
	StripQuery: true,
	Company: []Strategy{
		ClassContains("h4", "base-search-card__subtitle"),
		ClassContains("a", "company"),
	},
	Location: []Strategy{
		ClassContains("span", "job-search-card__location"),
	},
	Posted: []Strategy{
		AttrOf("time", "datetime"),
	},
	PostedSentinel: "24h",
}

func stepStoneLink(card *goquery.Selection) (string, string, bool) {
	link := card.Find(`a[href*="/stellenangebote"]`).First()
	if link.Length() == 0 {
		return "", "", false
	}
	href, _ := link.Attr("href")
	return CleanText(link.Text()), href, href != ""
}

func linkedInLink(card *goquery.Selection) (string, string, bool) {
	link := card.Find(`a[href*="/jobs/view/"]`).First()
	if link.Length() == 0 {
		return "", "", false
	}
	href, _ := link.Attr("href")

	title := ""
	if t, ok := ClassContains("h3", "base-search-card__title").Fn(card); ok {
		title = t
	} else {
		title = CleanText(link.Text())
	}
	return title, href, href != ""
}
