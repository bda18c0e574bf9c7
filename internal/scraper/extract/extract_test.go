package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardFrom(t *testing.T, html, selector string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	card := doc.Find(selector).First()
	require.NotZero(t, card.Length(), "fixture must contain %s", selector)
	return card
}

func TestStepStoneExtract_FullCard(t *testing.T) {
	html := `<article>
		<a href="/stellenangebote--Werkstudent-IT-12345">Werkstudent IT (m/w/d)</a>
		<span class="res-company-name">ACME GmbH</span>
		<span class="res-job-location">Berlin Mitte</span>
		<time datetime="2026-08-26T09:30:00Z">heute</time>
		<p>Support our backend team with Go services.</p>
	</article>`

	job := StepStone.Extract(cardFrom(t, html, "article"), "werkstudent IT", "Berlin")
	require.NotNil(t, job)

	assert.Equal(t, "Werkstudent IT (m/w/d)", job.Title)
	assert.Equal(t, "ACME GmbH", job.Company)
	assert.Equal(t, "Berlin Mitte", job.Location)
	assert.Equal(t, "Support our backend team with Go services.", job.Description)
	assert.Equal(t, "https://www.stepstone.de/stellenangebote--Werkstudent-IT-12345", job.URL)
	assert.Equal(t, "2026-08-26", job.PostedDate)
	assert.Equal(t, "StepStone", job.Platform)
	assert.Equal(t, "werkstudent IT", job.SearchTerm)
}

func TestStepStoneExtract_CompanyFallsBackToSecondSpan(t *testing.T) {
	//no company-classed element, but generic spans exist: the second one
	//is taken as the company, never nil and never a crash
	html := `<article>
		<a href="/stellenangebote--Dev-1">Dev</a>
		<span>Merken</span>
		<span>Beispiel AG</span>
	</article>`

	job := StepStone.Extract(cardFrom(t, html, "article"), "dev", "Berlin")
	require.NotNil(t, job)
	assert.Equal(t, "Beispiel AG", job.Company)
}

func TestStepStoneExtract_SentinelsWhenFieldsMissing(t *testing.T) {
	html := `<article><a href="/stellenangebote--Dev-1">Dev</a></article>`

	job := StepStone.Extract(cardFrom(t, html, "article"), "dev", "Berlin")
	require.NotNil(t, job)
	assert.Equal(t, "N/A", job.Company)
	assert.Equal(t, "Berlin", job.Location, "location falls back to the searched location")
	assert.Equal(t, "", job.Description)
	assert.Equal(t, "N/A", job.PostedDate)
}

func TestStepStoneExtract_SkipsCardWithoutLink(t *testing.T) {
	html := `<article>
		<span>Some Company</span>
		<span>Berlin</span>
		<p>A card that links nowhere.</p>
	</article>`

	job := StepStone.Extract(cardFrom(t, html, "article"), "dev", "Berlin")
	assert.Nil(t, job, "no URL means no record: URL is the dedup key")
}

func TestStepStoneExtract_KeepsAbsoluteURL(t *testing.T) {
	html := `<article><a href="https://www.stepstone.de/stellenangebote--Dev-9">Dev</a></article>`

	job := StepStone.Extract(cardFrom(t, html, "article"), "dev", "Berlin")
	require.NotNil(t, job)
	assert.Equal(t, "https://www.stepstone.de/stellenangebote--Dev-9", job.URL)
}

func TestStepStoneExtract_TruncatesDescription(t *testing.T) {
	long := strings.Repeat("x", 800)
	html := `<article><a href="/stellenangebote--Dev-1">Dev</a><p>` + long + `</p></article>`

	job := StepStone.Extract(cardFrom(t, html, "article"), "dev", "Berlin")
	require.NotNil(t, job)
	assert.Len(t, []rune(job.Description), 500)
}

func TestLinkedInExtract_FullCard(t *testing.T) {
	html := `<div class="base-card job-search-card">
		<h3 class="base-search-card__title">Working Student Software</h3>
		<h4 class="base-search-card__subtitle">Beispiel SE</h4>
		<span class="job-search-card__location">Berlin, Germany</span>
		<a class="base-card__full-link" href="https://www.linkedin.com/jobs/view/4242?refId=abc&amp;trackingId=xyz">Working Student Software</a>
		<time datetime="2026-08-25">1 day ago</time>
	</div>`

	job := LinkedIn.Extract(cardFrom(t, html, "div"), "working student software", "Berlin")
	require.NotNil(t, job)

	assert.Equal(t, "Working Student Software", job.Title)
	assert.Equal(t, "Beispiel SE", job.Company)
	assert.Equal(t, "Berlin, Germany", job.Location)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/4242", job.URL,
		"tracking params must be stripped so one posting has one URL")
	assert.Equal(t, "2026-08-25", job.PostedDate)
	assert.Equal(t, "LinkedIn", job.Platform)
}

func TestLinkedInExtract_TitleFallsBackToLinkText(t *testing.T) {
	html := `<div class="base-card">
		<a href="/jobs/view/777">Backend Intern</a>
	</div>`

	job := LinkedIn.Extract(cardFrom(t, html, "div"), "intern", "Berlin")
	require.NotNil(t, job)
	assert.Equal(t, "Backend Intern", job.Title)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/777", job.URL)
}

func TestLinkedInExtract_PostedDateSentinel(t *testing.T) {
	html := `<div class="base-card"><a href="/jobs/view/1">Dev</a></div>`

	job := LinkedIn.Extract(cardFrom(t, html, "div"), "dev", "Berlin")
	require.NotNil(t, job)
	assert.Equal(t, "24h", job.PostedDate, "the search itself is 24h-filtered")
}

func TestLinkedInExtract_SkipsCardWithoutJobLink(t *testing.T) {
	html := `<div class="base-card">
		<h3 class="base-search-card__title">Ghost Posting</h3>
		<a href="/company/acme">ACME</a>
	</div>`

	job := LinkedIn.Extract(cardFrom(t, html, "div"), "dev", "Berlin")
	assert.Nil(t, job)
}

func TestNormalizePostedDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		sentinel string
		expected string
	}{
		{"iso timestamp trimmed", "2026-08-26T09:30:00Z", "N/A", "2026-08-26"},
		{"plain iso date kept", "2026-08-26", "N/A", "2026-08-26"},
		{"platform token passes through", "vor 3 Tagen", "N/A", "vor 3 Tagen"},
		{"empty becomes sentinel", "", "24h", "24h"},
		{"whitespace becomes sentinel", "   ", "N/A", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePostedDate(tt.raw, tt.sentinel))
		})
	}
}
