package browser

import "time"

// Session is the controllable browser surface the scraping pipeline needs.
// Adapters never talk to Playwright directly; they get one of these, shared
// sequentially across the whole run and closed by the owner on every exit path.
type Session interface {
	//Navigate loads a URL and waits for DOM content
	Navigate(url string) error

	//WaitVisible waits up to timeout for at least one element matching
	//selector. A timeout is "feature absent", not an error.
	WaitVisible(selector string, timeout time.Duration) bool

	//Click attempts a bounded click on the first element matching selector.
	//Used for optional UI steps (cookie banners, filters); false means the
	//control was not there in time.
	Click(selector string, timeout time.Duration) bool

	//Content returns the rendered HTML of the current page
	Content() (string, error)

	//CurrentURL returns the page URL after any redirects
	CurrentURL() string

	//ScrollToBottom triggers lazy loading
	ScrollToBottom()

	//Humanize performs small randomized mouse/scroll activity
	Humanize()

	//Screenshot captures the page for debugging, best effort
	Screenshot(name string) error

	Close() error
}
