package browser

import (
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"
)

// playwrightSession owns the whole Playwright stack for one run:
// driver, browser, context, page. Closed in reverse order.
type playwrightSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	browCtx playwright.BrowserContext
	page    playwright.Page
	shots   *ScreenshotDebugger
}

// NewSession launches a stealth-configured Chromium and returns it behind the
// Session interface. Failure here is fatal for the run; there is no scraping
// without a browser.
func NewSession(userAgent string, headless bool) (Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	browCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(userAgent),
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	//hide the automation flag before any page script runs
	if err := browCtx.AddInitScript(playwright.Script{
		Content: playwright.String("Object.defineProperty(navigator, 'webdriver', {get: () => undefined})"),
	}); err != nil {
		log.Printf("⚠️ Could not install stealth init script: %v", err)
	}

	page, err := browCtx.NewPage()
	if err != nil {
		browCtx.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	return &playwrightSession{
		pw:      pw,
		browser: browser,
		browCtx: browCtx,
		page:    page,
		shots:   NewScreenshotDebugger(),
	}, nil
}

func (s *playwrightSession) Navigate(url string) error {
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	})
	return err
}

func (s *playwrightSession) WaitVisible(selector string, timeout time.Duration) bool {
	_, err := s.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return err == nil
}

func (s *playwrightSession) Click(selector string, timeout time.Duration) bool {
	err := s.page.Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return err == nil
}

func (s *playwrightSession) Content() (string, error) {
	return s.page.Content()
}

func (s *playwrightSession) CurrentURL() string {
	return s.page.URL()
}

func (s *playwrightSession) ScrollToBottom() {
	s.page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
}

func (s *playwrightSession) Humanize() {
	mouseJiggle(s.page)
	smoothScroll(s.page)
}

func (s *playwrightSession) Screenshot(name string) error {
	return s.shots.Capture(s.page, name)
}

func (s *playwrightSession) Close() error {
	if s.page != nil {
		s.page.Close()
	}
	if s.browCtx != nil {
		s.browCtx.Close()
	}
	if s.browser != nil {
		s.browser.Close()
	}
	if s.pw != nil {
		return s.pw.Stop()
	}
	return nil
}
