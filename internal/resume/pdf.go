package resume

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/playwright-community/playwright-go"
)

// pdfTemplate wraps the generated Markdown in a printable page. The resume
// text stays verbatim; layout quality is out of scope.
const pdfTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, serif; max-width: 760px; margin: 2em auto; color: #1a1a1a; }
  pre { white-space: pre-wrap; font-family: inherit; font-size: 11pt; line-height: 1.45; }
</style>
</head>
<body><pre>{{.}}</pre></body>
</html>`

// ExportPDF renders the resume text to a PDF file via headless Chromium
func ExportPDF(markdown, outPath string) error {
	tmpl, err := template.New("resume").Parse(pdfTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse pdf template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, markdown); err != nil {
		return fmt.Errorf("failed to execute pdf template: %w", err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("could not start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("could not launch browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return fmt.Errorf("could not create page: %w", err)
	}

	if err := page.SetContent(buf.String()); err != nil {
		return fmt.Errorf("could not set page content: %w", err)
	}

	pdf, err := page.PDF(playwright.PagePdfOptions{
		Format: playwright.String("A4"),
	})
	if err != nil {
		return fmt.Errorf("could not render pdf: %w", err)
	}

	if err := os.WriteFile(outPath, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
