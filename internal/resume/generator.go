package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"go-jobtrack-automation/internal/config"
	"go-jobtrack-automation/internal/models"
	"go-jobtrack-automation/internal/scraper"
)

// TextGenerator is the text-generation collaborator
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator tailors one resume to one job posting. All-or-nothing: any
// failure returns before output is written.
type Generator struct {
	cfg    *config.Config
	client TextGenerator
}

func NewGenerator(cfg *config.Config, client TextGenerator) *Generator {
	return &Generator{
		cfg:    cfg,
		client: client,
	}
}

// Generate builds the prompt from the candidate profile and the job, calls
// the model, and writes the Markdown resume. Returns the output path.
func (g *Generator) Generate(ctx context.Context, job scraper.Job) (string, error) {
	profile, err := loadProfile(g.cfg.ProfilePath)
	if err != nil {
		return "", err
	}

	language := DetectLanguage(job.Description)
	log.Printf("🌐 Detected job description language: %s", language)

	prompt, err := buildPrompt(profile, job, language)
	if err != nil {
		return "", err
	}

	log.Printf("🧠 Calling model '%s' to generate %s resume...", g.cfg.OllamaModel, language)
	text, err := g.client.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(g.cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	company := job.Company
	if company == "" {
		company = "Company"
	}
	title := job.Title
	if title == "" {
		title = "Role"
	}

	filename := fmt.Sprintf("resume_%s_%s_%s.md",
		sanitizeFilename(company), sanitizeFilename(title), time.Now().Format("20060102"))
	outPath := filepath.Join(g.cfg.OutputDir, filename)

	if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to write resume: %w", err)
	}
	log.Printf("✅ Tailored resume saved to: %s", outPath)

	//PDF export is an extra artifact; the markdown above is the deliverable
	if g.cfg.ResumePDF {
		pdfPath := strings.TrimSuffix(outPath, ".md") + ".pdf"
		if err := ExportPDF(text, pdfPath); err != nil {
			log.Printf("⚠️ PDF export failed: %v", err)
		} else {
			log.Printf("📄 PDF saved to: %s", pdfPath)
		}
	}

	return outPath, nil
}

func loadProfile(path string) (*models.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return &profile, nil
}

// sanitizeFilename keeps letters, digits and a small safe set, and turns
// spaces into underscores
func sanitizeFilename(s string) string {
	const keep = "-_.() "
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(keep, r) {
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}
