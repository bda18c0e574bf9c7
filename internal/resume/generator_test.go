package resume

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobtrack-automation/internal/config"
	"go-jobtrack-automation/internal/scraper"
)

type fakeTextGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeTextGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func testGenerator(t *testing.T, client TextGenerator) (*Generator, string) {
	t.Helper()
	dir := t.TempDir()

	profilePath := filepath.Join(dir, "profile.json")
	profile := `{
		"personal_information": {"full_name": "Jane Doe", "job_title": "Working Student"},
		"summary": "CS student with Go and Python experience"
	}`
	require.NoError(t, os.WriteFile(profilePath, []byte(profile), 0644))

	outDir := filepath.Join(dir, "generated")
	cfg := &config.Config{
		ProfilePath: profilePath,
		OutputDir:   outDir,
		OllamaModel: "llama3.1",
	}
	return NewGenerator(cfg, client), outDir
}

func TestGenerate_WritesMarkdownResume(t *testing.T) {
	client := &fakeTextGenerator{text: "# Jane Doe\nTailored resume body"}
	gen, outDir := testGenerator(t, client)

	job := scraper.Job{
		Title:       "AI Engineer",
		Company:     "ExampleTech GmbH",
		Description: "We are looking for a working student with experience in backend software.",
	}

	outPath, err := gen.Generate(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, outDir, filepath.Dir(outPath))
	base := filepath.Base(outPath)
	assert.Contains(t, base, "resume_ExampleTech_GmbH_AI_Engineer_")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, client.text, string(data))

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Jane Doe")
	assert.Contains(t, client.prompts[0], "ExampleTech GmbH")
	assert.Contains(t, client.prompts[0], "professional English")
}

func TestGenerate_SanitizesFilenameParts(t *testing.T) {
	client := &fakeTextGenerator{text: "resume"}
	gen, _ := testGenerator(t, client)

	job := scraper.Job{
		Title:   "Werkstudent Software (m/w/d)*",
		Company: "Müller & Söhne GmbH",
	}

	outPath, err := gen.Generate(context.Background(), job)
	require.NoError(t, err)

	base := filepath.Base(outPath)
	assert.NotContains(t, base, "/")
	assert.NotContains(t, base, "&")
	assert.NotContains(t, base, "*")
	assert.NotContains(t, base, " ")
	assert.Contains(t, base, "Müller")
	assert.Contains(t, base, "Söhne")
}

func TestGenerate_FailsBeforeWritingWhenModelFails(t *testing.T) {
	client := &fakeTextGenerator{err: errors.New("connection refused")}
	gen, outDir := testGenerator(t, client)

	_, err := gen.Generate(context.Background(), scraper.Job{Title: "Dev", Company: "ACME"})
	require.Error(t, err)

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr), "no output may exist after a failed generation")
}

func TestGenerate_FailsWhenProfileMissing(t *testing.T) {
	cfg := &config.Config{
		ProfilePath: filepath.Join(t.TempDir(), "missing.json"),
		OutputDir:   t.TempDir(),
	}
	gen := NewGenerator(cfg, &fakeTextGenerator{text: "x"})

	_, err := gen.Generate(context.Background(), scraper.Job{Title: "Dev"})
	assert.Error(t, err)
}
