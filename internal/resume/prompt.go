package resume

import (
	"encoding/json"
	"fmt"

	"go-jobtrack-automation/internal/models"
	"go-jobtrack-automation/internal/scraper"
)

// buildLanguageInstruction picks the output-language line for the prompt
func buildLanguageInstruction(language string) string {
	if language == LanguageGerman {
		return "Write the entire resume in fluent, professional German. Use clear, simple sentences suitable for a working student CV."
	}
	return "Write the entire resume in fluent, professional English."
}

// buildPrompt embeds the candidate profile and the job posting as JSON and
// instructs the model to emit only a Markdown resume
func buildPrompt(profile *models.Profile, job scraper.Job, language string) (string, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal profile: %w", err)
	}

	jobJSON, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal job: %w", err)
	}

	prompt := fmt.Sprintf(`You are an expert resume writer for software and AI roles.

Task:
Using the CANDIDATE_PROFILE and JOB_DESCRIPTION below, create a tailored, one-to-two-page resume in clean Markdown format.

Language:
- %s

Requirements:
- Focus on working student / junior software, data, or AI roles.
- Start with a short professional summary tailored to the job.
- Emphasize the most relevant skills for this specific job (hard skills first).
- Reorder and selectively include experience and projects that best match the job description.
- Use concise bullet points with strong action verbs and measurable impact where possible.
- Use a neutral, professional tone.
- Do NOT invent fake companies or degrees.
- You may slightly rephrase tasks to better match the job wording, but keep them truthful.
- Output ONLY the resume in Markdown (no explanation, no preamble).

CANDIDATE_PROFILE (JSON):
%s

JOB_DESCRIPTION (JSON):
%s
`, buildLanguageInstruction(language), profileJSON, jobJSON)

	return prompt, nil
}
