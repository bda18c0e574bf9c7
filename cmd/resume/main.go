package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"go-jobtrack-automation/internal/config"
	"go-jobtrack-automation/internal/resume"
	"go-jobtrack-automation/internal/scraper"
)

func main() {
	jobPath := flag.String("job", "", "path to a job posting JSON file")
	flag.Parse()

	if *jobPath == "" {
		log.Fatal("usage: resume -job <job.json>")
	}

	cfg := config.Load()

	data, err := os.ReadFile(*jobPath)
	if err != nil {
		log.Fatalf("❌ Failed to read job file: %v", err)
	}

	var job scraper.Job
	if err := json.Unmarshal(data, &job); err != nil {
		log.Fatalf("❌ Failed to parse job file: %v", err)
	}

	gen := resume.NewGenerator(cfg, resume.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel))

	outPath, err := gen.Generate(context.Background(), job)
	if err != nil {
		log.Fatalf("❌ Resume generation failed: %v", err)
	}

	log.Printf("🏁 Done: %s", outPath)
}
