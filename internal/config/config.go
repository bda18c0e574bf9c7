// Load envs from .env
// Load YAML config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Search criteria
	SearchTerms []string `yaml:"search_terms"`
	Location    string   `yaml:"location"`
	MaxPages    int      `yaml:"max_pages"`
	//Store
	ExcelPath string `yaml:"excel_path"`
	//Browser
	UserAgent string `yaml:"user_agent"`
	Headless  *bool  `yaml:"headless"`
	//Resume generation
	OllamaURL   string `yaml:"ollama_url"`
	OllamaModel string `yaml:"ollama_model"`
	ProfilePath string `yaml:"profile_path"`
	OutputDir   string `yaml:"output_dir"`
	ResumePDF   bool   `yaml:"resume_pdf"`
	//Notifications (optional)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every unset field so a missing config.yaml still
// yields a runnable configuration. Telegram stays empty unless configured:
// notifications are optional, scraping must not depend on them.
func (cfg *Config) ApplyDefaults() {
	if len(cfg.SearchTerms) == 0 {
		cfg.SearchTerms = []string{"werkstudent IT", "working student software"}
	}

	if cfg.Location == "" {
		cfg.Location = "Berlin"
	}

	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 2
	}

	if cfg.ExcelPath == "" {
		cfg.ExcelPath = "jobs.xlsx"
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	if cfg.Headless == nil {
		headless := true
		cfg.Headless = &headless
	}

	if cfg.OllamaURL == "" {
		cfg.OllamaURL = "http://localhost:11434/api/generate"
	}

	if cfg.OllamaModel == "" {
		cfg.OllamaModel = "llama3.1"
	}

	if cfg.ProfilePath == "" {
		cfg.ProfilePath = "config/profile.json"
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "resumes/generated"
	}
}
