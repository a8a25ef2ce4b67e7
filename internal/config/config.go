package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the server.
type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	OllamaURL      string
	OllamaModel    string
	AITimeout      time.Duration
	SleepAutoApply string // HH:MM local time, empty disables the nightly job
	CORSOrigins    []string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:       strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		OllamaURL:      strings.TrimSpace(os.Getenv("OLLAMA_URL")),
		OllamaModel:    strings.TrimSpace(os.Getenv("OLLAMA_MODEL")),
		AITimeout:      parseSeconds(strings.TrimSpace(os.Getenv("AI_TIMEOUT_SECONDS"))),
		SleepAutoApply: strings.TrimSpace(os.Getenv("SLEEP_AUTO_APPLY")),
		CORSOrigins:    parseOrigins(os.Getenv("CORS_ORIGINS")),
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8000"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "flourish.db"
	}
	if cfg.OllamaURL == "" {
		cfg.OllamaURL = "http://localhost:11434"
	}
	if cfg.OllamaModel == "" {
		cfg.OllamaModel = "phi3:mini"
	}
	if cfg.AITimeout == 0 {
		cfg.AITimeout = 60 * time.Second
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{
			"http://localhost:5173",
			"http://localhost:5174",
			"http://localhost:3000",
		}
	}

	return cfg, nil
}

func parseSeconds(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func parseOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
