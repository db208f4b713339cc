package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	DBPath string
	// Groq (OpenAI-compatible) inference configuration
	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string
	LLMTimeout  time.Duration
	// Upload limits
	MaxUploadMB int64
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "candidates.db"),
		GroqAPIKey:  getEnv("GROQ_API_KEY", ""),
		GroqBaseURL: strings.TrimRight(getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"), "/"),
		GroqModel:   getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		LLMTimeout:  time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		MaxUploadMB: int64(getEnvInt("MAX_UPLOAD_MB", 10)),
	}

	// A missing key is not fatal at startup: resume parsing and chat report a
	// configuration error instead, everything else keeps working.
	if cfg.GroqAPIKey == "" {
		log.Println("WARNING: GROQ_API_KEY is missing. Resume parsing and chat will be unavailable.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
