package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	AllowOrigins []string
	DatabaseURL  string
	SeedFile     string
	APIBaseURL   string
	SessionFile  string
	PageSize     int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	pageSize := 6
	if v, err := strconv.Atoi(getenv("PAGE_SIZE", "6")); err == nil && v > 0 {
		pageSize = v
	}

	return Config{
		Port:         getenv("PORT", "3001"),
		AllowOrigins: splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		DatabaseURL:  getenv("DATABASE_URL", ""),
		SeedFile:     getenv("SEED_FILE", ""),
		APIBaseURL:   getenv("API_BASE_URL", "http://localhost:3001"),
		SessionFile:  getenv("SESSION_FILE", ".voyago-session.json"),
		PageSize:     pageSize,
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
