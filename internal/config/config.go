package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	StubAPIAddr string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		APIBaseURL:  strings.TrimRight(getenv("API_BASE_URL", "http://localhost:8080/api"), "/"),
		StubAPIAddr: getenv("STUB_API_ADDR", ":8080"),
	}
	log.Printf("[config] API_BASE_URL=%s", cfg.APIBaseURL)
	return cfg
}
