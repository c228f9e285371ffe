package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads env files for the running APP_ENV. godotenv.Load
// never overwrites variables that are already set, so the precedence
// is OS environment, then .env.local, then .env.<APP_ENV>, then .env.
// Returns the files that were found and loaded.
func LoadDotEnv() []string {
	candidates := []string{".env.local", ".env"}
	if env := os.Getenv("APP_ENV"); env != "" && env != "local" {
		candidates = []string{".env.local", ".env." + env, ".env"}
	}

	var loaded []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}
