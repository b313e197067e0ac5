package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads a .env file when present; missing files are fine, the process
// environment wins either way.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

// Getenv returns the variable's value or the given default when unset.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
